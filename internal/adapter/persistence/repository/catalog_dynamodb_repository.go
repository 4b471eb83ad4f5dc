package repository

import (
	"context"
	"encoding/json"
	"time"

	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogsTableName = "catalogs"

const (
	systemTemplatesDocID = "system_templates"
	addOnTemplatesDocID  = "addon_templates"
)

// catalogItem holds one whole catalog as a JSON document; catalogs are
// always replaced wholesale, never patched per template.
type catalogItem struct {
	ID        string `dynamodbav:"id"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Document  string `dynamodbav:"document"`
}

// CatalogDynamoRepository persists the template catalogs in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: tableFromEnv("CATALOGS_TABLE", defaultCatalogsTableName),
	}
}

func (r *CatalogDynamoRepository) LoadSystemTemplates(ctx context.Context) ([]entities.EstimateSystem, error) {
	var templates []entities.EstimateSystem
	if err := r.load(ctx, systemTemplatesDocID, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *CatalogDynamoRepository) SaveSystemTemplates(ctx context.Context, templates []entities.EstimateSystem) error {
	return r.save(ctx, systemTemplatesDocID, templates)
}

func (r *CatalogDynamoRepository) LoadAddOnTemplates(ctx context.Context) ([]entities.AddOnTemplate, error) {
	var templates []entities.AddOnTemplate
	if err := r.load(ctx, addOnTemplatesDocID, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *CatalogDynamoRepository) SaveAddOnTemplates(ctx context.Context, templates []entities.AddOnTemplate) error {
	return r.save(ctx, addOnTemplatesDocID, templates)
}

func (r *CatalogDynamoRepository) load(ctx context.Context, id string, out any) error {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if len(res.Item) == 0 {
		return nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(res.Item, &it); err != nil {
		return err
	}
	if it.Document == "" {
		return nil
	}
	return json.Unmarshal([]byte(it.Document), out)
}

func (r *CatalogDynamoRepository) save(ctx context.Context, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(catalogItem{
		ID:        id,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Document:  string(data),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
