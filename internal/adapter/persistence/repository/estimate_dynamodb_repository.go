package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

// The current-estimate pointer lives in the same table under a reserved id.
const currentPointerID = "__current__"

// estimateItem flattens the searchable header fields and carries the full
// aggregate as a JSON document. The nested systems/options/add-ons tree is
// only ever read and written whole, so a document attribute beats mapping
// every nested field to DynamoDB types.
type estimateItem struct {
	ID             string `dynamodbav:"id"`
	EstimateNumber string `dynamodbav:"estimate_number"`
	Status         string `dynamodbav:"status"`
	CustomerName   string `dynamodbav:"customer_name"`
	GrandTotal     string `dynamodbav:"grand_total"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Document       string `dynamodbav:"document"`
}

type currentPointerItem struct {
	ID        string `dynamodbav:"id"`
	CurrentID string `dynamodbav:"current_id"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableFromEnv("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) GetCurrent(ctx context.Context) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: currentPointerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var ptr currentPointerItem
	if err := attributevalue.UnmarshalMap(out.Item, &ptr); err != nil {
		return entities.Estimate{}, err
	}
	if ptr.CurrentID == "" {
		return entities.Estimate{}, nil
	}
	return r.getByID(ctx, ptr.CurrentID)
}

func (r *EstimateDynamoRepository) SaveCurrent(ctx context.Context, e entities.Estimate) error {
	if err := r.Upsert(ctx, e); err != nil {
		return err
	}
	ptr := currentPointerItem{
		ID:        currentPointerID,
		CurrentID: e.ID,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(ptr)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	var estimates []entities.Estimate

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.ID == currentPointerID || it.Document == "" {
				continue
			}
			est, err := fromEstimateItem(it)
			if err != nil {
				return nil, err
			}
			estimates = append(estimates, est)
		}
	}

	// Scan order is undefined; the estimate number gives a stable listing.
	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].EstimateNumber < estimates[j].EstimateNumber
	})
	return estimates, nil
}

func (r *EstimateDynamoRepository) Upsert(ctx context.Context, e entities.Estimate) error {
	it, err := toEstimateItem(e)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *EstimateDynamoRepository) getByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	doc, err := json.Marshal(e)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:             e.ID,
		EstimateNumber: e.EstimateNumber,
		Status:         string(e.Status),
		CustomerName:   e.CustomerName,
		GrandTotal:     floatToString(e.GrandTotal),
		UpdatedAt:      time.Now().UTC().Format(time.RFC3339Nano),
		Document:       string(doc),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var e entities.Estimate
	if err := json.Unmarshal([]byte(it.Document), &e); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
