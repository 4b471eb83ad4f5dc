package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the DynamoDB client for the estimate and catalog
// repositories. Against AWS the default config chain applies; setting
// DYNAMODB_ENDPOINT switches to a local instance (e.g. http://dynamodb:8000)
// with placeholder static credentials, which local DynamoDB never validates.
//
// Env vars: AWS_REGION (default us-east-1), DYNAMODB_ENDPOINT (optional),
// AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (local mode defaults "local").
func ConnectDynamoDB() *dynamodb.Client {
	ctx := context.Background()
	region := envOr("AWS_REGION", "us-east-1")

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	if endpoint == "" {
		cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
		if err != nil {
			log.Fatalf("failed to load aws config: %v", err)
		}
		return dynamodb.NewFromConfig(cfg)
	}

	log.Printf("[database] using local dynamodb endpoint %s", endpoint)
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			envOr("AWS_ACCESS_KEY_ID", "local"),
			envOr("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)),
		config.WithEndpointResolverWithOptions(localResolver(endpoint)),
	)
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func localResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID {
			return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
