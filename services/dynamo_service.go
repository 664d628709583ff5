package services

import (
	"context"
	"fmt"
	"log"

	"ddate_server/models"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoService is the durable medium behind the in-memory store: the whole
// profile table is loaded at process start and every committed mutation is
// written behind. It implements Persister.
type DynamoService struct {
	Client *dynamodb.Client
	Table  string
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(region string) *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// SaveProfile writes one profile record to the table.
func (ds *DynamoService) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	item, err := attributevalue.MarshalMap(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile %s: %w", profile.UserID, err)
	}
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &ds.Table,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put profile in table '%s': %w", ds.Table, err)
	}
	return nil
}

// DeleteProfile removes one profile record from the table.
func (ds *DynamoService) DeleteProfile(ctx context.Context, userID string) error {
	_, err := ds.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &ds.Table,
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete profile from table '%s': %w", ds.Table, err)
	}
	return nil
}

// ScanProfiles reads the full profile table, following pagination until the
// scan is exhausted. Used once, at startup, to hydrate the store.
func (ds *DynamoService) ScanProfiles(ctx context.Context) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	var startKey map[string]types.AttributeValue

	for {
		output, err := ds.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &ds.Table,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", ds.Table, err)
		}

		var page []models.UserProfile
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scan result: %w", err)
		}
		profiles = append(profiles, page...)

		if output.LastEvaluatedKey == nil {
			break
		}
		startKey = output.LastEvaluatedKey
	}

	return profiles, nil
}
