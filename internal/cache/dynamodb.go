package cache

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/DairouWang/TroutTracker/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the backend calls.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoBackend is a ResultCache backed by a single DynamoDB table, keyed on
// a "lake_name" partition key. Lookups and writes are best-effort: any AWS
// error is logged and treated as a miss/no-op rather than surfaced to the
// caller, since the resolver must never fail a request because the cache is
// unavailable.
type DynamoBackend struct {
	client DynamoAPI
	table  string
	logger *slog.Logger
}

// NewDynamoBackend returns a DynamoBackend using client against table.
func NewDynamoBackend(client DynamoAPI, table string, logger *slog.Logger) *DynamoBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &DynamoBackend{client: client, table: table, logger: logger}
}

func (d *DynamoBackend) Get(ctx context.Context, key string) (domain.MatchResult, bool) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]types.AttributeValue{
			"lake_name": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		d.logger.Warn("cache lookup failed", "error", err)
		return domain.MatchResult{}, false
	}
	if out.Item == nil {
		return domain.MatchResult{}, false
	}

	return itemToResult(out.Item), true
}

func (d *DynamoBackend) Put(ctx context.Context, key string, result domain.MatchResult) {
	item := map[string]types.AttributeValue{
		"lake_name":     &types.AttributeValueMemberS{Value: key},
		"matched_score": &types.AttributeValueMemberN{Value: strconv.FormatInt(result.MatchedScore, 10)},
		"created_at":    &types.AttributeValueMemberS{Value: clock.Now().UTC().Format("2006-01-02T15:04:05.999999999")},
	}
	if result.OfficialName != nil {
		item["official_name"] = &types.AttributeValueMemberS{Value: *result.OfficialName}
	}
	if result.Lat != nil {
		item["lat"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(*result.Lat, 'f', -1, 64)}
	}
	if result.Lng != nil {
		item["lng"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(*result.Lng, 'f', -1, 64)}
	}

	_, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		d.logger.Warn("cache write failed", "error", err)
	}
}

func itemToResult(item map[string]types.AttributeValue) domain.MatchResult {
	result := domain.MatchResult{Source: domain.SourceCache}

	if av, ok := item["official_name"].(*types.AttributeValueMemberS); ok {
		result.OfficialName = domain.StringPtr(av.Value)
	}
	if av, ok := item["lat"].(*types.AttributeValueMemberN); ok {
		if f, err := strconv.ParseFloat(av.Value, 64); err == nil {
			result.Lat = domain.Float64Ptr(f)
		}
	}
	if av, ok := item["lng"].(*types.AttributeValueMemberN); ok {
		if f, err := strconv.ParseFloat(av.Value, 64); err == nil {
			result.Lng = domain.Float64Ptr(f)
		}
	}
	if av, ok := item["matched_score"].(*types.AttributeValueMemberN); ok {
		if n, err := strconv.ParseInt(av.Value, 10, 64); err == nil {
			result.MatchedScore = n
		}
	}

	return result
}
