package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
	"gravitas_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesUserIDIndex      = "user_id-index"
)

type estimateItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	ProjectName  string `dynamodbav:"project_name"`
	Location     string `dynamodbav:"location"`
	ProjectType  string `dynamodbav:"project_type"`
	Measurements string `dynamodbav:"measurements"`
	Result       string `dynamodbav:"result"`
	GrandTotal   string `dynamodbav:"grand_total"`
	Status       string `dynamodbav:"status"`
	Notes        string `dynamodbav:"notes,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Measurements and the full calculation result are stored as JSON documents;
// grand_total is duplicated as a top-level number so list projections stay
// cheap.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
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
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Estimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEstimateItem(it))
	}
	return items, nil
}

func (r *EstimateDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	measurements, err := json.Marshal(e.Measurements)
	if err != nil {
		return estimateItem{}, err
	}
	result, err := json.Marshal(e.Result)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:           e.ID,
		UserID:       e.UserID,
		ProjectName:  e.ProjectName,
		Location:     string(e.Location),
		ProjectType:  string(e.ProjectType),
		Measurements: string(measurements),
		Result:       string(result),
		GrandTotal:   floatToString(e.Result.GrandTotal),
		Status:       string(e.Status),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var measurements entities.Measurements
	_ = json.Unmarshal([]byte(it.Measurements), &measurements)
	var result entities.CalculationResult
	_ = json.Unmarshal([]byte(it.Result), &result)
	return entities.Estimate{
		ID:           it.ID,
		UserID:       it.UserID,
		ProjectName:  it.ProjectName,
		Location:     catalog.Location(it.Location),
		ProjectType:  catalog.ProjectType(it.ProjectType),
		Measurements: measurements,
		Result:       result,
		Status:       entities.EstimateStatus(it.Status),
		Notes:        it.Notes,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
