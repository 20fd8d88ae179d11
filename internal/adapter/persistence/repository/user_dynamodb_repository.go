package repository

import (
	"context"
	"errors"
	"time"

	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
	"gravitas_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID                     string `dynamodbav:"id"`
	Email                  string `dynamodbav:"email,omitempty"`
	DisplayName            string `dynamodbav:"display_name,omitempty"`
	Tier                   string `dynamodbav:"tier"`
	TierStatus             string `dynamodbav:"tier_status"`
	EstimatesUsedThisMonth int    `dynamodbav:"estimates_used_this_month"`
	LastEstimateReset      string `dynamodbav:"last_estimate_reset"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User accounts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	it := toUserItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) UpdateTier(ctx context.Context, id string, tier catalog.Tier, status entities.TierStatus) (entities.User, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #tier = :tier, #tier_status = :tier_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":tier":        &types.AttributeValueMemberS{Value: string(tier)},
			":tier_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#tier":        "tier",
			"#tier_status": "tier_status",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *UserDynamoRepository) IncrementEstimatesUsed(ctx context.Context, id string) (entities.User, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #used = if_not_exists(#used, :zero) + :one, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":zero":       &types.AttributeValueMemberN{Value: "0"},
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#used":       "estimates_used_this_month",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *UserDynamoRepository) ResetMonthlyUsage(ctx context.Context, id string, at time.Time) (entities.User, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #used = :zero, #last_reset = :last_reset, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":zero":       &types.AttributeValueMemberN{Value: "0"},
			":last_reset": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#used":       "estimates_used_this_month",
			"#last_reset": "last_estimate_reset",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *UserDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.User, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:                     u.ID,
		Email:                  u.Email,
		DisplayName:            u.DisplayName,
		Tier:                   string(u.Tier),
		TierStatus:             string(u.TierStatus),
		EstimatesUsedThisMonth: u.EstimatesUsedThisMonth,
		LastEstimateReset:      u.LastEstimateReset.UTC().Format(time.RFC3339Nano),
		CreatedAt:              u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	lastReset, _ := time.Parse(time.RFC3339Nano, it.LastEstimateReset)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.User{
		ID:                     it.ID,
		Email:                  it.Email,
		DisplayName:            it.DisplayName,
		Tier:                   catalog.Tier(it.Tier),
		TierStatus:             entities.TierStatus(it.TierStatus),
		EstimatesUsedThisMonth: it.EstimatesUsedThisMonth,
		LastEstimateReset:      lastReset,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}
