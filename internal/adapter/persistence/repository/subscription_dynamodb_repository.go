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

const (
	defaultSubscriptionsTableName = "subscriptions"
	subscriptionsIntentIndex      = "payment_intent_id-index"
)

type subscriptionItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	Tier            string `dynamodbav:"tier"`
	PaymentIntentID string `dynamodbav:"payment_intent_id"`
	AmountCentavos  int64  `dynamodbav:"amount_centavos"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	PaidAt          string `dynamodbav:"paid_at,omitempty"`
}

// SubscriptionDynamoRepository persists Subscription purchases in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_intent_id-index (PK: payment_intent_id)

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	it := toSubscriptionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Subscription{}, err
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
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Subscription, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subscriptionsIntentIndex),
		KeyConditionExpression: aws.String("payment_intent_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentIntentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Items) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Subscription, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #paid_at = :paid_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(entities.SubscriptionStatusActive)},
			":paid_at": &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#status":  "status",
			"#paid_at": "paid_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Subscription{}, nil
		}
		return entities.Subscription{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Subscription{}, nil
	}
	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	it := subscriptionItem{
		ID:              s.ID,
		UserID:          s.UserID,
		Tier:            string(s.Tier),
		PaymentIntentID: s.PaymentIntentID,
		AmountCentavos:  s.AmountCentavos,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !s.PaidAt.IsZero() {
		it.PaidAt = s.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.Subscription{
		ID:              it.ID,
		UserID:          it.UserID,
		Tier:            catalog.Tier(it.Tier),
		PaymentIntentID: it.PaymentIntentID,
		AmountCentavos:  it.AmountCentavos,
		Status:          entities.SubscriptionStatus(it.Status),
		CreatedAt:       createdAt,
	}
	if it.PaidAt != "" {
		s.PaidAt, _ = time.Parse(time.RFC3339Nano, it.PaidAt)
	}
	return s
}
