package repository

import (
	"context"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const attemptSessionIDIndex = "gateway_session_id-index"

type paymentAttemptItem struct {
	ID               string `dynamodbav:"id"`
	InvoiceID        string `dynamodbav:"invoice_id"`
	GatewaySessionID string `dynamodbav:"gateway_session_id"`
	AmountCharged    string `dynamodbav:"amount_charged"`
	Status           string `dynamodbav:"status"`
	IdempotencyKey   string `dynamodbav:"idempotency_key"`
	PayerEmail       string `dynamodbav:"payer_email,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PaymentAttemptDynamoRepository persists PaymentAttempt entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: gateway_session_id-index (PK: gateway_session_id)
//   - GSI: invoice_id-index (PK: invoice_id)

type PaymentAttemptDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	invoicesTable string
}

var _ interfaces.IPaymentAttemptRepository = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb *dynamodb.Client, tableName, invoicesTable string) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{ddb: ddb, tableName: tableName, invoicesTable: invoicesTable}
}

// CreateForPayableInvoice writes the attempt together with a condition check
// on the invoice row: the invoice must still be unpaid at commit time. That
// makes session creation linearizable with a concurrent settlement: one of
// the two transactions loses on the invoice row.
func (r *PaymentAttemptDynamoRepository) CreateForPayableInvoice(ctx context.Context, a entities.PaymentAttempt) (bool, error) {
	av, err := attributevalue.MarshalMap(toPaymentAttemptItem(a))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				ConditionCheck: &types.ConditionCheck{
					TableName: aws.String(r.invoicesTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.InvoiceID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending": &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPending)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PaymentAttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func (r *PaymentAttemptDynamoRepository) GetByGatewaySessionID(ctx context.Context, sessionID string) (entities.PaymentAttempt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(attemptSessionIDIndex),
		KeyConditionExpression: aws.String("gateway_session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

// MarkStatus conditionally moves an attempt out of created. A condition
// failure means the attempt already reached a terminal status; that is not
// an error, just a lost race the caller may treat as a duplicate.
func (r *PaymentAttemptDynamoRepository) MarkStatus(ctx context.Context, id string, status entities.PaymentAttemptStatus) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :created"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":created":    &types.AttributeValueMemberS{Value: string(entities.PaymentAttemptStatusCreated)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentAttemptItem(a entities.PaymentAttempt) paymentAttemptItem {
	return paymentAttemptItem{
		ID:               a.ID,
		InvoiceID:        a.InvoiceID,
		GatewaySessionID: a.GatewaySessionID,
		AmountCharged:    formatDecimal(a.AmountCharged),
		Status:           string(a.Status),
		IdempotencyKey:   a.IdempotencyKey,
		PayerEmail:       a.PayerEmail,
		CreatedAt:        formatTime(a.CreatedAt),
		UpdatedAt:        formatTime(a.UpdatedAt),
	}
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttempt {
	return entities.PaymentAttempt{
		ID:               it.ID,
		InvoiceID:        it.InvoiceID,
		GatewaySessionID: it.GatewaySessionID,
		AmountCharged:    parseDecimal(it.AmountCharged),
		Status:           entities.PaymentAttemptStatus(it.Status),
		IdempotencyKey:   it.IdempotencyKey,
		PayerEmail:       it.PayerEmail,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
