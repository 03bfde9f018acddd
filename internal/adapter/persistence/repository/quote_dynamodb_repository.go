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
	"github.com/shopspring/decimal"
)

type quoteContactItem struct {
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Phone   string `dynamodbav:"phone,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
}

type quoteItem struct {
	ID          string           `dynamodbav:"id"`
	Contact     quoteContactItem `dynamodbav:"contact"`
	ServiceType string           `dynamodbav:"service_type"`
	Description string           `dynamodbav:"description,omitempty"`
	Status      string           `dynamodbav:"status"`
	Amount      string           `dynamodbav:"amount,omitempty"`
	AmountSet   bool             `dynamodbav:"amount_set"`
	ValidUntil  string           `dynamodbav:"valid_until,omitempty"`
	ProjectID   string           `dynamodbav:"project_id,omitempty"`
	CreatedAt   string           `dynamodbav:"created_at"`
	UpdatedAt   string           `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status preconditions are enforced with condition expressions; a failed
// condition reads back as the zero Quote so the usecase can map it to an
// invalid-transition error.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdatePricing(ctx context.Context, id string, amount decimal.Decimal, validUntil time.Time) (entities.Quote, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:pending, :quoted)"),
		UpdateExpression:    aws.String("SET #status = :quoted, #amount = :amount, #amount_set = :true, #valid_until = :valid_until, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#amount":      "amount",
			"#amount_set":  "amount_set",
			"#valid_until": "valid_until",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
			":quoted":      &types.AttributeValueMemberS{Value: string(entities.QuoteStatusQuoted)},
			":amount":      &types.AttributeValueMemberS{Value: formatDecimal(amount)},
			":true":        &types.AttributeValueMemberBOOL{Value: true},
			":valid_until": &types.AttributeValueMemberS{Value: formatTime(validUntil)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.QuoteStatus, to entities.QuoteStatus) (entities.Quote, error) {
	condition := "attribute_exists(#id) AND #status IN ("
	values := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	for i, s := range from {
		placeholder := ":from" + string(rune('a'+i))
		if i > 0 {
			condition += ", "
		}
		condition += placeholder
		values[placeholder] = &types.AttributeValueMemberS{Value: string(s)}
	}
	condition += ")"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String(condition),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID: q.ID,
		Contact: quoteContactItem{
			Name:    q.Contact.Name,
			Email:   q.Contact.Email,
			Phone:   q.Contact.Phone,
			Address: q.Contact.Address,
		},
		ServiceType: q.ServiceType,
		Description: q.Description,
		Status:      string(q.Status),
		AmountSet:   q.AmountSet,
		ValidUntil:  formatTime(q.ValidUntil),
		ProjectID:   q.ProjectID,
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}
	if q.AmountSet {
		it.Amount = formatDecimal(q.Amount)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID: it.ID,
		Contact: entities.ContactSnapshot{
			Name:    it.Contact.Name,
			Email:   it.Contact.Email,
			Phone:   it.Contact.Phone,
			Address: it.Contact.Address,
		},
		ServiceType: it.ServiceType,
		Description: it.Description,
		Status:      entities.QuoteStatus(it.Status),
		Amount:      parseDecimal(it.Amount),
		AmountSet:   it.AmountSet,
		ValidUntil:  parseTime(it.ValidUntil),
		ProjectID:   it.ProjectID,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
