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

type tokenItem struct {
	ID        string `dynamodbav:"id"`
	QuoteID   string `dynamodbav:"quote_id"`
	Consumed  bool   `dynamodbav:"consumed"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TokenTables names every table the acceptance transaction touches.
type TokenTables struct {
	Tokens   string
	Quotes   string
	Projects string
	Invoices string
}

// TokenDynamoRepository persists AcceptanceToken entities in DynamoDB and
// owns the acceptance transaction.
//
// Table requirements:
//   - PK: id (string), the opaque token value
//   - GSI: quote_id-index (PK: quote_id)

type TokenDynamoRepository struct {
	ddb    *dynamodb.Client
	tables TokenTables
}

var _ interfaces.IAcceptanceTokenRepository = (*TokenDynamoRepository)(nil)

func NewTokenDynamoRepository(ddb *dynamodb.Client, tables TokenTables) *TokenDynamoRepository {
	return &TokenDynamoRepository{ddb: ddb, tables: tables}
}

func (r *TokenDynamoRepository) Create(ctx context.Context, t entities.AcceptanceToken) (entities.AcceptanceToken, error) {
	av, err := attributevalue.MarshalMap(tokenItem{
		ID:        t.ID,
		QuoteID:   t.QuoteID,
		Consumed:  t.Consumed,
		ExpiresAt: formatTime(t.ExpiresAt),
		CreatedAt: formatTime(t.CreatedAt),
	})
	if err != nil {
		return entities.AcceptanceToken{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tables.Tokens),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.AcceptanceToken{}, err
	}
	return t, nil
}

func (r *TokenDynamoRepository) GetByID(ctx context.Context, id string) (entities.AcceptanceToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Tokens),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AcceptanceToken{}, err
	}
	if len(out.Item) == 0 {
		return entities.AcceptanceToken{}, nil
	}

	var it tokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AcceptanceToken{}, err
	}
	return entities.AcceptanceToken{
		ID:        it.ID,
		QuoteID:   it.QuoteID,
		Consumed:  it.Consumed,
		ExpiresAt: parseTime(it.ExpiresAt),
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

// ConsumeAndMaterialize is the acceptance transaction: flip the token, accept
// the quote, write the project and its deposit invoice, all or nothing.
// The token condition (consumed=false) and the quote conditions
// (status=quoted, no project yet) make double-submission and double
// materialization impossible at the storage layer, not just in handler code.
func (r *TokenDynamoRepository) ConsumeAndMaterialize(ctx context.Context, tokenID string, quoteID string, project entities.Project, deposit entities.Invoice) (bool, error) {
	projectAV, err := attributevalue.MarshalMap(toProjectItem(project))
	if err != nil {
		return false, err
	}
	invoiceAV, err := attributevalue.MarshalMap(toInvoiceItem(deposit))
	if err != nil {
		return false, err
	}
	now := formatTime(time.Now())

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tables.Tokens),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: tokenID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #consumed = :false"),
					UpdateExpression:    aws.String("SET #consumed = :true"),
					ExpressionAttributeNames: map[string]string{
						"#id":       "id",
						"#consumed": "consumed",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":false": &types.AttributeValueMemberBOOL{Value: false},
						":true":  &types.AttributeValueMemberBOOL{Value: true},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tables.Quotes),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: quoteID},
					},
					ConditionExpression: aws.String("#status = :quoted AND attribute_not_exists(#project_id)"),
					UpdateExpression:    aws.String("SET #status = :accepted, #project_id = :project_id, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#status":     "status",
						"#project_id": "project_id",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":quoted":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusQuoted)},
						":accepted":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
						":project_id": &types.AttributeValueMemberS{Value: project.ID},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.tables.Projects),
					Item:                     projectAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.tables.Invoices),
					Item:                     invoiceAV,
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
