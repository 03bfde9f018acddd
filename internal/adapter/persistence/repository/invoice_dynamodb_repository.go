package repository

import (
	"context"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	invoiceProjectIDIndex    = "project_id-index"
	invoiceContactEmailIndex = "contact_email-index"
)

type invoiceItem struct {
	ID               string `dynamodbav:"id"`
	ProjectID        string `dynamodbav:"project_id"`
	Type             string `dynamodbav:"type"`
	Amount           string `dynamodbav:"amount"`
	Status           string `dynamodbav:"status"`
	ContactEmail     string `dynamodbav:"contact_email"`
	DueDate          string `dynamodbav:"due_date,omitempty"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	PaymentAttemptID string `dynamodbav:"payment_attempt_id,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// InvoiceTables names every table the settlement transaction touches.
type InvoiceTables struct {
	Invoices        string
	Projects        string
	PaymentAttempts string
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB and owns the
// settlement transaction.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//   - GSI: contact_email-index (PK: contact_email)

type InvoiceDynamoRepository struct {
	ddb    *dynamodb.Client
	tables InvoiceTables
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tables InvoiceTables) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{ddb: ddb, tables: tables}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Invoices),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Invoices),
		IndexName:              aws.String(invoiceProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func (r *InvoiceDynamoRepository) ListUnpaidByEmail(ctx context.Context, email string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Invoices),
		IndexName:              aws.String(invoiceContactEmailIndex),
		KeyConditionExpression: aws.String("contact_email = :email"),
		FilterExpression:       aws.String("#status <> :paid"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
			":paid":  &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

// ApplyPayment is the settlement transaction: mark the invoice paid, flip the
// owning project's paid flag, mark the attempt succeeded, and (when settling
// a deposit) create the balance invoice, all or nothing. The invoice
// condition (status=pending) is what makes webhook application exactly-once:
// only one delivery can ever pass it.
func (r *InvoiceDynamoRepository) ApplyPayment(ctx context.Context, params interfaces.ApplyPaymentParams) (bool, error) {
	projectFlag := "deposit_paid"
	if params.InvoiceType == entities.InvoiceTypeBalance {
		projectFlag = "balance_paid"
	}
	paidAt := formatTime(params.PaidAt)

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tables.Invoices),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: params.InvoiceID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
				UpdateExpression:    aws.String("SET #status = :paid, #paid_at = :paid_at, #attempt_id = :attempt_id"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#paid_at":    "paid_at",
					"#attempt_id": "payment_attempt_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pending":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPending)},
					":paid":       &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
					":paid_at":    &types.AttributeValueMemberS{Value: paidAt},
					":attempt_id": &types.AttributeValueMemberS{Value: params.PaymentAttemptID},
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.tables.Projects),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: params.ProjectID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #flag = :true, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#flag":       projectFlag,
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":true":       &types.AttributeValueMemberBOOL{Value: true},
					":updated_at": &types.AttributeValueMemberS{Value: paidAt},
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.tables.PaymentAttempts),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: params.PaymentAttemptID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #status = :succeeded, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":succeeded":  &types.AttributeValueMemberS{Value: string(entities.PaymentAttemptStatusSucceeded)},
					":updated_at": &types.AttributeValueMemberS{Value: paidAt},
				},
			},
		},
	}

	if params.BalanceInvoice != nil {
		balanceAV, err := attributevalue.MarshalMap(toInvoiceItem(*params.BalanceInvoice))
		if err != nil {
			return false, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.tables.Invoices),
				Item:                     balanceAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func unmarshalInvoices(raw []map[string]types.AttributeValue) ([]entities.Invoice, error) {
	items := make([]entities.Invoice, 0, len(raw))
	for _, m := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func toInvoiceItem(i entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:               i.ID,
		ProjectID:        i.ProjectID,
		Type:             string(i.Type),
		Amount:           formatDecimal(i.Amount),
		Status:           string(i.Status),
		ContactEmail:     i.ContactEmail,
		DueDate:          formatTime(i.DueDate),
		PaymentAttemptID: i.PaymentAttemptID,
		CreatedAt:        formatTime(i.CreatedAt),
	}
	if i.PaidAt != nil {
		it.PaidAt = formatTime(*i.PaidAt)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		Type:             entities.InvoiceType(it.Type),
		Amount:           parseDecimal(it.Amount),
		Status:           entities.InvoiceStatus(it.Status),
		ContactEmail:     it.ContactEmail,
		DueDate:          parseTime(it.DueDate),
		PaymentAttemptID: it.PaymentAttemptID,
		CreatedAt:        parseTime(it.CreatedAt),
	}
	if it.PaidAt != "" {
		t := parseTime(it.PaidAt)
		inv.PaidAt = &t
	}
	return inv
}
