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

const projectQuoteIDIndex = "quote_id-index"

type projectItem struct {
	ID            string           `dynamodbav:"id"`
	QuoteID       string           `dynamodbav:"quote_id"`
	Contact       quoteContactItem `dynamodbav:"contact"`
	ServiceType   string           `dynamodbav:"service_type"`
	Description   string           `dynamodbav:"description,omitempty"`
	TotalAmount   string           `dynamodbav:"total_amount"`
	DepositAmount string           `dynamodbav:"deposit_amount"`
	Status        string           `dynamodbav:"status"`
	ScheduledDate string           `dynamodbav:"scheduled_date,omitempty"`
	DepositPaid   bool             `dynamodbav:"deposit_paid"`
	BalancePaid   bool             `dynamodbav:"balance_paid"`
	CreatedAt     string           `dynamodbav:"created_at"`
	UpdatedAt     string           `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository reads Project entities from DynamoDB. Writes happen
// only inside the acceptance and settlement transactions owned by the token
// and invoice repositories.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Items) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:      p.ID,
		QuoteID: p.QuoteID,
		Contact: quoteContactItem{
			Name:    p.Contact.Name,
			Email:   p.Contact.Email,
			Phone:   p.Contact.Phone,
			Address: p.Contact.Address,
		},
		ServiceType:   p.ServiceType,
		Description:   p.Description,
		TotalAmount:   formatDecimal(p.TotalAmount),
		DepositAmount: formatDecimal(p.DepositAmount),
		Status:        string(p.Status),
		DepositPaid:   p.DepositPaid,
		BalancePaid:   p.BalancePaid,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
	if p.ScheduledDate != nil {
		it.ScheduledDate = formatTime(*p.ScheduledDate)
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	p := entities.Project{
		ID:      it.ID,
		QuoteID: it.QuoteID,
		Contact: entities.ContactSnapshot{
			Name:    it.Contact.Name,
			Email:   it.Contact.Email,
			Phone:   it.Contact.Phone,
			Address: it.Contact.Address,
		},
		ServiceType:   it.ServiceType,
		Description:   it.Description,
		TotalAmount:   parseDecimal(it.TotalAmount),
		DepositAmount: parseDecimal(it.DepositAmount),
		Status:        entities.ProjectStatus(it.Status),
		DepositPaid:   it.DepositPaid,
		BalancePaid:   it.BalancePaid,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.ScheduledDate != "" {
		t := parseTime(it.ScheduledDate)
		p.ScheduledDate = &t
	}
	return p
}
