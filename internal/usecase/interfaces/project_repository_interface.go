package interfaces

import (
	"context"

	"greenscape/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB reads for Project.
//
// Projects are only ever written inside the acceptance and payment
// transactions (token repository / invoice repository); every other
// component reads.

type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Project, error)
}
