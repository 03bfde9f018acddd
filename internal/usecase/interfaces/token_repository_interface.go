package interfaces

import (
	"context"

	"greenscape/internal/domain/entities"
)

// IAcceptanceTokenRepository abstracts DynamoDB persistence for
// AcceptanceToken, including the one transactional write that turns an
// accepted quote into a project.

type IAcceptanceTokenRepository interface {
	Create(ctx context.Context, t entities.AcceptanceToken) (entities.AcceptanceToken, error)
	GetByID(ctx context.Context, id string) (entities.AcceptanceToken, error)
	// ConsumeAndMaterialize atomically, in one transaction:
	//   - flips the token's consumed flag (condition: consumed=false)
	//   - moves the quote to accepted and stamps its project id
	//     (condition: status=quoted and no project id yet)
	//   - writes the project and the deposit invoice
	// ok=false when any condition failed (token already consumed, quote no
	// longer quoted, or a project already exists for the quote); nothing is
	// written in that case.
	ConsumeAndMaterialize(ctx context.Context, tokenID string, quoteID string, project entities.Project, deposit entities.Invoice) (ok bool, err error)
}
