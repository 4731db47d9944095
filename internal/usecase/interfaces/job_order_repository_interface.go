package interfaces

import (
	"context"

	"advancedtech_backoffice/internal/domain/entities"
)

// IJobOrderRepository abstracts DynamoDB persistence for JobOrder.
//
// NextSequence issues the per-year counter backing JO-<year>-<sequence> ids;
// identity assignment belongs to the persistence side, not the domain.
// Lookups return a zero-valued order when nothing matches; use cases translate
// that into their not-found sentinel.

type IJobOrderRepository interface {
	Create(ctx context.Context, o entities.JobOrder) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	List(ctx context.Context) ([]entities.JobOrder, error)
	Update(ctx context.Context, o entities.JobOrder) (entities.JobOrder, error)
	Delete(ctx context.Context, id string) error
	NextSequence(ctx context.Context, year int) (int, error)
}
