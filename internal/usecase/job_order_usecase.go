package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/domain/receipt"
	"advancedtech_backoffice/internal/domain/totals"
	"advancedtech_backoffice/internal/usecase/interfaces"
)

var (
	ErrJobOrderNotFound  = errors.New("job order not found")
	ErrInvalidJobOrderID = errors.New("invalid job order id")
	ErrInvalidCustomer   = errors.New("invalid customer name")
	ErrInvalidStatus     = errors.New("invalid job order status")
)

// IJobOrderUseCase exposes job order operations.
//
// Saving always recomputes totals from the line items before persisting, so a
// stored order can never carry stale totals. PreviewTotals keeps the explicit
// "calculate" action the editing screen offers, without touching storage.

type IJobOrderUseCase interface {
	Create(ctx context.Context, draft entities.JobOrderDraft) (entities.JobOrder, error)
	Update(ctx context.Context, id string, draft entities.JobOrderDraft) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	List(ctx context.Context) ([]entities.JobOrder, error)
	Delete(ctx context.Context, id string) error
	PreviewTotals(draft entities.JobOrderDraft) totals.Result
	ComposeReceipt(ctx context.Context, id string) (receipt.Document, error)
}

type JobOrderUseCase struct {
	repo     interfaces.IJobOrderRepository
	identity receipt.Identity
}

var _ IJobOrderUseCase = (*JobOrderUseCase)(nil)

func NewJobOrderUseCase(repo interfaces.IJobOrderRepository, identity receipt.Identity) *JobOrderUseCase {
	return &JobOrderUseCase{repo: repo, identity: identity}
}

func (u *JobOrderUseCase) Create(ctx context.Context, draft entities.JobOrderDraft) (entities.JobOrder, error) {
	draft.Customer = strings.TrimSpace(draft.Customer)
	if draft.Customer == "" {
		return entities.JobOrder{}, ErrInvalidCustomer
	}
	if draft.Status == "" {
		draft.Status = entities.JobOrderStatusPending
	}
	if !validStatus(draft.Status) {
		return entities.JobOrder{}, ErrInvalidStatus
	}

	now := time.Now().UTC()
	if draft.Date == "" {
		draft.Date = now.Format("2006-01-02")
	}

	seq, err := u.repo.NextSequence(ctx, now.Year())
	if err != nil {
		return entities.JobOrder{}, err
	}

	o := orderFromDraft(draft)
	o.ID = fmt.Sprintf("JO-%d-%03d", now.Year(), seq)
	o.CreatedAt = now
	o.UpdatedAt = now
	return u.repo.Create(ctx, totals.Apply(o))
}

func (u *JobOrderUseCase) Update(ctx context.Context, id string, draft entities.JobOrderDraft) (entities.JobOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobOrder{}, ErrInvalidJobOrderID
	}
	draft.Customer = strings.TrimSpace(draft.Customer)
	if draft.Customer == "" {
		return entities.JobOrder{}, ErrInvalidCustomer
	}
	if draft.Status != "" && !validStatus(draft.Status) {
		return entities.JobOrder{}, ErrInvalidStatus
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if existing.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}

	o := orderFromDraft(draft)
	o.ID = existing.ID
	if o.Status == "" {
		o.Status = existing.Status
	}
	if o.Date == "" {
		o.Date = existing.Date
	}
	o.CreatedAt = existing.CreatedAt
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, totals.Apply(o))
	if err != nil {
		return entities.JobOrder{}, err
	}
	if updated.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}
	return updated, nil
}

func (u *JobOrderUseCase) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobOrder{}, ErrInvalidJobOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobOrder{}, err
	}
	if o.ID == "" {
		return entities.JobOrder{}, ErrJobOrderNotFound
	}
	return o, nil
}

func (u *JobOrderUseCase) List(ctx context.Context) ([]entities.JobOrder, error) {
	return u.repo.List(ctx)
}

func (u *JobOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobOrderID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrJobOrderNotFound
	}
	return u.repo.Delete(ctx, id)
}

// PreviewTotals recomputes totals for an unsaved draft. Pure passthrough to
// the totals engine; nothing is persisted.
func (u *JobOrderUseCase) PreviewTotals(draft entities.JobOrderDraft) totals.Result {
	return totals.ForDraft(draft)
}

func (u *JobOrderUseCase) ComposeReceipt(ctx context.Context, id string) (receipt.Document, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return receipt.Document{}, err
	}
	return receipt.Compose(o, u.identity), nil
}

func orderFromDraft(d entities.JobOrderDraft) entities.JobOrder {
	return entities.JobOrder{
		Customer:      d.Customer,
		Address:       d.Address,
		Make:          d.Make,
		Plate:         d.Plate,
		Phone:         d.Phone,
		Mechanic:      d.Mechanic,
		Status:        d.Status,
		Remarks:       d.Remarks,
		Date:          d.Date,
		WorkRequested: d.WorkRequested,
		OilsAndFuels:  d.OilsAndFuels,
		Parts:         d.Parts,
	}
}

func validStatus(s entities.JobOrderStatus) bool {
	switch s {
	case entities.JobOrderStatusPending, entities.JobOrderStatusInProgress, entities.JobOrderStatusCompleted:
		return true
	}
	return false
}
