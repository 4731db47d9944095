package usecase

import (
	"context"

	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/usecase/interfaces"
)

// DashboardSummary backs the landing page KPI cards: job order counts per
// status, billed revenue of completed orders, and mechanic headcount.
type DashboardSummary struct {
	TotalJobOrders      int               `json:"total_job_orders"`
	PendingJobOrders    int               `json:"pending_job_orders"`
	InProgressJobOrders int               `json:"in_progress_job_orders"`
	CompletedJobOrders  int               `json:"completed_job_orders"`
	Mechanics           int               `json:"mechanics"`
	CompletedRevenue    entities.Centavos `json:"completed_revenue"`
}

type IDashboardUseCase interface {
	GetSummary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	jobOrders interfaces.IJobOrderRepository
	mechanics interfaces.IMechanicRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(jobOrders interfaces.IJobOrderRepository, mechanics interfaces.IMechanicRepository) *DashboardUseCase {
	return &DashboardUseCase{jobOrders: jobOrders, mechanics: mechanics}
}

func (u *DashboardUseCase) GetSummary(ctx context.Context) (DashboardSummary, error) {
	orders, err := u.jobOrders.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	mechanics, err := u.mechanics.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	s := DashboardSummary{TotalJobOrders: len(orders), Mechanics: len(mechanics)}
	for _, o := range orders {
		switch o.Status {
		case entities.JobOrderStatusPending:
			s.PendingJobOrders++
		case entities.JobOrderStatusInProgress:
			s.InProgressJobOrders++
		case entities.JobOrderStatusCompleted:
			s.CompletedJobOrders++
			s.CompletedRevenue += o.Total
		}
	}
	return s, nil
}
