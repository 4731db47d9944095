package usecase

import (
	"context"
	"errors"
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
	mock_interfaces "advancedtech_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_GetSummary(t *testing.T) {
	t.Run("job orders error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobOrders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewDashboardUseCase(jobOrders, mechanics)

		jobOrders.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.GetSummary(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("counts per status and sums completed revenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobOrders := mock_interfaces.NewMockIJobOrderRepository(ctrl)
		mechanics := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewDashboardUseCase(jobOrders, mechanics)

		jobOrders.EXPECT().List(gomock.Any()).Return([]entities.JobOrder{
			{ID: "JO-2026-001", Status: entities.JobOrderStatusPending, Total: 100000},
			{ID: "JO-2026-002", Status: entities.JobOrderStatusInProgress, Total: 200000},
			{ID: "JO-2026-003", Status: entities.JobOrderStatusCompleted, Total: 300000},
			{ID: "JO-2026-004", Status: entities.JobOrderStatusCompleted, Total: 100000},
		}, nil)
		mechanics.EXPECT().List(gomock.Any()).Return([]entities.Mechanic{{ID: "m-1"}, {ID: "m-2"}}, nil)

		s, err := uc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalJobOrders != 4 || s.PendingJobOrders != 1 || s.InProgressJobOrders != 1 || s.CompletedJobOrders != 2 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if s.CompletedRevenue != 400000 {
			t.Fatalf("CompletedRevenue = %d, want 400000", s.CompletedRevenue)
		}
		if s.Mechanics != 2 {
			t.Fatalf("Mechanics = %d, want 2", s.Mechanics)
		}
	})
}
