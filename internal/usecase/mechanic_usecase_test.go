package usecase

import (
	"context"
	"errors"
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
	mock_interfaces "advancedtech_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMechanicUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewMechanicUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Mechanic{Name: " "})
		if !errors.Is(err, ErrInvalidMechanicName) {
			t.Fatalf("expected ErrInvalidMechanicName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Mechanic{})).DoAndReturn(
			func(_ context.Context, m entities.Mechanic) (entities.Mechanic, error) {
				if m.ID == "" || m.Name != "R. Reyes" {
					t.Fatalf("unexpected mechanic: %+v", m)
				}
				return m, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Mechanic{Name: " R. Reyes "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestMechanicUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "m-404").Return(entities.Mechanic{}, nil)

		_, err := uc.GetByID(context.Background(), "m-404")
		if !errors.Is(err, ErrMechanicNotFound) {
			t.Fatalf("expected ErrMechanicNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMechanicRepository(ctrl)
		uc := NewMechanicUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Mechanic{ID: "m-1", Name: "R. Reyes"}, nil)

		res, err := uc.GetByID(context.Background(), " m-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "R. Reyes" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
