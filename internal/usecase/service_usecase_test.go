package usecase

import (
	"context"
	"errors"
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
	mock_interfaces "advancedtech_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("invalid title", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Service{Title: "  ", Amount: 10000})
		if !errors.Is(err, ErrInvalidServiceTitle) {
			t.Fatalf("expected ErrInvalidServiceTitle, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Service{Title: "Tune up"})
		if !errors.Is(err, ErrInvalidServiceAmount) {
			t.Fatalf("expected ErrInvalidServiceAmount, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" {
					t.Fatalf("expected generated id")
				}
				if s.Title != "Tune up" || s.Amount != 150000 {
					t.Fatalf("unexpected service: %+v", s)
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Service{Title: " Tune up ", Category: "Engine", Amount: 150000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Service{}, nil)

		_, err := uc.Update(context.Background(), "id-1", entities.Service{Title: "Tune up", Amount: 10000})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success keeps identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Service{ID: "id-1", Title: "Old"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID != "id-1" || s.Title != "Tune up" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		res, err := uc.Update(context.Background(), " id-1 ", entities.Service{Title: "Tune up", Amount: 10000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "id-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestServiceUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Service{ID: "id-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)

		if err := uc.Delete(context.Background(), "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
