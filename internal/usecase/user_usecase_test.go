package usecase

import (
	"context"
	"errors"
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
	mock_interfaces "advancedtech_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Create(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), entities.User{Name: "Ana", Email: "not-an-email"})
		if !errors.Is(err, ErrInvalidUserEmail) {
			t.Fatalf("expected ErrInvalidUserEmail, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), entities.User{Email: "ana@example.com", Status: "archived"})
		if !errors.Is(err, ErrInvalidUserStatus) {
			t.Fatalf("expected ErrInvalidUserStatus, got %v", err)
		}
	})

	t.Run("one account per email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), entities.User{Name: "Ana", Email: "Ana@Example.com"})
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("success normalizes email and defaults status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "ana@example.com" {
					t.Fatalf("expected normalized email, got %q", u.Email)
				}
				if u.Status != entities.UserStatusActive {
					t.Fatalf("expected active status, got %s", u.Status)
				}
				if u.ID == "" || u.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps: %+v", u)
				}
				return u, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.User{Name: "Ana", Email: " Ana@Example.com "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestUserUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.User{}, nil)

		_, err := uc.Update(context.Background(), "id-1", entities.User{Email: "ana@example.com"})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("empty status keeps existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.User{ID: "id-1", Status: entities.UserStatusInactive}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Status != entities.UserStatusInactive {
					t.Fatalf("expected carried-over status, got %s", u.Status)
				}
				return u, nil
			},
		)

		_, err := uc.Update(context.Background(), "id-1", entities.User{Name: "Ana", Email: "ana@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.User{ID: "id-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)

	if err := uc.Delete(context.Background(), "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
