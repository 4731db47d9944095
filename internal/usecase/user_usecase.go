package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidUserEmail  = errors.New("invalid user email")
	ErrInvalidUserStatus = errors.New("invalid user status")
)

// IUserUseCase exposes CRUD for back-office accounts. Credential handling
// stays with the external auth provider; only the profile lives here.

type IUserUseCase interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, id string, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, user entities.User) (entities.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return entities.User{}, ErrInvalidUserEmail
	}
	if user.Status == "" {
		user.Status = entities.UserStatusActive
	}
	if !validUserStatus(user.Status) {
		return entities.User{}, ErrInvalidUserStatus
	}

	// Enforce: 1 account per email.
	if existing, err := u.repo.GetByEmail(ctx, user.Email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) Update(ctx context.Context, id string, user entities.User) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return entities.User{}, ErrInvalidUserEmail
	}
	if user.Status != "" && !validUserStatus(user.Status) {
		return entities.User{}, ErrInvalidUserStatus
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID == "" {
		return entities.User{}, ErrUserNotFound
	}

	user.ID = existing.ID
	if user.Status == "" {
		user.Status = existing.Status
	}
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUserID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrUserNotFound
	}
	return u.repo.Delete(ctx, id)
}

func validUserStatus(s entities.UserStatus) bool {
	return s == entities.UserStatusActive || s == entities.UserStatusInactive
}
