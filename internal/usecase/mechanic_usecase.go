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
	ErrMechanicNotFound    = errors.New("mechanic not found")
	ErrInvalidMechanicID   = errors.New("invalid mechanic id")
	ErrInvalidMechanicName = errors.New("invalid mechanic name")
)

// IMechanicUseCase exposes CRUD for the shop's technicians.

type IMechanicUseCase interface {
	Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error)
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	List(ctx context.Context) ([]entities.Mechanic, error)
	Update(ctx context.Context, id string, m entities.Mechanic) (entities.Mechanic, error)
	Delete(ctx context.Context, id string) error
}

type MechanicUseCase struct {
	repo interfaces.IMechanicRepository
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

func NewMechanicUseCase(repo interfaces.IMechanicRepository) *MechanicUseCase {
	return &MechanicUseCase{repo: repo}
}

func (u *MechanicUseCase) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Mechanic{}, ErrInvalidMechanicName
	}

	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	return u.repo.Create(ctx, m)
}

func (u *MechanicUseCase) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if m.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return m, nil
}

func (u *MechanicUseCase) List(ctx context.Context) ([]entities.Mechanic, error) {
	return u.repo.List(ctx)
}

func (u *MechanicUseCase) Update(ctx context.Context, id string, m entities.Mechanic) (entities.Mechanic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mechanic{}, ErrInvalidMechanicID
	}
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Mechanic{}, ErrInvalidMechanicName
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if existing.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}

	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Mechanic{}, err
	}
	if updated.ID == "" {
		return entities.Mechanic{}, ErrMechanicNotFound
	}
	return updated, nil
}

func (u *MechanicUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMechanicID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrMechanicNotFound
	}
	return u.repo.Delete(ctx, id)
}
