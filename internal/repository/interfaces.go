package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type EditionRepo interface {
	Create(ctx context.Context, e *domain.Edition) error
	GetByID(ctx context.Context, id string) (*domain.Edition, error)
	List(ctx context.Context) ([]*domain.Edition, error)
	Update(ctx context.Context, e *domain.Edition) error
	Delete(ctx context.Context, id string) error
}

type PlaceRepo interface {
	// ReplaceAll stores places as the edition's library in the given order,
	// discarding any previous library.
	ReplaceAll(ctx context.Context, editionID string, places []domain.ScoredPlace) error
	ListByEdition(ctx context.Context, editionID string) ([]domain.ScoredPlace, error)
	Get(ctx context.Context, editionID, placeID string) (*domain.ScoredPlace, error)
	Update(ctx context.Context, p *domain.ScoredPlace) error
}

type AssignmentRepo interface {
	ReplaceAll(ctx context.Context, editionID string, rows []domain.WeekAssignment) error
	ListByEdition(ctx context.Context, editionID string) ([]domain.WeekAssignment, error)
	AddAttempts(ctx context.Context, attempts []domain.PlanAttempt) error
	ListAttempts(ctx context.Context, editionID string) ([]domain.PlanAttempt, error)
}
