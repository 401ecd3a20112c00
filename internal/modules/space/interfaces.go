package space

import (
	"context"

	"testiflow/internal/domain"
)

// UserReader resolves the caller's email to an owner record.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SpaceRepositoryInterface — only the methods the space service uses
type SpaceRepositoryInterface interface {
	Create(ctx context.Context, sp *domain.Space) error
	GetByIDAndUserID(ctx context.Context, id, userID int64) (*domain.Space, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Space, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, sp *domain.Space) error
	Delete(ctx context.Context, id int64) error
}

// ReviewRemover lets space deletion cascade to the reviews that
// reference the space.
type ReviewRemover interface {
	DeleteBySpace(ctx context.Context, spaceID int64) error
}
