package review

import (
	"context"

	"testiflow/internal/domain"
)

// ReviewRepositoryInterface — only the methods the review service uses
type ReviewRepositoryInterface interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListBySpace(ctx context.Context, spaceID int64) ([]domain.Review, error)
	ListLikedBySpace(ctx context.Context, spaceID int64) ([]domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

// SpaceReader resolves spaces on the public paths (submission by slug,
// embed feed by id) without any owner scoping.
type SpaceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Space, error)
}

// OwnershipGate re-derives the Review -> Space -> User chain for every
// owner-scoped call. Implemented by the space service; a scope miss
// surfaces as that module's not-found error.
type OwnershipGate interface {
	GetForOwner(ctx context.Context, spaceID int64, ownerEmail string) (*domain.Space, error)
}
