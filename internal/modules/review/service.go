package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"testiflow/internal/domain"
	"testiflow/internal/modules/space"
)

type Service struct {
	reviews ReviewRepositoryInterface
	spaces  SpaceReader
	gate    OwnershipGate
}

func NewService(reviews ReviewRepositoryInterface, spaces SpaceReader, gate OwnershipGate) *Service {
	return &Service{reviews: reviews, spaces: spaces, gate: gate}
}

// Submit records an anonymous testimonial against the space behind slug.
// It returns the space so the handler can answer with the redirect URL;
// nothing is persisted when the slug resolves to no space.
func (s *Service) Submit(ctx context.Context, slug string, req SubmitReviewRequest) (*domain.Space, error) {
	sp, err := s.spaces.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		SpaceID:     sp.ID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Rating:      req.Rating,
		Text:        req.Text,
		Liked:       false,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return sp, nil
}

// ListForSpace returns every review of an owned space, liked or not.
func (s *Service) ListForSpace(ctx context.Context, spaceID int64, ownerEmail string) ([]domain.Review, error) {
	if _, err := s.gate.GetForOwner(ctx, spaceID, ownerEmail); err != nil {
		if errors.Is(err, space.ErrNotFound) || errors.Is(err, space.ErrOwnerNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return s.reviews.ListBySpace(ctx, spaceID)
}

// ToggleLike flips the curation flag. The review is loaded first, so a
// gate miss here means the space exists but belongs to someone else.
func (s *Service) ToggleLike(ctx context.Context, reviewID int64, ownerEmail string) (*domain.Review, error) {
	rv, err := s.loadOwned(ctx, reviewID, ownerEmail)
	if err != nil {
		return nil, err
	}

	rv.Liked = !rv.Liked
	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Delete removes a single review from an owned space.
func (s *Service) Delete(ctx context.Context, reviewID int64, ownerEmail string) error {
	rv, err := s.loadOwned(ctx, reviewID, ownerEmail)
	if err != nil {
		return err
	}
	return s.reviews.Delete(ctx, rv.ID)
}

// ListLikedForEmbed is the public wall-of-love feed: liked reviews only,
// no authentication.
func (s *Service) ListLikedForEmbed(ctx context.Context, spaceID int64) ([]domain.Review, error) {
	if _, err := s.spaces.GetByID(ctx, spaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return s.reviews.ListLikedBySpace(ctx, spaceID)
}

func (s *Service) loadOwned(ctx context.Context, reviewID int64, ownerEmail string) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if _, err := s.gate.GetForOwner(ctx, rv.SpaceID, ownerEmail); err != nil {
		if errors.Is(err, space.ErrNotFound) || errors.Is(err, space.ErrOwnerNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return rv, nil
}
