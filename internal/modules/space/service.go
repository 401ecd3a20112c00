package space

import (
	"context"
	"errors"
	"strings"

	"testiflow/internal/domain"
	"testiflow/internal/pkg/slugid"

	"gorm.io/gorm"
)

// maxSlugRetries bounds how often Create re-probes after losing the
// slug race to a concurrent request with the same base name.
const maxSlugRetries = 3

type Service struct {
	spaces       SpaceRepositoryInterface
	users        UserReader
	reviews      ReviewRemover
	publicPrefix string
}

func NewService(spaces SpaceRepositoryInterface, users UserReader, reviews ReviewRemover, publicPrefix string) *Service {
	if publicPrefix == "" {
		publicPrefix = "/t/"
	}
	return &Service{
		spaces:       spaces,
		users:        users,
		reviews:      reviews,
		publicPrefix: publicPrefix,
	}
}

// Create allocates a globally unique slug for the new space. The probe
// is check-then-act, so the unique index on spaces.slug is what really
// guarantees uniqueness; on a lost race we probe again.
func (s *Service) Create(ctx context.Context, req UpsertSpaceRequest, ownerEmail string) (*domain.Space, error) {
	owner, err := s.resolveOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	base := slugid.Make(req.Name)
	for attempt := 0; attempt <= maxSlugRetries; attempt++ {
		slug, err := slugid.Allocate(base, func(candidate string) (bool, error) {
			return s.spaces.SlugExists(ctx, candidate)
		})
		if err != nil {
			return nil, err
		}

		sp := &domain.Space{
			UserID:      owner.ID,
			Name:        req.Name,
			Slug:        slug,
			PublicURL:   s.publicPrefix + slug,
			RedirectURL: req.RedirectURL,
		}

		err = s.spaces.Create(ctx, sp)
		if err == nil {
			return sp, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
	}
	return nil, ErrSlugExhausted
}

func (s *Service) ListForOwner(ctx context.Context, ownerEmail string) ([]domain.Space, error) {
	owner, err := s.resolveOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	return s.spaces.ListByUserID(ctx, owner.ID)
}

// GetForOwner returns the space only when both the id and the owner
// match; a missing space and someone else's space are both ErrNotFound
// so existence never leaks to non-owners.
func (s *Service) GetForOwner(ctx context.Context, spaceID int64, ownerEmail string) (*domain.Space, error) {
	owner, err := s.resolveOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	sp, err := s.spaces.GetByIDAndUserID(ctx, spaceID, owner.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sp, nil
}

// Update renames the space and changes its redirect URL. Slug and
// public URL are immutable once assigned.
func (s *Service) Update(ctx context.Context, spaceID int64, req UpsertSpaceRequest, ownerEmail string) (*domain.Space, error) {
	sp, err := s.GetForOwner(ctx, spaceID, ownerEmail)
	if err != nil {
		return nil, err
	}

	sp.Name = req.Name
	sp.RedirectURL = req.RedirectURL

	if err := s.spaces.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// Delete removes the space and cascades to its reviews.
func (s *Service) Delete(ctx context.Context, spaceID int64, ownerEmail string) error {
	sp, err := s.GetForOwner(ctx, spaceID, ownerEmail)
	if err != nil {
		return err
	}

	if err := s.reviews.DeleteBySpace(ctx, sp.ID); err != nil {
		return err
	}
	return s.spaces.Delete(ctx, sp.ID)
}

func (s *Service) resolveOwner(ctx context.Context, email string) (*domain.User, error) {
	owner, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return owner, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "23505") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
