package repository

import (
	"context"

	"testiflow/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).First(&rv, id).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) ListBySpace(ctx context.Context, spaceID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListLikedBySpace(ctx context.Context, spaceID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("space_id = ? AND liked = ?", spaceID, true).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error
}

// DeleteBySpace removes all reviews of a space when the space itself
// is deleted.
func (r *ReviewRepository) DeleteBySpace(ctx context.Context, spaceID int64) error {
	return r.db.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Delete(&domain.Review{}).Error
}
