package repository

import (
	"context"

	"testiflow/internal/domain"

	"gorm.io/gorm"
)

type SpaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

// Create inserts a new space. The unique index on slug is the final
// arbiter of slug uniqueness under concurrent creation.
func (r *SpaceRepository) Create(ctx context.Context, sp *domain.Space) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *SpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	var sp domain.Space
	err := r.db.WithContext(ctx).First(&sp, id).Error
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *SpaceRepository) GetBySlug(ctx context.Context, slug string) (*domain.Space, error) {
	var sp domain.Space
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&sp).Error
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// GetByIDAndUserID scopes the lookup to the owner; a wrong owner and a
// missing id are indistinguishable to the caller.
func (r *SpaceRepository) GetByIDAndUserID(ctx context.Context, id, userID int64) (*domain.Space, error) {
	var sp domain.Space
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&sp).Error
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *SpaceRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Space, error) {
	var spaces []domain.Space
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&spaces).Error
	return spaces, err
}

func (r *SpaceRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Space{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SpaceRepository) Update(ctx context.Context, sp *domain.Space) error {
	return r.db.WithContext(ctx).Save(sp).Error
}

func (r *SpaceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Space{}, id).Error
}
