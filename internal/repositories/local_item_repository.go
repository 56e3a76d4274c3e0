package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"authfront/internal/models"
)

type LocalItemRepository interface {
	// Get returns nil, nil when the key is absent.
	Get(ctx context.Context, key string) (*models.LocalItem, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type localItemRepository struct {
	db *gorm.DB
}

func NewLocalItemRepository(db *gorm.DB) LocalItemRepository {
	return &localItemRepository{db: db}
}

func (r *localItemRepository) Get(ctx context.Context, key string) (*models.LocalItem, error) {
	var item models.LocalItem
	if err := r.db.WithContext(ctx).First(&item, "item_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *localItemRepository) Set(ctx context.Context, key, value string) error {
	item := &models.LocalItem{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(item).Error
}

func (r *localItemRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&models.LocalItem{}, "item_key = ?", key).Error
}
