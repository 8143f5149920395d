package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"promptdesk/internal/models"
)

// StoreRepository is the flat string-keyed store every durable record lives
// in. Values are opaque strings; the services that own each key define its
// encoding.
type StoreRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.StoreEntry
	if err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("getting store key %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (r *storeRepository) Set(ctx context.Context, key, value string) error {
	entry := models.StoreEntry{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("setting store key %q: %w", key, err)
	}
	return nil
}

func (r *storeRepository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Delete(&models.StoreEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("deleting store key %q: %w", key, err)
	}
	return nil
}
