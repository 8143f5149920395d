package services

import (
	"promptdesk/internal/models"
	"promptdesk/internal/repositories"

	"gorm.io/gorm"
)

// DbServices aggregates the services backed by the key-value store.
type DbServices struct {
	Settings SettingsService
	Training TrainingService
}

// NewDbServices constructs the service container over the store repository
// backed by db.
func NewDbServices(db *gorm.DB) *DbServices {
	store := repositories.NewStoreRepository(db)

	return &DbServices{
		Settings: NewSettingsService(store, models.DefaultSettings),
		Training: NewTrainingService(store),
	}
}
