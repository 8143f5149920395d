package models

import "time"

// StoreEntry is one row of the flat string-keyed store. Values are JSON- or
// primitive-string-encoded; the schema is owned by the services that read and
// write each key.
type StoreEntry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
