package models

import (
	"time"
)

// Figure represents a single catalog entry. Its ID is the stable external
// product identifier from the source data (up to 36 characters, e.g. a GUID
// or a code like LF-0001) and never changes once the row exists.
type Figure struct {
	ID            string   `gorm:"primaryKey;size:36"`
	Name          string   `gorm:"size:80;not null;index"`
	CategoryID    uint     `gorm:"not null"`
	Category      Category `gorm:"foreignKey:CategoryID"`
	Description   string   `gorm:"not null"`
	ImageFileName string   `gorm:"size:64;not null"`
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

func (f *Figure) TableName() string {
	return "figures"
}
