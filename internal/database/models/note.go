package models

import (
	"time"
)

// Note is a free-text entry that always belongs to one category.
type Note struct {
	ID         uint   `gorm:"primaryKey"`
	Text       string `gorm:"type:text;not null"`
	CategoryID uint   `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category Category `gorm:"foreignKey:CategoryID"`
}
