package models

import (
	"time"
)

// Category groups notes under a unique name.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Notes []Note `gorm:"foreignKey:CategoryID"`
}
