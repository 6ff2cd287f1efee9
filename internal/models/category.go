package models

import (
	"time"
)

type Category struct {
	ID          uint      `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name        string    `gorm:"column:category_name;not null;uniqueIndex" json:"category_name"`
	Description string    `json:"description"`
	Events      []Event   `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
