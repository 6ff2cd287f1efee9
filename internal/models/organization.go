package models

import (
	"time"
)

type Organization struct {
	ID           uint      `gorm:"column:org_id;primaryKey" json:"org_id"`
	Name         string    `gorm:"column:org_name;not null" json:"org_name"`
	ContactEmail string    `gorm:"column:contact_email;not null" json:"contact_email"`
	ContactPhone string    `gorm:"column:contact_phone" json:"contact_phone"`
	Events       []Event   `gorm:"foreignKey:OrganizationID" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
