package models

import (
	"time"
)

type Event struct {
	ID                uint      `gorm:"column:event_id;primaryKey" json:"event_id"`
	Name              string    `gorm:"column:event_name;not null" json:"event_name"`
	Description       string    `gorm:"not null" json:"description"`
	Purpose           string    `gorm:"not null" json:"purpose"`
	EventDate         time.Time `gorm:"column:event_date;not null;index" json:"event_date"`
	Location          string    `gorm:"not null" json:"location"`
	TicketPrice       float64   `gorm:"column:ticket_price;type:numeric(10,2);not null;default:0" json:"ticket_price"`
	TicketDescription string    `gorm:"column:ticket_description" json:"ticket_description"`
	ImageURL          string    `gorm:"column:image_url" json:"image_url"`
	IsActive          bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	OrganizationID    uint      `gorm:"column:org_id;not null" json:"org_id"`
	CategoryID        uint      `gorm:"column:category_id;not null" json:"category_id"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Category     Category     `gorm:"foreignKey:CategoryID" json:"-"`
}

// EventSummary is the joined row shape returned by the home feed and search:
// the event columns plus the organization and category names.
type EventSummary struct {
	Event
	OrgName      string `gorm:"column:org_name" json:"org_name"`
	CategoryName string `gorm:"column:category_name" json:"category_name"`
}

// EventDetail extends EventSummary with the organization contact fields and
// the category description, matching the detail lookup's column set.
type EventDetail struct {
	EventSummary
	ContactEmail        string `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone        string `gorm:"column:contact_phone" json:"contact_phone"`
	CategoryDescription string `gorm:"column:category_description" json:"category_description"`
}
