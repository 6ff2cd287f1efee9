package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/weiyuc/charityevents/internal/models"
	"github.com/weiyuc/charityevents/internal/query"
	"gorm.io/gorm"
)

// ErrEventNotFound marks a detail lookup that matched no active event. The
// same error covers missing and inactive ids; the read API does not
// distinguish them.
var ErrEventNotFound = errors.New("event not found")

// EventRepository runs the read queries against the shared connection pool
// owned by the gorm handle. Every method uses a single query, so no caller
// ever holds a connection across statements.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// UpcomingEvents returns active events scheduled at or after the given time,
// ascending by event date. An empty result is a valid, non-error outcome.
func (r *EventRepository) UpcomingEvents(ctx context.Context, from time.Time) ([]models.EventSummary, error) {
	stmt, args := query.Upcoming(from)
	var events []models.EventSummary
	if err := r.db.WithContext(ctx).Raw(stmt, args...).Scan(&events).Error; err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

// AllCategories returns every category ordered by name, regardless of whether
// any event references it.
func (r *EventRepository) AllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("category_name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// SearchEvents returns active events matching the provided filters, ascending
// by event date.
func (r *EventRepository) SearchEvents(ctx context.Context, f query.Filters) ([]models.EventSummary, error) {
	stmt, args := query.Search(f)
	var events []models.EventSummary
	if err := r.db.WithContext(ctx).Raw(stmt, args...).Scan(&events).Error; err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return events, nil
}

// EventByID returns the active event with the given id joined to its
// organization and category, or ErrEventNotFound.
func (r *EventRepository) EventByID(ctx context.Context, id int) (models.EventDetail, error) {
	stmt, args := query.Detail(id)
	var details []models.EventDetail
	if err := r.db.WithContext(ctx).Raw(stmt, args...).Scan(&details).Error; err != nil {
		return models.EventDetail{}, fmt.Errorf("get event %d: %w", id, err)
	}
	if len(details) == 0 {
		return models.EventDetail{}, ErrEventNotFound
	}
	return details[0], nil
}
