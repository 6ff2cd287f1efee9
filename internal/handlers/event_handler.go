package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/weiyuc/charityevents/internal/helpers"
	"github.com/weiyuc/charityevents/internal/models"
	"github.com/weiyuc/charityevents/internal/query"
	"github.com/weiyuc/charityevents/internal/repository"
	"go.uber.org/zap"
)

// EventStore is the read surface the handlers need from the data layer.
type EventStore interface {
	UpcomingEvents(ctx context.Context, from time.Time) ([]models.EventSummary, error)
	AllCategories(ctx context.Context) ([]models.Category, error)
	SearchEvents(ctx context.Context, f query.Filters) ([]models.EventSummary, error)
	EventByID(ctx context.Context, id int) (models.EventDetail, error)
}

type EventHandler struct {
	store  EventStore
	logger *zap.Logger
}

func NewEventHandler(store EventStore, logger *zap.Logger) *EventHandler {
	return &EventHandler{store: store, logger: logger}
}

// Home returns upcoming active events together with the full category list.
func (h *EventHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.store.UpcomingEvents(ctx, time.Now())
	if err != nil {
		h.logger.Error("failed to load upcoming events", zap.Error(err))
		helpers.RespondWithInternalError(c, "Unable to load home data.", err)
		return
	}

	categories, err := h.store.AllCategories(ctx)
	if err != nil {
		h.logger.Error("failed to load categories", zap.Error(err))
		helpers.RespondWithInternalError(c, "Unable to load home data.", err)
		return
	}

	if events == nil {
		events = []models.EventSummary{}
	}
	if categories == nil {
		categories = []models.Category{}
	}

	helpers.RespondWithData(c, http.StatusOK, gin.H{
		"upcomingEvents": events,
		"allCategories":  categories,
	})
}

// Search filters active events by optional date, location and category.
func (h *EventHandler) Search(c *gin.Context) {
	filters := query.Filters{
		Date:     c.Query("date"),
		Location: c.Query("location"),
	}

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := helpers.StringToInt(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid category id.")
			return
		}
		filters.CategoryID = &categoryID
	}

	events, err := h.store.SearchEvents(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("event search failed", zap.Error(err))
		helpers.RespondWithInternalError(c, "Unable to search events.", err)
		return
	}

	if len(events) == 0 {
		helpers.RespondWithMessage(c, http.StatusOK, "No events matched the given filters.", gin.H{
			"matchedEvents": []models.EventSummary{},
		})
		return
	}

	helpers.RespondWithData(c, http.StatusOK, gin.H{
		"matchedEvents": events,
	})
}

// Detail returns a single active event by id. Missing, inactive and
// non-numeric ids all produce the same not-found envelope.
func (h *EventHandler) Detail(c *gin.Context) {
	eventID, err := helpers.StringToInt(c.Param("eventId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found. It may have been suspended or removed.")
		return
	}

	details, err := h.store.EventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found. It may have been suspended or removed.")
			return
		}
		h.logger.Error("failed to load event details", zap.Int("event_id", eventID), zap.Error(err))
		helpers.RespondWithInternalError(c, "Unable to load event details.", err)
		return
	}

	helpers.RespondWithData(c, http.StatusOK, gin.H{
		"eventDetails": details,
	})
}
