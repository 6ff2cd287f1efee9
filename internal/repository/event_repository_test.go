package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiyuc/charityevents/internal/models"
	"github.com/weiyuc/charityevents/internal/query"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultTestDSN = "host=localhost user=postgres password=postgres dbname=charityevents_test port=5432 sslmode=disable TimeZone=UTC"

// newTestDB connects to the integration database, skipping the test when
// Postgres is unreachable.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Skipf("skipping Postgres integration tests: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("skipping Postgres integration tests: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.Organization{}, &models.Category{}, &models.Event{}))

	require.NoError(t, db.Exec("DELETE FROM events").Error)
	require.NoError(t, db.Exec("DELETE FROM organizations").Error)
	require.NoError(t, db.Exec("DELETE FROM categories").Error)

	return db
}

func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&models.Organization{
		ID: 1, Name: "Hope Foundation", ContactEmail: "contact@hope.org", ContactPhone: "0400 000 000",
	}).Error)
	require.NoError(t, db.Create(&models.Category{ID: 1, Name: "Fun Run"}).Error)
	require.NoError(t, db.Create(&models.Category{ID: 2, Name: "Gala Dinner", Description: "Formal fundraising dinners."}).Error)

	events := []models.Event{
		{
			ID: 1, Name: "City Fun Run", Description: "5k run", Purpose: "Cancer research",
			EventDate: time.Date(2030, 10, 15, 9, 0, 0, 0, time.UTC),
			Location:  "Sydney Botanic Gardens", TicketPrice: 25, IsActive: true,
			OrganizationID: 1, CategoryID: 1,
		},
		{
			ID: 2, Name: "Gala Night", Description: "Dinner", Purpose: "Homeless shelter",
			EventDate: time.Date(2030, 11, 1, 19, 0, 0, 0, time.UTC),
			Location:  "Melbourne Town Hall", TicketPrice: 150, IsActive: true,
			OrganizationID: 1, CategoryID: 2,
		},
		{
			ID: 3, Name: "Suspended Walkathon", Description: "Walk", Purpose: "Flood relief",
			EventDate: time.Date(2030, 12, 1, 9, 0, 0, 0, time.UTC),
			Location:  "Sydney Harbour", TicketPrice: 0, IsActive: false,
			OrganizationID: 1, CategoryID: 1,
		},
		{
			ID: 4, Name: "Past Auction", Description: "Auction", Purpose: "School supplies",
			EventDate: time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC),
			Location:  "Sydney CBD", TicketPrice: 10, IsActive: true,
			OrganizationID: 1, CategoryID: 2,
		},
	}
	for i := range events {
		require.NoError(t, db.Create(&events[i]).Error)
	}
}

func TestEventRepositoryIntegration(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)

	repo := NewEventRepository(db)
	ctx := context.Background()

	t.Run("upcoming excludes past and inactive, orders ascending", func(t *testing.T) {
		events, err := repo.UpcomingEvents(ctx, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "City Fun Run", events[0].Name)
		assert.Equal(t, "Gala Night", events[1].Name)
		assert.Equal(t, "Hope Foundation", events[0].OrgName)
		assert.Equal(t, "Fun Run", events[0].CategoryName)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].EventDate.Before(events[i-1].EventDate))
		}
	})

	t.Run("all categories regardless of event presence", func(t *testing.T) {
		categories, err := repo.AllCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Fun Run", categories[0].Name)
		assert.Equal(t, "Gala Dinner", categories[1].Name)
	})

	t.Run("unfiltered search returns every active event ascending", func(t *testing.T) {
		events, err := repo.SearchEvents(ctx, query.Filters{})
		require.NoError(t, err)
		require.Len(t, events, 3)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].EventDate.Before(events[i-1].EventDate))
		}
	})

	t.Run("location matches case-insensitive substring", func(t *testing.T) {
		events, err := repo.SearchEvents(ctx, query.Filters{Location: "sydney"})
		require.NoError(t, err)
		require.Len(t, events, 2)
		for _, event := range events {
			assert.Contains(t, event.Location, "Sydney")
		}
	})

	t.Run("date matches the calendar day ignoring time", func(t *testing.T) {
		events, err := repo.SearchEvents(ctx, query.Filters{Date: "2030-10-15"})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "City Fun Run", events[0].Name)
	})

	t.Run("unparseable date matches nothing instead of failing", func(t *testing.T) {
		events, err := repo.SearchEvents(ctx, query.Filters{Date: "not-a-date"})
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("category filter", func(t *testing.T) {
		categoryID := 2
		events, err := repo.SearchEvents(ctx, query.Filters{CategoryID: &categoryID})
		require.NoError(t, err)
		require.Len(t, events, 2)
		for _, event := range events {
			assert.Equal(t, uint(2), event.CategoryID)
		}
	})

	t.Run("search is idempotent", func(t *testing.T) {
		first, err := repo.SearchEvents(ctx, query.Filters{Location: "Sydney"})
		require.NoError(t, err)
		second, err := repo.SearchEvents(ctx, query.Filters{Location: "Sydney"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("detail includes contact and category fields", func(t *testing.T) {
		details, err := repo.EventByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Gala Night", details.Name)
		assert.Equal(t, "contact@hope.org", details.ContactEmail)
		assert.Equal(t, "0400 000 000", details.ContactPhone)
		assert.Equal(t, "Gala Dinner", details.CategoryName)
		assert.Equal(t, "Formal fundraising dinners.", details.CategoryDescription)
		assert.Equal(t, float64(150), details.TicketPrice)
	})

	t.Run("missing event is not found", func(t *testing.T) {
		_, err := repo.EventByID(ctx, 999)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("inactive event is not found", func(t *testing.T) {
		_, err := repo.EventByID(ctx, 3)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

}
