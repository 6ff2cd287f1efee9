// Package query builds the parameterized SQL statements used by the event
// read paths. Builders are pure: they return the statement text and a
// positional argument list whose order matches placeholder appearance, and
// never interpolate input into the SQL itself.
package query

import (
	"strings"
	"time"
)

const summaryColumns = `e.*, o.org_name, c.category_name`

const detailColumns = `e.*, o.org_name, o.contact_email, o.contact_phone, c.category_name, c.description AS category_description`

const fromJoins = `
FROM events e
JOIN organizations o ON e.org_id = o.org_id
JOIN categories c ON e.category_id = c.category_id`

// Filters holds the optional search conditions. Zero values mean the
// condition is absent; absent conditions contribute no clause.
type Filters struct {
	Date       string
	Location   string
	CategoryID *int
}

// Search assembles the filtered event listing. The active-only predicate is
// always present; each provided filter appends exactly one AND clause, and
// results are always ordered ascending by event date.
//
// The date filter compares against the date portion of the event timestamp
// rendered as YYYY-MM-DD, so an unparseable date value matches nothing
// instead of failing the query.
func Search(f Filters) (string, []interface{}) {
	b := newBuilder(summaryColumns)
	if f.Date != "" {
		b.where(`to_char(e.event_date, 'YYYY-MM-DD') = ?`, f.Date)
	}
	if f.Location != "" {
		b.where(`e.location ILIKE ?`, "%"+f.Location+"%")
	}
	if f.CategoryID != nil {
		b.where(`e.category_id = ?`, *f.CategoryID)
	}
	return b.build()
}

// Upcoming assembles the home-feed listing: active events scheduled at or
// after the given time, ascending by event date.
func Upcoming(from time.Time) (string, []interface{}) {
	b := newBuilder(summaryColumns)
	b.where(`e.event_date >= ?`, from)
	return b.build()
}

// Detail assembles the single-event lookup, including the organization
// contact columns and the category description. Inactive events are excluded
// here exactly as on the list paths.
func Detail(eventID int) (string, []interface{}) {
	b := newBuilder(detailColumns)
	b.where(`e.event_id = ?`, eventID)
	return b.build()
}

// builder accumulates WHERE clauses alongside a strictly parallel argument
// list. Every statement starts from the active-only predicate.
type builder struct {
	columns    string
	conditions []string
	args       []interface{}
}

func newBuilder(columns string) *builder {
	return &builder{
		columns:    columns,
		conditions: []string{`e.is_active = TRUE`},
	}
}

func (b *builder) where(clause string, args ...interface{}) {
	b.conditions = append(b.conditions, clause)
	b.args = append(b.args, args...)
}

func (b *builder) build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.columns)
	sb.WriteString(fromJoins)
	sb.WriteString("\nWHERE ")
	sb.WriteString(strings.Join(b.conditions, "\n  AND "))
	sb.WriteString("\nORDER BY e.event_date ASC")
	return sb.String(), b.args
}
