package repository

import (
	"database/sql"
	"time"
)

// Calendar dates (due dates, plan days, session dates) are stored as bare
// YYYY-MM-DD strings; full timestamps use RFC 3339.
const dateLayout = "2006-01-02"

// parseNullableTime decodes an optional date/timestamp column. NULL, empty,
// and malformed values all come back as nil.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString encodes an optional time for storage, mapping a nil
// pointer to SQL NULL.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}
