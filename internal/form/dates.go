package form

import (
	"errors"
	"time"

	"github.com/MihaiKuro/asd/internal/entity"
)

const dateLayout = "2006-01-02"

// parseDate accepts a calendar date interpreted in loc or an RFC 3339 timestamp.
// For a calendar date endOfDay moves the result to the last instant of that day.
func parseDate(s string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if d, err := time.Parse(dateLayout, s); err == nil {
		if endOfDay {
			return startOfDay(d.AddDate(0, 0, 1), loc).Add(-time.Millisecond), nil
		}
		return startOfDay(d, loc), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("must be a date in YYYY-MM-DD or RFC 3339 format")
	}
	return t.In(loc), nil
}

// startOfDay returns the first instant in loc of the calendar day of civil.
// When a DST change skips midnight the day starts where the gap ends.
func startOfDay(civil time.Time, loc *time.Location) time.Time {
	t := time.Date(civil.Year(), civil.Month(), civil.Day(), 0, 0, 0, 0, loc)
	if t.Day() != civil.Day() {
		_, t = t.ZoneBounds()
	}
	return t
}

func isDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := parseDate(s, time.UTC, false)
	return err
}

// explicitRange returns the window given by both dates, or nil when either is missing.
func explicitRange(start, end string, loc *time.Location) (*entity.TimeRange, error) {
	if start == "" || end == "" {
		return nil, nil
	}
	from, err := parseDate(start, loc, false)
	if err != nil {
		return nil, newValidationError("startDate: " + err.Error())
	}
	to, err := parseDate(end, loc, true)
	if err != nil {
		return nil, newValidationError("endDate: " + err.Error())
	}
	if from.After(to) {
		return nil, newValidationError("startDate must not be after endDate")
	}
	return &entity.TimeRange{From: from, To: to}, nil
}
