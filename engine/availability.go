package engine

import (
	"errors"
	"fmt"
	"time"

	"brew-and-bite-api/catalog"
	"brew-and-bite-api/models"
)

// ErrInvalidInput marks a booking request a caller can fix: missing or
// unparseable date, time, or party size. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid booking input")

// BookingTimeLayout is the combined wire format of a booking's date and time.
const BookingTimeLayout = "2006-01-02 15:04"

// conflictWindow blocks a table when another booking starts strictly within
// two hours of the requested instant. Exactly two hours apart is allowed.
const conflictWindow = 2 * time.Hour

// ParseBookingTime combines a "2006-01-02" date and "15:04" time into one
// instant.
func ParseBookingTime(date, clock string) (time.Time, error) {
	t, err := time.Parse(BookingTimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: cannot parse %q %q", ErrInvalidInput, date, clock)
	}
	return t, nil
}

// ConflictsWith reports whether an existing booking's start time falls
// strictly inside the two-hour window around the requested instant.
func ConflictsWith(b models.Booking, requested time.Time) bool {
	start, err := ParseBookingTime(b.Date, b.Time)
	if err != nil {
		// A malformed stored row never blocks a table.
		return false
	}
	return requested.Sub(start).Abs() < conflictWindow
}

// AvailableTables returns the tables that are free around the requested
// instant and large enough for the party, ranked by preference score.
// bookings must already be limited to the requested date.
func AvailableTables(tables []catalog.Table, bookings []models.Booking, date, clock string, partySize int, preference string) ([]ScoredTable, error) {
	if date == "" || clock == "" || partySize <= 0 {
		return nil, fmt.Errorf("%w: date, time and party size are required", ErrInvalidInput)
	}
	requested, err := ParseBookingTime(date, clock)
	if err != nil {
		return nil, err
	}
	blocked := make(map[int]bool)
	for _, b := range bookings {
		if ConflictsWith(b, requested) {
			blocked[b.TableID] = true
		}
	}
	free := make([]catalog.Table, 0, len(tables))
	for _, t := range tables {
		if !blocked[t.ID] && t.Capacity >= partySize {
			free = append(free, t)
		}
	}
	return ScoreTables(free, preference), nil
}
