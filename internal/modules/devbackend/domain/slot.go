package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ClockLayout is the HH:MM format used for reservation times and suggestions.
	ClockLayout = "15:04"
	slotLayout  = "2006-01-02 15:04"

	// ReservationLength is how long a booking holds its table.
	ReservationLength = 2 * time.Hour
	OpeningTime       = "10:00"
	ClosingTime       = "22:00"
)

// ParseSlot combines a YYYY-MM-DD date and an HH:MM (or HH:MM:SS) time into one instant in UTC.
func ParseSlot(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if len(clock) == len("15:04:05") {
		clock = clock[:len(ClockLayout)]
	}
	slot, err := time.Parse(slotLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q time %q: expected YYYY-MM-DD and HH:MM", ErrInvalid, date, clock)
	}
	return slot, nil
}

// Overlaps reports whether two bookings starting at a and b share their table at any moment.
func Overlaps(a, b time.Time) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff < ReservationLength
}

// WithinOpeningHours reports whether a booking may start at slot and still finish by closing.
func WithinOpeningHours(slot time.Time) bool {
	day := slot.Format("2006-01-02")
	opening, _ := time.Parse(slotLayout, day+" "+OpeningTime)
	closing, _ := time.Parse(slotLayout, day+" "+ClosingTime)
	return !slot.Before(opening) && !slot.Add(ReservationLength).After(closing)
}
