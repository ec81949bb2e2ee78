package domain

import "strings"

// ReservationStatus represents the lifecycle of a reservation as exposed by the REST API.
type ReservationStatus string

const (
	ReservationStatusUnknown   ReservationStatus = ""
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusNoShow    ReservationStatus = "no_show"
)

var allowedReservationStatuses = map[string]ReservationStatus{
	string(ReservationStatusPending):   ReservationStatusPending,
	string(ReservationStatusConfirmed): ReservationStatusConfirmed,
	string(ReservationStatusCancelled): ReservationStatusCancelled,
	string(ReservationStatusCompleted): ReservationStatusCompleted,
	string(ReservationStatusNoShow):    ReservationStatusNoShow,
}

// NormalizeReservationStatus returns the canonical ReservationStatus for the given input.
// Unknown statuses are lowercased and returned as-is to avoid data loss.
func NormalizeReservationStatus(value string) ReservationStatus {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return ReservationStatusUnknown
	}
	if status, ok := allowedReservationStatuses[trimmed]; ok {
		return status
	}
	return ReservationStatus(trimmed)
}

func (s ReservationStatus) Valid() bool {
	_, ok := allowedReservationStatuses[string(s)]
	return ok
}

// Active reports whether the reservation still holds its slot.
func (s ReservationStatus) Active() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}
