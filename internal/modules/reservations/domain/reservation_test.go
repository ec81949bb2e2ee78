package domain

import (
	"testing"

	"restoBotClient/internal/shared/pagination"
)

func TestNormalizeReservationStatus(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected ReservationStatus
	}{
		{name: "pending", input: " pending ", expected: ReservationStatusPending},
		{name: "confirmed uppercase", input: "CONFIRMED", expected: ReservationStatusConfirmed},
		{name: "no show", input: "No_Show", expected: ReservationStatusNoShow},
		{name: "unknown passthrough", input: "Delayed", expected: ReservationStatus("delayed")},
		{name: "blank", input: "", expected: ReservationStatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := NormalizeReservationStatus(tc.input)
			if result != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestReservationStatusActive(t *testing.T) {
	if !ReservationStatusPending.Active() || !ReservationStatusConfirmed.Active() {
		t.Fatal("pending and confirmed reservations hold their slot")
	}
	if ReservationStatusCancelled.Active() || ReservationStatusNoShow.Active() {
		t.Fatal("cancelled and no-show reservations release their slot")
	}
}

func TestReservationFilterValues(t *testing.T) {
	cases := []struct {
		name     string
		filter   ReservationFilter
		expected string
	}{
		{name: "empty", filter: ReservationFilter{}, expected: ""},
		{name: "today", filter: ReservationFilter{Params: pagination.Params{Size: 100}, Date: "2025-03-01"}, expected: "date=2025-03-01&size=100"},
		{name: "phone and status", filter: ReservationFilter{Status: ReservationStatusPending, CustomerPhone: "0987654321"}, expected: "customer_phone=0987654321&status=pending"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Values().Encode(); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestAvailabilityQueryAlwaysSendsAllParameters(t *testing.T) {
	got := AvailabilityQuery{}.Values().Encode()
	if got != "date=&guests=0&time=" {
		t.Fatalf("unexpected encoding: %s", got)
	}
}

func TestReservationUpdateApplyCopiesTableID(t *testing.T) {
	tableID := 4
	reservation := Reservation{ID: 1, PartySize: 2}
	ReservationUpdate{TableID: &tableID}.Apply(&reservation)
	tableID = 9

	if reservation.TableID == nil || *reservation.TableID != 4 {
		t.Fatalf("expected table id 4, got %v", reservation.TableID)
	}
	if reservation.PartySize != 2 {
		t.Fatalf("party size should be untouched, got %d", reservation.PartySize)
	}
}
