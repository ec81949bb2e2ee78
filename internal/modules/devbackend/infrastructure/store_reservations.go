package infrastructure

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"restoBotClient/internal/modules/devbackend/domain"
	reservations "restoBotClient/internal/modules/reservations/domain"
)

// ReservationQuery narrows ListReservations. Zero values match everything.
type ReservationQuery struct {
	Date          string
	Status        reservations.ReservationStatus
	CustomerPhone string
}

func (s *Store) ListReservations(q ReservationQuery) []reservations.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reservations.Reservation, 0)
	for _, reservation := range s.chronological() {
		if q.Date != "" && reservation.ReservationDate != q.Date {
			continue
		}
		if q.Status != reservations.ReservationStatusUnknown && reservation.Status != q.Status {
			continue
		}
		if q.CustomerPhone != "" && reservation.CustomerPhone != q.CustomerPhone {
			continue
		}
		out = append(out, reservation)
	}
	return out
}

// UpcomingReservations lists pending and confirmed reservations dated start..end inclusive.
func (s *Store) UpcomingReservations(start, end string) ([]reservations.Reservation, error) {
	for _, date := range []string{start, end} {
		if _, err := time.Parse(reservations.DateLayout, date); err != nil {
			return nil, fmt.Errorf("%w: date %q: expected YYYY-MM-DD", domain.ErrInvalid, date)
		}
	}
	if end < start {
		return nil, fmt.Errorf("%w: end_date %s is before start_date %s", domain.ErrInvalid, end, start)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reservations.Reservation, 0)
	for _, reservation := range s.chronological() {
		if reservation.Status.Active() && reservation.ReservationDate >= start && reservation.ReservationDate <= end {
			out = append(out, reservation)
		}
	}
	return out, nil
}

func (s *Store) GetReservation(id int) (reservations.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return reservations.Reservation{}, fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	return reservation, nil
}

// CreateReservation books a pending reservation. Without a table id the smallest free table
// that seats the party is assigned.
func (s *Store) CreateReservation(in reservations.ReservationCreate) (reservations.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation := reservations.Reservation{
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:   in.CustomerEmail,
		PartySize:       in.PartySize,
		ReservationDate: in.ReservationDate,
		ReservationTime: in.ReservationTime,
		Status:          reservations.ReservationStatusPending,
		SpecialRequests: in.SpecialRequests,
	}
	if in.TableID != nil {
		tableID := *in.TableID
		reservation.TableID = &tableID
	}
	if err := s.placeReservation(&reservation, 0); err != nil {
		return reservations.Reservation{}, err
	}
	s.lastReservationID++
	reservation.ID = s.lastReservationID
	s.reservations[reservation.ID] = reservation
	return reservation, nil
}

func (s *Store) UpdateReservation(id int, in reservations.ReservationUpdate) (reservations.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return reservations.Reservation{}, fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	in.Apply(&reservation)
	reservation.CustomerName = strings.TrimSpace(reservation.CustomerName)
	reservation.CustomerPhone = strings.TrimSpace(reservation.CustomerPhone)
	if reservation.Status.Active() {
		if err := s.placeReservation(&reservation, id); err != nil {
			return reservations.Reservation{}, err
		}
	}
	s.reservations[id] = reservation
	return reservation, nil
}

// UpdateReservationStatus accepts any known status; transitions are not restricted.
func (s *Store) UpdateReservationStatus(id int, status reservations.ReservationStatus) (reservations.Reservation, error) {
	status = reservations.NormalizeReservationStatus(string(status))
	if !status.Valid() {
		return reservations.Reservation{}, fmt.Errorf("%w: unknown reservation status %q", domain.ErrInvalid, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return reservations.Reservation{}, fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	// Reactivating a booking claims its slot again.
	if !reservation.Status.Active() && status.Active() {
		if err := s.placeReservation(&reservation, id); err != nil {
			return reservations.Reservation{}, err
		}
	}
	reservation.Status = status
	s.reservations[id] = reservation
	return reservation, nil
}

// placeReservation validates r and settles its table. self is the id r already has in the
// store (0 for a new one). The caller holds the write lock.
func (s *Store) placeReservation(r *reservations.Reservation, self int) error {
	if r.CustomerName == "" || r.CustomerPhone == "" {
		return fmt.Errorf("%w: customer_name and customer_phone are required", domain.ErrInvalid)
	}
	if r.PartySize <= 0 {
		return fmt.Errorf("%w: party_size must be positive", domain.ErrInvalid)
	}
	slot, err := domain.ParseSlot(r.ReservationDate, r.ReservationTime)
	if err != nil {
		return err
	}
	if !domain.WithinOpeningHours(slot) {
		return fmt.Errorf("%w: reservations must start after %s and end by %s", domain.ErrInvalid, domain.OpeningTime, domain.ClosingTime)
	}
	r.ReservationDate = slot.Format(reservations.DateLayout)
	r.ReservationTime = slot.Format(domain.ClockLayout)

	if r.TableID == nil {
		free := s.freeTables(slot, r.PartySize, self)
		if len(free) == 0 {
			return fmt.Errorf("no table for %d guests at %s %s: %w", r.PartySize, r.ReservationDate, r.ReservationTime, domain.ErrConflict)
		}
		id := free[0].ID
		r.TableID = &id
		return nil
	}

	table, ok := s.tables[*r.TableID]
	if !ok || !table.IsActive {
		return fmt.Errorf("%w: table %d does not exist", domain.ErrInvalid, *r.TableID)
	}
	if table.Capacity < r.PartySize {
		return fmt.Errorf("%w: table %s seats %d, party is %d", domain.ErrInvalid, table.TableNumber, table.Capacity, r.PartySize)
	}
	if s.tableBusy(table.ID, slot, self) {
		return fmt.Errorf("table %s is already booked at %s %s: %w", table.TableNumber, r.ReservationDate, r.ReservationTime, domain.ErrConflict)
	}
	return nil
}

func (s *Store) chronological() []reservations.Reservation {
	out := ordered(s.reservations)
	slices.SortStableFunc(out, func(a, b reservations.Reservation) int {
		return cmp.Or(
			cmp.Compare(a.ReservationDate, b.ReservationDate),
			cmp.Compare(a.ReservationTime, b.ReservationTime),
		)
	})
	return out
}
