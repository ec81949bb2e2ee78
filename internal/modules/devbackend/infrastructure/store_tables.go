package infrastructure

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"restoBotClient/internal/modules/devbackend/domain"
	reservations "restoBotClient/internal/modules/reservations/domain"
	tables "restoBotClient/internal/modules/tables/domain"
)

const maxSuggestedTimes = 3

var suggestionOffsets = []time.Duration{30 * time.Minute, time.Hour, 90 * time.Minute, 2 * time.Hour}

// TableQuery narrows ListTables. Capacity is a minimum. Inactive tables are left out
// unless IncludeInactive is set.
type TableQuery struct {
	Status          tables.TableStatus
	Capacity        int
	IncludeInactive bool
}

func (s *Store) ListTables(q TableQuery) []tables.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]tables.Table, 0, len(s.tables))
	for _, table := range ordered(s.tables) {
		if !table.IsActive && !q.IncludeInactive {
			continue
		}
		if q.Status != tables.TableStatusUnknown && table.CurrentStatus != q.Status {
			continue
		}
		if table.Capacity < q.Capacity {
			continue
		}
		out = append(out, table)
	}
	return out
}

func (s *Store) GetTable(id int) (tables.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.tables[id]
	if !ok {
		return tables.Table{}, fmt.Errorf("table %d: %w", id, domain.ErrNotFound)
	}
	return table, nil
}

// CreateTable rejects duplicate table numbers. An empty status becomes available.
func (s *Store) CreateTable(in tables.TableCreate) (tables.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := tables.Table{
		TableNumber:   strings.TrimSpace(in.TableNumber),
		Capacity:      in.Capacity,
		CurrentStatus: tables.NormalizeTableStatus(string(in.CurrentStatus)),
		Location:      in.Location,
		IsActive:      in.IsActive,
	}
	if table.CurrentStatus == tables.TableStatusUnknown {
		table.CurrentStatus = tables.TableStatusAvailable
	}
	if err := s.validateTable(0, table); err != nil {
		return tables.Table{}, err
	}
	s.lastTableID++
	table.ID = s.lastTableID
	s.tables[table.ID] = table
	return table, nil
}

func (s *Store) UpdateTable(id int, in tables.TableUpdate) (tables.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return tables.Table{}, fmt.Errorf("table %d: %w", id, domain.ErrNotFound)
	}
	in.Apply(&table)
	table.TableNumber = strings.TrimSpace(table.TableNumber)
	table.CurrentStatus = tables.NormalizeTableStatus(string(table.CurrentStatus))
	if err := s.validateTable(id, table); err != nil {
		return tables.Table{}, err
	}
	s.tables[id] = table
	return table, nil
}

// DeleteTable returns the removed table. Occupied or reserved tables, and tables holding a
// pending or confirmed reservation, cannot be deleted.
func (s *Store) DeleteTable(id int) (tables.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return tables.Table{}, fmt.Errorf("table %d: %w", id, domain.ErrNotFound)
	}
	if table.CurrentStatus == tables.TableStatusOccupied || table.CurrentStatus == tables.TableStatusReserved {
		return tables.Table{}, fmt.Errorf("cannot delete table that is currently %s: %w", table.CurrentStatus, domain.ErrConflict)
	}
	for _, reservation := range s.reservations {
		if reservation.TableID != nil && *reservation.TableID == id && reservation.Status.Active() {
			return tables.Table{}, fmt.Errorf("table %s has active reservation %d: %w", table.TableNumber, reservation.ID, domain.ErrConflict)
		}
	}
	delete(s.tables, id)
	return table, nil
}

func (s *Store) UpdateTableStatus(id int, status tables.TableStatus) (tables.Table, error) {
	status = tables.NormalizeTableStatus(string(status))
	if !status.Valid() {
		return tables.Table{}, fmt.Errorf("%w: unknown table status %q", domain.ErrInvalid, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return tables.Table{}, fmt.Errorf("table %d: %w", id, domain.ErrNotFound)
	}
	table.CurrentStatus = status
	s.tables[id] = table
	return table, nil
}

func (s *Store) validateTable(id int, table tables.Table) error {
	if table.TableNumber == "" {
		return fmt.Errorf("%w: table_number is required", domain.ErrInvalid)
	}
	if table.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrInvalid)
	}
	if !table.CurrentStatus.Valid() {
		return fmt.Errorf("%w: unknown table status %q", domain.ErrInvalid, table.CurrentStatus)
	}
	for otherID, other := range s.tables {
		if otherID != id && other.TableNumber == table.TableNumber {
			return fmt.Errorf("table with number %s already exists: %w", table.TableNumber, domain.ErrConflict)
		}
	}
	return nil
}

// AvailableTables lists active tables seating at least capacity. With both date and clock set
// it answers for that slot; otherwise it reports tables whose current status is available.
func (s *Store) AvailableTables(date, clock string, capacity int) ([]tables.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(date) != "" && strings.TrimSpace(clock) != "" {
		slot, err := domain.ParseSlot(date, clock)
		if err != nil {
			return nil, err
		}
		return s.freeTables(slot, capacity, 0), nil
	}

	out := make([]tables.Table, 0)
	for _, table := range ordered(s.tables) {
		if table.IsActive && table.CurrentStatus == tables.TableStatusAvailable && table.Capacity >= capacity {
			out = append(out, table)
		}
	}
	return out, nil
}

// CheckAvailability reports the tables free for guests at date/clock. When none is free it
// suggests up to three nearby start times within opening hours, closest first.
func (s *Store) CheckAvailability(date, clock string, guests int) (reservations.AvailabilityResult, error) {
	if guests <= 0 {
		return reservations.AvailabilityResult{}, fmt.Errorf("%w: guests must be positive", domain.ErrInvalid)
	}
	slot, err := domain.ParseSlot(date, clock)
	if err != nil {
		return reservations.AvailabilityResult{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	free := s.freeTables(slot, guests, 0)
	result := reservations.AvailabilityResult{Available: len(free) > 0, AvailableTables: free}
	if result.Available {
		return result, nil
	}
	for _, offset := range suggestionOffsets {
		for _, candidate := range []time.Time{slot.Add(-offset), slot.Add(offset)} {
			if len(result.SuggestedTimes) == maxSuggestedTimes {
				return result, nil
			}
			if candidate.Format(reservations.DateLayout) != slot.Format(reservations.DateLayout) || !domain.WithinOpeningHours(candidate) {
				continue
			}
			if len(s.freeTables(candidate, guests, 0)) > 0 {
				result.SuggestedTimes = append(result.SuggestedTimes, candidate.Format(domain.ClockLayout))
			}
		}
	}
	return result, nil
}

// freeTables returns active tables seating guests with no overlapping active reservation,
// smallest first. Reservation skip is ignored so an update does not collide with itself.
// The caller holds the lock.
func (s *Store) freeTables(slot time.Time, guests, skip int) []tables.Table {
	out := make([]tables.Table, 0)
	for _, table := range ordered(s.tables) {
		if !table.IsActive || table.Capacity < guests {
			continue
		}
		if s.tableBusy(table.ID, slot, skip) {
			continue
		}
		out = append(out, table)
	}
	slices.SortStableFunc(out, func(a, b tables.Table) int {
		return cmp.Compare(a.Capacity, b.Capacity)
	})
	return out
}

func (s *Store) tableBusy(tableID int, slot time.Time, skip int) bool {
	for id, reservation := range s.reservations {
		if id == skip || reservation.TableID == nil || *reservation.TableID != tableID || !reservation.Status.Active() {
			continue
		}
		booked, err := domain.ParseSlot(reservation.ReservationDate, reservation.ReservationTime)
		if err != nil {
			continue
		}
		if domain.Overlaps(booked, slot) {
			return true
		}
	}
	return false
}
