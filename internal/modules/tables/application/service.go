package application

import (
	"context"
	"fmt"
	"net/url"
	"time"

	reservations "restoBotClient/internal/modules/reservations/domain"
	"restoBotClient/internal/modules/tables/domain"
	"restoBotClient/internal/shared/pagination"
	"restoBotClient/internal/shared/port"
)

const (
	todayPageSize       = 100
	defaultUpcomingDays = 7
)

// TableService maps table and reservation operations onto the backend. It keeps no state
// beyond its clock and returns collaborator errors untouched.
type TableService struct {
	client port.APIClient
	now    func() time.Time
}

// Option customises a TableService.
type Option func(*TableService)

// WithClock replaces time.Now for the date-relative queries.
func WithClock(now func() time.Time) Option {
	return func(s *TableService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewTableService(client port.APIClient, opts ...Option) *TableService {
	s := &TableService{client: client, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func tablePath(id int) string {
	return fmt.Sprintf("/tables/%d", id)
}

func reservationPath(id int) string {
	return fmt.Sprintf("/reservations/%d", id)
}

func (s *TableService) ListTables(ctx context.Context, filter domain.TableFilter) (*pagination.Page[domain.Table], error) {
	var page pagination.Page[domain.Table]
	if err := s.client.Get(ctx, "/tables", filter.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *TableService) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	var table domain.Table
	if err := s.client.Get(ctx, tablePath(id), nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// CreateTable always registers the table as available, whatever input.CurrentStatus says.
func (s *TableService) CreateTable(ctx context.Context, input domain.TableCreate) (*domain.Table, error) {
	input.CurrentStatus = domain.TableStatusAvailable
	var table domain.Table
	if err := s.client.Post(ctx, "/tables", input, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *TableService) UpdateTable(ctx context.Context, id int, input domain.TableUpdate) (*domain.Table, error) {
	var table domain.Table
	if err := s.client.Put(ctx, tablePath(id), input, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *TableService) DeleteTable(ctx context.Context, id int) error {
	return s.client.Delete(ctx, tablePath(id))
}

func (s *TableService) UpdateTableStatus(ctx context.Context, id int, status domain.TableStatus) (*domain.Table, error) {
	var table domain.Table
	if err := s.client.Patch(ctx, tablePath(id)+"/status", domain.TableStatusUpdate{Status: status}, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *TableService) AvailableTables(ctx context.Context, filter domain.AvailableTablesFilter) ([]domain.Table, error) {
	var tables []domain.Table
	if err := s.client.Get(ctx, "/tables/available", filter.Values(), &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *TableService) ListReservations(ctx context.Context, filter reservations.ReservationFilter) (*pagination.Page[reservations.Reservation], error) {
	var page pagination.Page[reservations.Reservation]
	if err := s.client.Get(ctx, "/reservations", filter.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *TableService) GetReservation(ctx context.Context, id int) (*reservations.Reservation, error) {
	var reservation reservations.Reservation
	if err := s.client.Get(ctx, reservationPath(id), nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *TableService) CreateReservation(ctx context.Context, input reservations.ReservationCreate) (*reservations.Reservation, error) {
	var reservation reservations.Reservation
	if err := s.client.Post(ctx, "/reservations", input, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *TableService) UpdateReservation(ctx context.Context, id int, input reservations.ReservationUpdate) (*reservations.Reservation, error) {
	var reservation reservations.Reservation
	if err := s.client.Put(ctx, reservationPath(id), input, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservationStatus does not check the transition; the backend decides whether it is allowed.
func (s *TableService) UpdateReservationStatus(ctx context.Context, id int, status reservations.ReservationStatus) (*reservations.Reservation, error) {
	var reservation reservations.Reservation
	body := reservations.ReservationStatusUpdate{Status: status}
	if err := s.client.Patch(ctx, reservationPath(id)+"/status", body, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *TableService) CancelReservation(ctx context.Context, id int) (*reservations.Reservation, error) {
	return s.UpdateReservationStatus(ctx, id, reservations.ReservationStatusCancelled)
}

func (s *TableService) ConfirmReservation(ctx context.Context, id int) (*reservations.Reservation, error) {
	return s.UpdateReservationStatus(ctx, id, reservations.ReservationStatusConfirmed)
}

// CheckAvailability asks whether a slot can seat query.Guests. All parameters are sent.
func (s *TableService) CheckAvailability(ctx context.Context, query reservations.AvailabilityQuery) (*reservations.AvailabilityResult, error) {
	var result reservations.AvailabilityResult
	if err := s.client.Get(ctx, "/tables/check-availability", query.Values(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BookTable is the public, customer-facing counterpart of CreateReservation.
func (s *TableService) BookTable(ctx context.Context, input reservations.ReservationCreate) (*reservations.Reservation, error) {
	var reservation reservations.Reservation
	if err := s.client.Post(ctx, "/tables/book", input, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// TodayReservations lists up to 100 reservations for the local calendar day. Paging metadata
// is dropped; call ListReservations when the total count matters.
func (s *TableService) TodayReservations(ctx context.Context) ([]reservations.Reservation, error) {
	today := s.now().Format(reservations.DateLayout)
	page, err := s.ListReservations(ctx, reservations.ReservationFilter{
		Params: pagination.Params{Size: todayPageSize},
		Date:   today,
	})
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

// UpcomingReservations lists reservations from today through today+days (days <= 0 means 7).
func (s *TableService) UpcomingReservations(ctx context.Context, days int) ([]reservations.Reservation, error) {
	if days <= 0 {
		days = defaultUpcomingDays
	}
	now := s.now()
	query := url.Values{
		"start_date": {now.Format(reservations.DateLayout)},
		"end_date":   {now.AddDate(0, 0, days).Format(reservations.DateLayout)},
	}
	var upcoming []reservations.Reservation
	if err := s.client.Get(ctx, "/reservations/upcoming", query, &upcoming); err != nil {
		return nil, err
	}
	return upcoming, nil
}
