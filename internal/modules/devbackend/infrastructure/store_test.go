package infrastructure

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"restoBotClient/internal/modules/devbackend/domain"
	menu "restoBotClient/internal/modules/menu/domain"
	reservations "restoBotClient/internal/modules/reservations/domain"
	tables "restoBotClient/internal/modules/tables/domain"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	if err := store.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return store
}

func booking(name string, guests int, date, clock string) reservations.ReservationCreate {
	return reservations.ReservationCreate{
		CustomerName:    name,
		CustomerPhone:   "0901234569",
		PartySize:       guests,
		ReservationDate: date,
		ReservationTime: clock,
	}
}

func TestSeed(t *testing.T) {
	store := seededStore(t)

	if got := len(store.ListCategories(nil)); got != 5 {
		t.Fatalf("categories = %d, want 5", got)
	}
	if got := len(store.ListDishes(DishQuery{})); got != 10 {
		t.Fatalf("dishes = %d, want 10", got)
	}
	if got := len(store.ListTables(TableQuery{})); got != 15 {
		t.Fatalf("tables = %d, want 15", got)
	}
	if got := len(store.ListTables(TableQuery{Capacity: 8})); got != 5 {
		t.Fatalf("VIP tables = %d, want 5", got)
	}
	table, err := store.GetTable(7)
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}
	if table.Capacity != 6 || table.Location != "Tầng 1" || table.CurrentStatus != tables.TableStatusAvailable {
		t.Fatalf("unexpected table 7: %+v", table)
	}
}

func TestMenuQueries(t *testing.T) {
	store := seededStore(t)

	found := store.ListDishes(DishQuery{Search: "PHỞ"})
	var names []string
	for _, dish := range found {
		names = append(names, dish.Name)
	}
	if diff := cmp.Diff([]string{"Phở Bò Tái", "Phở Chay"}, names); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}

	if _, err := store.ToggleDishAvailability(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	unavailable := false
	if got := store.ListDishes(DishQuery{IsAvailable: &unavailable}); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unavailable dishes = %+v", got)
	}
	if got := store.ListDishes(DishQuery{CategoryID: 3}); len(got) != 2 {
		t.Fatalf("drinks = %d, want 2", len(got))
	}

	public := store.PublicMenu()
	if len(public.Categories) != 5 || len(public.Dishes) != 9 {
		t.Fatalf("public menu has %d categories and %d dishes", len(public.Categories), len(public.Dishes))
	}

	featured := store.FeaturedDishes()
	var featuredIDs []int
	for _, dish := range featured {
		featuredIDs = append(featuredIDs, dish.ID)
	}
	if diff := cmp.Diff([]int{2, 5, 7, 9, 10}, featuredIDs); diff != "" {
		t.Fatalf("featured mismatch (-want +got):\n%s", diff)
	}

	if _, err := store.SearchDishes("  "); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("blank search error = %v", err)
	}
}

func TestPopularDishesRanksByViews(t *testing.T) {
	store := seededStore(t)
	for _, id := range []int{3, 5, 3} {
		if _, err := store.GetDish(id); err != nil {
			t.Fatalf("GetDish(%d): %v", id, err)
		}
	}

	var ids []int
	for _, dish := range store.PopularDishes(3) {
		ids = append(ids, dish.ID)
	}
	if diff := cmp.Diff([]int{3, 5, 1}, ids); diff != "" {
		t.Fatalf("popular mismatch (-want +got):\n%s", diff)
	}
	if got := len(store.PopularDishes(0)); got != 10 {
		t.Fatalf("default popular limit returned %d", got)
	}
}

func TestMenuValidation(t *testing.T) {
	store := seededStore(t)

	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "dish without name", err: errOf(store.CreateDish(menu.DishCreate{Price: 1, CategoryID: 1})), want: domain.ErrInvalid},
		{name: "dish with unknown category", err: errOf(store.CreateDish(menu.DishCreate{Name: "x", Price: 1, CategoryID: 99})), want: domain.ErrInvalid},
		{name: "duplicate category", err: errOf(store.CreateCategory(menu.CategoryCreate{Name: "món chính"})), want: domain.ErrConflict},
		{name: "category with dishes", err: store.DeleteCategory(1), want: domain.ErrConflict},
		{name: "missing dish", err: store.DeleteDish(42), want: domain.ErrNotFound},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, tc.err, tc.want)
		}
	}
}

func errOf[T any](_ T, err error) error {
	return err
}

func TestTableRules(t *testing.T) {
	store := seededStore(t)

	if _, err := store.CreateTable(tables.TableCreate{TableNumber: "3", Capacity: 2}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate number error = %v", err)
	}
	if _, err := store.UpdateTable(2, tables.TableUpdate{TableNumber: ptr("1")}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("rename onto existing number error = %v", err)
	}
	if _, err := store.UpdateTableStatus(4, "OCCUPIED"); err != nil {
		t.Fatalf("UpdateTableStatus: %v", err)
	}
	if _, err := store.DeleteTable(4); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("delete occupied table error = %v", err)
	}
	if _, err := store.UpdateTableStatus(4, "dirty"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("unknown status error = %v", err)
	}

	available, err := store.AvailableTables("", "", 6)
	if err != nil {
		t.Fatalf("AvailableTables: %v", err)
	}
	if len(available) != 9 {
		t.Fatalf("available tables seating 6 = %d, want 9", len(available))
	}

	deleted, err := store.DeleteTable(15)
	if err != nil || deleted.TableNumber != "15" {
		t.Fatalf("DeleteTable = %+v, %v", deleted, err)
	}
}

func TestBookingAssignsSmallestFreeTable(t *testing.T) {
	store := seededStore(t)

	first, err := store.CreateReservation(booking("An", 2, "2025-05-01", "19:00:00"))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	second, err := store.CreateReservation(booking("Binh", 2, "2025-05-01", "20:00"))
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if *first.TableID != 1 || *second.TableID != 2 {
		t.Fatalf("tables = %d, %d; want 1, 2", *first.TableID, *second.TableID)
	}
	if first.ReservationTime != "19:00" || first.Status != reservations.ReservationStatusPending {
		t.Fatalf("unexpected reservation %+v", first)
	}

	if _, err := store.CreateReservation(reservations.ReservationCreate{
		CustomerName: "Chi", CustomerPhone: "1", PartySize: 2,
		ReservationDate: "2025-05-01", ReservationTime: "18:00", TableID: first.TableID,
	}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("overlapping explicit table error = %v", err)
	}

	if _, err := store.UpdateReservationStatus(first.ID, reservations.ReservationStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	third, err := store.CreateReservation(booking("Dung", 2, "2025-05-01", "18:30"))
	if err != nil {
		t.Fatalf("third booking: %v", err)
	}
	if *third.TableID != 1 {
		t.Fatalf("cancelled slot not reused, got table %d", *third.TableID)
	}
}

func TestReactivatingReservationRechecksSlot(t *testing.T) {
	store := seededStore(t)
	tableOne := 1

	first := booking("An", 2, "2030-01-01", "18:00")
	first.TableID = &tableOne
	original, err := store.CreateReservation(first)
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := store.UpdateReservationStatus(original.ID, reservations.ReservationStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	second := booking("Binh", 2, "2030-01-01", "18:00")
	second.TableID = &tableOne
	if _, err := store.CreateReservation(second); err != nil {
		t.Fatalf("rebooking the freed slot: %v", err)
	}

	if _, err := store.UpdateReservationStatus(original.ID, reservations.ReservationStatusConfirmed); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("confirming the cancelled booking error = %v, want conflict", err)
	}
	if _, err := store.UpdateReservationStatus(original.ID, reservations.ReservationStatusPending); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("reopening the cancelled booking error = %v, want conflict", err)
	}
	still, err := store.GetReservation(original.ID)
	if err != nil || still.Status != reservations.ReservationStatusCancelled {
		t.Fatalf("cancelled booking changed: %+v, %v", still, err)
	}

	if _, err := store.UpdateReservationStatus(original.ID, reservations.ReservationStatusCompleted); err != nil {
		t.Fatalf("moving between inactive statuses: %v", err)
	}
}

func TestDeleteTableWithActiveReservation(t *testing.T) {
	store := seededStore(t)
	tableID := 9

	in := booking("An", 4, "2030-01-01", "12:00")
	in.TableID = &tableID
	reservation, err := store.CreateReservation(in)
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := store.DeleteTable(tableID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("delete table with pending reservation error = %v", err)
	}

	if _, err := store.UpdateReservationStatus(reservation.ID, reservations.ReservationStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := store.DeleteTable(tableID); err != nil {
		t.Fatalf("delete table after cancel: %v", err)
	}
}

func TestListTablesHidesInactive(t *testing.T) {
	store := seededStore(t)
	if _, err := store.UpdateTable(3, tables.TableUpdate{IsActive: ptr(false)}); err != nil {
		t.Fatalf("UpdateTable: %v", err)
	}

	if got := len(store.ListTables(TableQuery{})); got != 14 {
		t.Fatalf("active tables = %d, want 14", got)
	}
	if got := len(store.ListTables(TableQuery{IncludeInactive: true})); got != 15 {
		t.Fatalf("all tables = %d, want 15", got)
	}
}

func TestBookingValidation(t *testing.T) {
	store := seededStore(t)

	cases := []struct {
		name string
		in   reservations.ReservationCreate
		want error
	}{
		{name: "no name", in: booking("", 2, "2025-05-01", "19:00"), want: domain.ErrInvalid},
		{name: "no guests", in: booking("An", 0, "2025-05-01", "19:00"), want: domain.ErrInvalid},
		{name: "bad date", in: booking("An", 2, "01/05/2025", "19:00"), want: domain.ErrInvalid},
		{name: "before opening", in: booking("An", 2, "2025-05-01", "09:00"), want: domain.ErrInvalid},
		{name: "too late", in: booking("An", 2, "2025-05-01", "21:00"), want: domain.ErrInvalid},
		{name: "too many guests", in: booking("An", 12, "2025-05-01", "19:00"), want: domain.ErrConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.CreateReservation(tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCheckAvailabilitySuggestsTimes(t *testing.T) {
	store := seededStore(t)
	for i := 0; i < 5; i++ {
		if _, err := store.CreateReservation(booking("VIP", 8, "2025-05-01", "19:00")); err != nil {
			t.Fatalf("booking %d: %v", i, err)
		}
	}

	result, err := store.CheckAvailability("2025-05-01", "19:00", 8)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if result.Available || len(result.AvailableTables) != 0 {
		t.Fatalf("expected no tables, got %+v", result)
	}
	if diff := cmp.Diff([]string{"17:00"}, result.SuggestedTimes); diff != "" {
		t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
	}

	small, err := store.CheckAvailability("2025-05-01", "19:00", 4)
	if err != nil {
		t.Fatalf("CheckAvailability small party: %v", err)
	}
	if !small.Available || len(small.AvailableTables) != 10 || small.SuggestedTimes != nil {
		t.Fatalf("unexpected small-party result: available=%v tables=%d suggestions=%v", small.Available, len(small.AvailableTables), small.SuggestedTimes)
	}
	if small.AvailableTables[0].Capacity != 4 {
		t.Fatalf("tables not ordered by capacity: %+v", small.AvailableTables[0])
	}

	if _, err := store.CheckAvailability("2025-05-01", "19:00", 0); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("zero guests error = %v", err)
	}

	atSlot, err := store.AvailableTables("2025-05-01", "20:00", 8)
	if err != nil || len(atSlot) != 0 {
		t.Fatalf("AvailableTables at booked slot = %d, %v", len(atSlot), err)
	}
}

func TestReservationQueries(t *testing.T) {
	store := seededStore(t)
	for _, in := range []reservations.ReservationCreate{
		booking("An", 2, "2025-05-03", "12:00"),
		booking("Binh", 2, "2025-05-01", "19:00"),
		booking("Chi", 2, "2025-05-10", "19:00"),
	} {
		if _, err := store.CreateReservation(in); err != nil {
			t.Fatalf("booking %s: %v", in.CustomerName, err)
		}
	}
	if _, err := store.UpdateReservationStatus(1, "CONFIRMED"); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	upcoming, err := store.UpcomingReservations("2025-05-01", "2025-05-08")
	if err != nil {
		t.Fatalf("UpcomingReservations: %v", err)
	}
	var names []string
	for _, r := range upcoming {
		names = append(names, r.CustomerName)
	}
	if diff := cmp.Diff([]string{"Binh", "An"}, names); diff != "" {
		t.Fatalf("upcoming mismatch (-want +got):\n%s", diff)
	}

	if got := store.ListReservations(ReservationQuery{Status: reservations.ReservationStatusConfirmed}); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("confirmed = %+v", got)
	}
	if got := store.ListReservations(ReservationQuery{Date: "2025-05-10"}); len(got) != 1 || got[0].CustomerName != "Chi" {
		t.Fatalf("by date = %+v", got)
	}

	if _, err := store.UpcomingReservations("2025-05-08", "2025-05-01"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("reversed range error = %v", err)
	}
	if _, err := store.UpdateReservationStatus(1, "archived"); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("unknown status error = %v", err)
	}

	moved, err := store.UpdateReservation(2, reservations.ReservationUpdate{ReservationTime: ptr("19:30")})
	if err != nil {
		t.Fatalf("move onto own slot: %v", err)
	}
	if moved.ReservationTime != "19:30" {
		t.Fatalf("time not updated: %+v", moved)
	}
}

func ptr[T any](v T) *T {
	return &v
}
