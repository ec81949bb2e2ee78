package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xuri/excelize/v2"

	"restoBotClient/internal/modules/devbackend/infrastructure"
	transport "restoBotClient/internal/modules/devbackend/interface"
	menu "restoBotClient/internal/modules/menu/domain"
	reservations "restoBotClient/internal/modules/reservations/domain"
	tables "restoBotClient/internal/modules/tables/domain"
	"restoBotClient/internal/platform/rest"
	"restoBotClient/internal/shared/auth"
)

const testSecret = "restoctl-test-secret"

func startBackend(t *testing.T) string {
	t.Helper()
	store := infrastructure.NewStore()
	if err := store.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	server := httptest.NewServer(transport.NewServer(store, auth.NewJWTValidator(testSecret), prometheus.NewRegistry()))
	t.Cleanup(server.Close)

	t.Setenv("RESTOBOT_CONFIG", "")
	t.Setenv("RESTOBOT_REST_TOKEN", "")
	t.Setenv("RESTOBOT_REST_BASE_URL", server.URL+transport.APIPrefix)
	t.Setenv("RESTOBOT_BACKEND_JWT_SECRET", testSecret)
	return server.URL
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runWithStderr(t, args...)
	return stdout, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return out
}

func TestMenuSearch(t *testing.T) {
	startBackend(t)

	out, err := run(t, "menu", "search", "phở", "bò")
	if err != nil {
		t.Fatalf("menu search: %v", err)
	}
	found := decode[[]menu.Dish](t, out)
	if len(found) != 1 || found[0].Name != "Phở Bò Tái" {
		t.Fatalf("unexpected result %+v", found)
	}
}

func TestTokenUnlocksStaffCommands(t *testing.T) {
	startBackend(t)

	_, err := run(t, "tables", "create", "--number", "99", "--capacity", "4")
	if !rest.IsUnauthorized(err) {
		t.Fatalf("expected 401 without a token, got %v", err)
	}

	token, err := run(t, "token", "--subject", "host")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	token = strings.TrimSpace(token)

	out, err := run(t, "--token", token, "tables", "create", "--number", "99", "--capacity", "4", "--location", "Sân vườn")
	if err != nil {
		t.Fatalf("tables create: %v", err)
	}
	created := decode[tables.Table](t, out)
	want := tables.Table{ID: 16, TableNumber: "99", Capacity: 4, CurrentStatus: tables.TableStatusAvailable, Location: "Sân vườn", IsActive: true}
	if diff := cmp.Diff(want, created); diff != "" {
		t.Fatalf("created table mismatch (-want +got):\n%s", diff)
	}

	customer, err := run(t, "token", "--role", auth.RoleCustomer)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	_, err = run(t, "--token", strings.TrimSpace(customer), "tables", "delete", "16")
	if rest.StatusCode(err) != 403 {
		t.Fatalf("expected 403 for a customer token, got %v", err)
	}
}

func TestBookAndConfirm(t *testing.T) {
	startBackend(t)

	out, err := run(t, "reservations", "book",
		"--name", "Nguyễn Văn A", "--phone", "0901234567",
		"--guests", "6", "--date", "2030-01-15", "--time", "19:00", "--table", "7")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	booked := decode[reservations.Reservation](t, out)
	if booked.TableID == nil || *booked.TableID != 7 || booked.Status != reservations.ReservationStatusPending {
		t.Fatalf("unexpected booking %+v", booked)
	}

	out, err = run(t, "tables", "check", "--date", "2030-01-15", "--time", "19:30", "--guests", "2")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if result := decode[reservations.AvailabilityResult](t, out); !result.Available {
		t.Fatalf("expected smaller tables to stay free, got %+v", result)
	}

	token, err := run(t, "token")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	out, err = run(t, "--token", strings.TrimSpace(token), "reservations", "confirm", "1")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed := decode[reservations.Reservation](t, out); confirmed.Status != reservations.ReservationStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}
}

func TestImportDryRun(t *testing.T) {
	startBackend(t)

	xl := excelize.NewFile()
	defer xl.Close()
	rows := [][]any{
		{"category_id", "price", "name"},
		{1, 85000, "Phở Bò Tái"},
		{2, 0, "Miễn phí"},
	}
	for i, row := range rows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := xl.SetSheetRow("Sheet1", cellRef, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "menu.xlsx")
	if err := xl.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	out, err := run(t, "menu", "import", "--dry-run", path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := []menu.DishCreate{{Name: "Phở Bò Tái", Price: 85000, CategoryID: 1, IsAvailable: true}}
	if diff := cmp.Diff(want, decode[[]menu.DishCreate](t, out)); diff != "" {
		t.Fatalf("dry run mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidIDIsRejectedLocally(t *testing.T) {
	startBackend(t)

	if _, err := run(t, "tables", "get", "abc"); err == nil || !strings.Contains(err.Error(), "invalid id") {
		t.Fatalf("expected invalid id error, got %v", err)
	}
}

func TestMetricsFlagPrintsClientCounters(t *testing.T) {
	startBackend(t)

	_, stderr, err := runWithStderr(t, "--metrics", "menu", "featured")
	if err != nil {
		t.Fatalf("menu featured: %v", err)
	}
	want := `restobot_client_requests_total{method="GET",route="/menu/featured",status="200"} 1`
	if !strings.Contains(stderr, want) {
		t.Fatalf("expected %q in stderr:\n%s", want, stderr)
	}

	_, stderr, err = runWithStderr(t, "menu", "featured")
	if err != nil {
		t.Fatalf("menu featured: %v", err)
	}
	if strings.Contains(stderr, "restobot_client_requests_total") {
		t.Fatalf("metrics printed without --metrics:\n%s", stderr)
	}
}
