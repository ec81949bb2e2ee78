package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type dish struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestClientSendsHeadersQueryAndBody(t *testing.T) {
	var captured struct {
		method  string
		path    string
		query   string
		headers http.Header
		body    string
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.headers = r.Header.Clone()
		captured.body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "name": "Phở Chay"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/v1/", WithToken(" staff-token "), WithRequestID(func() string { return "req-1" }))

	var out dish
	if err := client.Post(context.Background(), "/menu/dishes", map[string]any{"name": "Phở Chay"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(dish{ID: 7, Name: "Phở Chay"}, out); diff != "" {
		t.Fatalf("unexpected decode (-want +got):\n%s", diff)
	}
	if captured.method != http.MethodPost || captured.path != "/api/v1/menu/dishes" {
		t.Fatalf("unexpected request line: %s %s", captured.method, captured.path)
	}
	if captured.body != `{"name":"Phở Chay"}` {
		t.Fatalf("unexpected body: %s", captured.body)
	}
	checks := map[string]string{
		"Authorization": "Bearer staff-token",
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"X-Request-Id":  "req-1",
		"User-Agent":    defaultUserAgent,
	}
	for header, expected := range checks {
		if got := captured.headers.Get(header); got != expected {
			t.Fatalf("header %s expected %q got %q", header, expected, got)
		}
	}
}

func TestClientMergesQueryIntoExistingPathQuery(t *testing.T) {
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var out []dish
	if err := client.Get(context.Background(), "/menu/search?q=a%20b%26c", url.Values{"limit": {"5"}}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rawQuery != "q=a%20b%26c&limit=5" {
		t.Fatalf("unexpected raw query: %s", rawQuery)
	}
}

func TestClientOmitsContentTypeWithoutBody(t *testing.T) {
	var contentType string
	var length int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		length = r.ContentLength
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	var out dish
	if err := NewClient(server.URL).Patch(context.Background(), "/menu/dishes/1/toggle-availability", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "" || length != 0 {
		t.Fatalf("expected an empty request, got content-type %q length %d", contentType, length)
	}
}

func TestClientStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Table not found"})
	}))
	defer server.Close()

	var out dish
	err := NewClient(server.URL).Get(context.Background(), "/tables/99", nil, &out)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound || statusErr.Method != http.MethodGet || statusErr.Path != "/tables/99" {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
	if statusErr.Detail() != "Table not found" {
		t.Fatalf("unexpected detail: %q", statusErr.Detail())
	}
	if !IsNotFound(err) || IsUnauthorized(err) {
		t.Fatalf("unexpected classification for %v", err)
	}
}

func TestClientDeleteIgnoresResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`{"id": 3, "table_number": "3"}`))
	}))
	defer server.Close()

	if err := NewClient(server.URL).Delete(context.Background(), "/tables/3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	var out dish
	err := NewClient(server.URL).Get(context.Background(), "/menu/dishes/1", nil, &out)
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected a wrapped *json.UnmarshalTypeError, got %v", err)
	}
}

func TestClientTransportErrorKeepsContextCause(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, WithHTTPClient(&http.Client{}), WithTimeout(50*time.Millisecond))
	err := client.Get(context.Background(), "/menu/public", nil, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestClientRecordsMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservations/5" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	client := NewClient(server.URL, WithMetrics(metrics))
	ctx := context.Background()

	_ = client.Get(ctx, "/tables/1", nil, nil)
	_ = client.Get(ctx, "/tables/2", nil, nil)
	err := client.Get(ctx, "/reservations/5", nil, nil)
	if !IsUnauthorized(err) {
		t.Fatalf("expected forbidden to be classified as unauthorized, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.RequestCounter().WithLabelValues(http.MethodGet, "/tables/{id}", "200")); got != 2 {
		t.Fatalf("expected 2 table requests, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.RequestCounter().WithLabelValues(http.MethodGet, "/reservations/{id}", "403")); got != 1 {
		t.Fatalf("expected 1 forbidden request, got %v", got)
	}
}

func TestRouteLabel(t *testing.T) {
	cases := map[string]string{
		"/menu/dishes/12/toggle-availability": "/menu/dishes/{id}/toggle-availability",
		"/menu/popular?limit=10":              "/menu/popular",
		"tables":                              "/tables",
		"/reservations/upcoming":              "/reservations/upcoming",
	}
	for input, expected := range cases {
		if got := RouteLabel(input); got != expected {
			t.Fatalf("RouteLabel(%q) expected %q got %q", input, expected, got)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var metrics *Metrics
	metrics.observe(http.MethodGet, "/tables", "200", time.Millisecond)
	if metrics.RequestCounter() != nil {
		t.Fatal("expected nil counter")
	}
}
