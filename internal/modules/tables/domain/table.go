package domain

import (
	"net/url"

	"restoBotClient/internal/shared/pagination"
	"restoBotClient/internal/shared/querystring"
)

// Table is a seating resource.
type Table struct {
	ID            int         `json:"id"`
	TableNumber   string      `json:"table_number"`
	Capacity      int         `json:"capacity"`
	CurrentStatus TableStatus `json:"current_status"`
	Location      string      `json:"location,omitempty"`
	IsActive      bool        `json:"is_active"`
}

// TableCreate is the payload for a new table. CurrentStatus is always overwritten with
// "available" before the request is sent.
type TableCreate struct {
	TableNumber   string      `json:"table_number"`
	Capacity      int         `json:"capacity"`
	Location      string      `json:"location,omitempty"`
	IsActive      bool        `json:"is_active"`
	CurrentStatus TableStatus `json:"current_status"`
}

// TableUpdate is a partial table.
type TableUpdate struct {
	TableNumber   *string      `json:"table_number,omitempty"`
	Capacity      *int         `json:"capacity,omitempty"`
	Location      *string      `json:"location,omitempty"`
	IsActive      *bool        `json:"is_active,omitempty"`
	CurrentStatus *TableStatus `json:"current_status,omitempty"`
}

func (u TableUpdate) Apply(t *Table) {
	if u.TableNumber != nil {
		t.TableNumber = *u.TableNumber
	}
	if u.Capacity != nil {
		t.Capacity = *u.Capacity
	}
	if u.Location != nil {
		t.Location = *u.Location
	}
	if u.IsActive != nil {
		t.IsActive = *u.IsActive
	}
	if u.CurrentStatus != nil {
		t.CurrentStatus = *u.CurrentStatus
	}
}

// TableStatusUpdate is the body of PATCH /tables/{id}/status.
type TableStatusUpdate struct {
	Status TableStatus `json:"status"`
}

// TableFilter narrows GET /tables. Unset fields are not sent.
type TableFilter struct {
	pagination.Params
	Status   TableStatus
	Capacity int
}

func (f TableFilter) Values() url.Values {
	values := url.Values{}
	f.Params.Apply(values)
	querystring.SetString(values, "status", string(f.Status))
	querystring.SetInt(values, "capacity", f.Capacity)
	return values
}

// AvailableTablesFilter narrows GET /tables/available.
type AvailableTablesFilter struct {
	Date     string
	Time     string
	Capacity int
}

func (f AvailableTablesFilter) Values() url.Values {
	values := url.Values{}
	querystring.SetString(values, "date", f.Date)
	querystring.SetString(values, "time", f.Time)
	querystring.SetInt(values, "capacity", f.Capacity)
	return values
}
