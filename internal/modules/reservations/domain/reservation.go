package domain

import (
	"net/url"
	"strconv"

	tables "restoBotClient/internal/modules/tables/domain"
	"restoBotClient/internal/shared/pagination"
	"restoBotClient/internal/shared/querystring"
)

// DateLayout is the date-only format the backend uses for reservation dates and ranges.
const DateLayout = "2006-01-02"

// Reservation represents a booking, optionally bound to a table.
type Reservation struct {
	ID              int               `json:"id"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerEmail   string            `json:"customer_email,omitempty"`
	PartySize       int               `json:"party_size"`
	ReservationDate string            `json:"reservation_date"`
	ReservationTime string            `json:"reservation_time"`
	TableID         *int              `json:"table_id,omitempty"`
	Status          ReservationStatus `json:"status"`
	SpecialRequests string            `json:"special_requests,omitempty"`
}

// ReservationCreate is shared by the staff create endpoint and public booking.
type ReservationCreate struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	PartySize       int    `json:"party_size"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	TableID         *int   `json:"table_id,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// ReservationUpdate is a partial ReservationCreate.
type ReservationUpdate struct {
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	PartySize       *int    `json:"party_size,omitempty"`
	ReservationDate *string `json:"reservation_date,omitempty"`
	ReservationTime *string `json:"reservation_time,omitempty"`
	TableID         *int    `json:"table_id,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func (u ReservationUpdate) Apply(r *Reservation) {
	if u.CustomerName != nil {
		r.CustomerName = *u.CustomerName
	}
	if u.CustomerPhone != nil {
		r.CustomerPhone = *u.CustomerPhone
	}
	if u.CustomerEmail != nil {
		r.CustomerEmail = *u.CustomerEmail
	}
	if u.PartySize != nil {
		r.PartySize = *u.PartySize
	}
	if u.ReservationDate != nil {
		r.ReservationDate = *u.ReservationDate
	}
	if u.ReservationTime != nil {
		r.ReservationTime = *u.ReservationTime
	}
	if u.TableID != nil {
		id := *u.TableID
		r.TableID = &id
	}
	if u.SpecialRequests != nil {
		r.SpecialRequests = *u.SpecialRequests
	}
}

// ReservationStatusUpdate is the body of PATCH /reservations/{id}/status.
type ReservationStatusUpdate struct {
	Status ReservationStatus `json:"status"`
}

// ReservationFilter narrows GET /reservations. Unset fields are not sent.
type ReservationFilter struct {
	pagination.Params
	Date          string
	Status        ReservationStatus
	CustomerPhone string
}

func (f ReservationFilter) Values() url.Values {
	values := url.Values{}
	f.Params.Apply(values)
	querystring.SetString(values, "date", f.Date)
	querystring.SetString(values, "status", string(f.Status))
	querystring.SetString(values, "customer_phone", f.CustomerPhone)
	return values
}

// AvailabilityQuery is the required input of GET /tables/check-availability.
type AvailabilityQuery struct {
	Date   string
	Time   string
	Guests int
}

// Values always carries all three parameters.
func (q AvailabilityQuery) Values() url.Values {
	return url.Values{
		"date":   {q.Date},
		"time":   {q.Time},
		"guests": {strconv.Itoa(q.Guests)},
	}
}

// AvailabilityResult answers a slot check. SuggestedTimes is only populated when the slot is taken.
type AvailabilityResult struct {
	Available       bool           `json:"available"`
	SuggestedTimes  []string       `json:"suggested_times,omitempty"`
	AvailableTables []tables.Table `json:"available_tables"`
}
