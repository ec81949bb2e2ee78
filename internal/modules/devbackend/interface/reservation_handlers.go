package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restoBotClient/internal/modules/devbackend/infrastructure"
	reservations "restoBotClient/internal/modules/reservations/domain"
	"restoBotClient/internal/shared/pagination"
)

// Every reservation route is staff-only; customers go through /tables/book.
func (s *Server) registerReservationRoutes(api *echo.Group, staff echo.MiddlewareFunc) {
	api.GET("/reservations", s.listReservations, staff)
	api.POST("/reservations", s.createReservation, staff)
	api.GET("/reservations/upcoming", s.upcomingReservations, staff)
	api.GET("/reservations/:id", s.getReservation, staff)
	api.PUT("/reservations/:id", s.updateReservation, staff)
	api.PATCH("/reservations/:id/status", s.updateReservationStatus, staff)
}

func (s *Server) listReservations(c echo.Context) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	found := s.store.ListReservations(infrastructure.ReservationQuery{
		Date:          c.QueryParam("date"),
		Status:        reservations.NormalizeReservationStatus(c.QueryParam("status")),
		CustomerPhone: c.QueryParam("customer_phone"),
	})
	return c.JSON(http.StatusOK, pagination.Slice(found, params))
}

func (s *Server) upcomingReservations(c echo.Context) error {
	found, err := s.store.UpcomingReservations(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

func (s *Server) getReservation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	reservation, err := s.store.GetReservation(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservation)
}

func (s *Server) createReservation(c echo.Context) error {
	var payload reservations.ReservationCreate
	if err := bind(c, &payload); err != nil {
		return err
	}
	reservation, err := s.store.CreateReservation(payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reservation)
}

func (s *Server) updateReservation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload reservations.ReservationUpdate
	if err := bind(c, &payload); err != nil {
		return err
	}
	reservation, err := s.store.UpdateReservation(id, payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservation)
}

func (s *Server) updateReservationStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload reservations.ReservationStatusUpdate
	if err := bind(c, &payload); err != nil {
		return err
	}
	reservation, err := s.store.UpdateReservationStatus(id, payload.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservation)
}
