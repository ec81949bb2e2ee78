package transport

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"restoBotClient/internal/modules/devbackend/domain"
	"restoBotClient/internal/modules/devbackend/infrastructure"
	reservations "restoBotClient/internal/modules/reservations/domain"
	tables "restoBotClient/internal/modules/tables/domain"
	"restoBotClient/internal/shared/pagination"
)

func (s *Server) registerTableRoutes(api *echo.Group, staff echo.MiddlewareFunc) {
	api.GET("/tables", s.listTables)
	api.POST("/tables", s.createTable, staff)
	api.GET("/tables/available", s.availableTables)
	api.GET("/tables/check-availability", s.checkAvailability)
	api.GET("/tables/by-status/:status", s.tablesByStatus, staff)
	api.POST("/tables/book", s.bookTable)
	api.GET("/tables/:id", s.getTable)
	api.PUT("/tables/:id", s.updateTable, staff)
	api.DELETE("/tables/:id", s.deleteTable, staff)
	api.PATCH("/tables/:id/status", s.updateTableStatus, staff)
}

func (s *Server) listTables(c echo.Context) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	capacity, err := queryInt(c, "capacity")
	if err != nil {
		return err
	}
	activeOnly, err := queryBool(c, "active_only")
	if err != nil {
		return err
	}
	found := s.store.ListTables(infrastructure.TableQuery{
		Status:          tables.NormalizeTableStatus(c.QueryParam("status")),
		Capacity:        capacity,
		IncludeInactive: activeOnly != nil && !*activeOnly,
	})
	return c.JSON(http.StatusOK, pagination.Slice(found, params))
}

// tablesByStatus lists active tables in one status, unpaginated.
func (s *Server) tablesByStatus(c echo.Context) error {
	status := tables.NormalizeTableStatus(c.Param("status"))
	if !status.Valid() {
		return fmt.Errorf("%w: unknown table status %q", domain.ErrInvalid, c.Param("status"))
	}
	return c.JSON(http.StatusOK, s.store.ListTables(infrastructure.TableQuery{Status: status}))
}

func (s *Server) getTable(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	table, err := s.store.GetTable(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, table)
}

func (s *Server) createTable(c echo.Context) error {
	var payload tables.TableCreate
	if err := bind(c, &payload); err != nil {
		return err
	}
	table, err := s.store.CreateTable(payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, table)
}

func (s *Server) updateTable(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload tables.TableUpdate
	if err := bind(c, &payload); err != nil {
		return err
	}
	table, err := s.store.UpdateTable(id, payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, table)
}

// deleteTable answers with the removed table.
func (s *Server) deleteTable(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	table, err := s.store.DeleteTable(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, table)
}

func (s *Server) updateTableStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload tables.TableStatusUpdate
	if err := bind(c, &payload); err != nil {
		return err
	}
	table, err := s.store.UpdateTableStatus(id, payload.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, table)
}

func (s *Server) availableTables(c echo.Context) error {
	capacity, err := queryInt(c, "capacity")
	if err != nil {
		return err
	}
	found, err := s.store.AvailableTables(c.QueryParam("date"), c.QueryParam("time"), capacity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, found)
}

func (s *Server) checkAvailability(c echo.Context) error {
	guests, err := queryInt(c, "guests")
	if err != nil {
		return err
	}
	result, err := s.store.CheckAvailability(c.QueryParam("date"), c.QueryParam("time"), guests)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// bookTable is the public booking endpoint; it shares the staff creation rules.
func (s *Server) bookTable(c echo.Context) error {
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
