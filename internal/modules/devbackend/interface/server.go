package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"restoBotClient/internal/modules/devbackend/domain"
	"restoBotClient/internal/modules/devbackend/infrastructure"
	"restoBotClient/internal/shared/auth"
	"restoBotClient/internal/shared/httputil"
)

// APIPrefix is where the REST surface is mounted.
const APIPrefix = "/api/v1"

// Server serves the restaurant API from an in-memory store.
type Server struct {
	store     *infrastructure.Store
	validator auth.TokenValidator
	errors    *httputil.ErrorMapper
	metrics   *serverMetrics
}

// NewServer wires every route onto a fresh echo instance. Metrics are registered on reg and
// exposed at /metrics.
func NewServer(store *infrastructure.Store, validator auth.TokenValidator, reg *prometheus.Registry) *echo.Echo {
	s := &Server{
		store:     store,
		validator: validator,
		errors:    newErrorMapper(),
		metrics:   newServerMetrics(reg),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Recover())
	e.Use(s.observe)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := e.Group(APIPrefix)
	staff := requireStaff(validator)
	s.registerMenuRoutes(api, staff)
	s.registerTableRoutes(api, staff)
	s.registerReservationRoutes(api, staff)
	return e
}

func newErrorMapper() *httputil.ErrorMapper {
	return httputil.NewErrorMapper().
		WithMapping(domain.ErrNotFound, http.StatusNotFound, "").
		WithMapping(domain.ErrConflict, http.StatusBadRequest, "").
		WithMapping(domain.ErrInvalid, http.StatusUnprocessableEntity, "").
		WithMapping(auth.ErrMissingToken, http.StatusUnauthorized, "not authenticated").
		WithMapping(auth.ErrInvalidToken, http.StatusUnauthorized, "could not validate credentials").
		WithMapping(auth.ErrForbidden, http.StatusForbidden, "")
}

// statusFor resolves the status and client-facing message of a handler error.
func (s *Server) statusFor(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}
	info := s.errors.Map(err)
	return info.Status, info.Message
}

// handleError writes errors as {"detail": "..."}, the shape the API clients parse.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status, message := s.statusFor(err)
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if status >= http.StatusInternalServerError {
		slog.Error("devbackend request failed", slog.String("path", c.Path()), slog.String("requestId", requestID), slog.Any("error", err))
	} else {
		slog.Debug("devbackend request rejected", slog.String("path", c.Path()), slog.Int("status", status), slog.String("requestId", requestID), slog.Any("error", err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, map[string]string{"detail": message})
	}
	if err != nil {
		slog.Warn("devbackend error response failed", slog.Any("error", err))
	}
}

func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		started := time.Now()
		err := next(c)
		status := c.Response().Status
		if err != nil {
			status, _ = s.statusFor(err)
		}
		s.metrics.observe(c.Request().Method, c.Path(), status, time.Since(started))
		return err
	}
}
