package transport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"restoBotClient/internal/modules/devbackend/domain"
	"restoBotClient/internal/shared/pagination"
)

func pathID(c echo.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q must be a positive integer", domain.ErrInvalid, raw)
	}
	return id, nil
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q must be an integer", domain.ErrInvalid, name, raw)
	}
	return value, nil
}

// queryBool reads an optional boolean query parameter; absent means nil.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q must be a boolean", domain.ErrInvalid, name, raw)
	}
	return &value, nil
}

func pageParams(c echo.Context) (pagination.Params, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return pagination.Params{}, err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Size: size}, nil
}

// bind decodes the JSON body into payload, reporting malformed input as ErrInvalid.
func bind(c echo.Context, payload any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalid, err)
	}
	return nil
}
