package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restoBotClient/internal/modules/devbackend/infrastructure"
	menu "restoBotClient/internal/modules/menu/domain"
	"restoBotClient/internal/shared/pagination"
)

func (s *Server) registerMenuRoutes(api *echo.Group, staff echo.MiddlewareFunc) {
	api.GET("/menu/dishes", s.listDishes)
	api.POST("/menu/dishes", s.createDish, staff)
	api.GET("/menu/dishes/:id", s.getDish)
	api.PUT("/menu/dishes/:id", s.updateDish, staff)
	api.DELETE("/menu/dishes/:id", s.deleteDish, staff)
	api.PATCH("/menu/dishes/:id/toggle-availability", s.toggleDish, staff)

	api.GET("/menu/categories", s.listCategories)
	api.POST("/menu/categories", s.createCategory, staff)
	api.GET("/menu/categories/:id", s.getCategory)
	api.PUT("/menu/categories/:id", s.updateCategory, staff)
	api.DELETE("/menu/categories/:id", s.deleteCategory, staff)

	api.GET("/menu/public", s.publicMenu)
	api.GET("/menu/popular", s.popularDishes)
	api.GET("/menu/featured", s.featuredDishes)
	api.GET("/menu/search", s.searchDishes)
}

func (s *Server) listDishes(c echo.Context) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	categoryID, err := queryInt(c, "category_id")
	if err != nil {
		return err
	}
	available, err := queryBool(c, "is_available")
	if err != nil {
		return err
	}
	dishes := s.store.ListDishes(infrastructure.DishQuery{
		CategoryID:  categoryID,
		Search:      c.QueryParam("search"),
		IsAvailable: available,
	})
	return c.JSON(http.StatusOK, pagination.Slice(dishes, params))
}

func (s *Server) getDish(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	dish, err := s.store.GetDish(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dish)
}

func (s *Server) createDish(c echo.Context) error {
	var payload menu.DishCreate
	if err := bind(c, &payload); err != nil {
		return err
	}
	dish, err := s.store.CreateDish(payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dish)
}

func (s *Server) updateDish(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload menu.DishUpdate
	if err := bind(c, &payload); err != nil {
		return err
	}
	dish, err := s.store.UpdateDish(id, payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dish)
}

func (s *Server) deleteDish(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteDish(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) toggleDish(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	dish, err := s.store.ToggleDishAvailability(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dish)
}

func (s *Server) listCategories(c echo.Context) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	active, err := queryBool(c, "is_active")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.Slice(s.store.ListCategories(active), params))
}

func (s *Server) getCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	category, err := s.store.GetCategory(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (s *Server) createCategory(c echo.Context) error {
	var payload menu.CategoryCreate
	if err := bind(c, &payload); err != nil {
		return err
	}
	category, err := s.store.CreateCategory(payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (s *Server) updateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var payload menu.CategoryUpdate
	if err := bind(c, &payload); err != nil {
		return err
	}
	category, err := s.store.UpdateCategory(id, payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (s *Server) deleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteCategory(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) publicMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.PublicMenu())
}

func (s *Server) popularDishes(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.store.PopularDishes(limit))
}

func (s *Server) featuredDishes(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.FeaturedDishes())
}

func (s *Server) searchDishes(c echo.Context) error {
	dishes, err := s.store.SearchDishes(c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dishes)
}
