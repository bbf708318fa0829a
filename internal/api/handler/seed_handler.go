package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/academic-records-api/internal/core/ports"
)

type SeedHandler struct {
	service ports.SeedService
}

func NewSeedHandler(service ports.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

// Seed resets the database to a known fixture set. Disabled outside
// development environments.
//
// @Summary      Seed the database with fixture data
// @Tags         seed
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/seed [get]
func (h *SeedHandler) Seed(c echo.Context) error {
	if err := h.service.Seed(c.Request().Context()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"message": "Database seeded",
	})
}
