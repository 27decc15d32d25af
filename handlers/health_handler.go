package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
)

// GET /healthz
func Health(c echo.Context) error {
	sqlDB, err := database.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{"status": "db_down"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}
