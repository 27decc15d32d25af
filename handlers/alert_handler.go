package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

type AlertHandler struct{}

func NewAlertHandler() *AlertHandler { return &AlertHandler{} }

// GET /alerts?unread=1
func (h *AlertHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Alert{})
	if strings.TrimSpace(c.QueryParam("unread")) == "1" {
		tx = tx.Where("is_read = ?", false)
	}
	var rows []models.Alert
	if err := tx.Order("created_at DESC").Limit(atoiOr(c.QueryParam("limit"), 100)).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /alerts/unread-count
func (h *AlertHandler) UnreadCount(c echo.Context) error {
	var n int64
	if err := database.DB.Model(&models.Alert{}).Where("is_read = ?", false).Count(&n).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}

type alertPayload struct {
	Type  string `json:"type" validate:"required,oneof=red gold green blue"`
	Title string `json:"title" validate:"required,max=160"`
	Body  string `json:"body" validate:"required"`
}

// POST /alerts
func (h *AlertHandler) Create(c echo.Context) error {
	var req alertPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	rec := models.Alert{
		Type:  req.Type,
		Title: strings.TrimSpace(req.Title),
		Body:  strings.TrimSpace(req.Body),
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// POST /alerts/:id/read
func (h *AlertHandler) MarkRead(c echo.Context) error {
	res := database.DB.Model(&models.Alert{}).Where("id = ?", c.Param("id")).Update("is_read", true)
	if res.Error != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"read": true})
}

// DELETE /alerts/:id
func (h *AlertHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Alert{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true})
}
