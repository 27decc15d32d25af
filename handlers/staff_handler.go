package handlers

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

// StaffHandler manages the staff directory and its login PINs (principal scope).
type StaffHandler struct{}

func NewStaffHandler() *StaffHandler { return &StaffHandler{} }

type staffPayload struct {
	NationalID string `json:"national_id" validate:"required,min=4,max=20"`
	FullName   string `json:"full_name" validate:"required,max=120"`
	Phone      string `json:"phone" validate:"omitempty,max=15"`
	Role       string `json:"role" validate:"required"`
	Pin        string `json:"pin" validate:"omitempty,min=4,max=20"`
}

// GET /admin/staff
func (h *StaffHandler) List(c echo.Context) error {
	var rows []models.Staff
	if err := database.DB.Order("full_name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /admin/staff
func (h *StaffHandler) Create(c echo.Context) error {
	var req staffPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	trimAll(&req.NationalID, &req.FullName, &req.Phone, &req.Role)
	req.Role = strings.ToUpper(req.Role)
	if !models.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ROLE"})
	}

	var dup models.Staff
	if err := database.DB.Where("national_id = ?", req.NationalID).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "NATIONAL_ID_EXISTS"})
	}

	rec := models.Staff{
		NationalID: req.NationalID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Role:       req.Role,
	}
	if req.Pin != "" {
		hash, _ := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
		rec.PinHash = string(hash)
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /admin/staff/:id
func (h *StaffHandler) Update(c echo.Context) error {
	var rec models.Staff
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var req staffPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	trimAll(&req.NationalID, &req.FullName, &req.Phone, &req.Role)
	req.Role = strings.ToUpper(req.Role)
	if !models.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ROLE"})
	}
	rec.NationalID = req.NationalID
	rec.FullName = req.FullName
	rec.Phone = req.Phone
	rec.Role = req.Role
	if err := database.DB.Save(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /admin/staff/:id
func (h *StaffHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Staff{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true})
}

// POST /admin/staff/:id/reset-pin — returns the new PIN exactly once.
func (h *StaffHandler) ResetPin(c echo.Context) error {
	var rec models.Staff
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	pin := randomPin()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "PIN_HASH_FAILED"})
	}
	rec.PinHash = string(hash)
	if err := database.DB.Save(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"one_time_pin": pin})
}

func randomPin() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(b[:])%1000000)
}
