package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

type TeacherHandler struct{}

func NewTeacherHandler() *TeacherHandler { return &TeacherHandler{} }

type teacherPayload struct {
	TeacherNo string `json:"teacher_no" validate:"required,max=20"`
	FullName  string `json:"full_name" validate:"required,max=120"`
	Phone     string `json:"phone" validate:"required,max=15"`
	IsActive  *bool  `json:"is_active"`
}

// GET /teachers?q=&active=
func (h *TeacherHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Teacher{})
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(teacher_no) LIKE ? OR LOWER(full_name) LIKE ?", like, like)
	}
	if a := strings.TrimSpace(c.QueryParam("active")); a != "" {
		tx = tx.Where("is_active = ?", a == "true" || a == "1")
	}
	var rows []models.Teacher
	if err := tx.Order("full_name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /teachers — fills qr_code with the badge payload on create.
func (h *TeacherHandler) Create(c echo.Context) error {
	var req teacherPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	trimAll(&req.TeacherNo, &req.Phone)
	req.FullName = strings.Join(strings.Fields(req.FullName), " ")

	var dup models.Teacher
	if err := database.DB.Where("teacher_no = ?", req.TeacherNo).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "TEACHER_NO_EXISTS"})
	}

	rec := models.Teacher{
		TeacherNo: req.TeacherNo,
		FullName:  req.FullName,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}
	rec.QRCode = TeacherQRPayload(rec)
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /teachers/:id
func (h *TeacherHandler) Update(c echo.Context) error {
	var rec models.Teacher
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var req teacherPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	trimAll(&req.TeacherNo, &req.Phone)
	rec.TeacherNo = req.TeacherNo
	rec.FullName = strings.Join(strings.Fields(req.FullName), " ")
	rec.Phone = req.Phone
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}
	rec.QRCode = TeacherQRPayload(rec)
	if err := database.DB.Save(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /teachers/:id
func (h *TeacherHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Teacher{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true})
}
