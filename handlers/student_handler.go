package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

type studentPayload struct {
	StudentNo     string `json:"student_no" validate:"required,max=20"`
	FullName      string `json:"full_name" validate:"required,max=120"`
	Grade         string `json:"grade" validate:"required,max=40"`
	GradeCode     string `json:"grade_code" validate:"omitempty,max=10"`
	Classroom     string `json:"classroom" validate:"required,max=10"`
	CommitteeName string `json:"committee_name" validate:"omitempty,max=60"`
	SeatNo        string `json:"seat_no" validate:"omitempty,max=10"`
	Phone         string `json:"phone" validate:"omitempty,max=15"`
}

func (p *studentPayload) normalize() {
	trimAll(&p.StudentNo, &p.Grade, &p.GradeCode, &p.Classroom, &p.CommitteeName, &p.SeatNo, &p.Phone)
	p.FullName = strings.Join(strings.Fields(p.FullName), " ")
}

func (p *studentPayload) toModel() models.Student {
	return models.Student{
		StudentNo:     p.StudentNo,
		FullName:      p.FullName,
		Grade:         p.Grade,
		GradeCode:     p.GradeCode,
		Classroom:     p.Classroom,
		CommitteeName: p.CommitteeName,
		SeatNo:        p.SeatNo,
		Phone:         p.Phone,
	}
}

// GET /students?grade=&classroom=&committee=&q=
func (h *StudentHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Student{})
	if g := strings.TrimSpace(c.QueryParam("grade")); g != "" {
		tx = tx.Where("grade = ?", g)
	}
	if r := strings.TrimSpace(c.QueryParam("classroom")); r != "" {
		tx = tx.Where("classroom = ?", r)
	}
	if cm := strings.TrimSpace(c.QueryParam("committee")); cm != "" {
		tx = tx.Where("committee_name = ?", cm)
	}
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(student_no) LIKE ? OR LOWER(full_name) LIKE ?", like, like)
	}

	var rows []models.Student
	if err := tx.Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	models.SortRoster(rows)
	return c.JSON(http.StatusOK, rows)
}

// POST /students
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.normalize()

	var dup models.Student
	if err := database.DB.Where("student_no = ?", req.StudentNo).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "STUDENT_NO_EXISTS"})
	}

	rec := req.toModel()
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	var rec models.Student
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var req studentPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.normalize()

	upd := req.toModel()
	upd.ID = rec.ID
	if err := database.DB.Model(&rec).Select(
		"student_no", "full_name", "grade", "grade_code", "classroom", "committee_name", "seat_no", "phone",
	).Updates(&upd).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /students/:id — hard delete, as the dashboard always did.
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Student{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true})
}

type importRow struct {
	RowNo         int    `json:"row_no"`
	StudentNo     string `json:"student_no"`
	FullName      string `json:"full_name"`
	Grade         string `json:"grade"`
	GradeCode     string `json:"grade_code"`
	Classroom     string `json:"classroom"`
	CommitteeName string `json:"committee_name"`
	SeatNo        string `json:"seat_no"`
	Phone         string `json:"phone"`
}

// POST /students/import — rows already parsed out of the spreadsheet
// client-side, in the fixed column order. Each row stands alone: bad rows are
// reported back with their row number, good rows are inserted.
func (h *StudentHandler) Import(c echo.Context) error {
	var req struct {
		Rows []importRow `json:"rows" validate:"required,min=1"`
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	inserted := 0
	rowErrs := []map[string]any{}
	for _, r := range req.Rows {
		p := studentPayload{
			StudentNo:     r.StudentNo,
			FullName:      r.FullName,
			Grade:         r.Grade,
			GradeCode:     r.GradeCode,
			Classroom:     r.Classroom,
			CommitteeName: r.CommitteeName,
			SeatNo:        r.SeatNo,
			Phone:         r.Phone,
		}
		p.normalize()
		if err := validate.Struct(&p); err != nil {
			rowErrs = append(rowErrs, map[string]any{"row_no": r.RowNo, "error": "VALIDATION_FAILED"})
			continue
		}
		var dup models.Student
		if err := database.DB.Where("student_no = ?", p.StudentNo).First(&dup).Error; err == nil {
			rowErrs = append(rowErrs, map[string]any{"row_no": r.RowNo, "error": "STUDENT_NO_EXISTS"})
			continue
		}
		rec := p.toModel()
		if err := database.DB.Create(&rec).Error; err != nil {
			rowErrs = append(rowErrs, map[string]any{"row_no": r.RowNo, "error": err.Error()})
			continue
		}
		inserted++
	}
	return c.JSON(http.StatusOK, map[string]any{"inserted": inserted, "errors": rowErrs})
}
