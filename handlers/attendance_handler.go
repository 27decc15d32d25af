package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler { return &AttendanceHandler{} }

// defaultRoster builds the first-load fill: every student present. School
// policy bakes this in — observers only flip the exceptions afterwards.
func defaultRoster(students []models.Student, committeeID, teacherID string, at time.Time) []models.Attendance {
	out := make([]models.Attendance, 0, len(students))
	for _, s := range students {
		rec := models.Attendance{
			CommitteeID: committeeID,
			StudentID:   s.ID,
			Status:      models.AttendancePresent,
			RecordedAt:  at,
		}
		if teacherID != "" {
			tid := teacherID
			rec.TeacherID = &tid
		}
		out = append(out, rec)
	}
	return out
}

type rosterRow struct {
	models.Student
	AttendanceID string `json:"attendance_id"`
	Status       string `json:"attendance_status"`
}

// GET /attendance/roster?committee_id=&teacher_id= — the committee roster in
// seating order. A committee opened for the first time gets one present
// record per student, created in a single transaction so a crash cannot
// leave a half-filled sheet.
func (h *AttendanceHandler) Roster(c echo.Context) error {
	committeeID := strings.TrimSpace(c.QueryParam("committee_id"))
	if committeeID == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_COMMITTEE"})
	}
	var cm models.Committee
	if err := database.DB.First(&cm, "id = ?", committeeID).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "UNKNOWN_COMMITTEE"})
	}

	var students []models.Student
	if err := database.DB.Where("committee_name = ?", cm.Name).Find(&students).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	models.SortRoster(students)

	var existing int64
	database.DB.Model(&models.Attendance{}).Where("committee_id = ?", committeeID).Count(&existing)
	if existing == 0 && len(students) > 0 {
		recs := defaultRoster(students, committeeID, strings.TrimSpace(c.QueryParam("teacher_id")), time.Now())
		if err := database.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&recs).Error
		}); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
	}

	var atts []models.Attendance
	if err := database.DB.Where("committee_id = ?", committeeID).Find(&atts).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	byStudent := make(map[string]models.Attendance, len(atts))
	for _, a := range atts {
		byStudent[a.StudentID] = a
	}

	out := make([]rosterRow, 0, len(students))
	for _, s := range students {
		row := rosterRow{Student: s}
		if a, ok := byStudent[s.ID]; ok {
			row.AttendanceID = a.ID
			row.Status = a.Status
		}
		out = append(out, row)
	}
	return c.JSON(http.StatusOK, map[string]any{"committee": cm, "rows": out})
}

type markReq struct {
	CommitteeID string `json:"committee_id" validate:"required,uuid"`
	StudentID   string `json:"student_id" validate:"required,uuid"`
	TeacherID   string `json:"teacher_id" validate:"omitempty,uuid"`
	Status      string `json:"status" validate:"required,oneof=present absent late"`
	Notes       string `json:"notes"`
}

// POST /attendance/mark — one row per (committee, student); an upsert, so
// two devices marking the same student can no longer fork the record.
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req markReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rec := models.Attendance{
		CommitteeID: req.CommitteeID,
		StudentID:   req.StudentID,
		Status:      req.Status,
		Notes:       req.Notes,
		RecordedAt:  time.Now(),
	}
	if req.TeacherID != "" {
		rec.TeacherID = &req.TeacherID
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "committee_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "teacher_id", "recorded_at", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	// re-read: on conflict the stored row keeps its original id
	var saved models.Attendance
	if err := database.DB.
		Where("committee_id = ? AND student_id = ?", req.CommitteeID, req.StudentID).
		First(&saved).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, saved)
}

// GET /attendance?committee_id=&status=
func (h *AttendanceHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Attendance{})
	if cid := strings.TrimSpace(c.QueryParam("committee_id")); cid != "" {
		tx = tx.Where("committee_id = ?", cid)
	}
	if s := strings.TrimSpace(c.QueryParam("status")); s != "" {
		tx = tx.Where("status = ?", s)
	}
	var rows []models.Attendance
	if err := tx.Order("recorded_at ASC, id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /attendance/summary — per-committee counts, the old v_committee_summary.
func (h *AttendanceHandler) Summary(c echo.Context) error {
	var committees []models.Committee
	if err := database.DB.Order("name ASC").Find(&committees).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	out := make([]map[string]any, 0, len(committees))
	for _, cm := range committees {
		var total, present, absent, late int64
		database.DB.Model(&models.Student{}).Where("committee_name = ?", cm.Name).Count(&total)
		database.DB.Model(&models.Attendance{}).Where("committee_id = ? AND status = ?", cm.ID, models.AttendancePresent).Count(&present)
		database.DB.Model(&models.Attendance{}).Where("committee_id = ? AND status = ?", cm.ID, models.AttendanceAbsent).Count(&absent)
		database.DB.Model(&models.Attendance{}).Where("committee_id = ? AND status = ?", cm.ID, models.AttendanceLate).Count(&late)
		out = append(out, map[string]any{
			"committee_id":   cm.ID,
			"committee_name": cm.Name,
			"total_students": total,
			"present_count":  present,
			"absent_count":   absent,
			"late_count":     late,
		})
	}
	return c.JSON(http.StatusOK, out)
}
