package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

// ReportHandler serves the data behind the print surfaces: the three old SQL
// views plus the door-sign and observer-report layouts. Rendering (and the
// browser print dialog) stays on the client.
type ReportHandler struct{}

func NewReportHandler() *ReportHandler { return &ReportHandler{} }

// GET /reports/committee-summary — v_committee_summary.
func (h *ReportHandler) CommitteeSummary(c echo.Context) error {
	return NewAttendanceHandler().Summary(c)
}

// GET /reports/absent-students — v_absent_students: every absent mark with
// the student's contact details, for the counselor's call list.
func (h *ReportHandler) AbsentStudents(c echo.Context) error {
	var rows []models.Attendance
	if err := database.DB.Where("status = ?", models.AttendanceAbsent).
		Order("recorded_at ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	out := make([]map[string]any, 0, len(rows))
	for _, a := range rows {
		var s models.Student
		if err := database.DB.First(&s, "id = ?", a.StudentID).Error; err != nil {
			continue
		}
		var cm models.Committee
		committeeName := ""
		if err := database.DB.First(&cm, "id = ?", a.CommitteeID).Error; err == nil {
			committeeName = cm.Name
		}
		out = append(out, map[string]any{
			"student_id":     s.ID,
			"student_no":     s.StudentNo,
			"full_name":      s.FullName,
			"grade":          s.Grade,
			"classroom":      s.Classroom,
			"phone":          s.Phone,
			"committee_name": committeeName,
			"recorded_at":    a.RecordedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /reports/envelope-tracking — v_envelope_tracking.
func (h *ReportHandler) EnvelopeTracking(c echo.Context) error {
	return NewEnvelopeHandler().List(c)
}

// GET /reports/door-signs?committee_id= — one page per committee: the room
// header plus the roster in seat order.
func (h *ReportHandler) DoorSigns(c echo.Context) error {
	tx := database.DB.Model(&models.Committee{})
	if cid := strings.TrimSpace(c.QueryParam("committee_id")); cid != "" {
		tx = tx.Where("id = ?", cid)
	}
	var committees []models.Committee
	if err := tx.Order("name ASC").Find(&committees).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	out := make([]map[string]any, 0, len(committees))
	for _, cm := range committees {
		var roster []models.Student
		if err := database.DB.Where("committee_name = ?", cm.Name).Find(&roster).Error; err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		models.SortRoster(roster)
		out = append(out, map[string]any{"committee": cm, "students": roster})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /reports/observer-assignments?exam_date= — the signed observer sheet:
// assignments with names resolved, grouped by period.
func (h *ReportHandler) ObserverAssignments(c echo.Context) error {
	tx := database.DB.Model(&models.TeacherAssignment{})
	if d := strings.TrimSpace(c.QueryParam("exam_date")); d != "" {
		tx = tx.Where("exam_date = ?", d)
	}
	var rows []models.TeacherAssignment
	if err := tx.Order("exam_date ASC, period ASC, slot ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	out := make([]map[string]any, 0, len(rows))
	for _, a := range rows {
		var t models.Teacher
		teacherName := ""
		if err := database.DB.Select("full_name").First(&t, "id = ?", a.TeacherID).Error; err == nil {
			teacherName = t.FullName
		}
		var cm models.Committee
		committeeName, subject := "", ""
		if err := database.DB.First(&cm, "id = ?", a.CommitteeID).Error; err == nil {
			committeeName = cm.Name
			subject = cm.Subject
		}
		out = append(out, map[string]any{
			"exam_date":      a.ExamDate,
			"period":         a.Period,
			"slot":           a.Slot,
			"teacher_name":   teacherName,
			"committee_name": committeeName,
			"subject":        subject,
		})
	}
	return c.JSON(http.StatusOK, out)
}
