package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /dashboard/stats — the front-page counters: entity totals, today's
// attendance split, envelope pipeline. One call instead of the old page's
// per-widget fetch fan-out.
func (h *DashboardHandler) Stats(c echo.Context) error {
	var students, teachers, committees, envelopes int64
	database.DB.Model(&models.Student{}).Count(&students)
	database.DB.Model(&models.Teacher{}).Where("is_active = ?", true).Count(&teachers)
	database.DB.Model(&models.Committee{}).Count(&committees)
	database.DB.Model(&models.Envelope{}).Count(&envelopes)

	today := time.Now().Format("2006-01-02")
	var todayIDs []string
	database.DB.Model(&models.Committee{}).Where("exam_date = ?", today).Pluck("id", &todayIDs)

	var present, absent, late int64
	if len(todayIDs) > 0 {
		database.DB.Model(&models.Attendance{}).
			Where("committee_id IN ? AND status = ?", todayIDs, models.AttendancePresent).Count(&present)
		database.DB.Model(&models.Attendance{}).
			Where("committee_id IN ? AND status = ?", todayIDs, models.AttendanceAbsent).Count(&absent)
		database.DB.Model(&models.Attendance{}).
			Where("committee_id IN ? AND status = ?", todayIDs, models.AttendanceLate).Count(&late)
	}

	pipeline := map[string]int64{}
	for _, s := range []models.EnvelopeStatus{
		models.EnvelopePending, models.EnvelopeReceived, models.EnvelopeInProgress, models.EnvelopeDelivered,
	} {
		var n int64
		database.DB.Model(&models.Envelope{}).Where("status = ?", s).Count(&n)
		pipeline[string(s)] = n
	}

	var unreadAlerts int64
	database.DB.Model(&models.Alert{}).Where("is_read = ?", false).Count(&unreadAlerts)

	attended := present + absent + late
	presentPct := 0.0
	if attended > 0 {
		presentPct = float64(present) * 100 / float64(attended)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"students":   students,
		"teachers":   teachers,
		"committees": committees,
		"envelopes":  envelopes,
		"today": map[string]any{
			"date":        today,
			"present":     present,
			"absent":      absent,
			"late":        late,
			"present_pct": presentPct,
		},
		"envelope_pipeline": pipeline,
		"unread_alerts":     unreadAlerts,
	})
}
