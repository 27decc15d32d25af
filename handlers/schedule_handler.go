package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

// ScheduleHandler serves the printed exam timetable.
type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler { return &ScheduleHandler{} }

type scheduleSlot struct {
	ExamDate  string `json:"exam_date" validate:"required,datetime=2006-01-02"`
	DayName   string `json:"day_name" validate:"required,max=20"`
	Period    int    `json:"period" validate:"required,min=1,max=3"`
	Subject   string `json:"subject" validate:"required,max=60"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
	Duration  string `json:"duration" validate:"omitempty,max=20"`
}

type saveScheduleReq struct {
	Grade         string         `json:"grade" validate:"required,max=40"`
	Semester      string         `json:"semester" validate:"omitempty,max=40"`
	AcademicYear  string         `json:"academic_year" validate:"omitempty,max=20"`
	Principal     string         `json:"principal" validate:"omitempty,max=80"`
	VicePrincipal string         `json:"vice_principal" validate:"omitempty,max=80"`
	Counselor     string         `json:"counselor" validate:"omitempty,max=120"`
	Slots         []scheduleSlot `json:"slots" validate:"required,min=1,dive"`
}

// GET /schedules?grade=
func (h *ScheduleHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.ExamSchedule{})
	if g := strings.TrimSpace(c.QueryParam("grade")); g != "" {
		tx = tx.Where("grade = ?", g)
	}
	var rows []models.ExamSchedule
	if err := tx.Order("exam_date ASC, period ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// PUT /schedules — replaces one grade's timetable wholesale, in a
// transaction. The editor always submits the full grid.
func (h *ScheduleHandler) Save(c echo.Context) error {
	var req saveScheduleReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.Grade = strings.TrimSpace(req.Grade)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grade = ?", req.Grade).Delete(&models.ExamSchedule{}).Error; err != nil {
			return err
		}
		for _, s := range req.Slots {
			rec := models.ExamSchedule{
				ExamDate:      s.ExamDate,
				DayName:       strings.TrimSpace(s.DayName),
				Grade:         req.Grade,
				Period:        s.Period,
				Subject:       strings.TrimSpace(s.Subject),
				StartTime:     s.StartTime,
				EndTime:       s.EndTime,
				Duration:      s.Duration,
				Semester:      req.Semester,
				AcademicYear:  req.AcademicYear,
				Principal:     req.Principal,
				VicePrincipal: req.VicePrincipal,
				Counselor:     req.Counselor,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"saved": len(req.Slots)})
}

// DELETE /schedules?grade=
func (h *ScheduleHandler) Delete(c echo.Context) error {
	grade := strings.TrimSpace(c.QueryParam("grade"))
	if grade == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_GRADE"})
	}
	if err := database.DB.Where("grade = ?", grade).Delete(&models.ExamSchedule{}).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true})
}
