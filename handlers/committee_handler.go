package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

type CommitteeHandler struct{}

func NewCommitteeHandler() *CommitteeHandler { return &CommitteeHandler{} }

type committeePayload struct {
	Name      string  `json:"name" validate:"required,max=60"`
	Location  string  `json:"location" validate:"omitempty,max=120"`
	Subject   string  `json:"subject" validate:"omitempty,max=60"`
	TeacherID *string `json:"teacher_id"`
	ExamDate  string  `json:"exam_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime string  `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	RoomNo    string  `json:"room_no" validate:"omitempty,max=10"`
	Status    string  `json:"status" validate:"omitempty,oneof=scheduled active completed cancelled"`
}

type committeeRow struct {
	models.Committee
	TeacherName  string `json:"teacher_name"`
	StudentCount int64  `json:"student_count"`
	PresentCount int64  `json:"present_count"`
}

// GET /committees — list with roster and attendance aggregates.
func (h *CommitteeHandler) List(c echo.Context) error {
	var committees []models.Committee
	if err := database.DB.Order("name ASC").Find(&committees).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	out := make([]committeeRow, 0, len(committees))
	for _, cm := range committees {
		row := committeeRow{Committee: cm}
		if cm.TeacherID != nil {
			var t models.Teacher
			if err := database.DB.Select("full_name").First(&t, "id = ?", *cm.TeacherID).Error; err == nil {
				row.TeacherName = t.FullName
			}
		}
		database.DB.Model(&models.Student{}).Where("committee_name = ?", cm.Name).Count(&row.StudentCount)
		database.DB.Model(&models.Attendance{}).
			Where("committee_id = ? AND status = ?", cm.ID, models.AttendancePresent).
			Count(&row.PresentCount)
		out = append(out, row)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /committees/:id
func (h *CommitteeHandler) Get(c echo.Context) error {
	var cm models.Committee
	if err := database.DB.First(&cm, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, cm)
}

// POST /committees
func (h *CommitteeHandler) Create(c echo.Context) error {
	var req committeePayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.Name = strings.TrimSpace(req.Name)

	rec := models.Committee{
		Name:      req.Name,
		Location:  strings.TrimSpace(req.Location),
		Subject:   strings.TrimSpace(req.Subject),
		TeacherID: req.TeacherID,
		ExamDate:  req.ExamDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		RoomNo:    strings.TrimSpace(req.RoomNo),
		Status:    req.Status,
	}
	if rec.Status == "" {
		rec.Status = models.CommitteeScheduled
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /committees/:id
func (h *CommitteeHandler) Update(c echo.Context) error {
	var rec models.Committee
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var req committeePayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	rec.Name = strings.TrimSpace(req.Name)
	rec.Location = strings.TrimSpace(req.Location)
	rec.Subject = strings.TrimSpace(req.Subject)
	rec.TeacherID = req.TeacherID
	rec.ExamDate = req.ExamDate
	rec.StartTime = req.StartTime
	rec.EndTime = req.EndTime
	rec.RoomNo = strings.TrimSpace(req.RoomNo)
	if req.Status != "" {
		rec.Status = req.Status
	}
	if err := database.DB.Save(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /committees/:id
func (h *CommitteeHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Committee{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true})
}
