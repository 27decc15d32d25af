package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

// AssignmentHandler manages the observer grid: per exam date and period, up
// to two observing teachers per committee.
type AssignmentHandler struct{}

func NewAssignmentHandler() *AssignmentHandler { return &AssignmentHandler{} }

type assignmentItem struct {
	CommitteeID string `json:"committee_id" validate:"required,uuid"`
	TeacherID   string `json:"teacher_id" validate:"required,uuid"`
	Slot        int    `json:"slot" validate:"required,oneof=1 2"`
}

type saveAssignmentsReq struct {
	ExamDate string           `json:"exam_date" validate:"required,datetime=2006-01-02"`
	Period   int              `json:"period" validate:"required,min=1,max=3"`
	Items    []assignmentItem `json:"items" validate:"dive"`
}

// findDoubleBooked returns the first teacher that appears in more than one
// cell of the grid, if any. One teacher, one committee, per date/period.
func findDoubleBooked(items []assignmentItem) (string, bool) {
	seen := map[string]struct{}{}
	for _, it := range items {
		if _, dup := seen[it.TeacherID]; dup {
			return it.TeacherID, true
		}
		seen[it.TeacherID] = struct{}{}
	}
	return "", false
}

// findSlotCollision flags (committee, slot) pairs used twice in one save.
func findSlotCollision(items []assignmentItem) (string, bool) {
	seen := map[string]struct{}{}
	for _, it := range items {
		key := it.CommitteeID + "#" + strconv.Itoa(it.Slot)
		if _, dup := seen[key]; dup {
			return it.CommitteeID, true
		}
		seen[key] = struct{}{}
	}
	return "", false
}

// takenTeacherIDs collects teachers already holding a cell in (date, period),
// skipping the caller's own cell so an unchanged save never conflicts with
// itself. This is the server-side version of the disabled dropdown options.
func takenTeacherIDs(assignments []models.TeacherAssignment, examDate string, period int, exceptCommittee string, exceptSlot int) map[string]bool {
	out := map[string]bool{}
	for _, a := range assignments {
		if a.ExamDate != examDate || a.Period != period {
			continue
		}
		if a.CommitteeID == exceptCommittee && a.Slot == exceptSlot {
			continue
		}
		out[a.TeacherID] = true
	}
	return out
}

// GET /assignments?exam_date=&period=
func (h *AssignmentHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.TeacherAssignment{})
	if d := strings.TrimSpace(c.QueryParam("exam_date")); d != "" {
		tx = tx.Where("exam_date = ?", d)
	}
	if p := atoiOr(strings.TrimSpace(c.QueryParam("period")), 0); p > 0 {
		tx = tx.Where("period = ?", p)
	}
	var rows []models.TeacherAssignment
	if err := tx.Order("exam_date ASC, period ASC, slot ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /assignments/available?exam_date=&period=&committee_id=&slot= — active
// teachers still free in that date/period. committee_id+slot name the cell
// being edited, whose current holder stays listed.
func (h *AssignmentHandler) Available(c echo.Context) error {
	examDate := strings.TrimSpace(c.QueryParam("exam_date"))
	period := atoiOr(strings.TrimSpace(c.QueryParam("period")), 0)
	if examDate == "" || period == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_DATE_OR_PERIOD"})
	}

	var assignments []models.TeacherAssignment
	if err := database.DB.Where("exam_date = ? AND period = ?", examDate, period).Find(&assignments).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	taken := takenTeacherIDs(assignments, examDate, period,
		strings.TrimSpace(c.QueryParam("committee_id")), atoiOr(c.QueryParam("slot"), 0))

	var teachers []models.Teacher
	if err := database.DB.Where("is_active = ?", true).Order("full_name ASC").Find(&teachers).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	out := make([]models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if !taken[t.ID] {
			out = append(out, t)
		}
	}
	return c.JSON(http.StatusOK, out)
}

// PUT /assignments — replace-set save for one (date, period): the old rows
// go and the grid comes back in, all inside one transaction. The old
// dashboard did the delete and the re-insert as separate REST calls and
// could lose the whole grid in between.
func (h *AssignmentHandler) Save(c echo.Context) error {
	var req saveAssignmentsReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if tid, dup := findDoubleBooked(req.Items); dup {
		return c.JSON(http.StatusConflict, map[string]any{"error": "TEACHER_DOUBLE_BOOKED", "teacher_id": tid})
	}
	if cid, dup := findSlotCollision(req.Items); dup {
		return c.JSON(http.StatusConflict, map[string]any{"error": "SLOT_TAKEN", "committee_id": cid})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_date = ? AND period = ?", req.ExamDate, req.Period).
			Delete(&models.TeacherAssignment{}).Error; err != nil {
			return err
		}
		for _, it := range req.Items {
			rec := models.TeacherAssignment{
				TeacherID:   it.TeacherID,
				CommitteeID: it.CommitteeID,
				ExamDate:    req.ExamDate,
				Period:      req.Period,
				Slot:        it.Slot,
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
	return c.JSON(http.StatusOK, map[string]any{"saved": len(req.Items)})
}
