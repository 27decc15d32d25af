package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

type EnvelopeHandler struct{}

func NewEnvelopeHandler() *EnvelopeHandler { return &EnvelopeHandler{} }

type envelopeRow struct {
	models.Envelope
	CommitteeName string              `json:"committee_name"`
	Subject       string              `json:"subject"`
	TeacherName   string              `json:"teacher_name"`
	Steps         [4]models.StepState `json:"steps"`
}

// GET /envelopes?status= — the tracking timeline, committee and observer
// names joined in, with the four-step tracker state derived per row.
func (h *EnvelopeHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Envelope{})
	if s := strings.TrimSpace(c.QueryParam("status")); s != "" {
		tx = tx.Where("status = ?", s)
	}
	var envs []models.Envelope
	if err := tx.Order("envelope_no ASC").Find(&envs).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	out := make([]envelopeRow, 0, len(envs))
	for _, e := range envs {
		row := envelopeRow{Envelope: e, Steps: models.StepStates(e.Status)}
		var cm models.Committee
		if err := database.DB.First(&cm, "id = ?", e.CommitteeID).Error; err == nil {
			row.CommitteeName = cm.Name
			row.Subject = cm.Subject
		}
		if e.ReceivedBy != nil {
			var t models.Teacher
			if err := database.DB.Select("full_name").First(&t, "id = ?", *e.ReceivedBy).Error; err == nil {
				row.TeacherName = t.FullName
			}
		}
		out = append(out, row)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /envelopes/stats — pipeline counters plus the delay count (still
// pending 15 minutes into the exam).
func (h *EnvelopeHandler) Stats(c echo.Context) error {
	counts := map[string]int64{}
	for _, s := range []models.EnvelopeStatus{
		models.EnvelopePending, models.EnvelopeReceived, models.EnvelopeInProgress, models.EnvelopeDelivered,
	} {
		var n int64
		database.DB.Model(&models.Envelope{}).Where("status = ?", s).Count(&n)
		counts[string(s)] = n
	}

	var delayed int64
	var pending []models.Envelope
	database.DB.Where("status = ?", models.EnvelopePending).Find(&pending)
	now := time.Now()
	for _, e := range pending {
		var cm models.Committee
		if err := database.DB.First(&cm, "id = ?", e.CommitteeID).Error; err != nil {
			continue
		}
		if start, ok := cm.StartedAt(); ok && now.Sub(start) >= models.LateThreshold {
			delayed++
		}
	}

	total := counts["pending"] + counts["received"] + counts["in_progress"] + counts["delivered"]
	return c.JSON(http.StatusOK, map[string]any{
		"total":     total,
		"pending":   counts["pending"],
		"received":  counts["received"],
		"active":    counts["in_progress"],
		"delivered": counts["delivered"],
		"delayed":   delayed,
	})
}

type envelopePayload struct {
	EnvelopeNo  string `json:"envelope_no" validate:"required,max=20"`
	CommitteeID string `json:"committee_id" validate:"required,uuid"`
	PaperCount  int    `json:"paper_count" validate:"omitempty,min=0"`
	Notes       string `json:"notes"`
}

// POST /envelopes
func (h *EnvelopeHandler) Create(c echo.Context) error {
	var req envelopePayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	var dup models.Envelope
	if err := database.DB.Where("envelope_no = ?", strings.TrimSpace(req.EnvelopeNo)).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "ENVELOPE_NO_EXISTS"})
	}
	rec := models.Envelope{
		EnvelopeNo:  strings.TrimSpace(req.EnvelopeNo),
		CommitteeID: req.CommitteeID,
		PaperCount:  req.PaperCount,
		Notes:       req.Notes,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// POST /envelopes/generate — one pending envelope per committee that has
// none yet, numbered ENV-001 onward.
func (h *EnvelopeHandler) Generate(c echo.Context) error {
	var committees []models.Committee
	if err := database.DB.Order("name ASC").Find(&committees).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	var existing int64
	database.DB.Model(&models.Envelope{}).Count(&existing)

	created := 0
	seq := int(existing)
	for _, cm := range committees {
		var n int64
		database.DB.Model(&models.Envelope{}).Where("committee_id = ?", cm.ID).Count(&n)
		if n > 0 {
			continue
		}
		seq++
		rec := models.Envelope{
			EnvelopeNo:  fmt.Sprintf("ENV-%03d", seq),
			CommitteeID: cm.ID,
		}
		if err := database.DB.Create(&rec).Error; err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		created++
	}
	return c.JSON(http.StatusOK, map[string]any{"created": created})
}

// PUT /envelopes/:id — paper count and notes only; status moves through the
// transition endpoints, never through a blind update.
func (h *EnvelopeHandler) Update(c echo.Context) error {
	var rec models.Envelope
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	var req struct {
		PaperCount *int    `json:"paper_count"`
		Notes      *string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.PaperCount != nil {
		rec.PaperCount = *req.PaperCount
	}
	if req.Notes != nil {
		rec.Notes = *req.Notes
	}
	if err := database.DB.Save(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// DELETE /envelopes/:id
func (h *EnvelopeHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Envelope{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": true})
}

// POST /envelopes/:id/receive
func (h *EnvelopeHandler) Receive(c echo.Context) error {
	var req struct {
		TeacherID string `json:"teacher_id"`
	}
	_ = c.Bind(&req)
	return h.transition(c, models.EnvelopeReceived, req.TeacherID)
}

// POST /envelopes/:id/start
func (h *EnvelopeHandler) Start(c echo.Context) error {
	return h.transition(c, models.EnvelopeInProgress, "")
}

// POST /envelopes/:id/deliver
func (h *EnvelopeHandler) Deliver(c echo.Context) error {
	return h.transition(c, models.EnvelopeDelivered, "")
}

func (h *EnvelopeHandler) transition(c echo.Context, to models.EnvelopeStatus, teacherID string) error {
	role, _ := c.Get("role").(string)
	if !models.MayTransition(role, to) {
		return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}
	var rec models.Envelope
	if err := database.DB.First(&rec, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err := rec.Advance(to, teacherID, time.Now()); err != nil {
		return c.JSON(http.StatusConflict, map[string]any{
			"error": "INVALID_TRANSITION", "from": rec.Status, "to": to,
		})
	}
	if err := database.DB.Save(&rec).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}
