package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

// QR payload types. The codes themselves are rendered client-side; this side
// only produces and consumes the embedded JSON strings.
const (
	QRTypeTeacher         = "teacher"
	QRTypeCommittee       = "committee"
	QRTypeControlHandover = "control_handover"
)

type QRPayload struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	No   string `json:"no,omitempty"`
	Name string `json:"name,omitempty"`
}

var (
	errMalformedQR = errors.New("malformed qr payload")
	errUnknownQR   = errors.New("unknown qr payload type")
)

// ParseQRPayload decodes a scanned payload string and rejects anything that
// is not one of the three known shapes.
func ParseQRPayload(s string) (QRPayload, error) {
	var p QRPayload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return QRPayload{}, errMalformedQR
	}
	switch p.Type {
	case QRTypeTeacher, QRTypeCommittee, QRTypeControlHandover:
		return p, nil
	}
	return QRPayload{}, errUnknownQR
}

func TeacherQRPayload(t models.Teacher) string {
	b, _ := json.Marshal(QRPayload{Type: QRTypeTeacher, No: t.TeacherNo, Name: t.FullName})
	return string(b)
}

func CommitteeQRPayload(cm models.Committee) string {
	b, _ := json.Marshal(QRPayload{Type: QRTypeCommittee, ID: cm.ID, Name: cm.Name})
	return string(b)
}

func ControlHandoverQRPayload() string {
	b, _ := json.Marshal(QRPayload{Type: QRTypeControlHandover})
	return string(b)
}

type QRHandler struct{}

func NewQRHandler() *QRHandler { return &QRHandler{} }

// GET /qr/teachers — payload strings for the printable teacher badges.
func (h *QRHandler) Teachers(c echo.Context) error {
	var rows []models.Teacher
	if err := database.DB.Where("is_active = ?", true).Order("full_name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	out := make([]map[string]any, 0, len(rows))
	for _, t := range rows {
		payload := t.QRCode
		if payload == "" {
			payload = TeacherQRPayload(t)
		}
		out = append(out, map[string]any{"teacher_id": t.ID, "name": t.FullName, "payload": payload})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /qr/committees — committee door codes plus the shared handover code.
func (h *QRHandler) Committees(c echo.Context) error {
	var rows []models.Committee
	if err := database.DB.Order("name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	out := make([]map[string]any, 0, len(rows))
	for _, cm := range rows {
		out = append(out, map[string]any{"committee_id": cm.ID, "name": cm.Name, "payload": CommitteeQRPayload(cm)})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"committees":       out,
		"control_handover": ControlHandoverQRPayload(),
	})
}

type scanReq struct {
	Payload     string `json:"payload" validate:"required"`
	CommitteeID string `json:"committee_id"`
}

// POST /qr/scan — branches on the payload type:
//   - teacher: that teacher takes the committee's pending envelope
//   - committee: opens the committee's roster session
//   - control_handover: the committee's running envelope goes back to control
func (h *QRHandler) Scan(c echo.Context) error {
	var req scanReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := ParseQRPayload(strings.TrimSpace(req.Payload))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_QR"})
	}
	role, _ := c.Get("role").(string)

	switch p.Type {
	case QRTypeTeacher:
		if req.CommitteeID == "" {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_COMMITTEE"})
		}
		var t models.Teacher
		if err := database.DB.Where("teacher_no = ?", p.No).First(&t).Error; err != nil {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "UNKNOWN_TEACHER"})
		}
		env, herr := advanceCommitteeEnvelope(req.CommitteeID, models.EnvelopeReceived, role, t.ID)
		if herr != nil {
			return herr
		}
		return c.JSON(http.StatusOK, map[string]any{"action": "envelope_received", "envelope": env})

	case QRTypeCommittee:
		var cm models.Committee
		if err := database.DB.First(&cm, "id = ?", p.ID).Error; err != nil {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "UNKNOWN_COMMITTEE"})
		}
		var roster []models.Student
		if err := database.DB.Where("committee_name = ?", cm.Name).Find(&roster).Error; err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		models.SortRoster(roster)
		return c.JSON(http.StatusOK, map[string]any{"action": "committee_session", "committee": cm, "students": roster})

	case QRTypeControlHandover:
		if req.CommitteeID == "" {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_COMMITTEE"})
		}
		env, herr := advanceCommitteeEnvelope(req.CommitteeID, models.EnvelopeDelivered, role, "")
		if herr != nil {
			return herr
		}
		return c.JSON(http.StatusOK, map[string]any{"action": "envelope_delivered", "envelope": env})
	}
	return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_QR"})
}

// advanceCommitteeEnvelope finds the committee's envelope sitting exactly one
// step before the target status and advances it.
func advanceCommitteeEnvelope(committeeID string, to models.EnvelopeStatus, role, teacherID string) (*models.Envelope, *echo.HTTPError) {
	if !models.MayTransition(role, to) {
		return nil, echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}
	var env models.Envelope
	tx := database.DB.Where("committee_id = ?", committeeID)
	switch to {
	case models.EnvelopeReceived:
		tx = tx.Where("status = ?", models.EnvelopePending)
	case models.EnvelopeDelivered:
		tx = tx.Where("status = ?", models.EnvelopeInProgress)
	}
	if err := tx.Order("envelope_no ASC").First(&env).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NO_ENVELOPE_IN_STATE"})
	}
	if err := env.Advance(to, teacherID, time.Now()); err != nil {
		return nil, echo.NewHTTPError(http.StatusConflict, map[string]any{"error": "INVALID_TRANSITION"})
	}
	if err := database.DB.Save(&env).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return &env, nil
}
