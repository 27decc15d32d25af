package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnvelopeStatus is the position of a sealed answer-sheet envelope in its
// handling pipeline. The progression is strictly forward:
//
//	pending → received → in_progress → delivered
//
// The old dashboard inferred this machine from string comparisons scattered
// across pages; here it lives with the model, next to its guards.
type EnvelopeStatus string

const (
	EnvelopePending    EnvelopeStatus = "pending"     // created, still with control
	EnvelopeReceived   EnvelopeStatus = "received"    // observer picked it up
	EnvelopeInProgress EnvelopeStatus = "in_progress" // exam running
	EnvelopeDelivered  EnvelopeStatus = "delivered"   // handed back to control
)

var statusOrder = map[EnvelopeStatus]int{
	EnvelopePending:    0,
	EnvelopeReceived:   1,
	EnvelopeInProgress: 2,
	EnvelopeDelivered:  3,
}

var (
	ErrUnknownStatus     = errors.New("unknown envelope status")
	ErrInvalidTransition = errors.New("invalid envelope transition")
)

func (s EnvelopeStatus) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// Next returns the single permitted forward step, if any.
func (s EnvelopeStatus) Next() (EnvelopeStatus, bool) {
	switch s {
	case EnvelopePending:
		return EnvelopeReceived, true
	case EnvelopeReceived:
		return EnvelopeInProgress, true
	case EnvelopeInProgress:
		return EnvelopeDelivered, true
	}
	return "", false
}

// CanAdvance reports whether to is exactly one step forward from s.
func (s EnvelopeStatus) CanAdvance(to EnvelopeStatus) bool {
	n, ok := s.Next()
	return ok && n == to
}

// MayTransition is the role guard for a transition target: observers take and
// open envelopes, control (or the principal) closes them out.
func MayTransition(role string, to EnvelopeStatus) bool {
	switch to {
	case EnvelopeReceived, EnvelopeInProgress:
		return role == RoleTeacher || role == RolePrincipal
	case EnvelopeDelivered:
		return role == RoleControl || role == RolePrincipal
	}
	return false
}

// StepState is the visual state of one of the four tracker steps.
type StepState string

const (
	StepDone    StepState = "done"
	StepActive  StepState = "active"
	StepPending StepState = "pending"
)

// StepStates derives the four tracker steps from the current status: every
// step before the current one is done, the current one active, the rest
// pending. Unrecognized statuses render as not-started rather than erroring.
func StepStates(status EnvelopeStatus) [4]StepState {
	out := [4]StepState{StepPending, StepPending, StepPending, StepPending}
	pos, ok := statusOrder[status]
	if !ok {
		return out
	}
	for i := 0; i < pos; i++ {
		out[i] = StepDone
	}
	if status == EnvelopeDelivered {
		out[3] = StepDone
	} else {
		out[pos] = StepActive
	}
	return out
}

// Envelope is the sealed packet of answer sheets for one committee.
type Envelope struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	EnvelopeNo  string         `gorm:"size:20;uniqueIndex;not null" json:"envelope_no"`
	CommitteeID string         `gorm:"type:uuid;not null;index" json:"committee_id"`
	Status      EnvelopeStatus `gorm:"size:20;default:'pending'" json:"status"`
	ReceivedBy  *string        `gorm:"type:uuid" json:"received_by"`
	ReceivedAt  *time.Time     `json:"received_at"`
	ExamEndedAt *time.Time     `json:"exam_ended_at"`
	DeliveredAt *time.Time     `json:"delivered_at"`
	PaperCount  int            `json:"paper_count"`
	Notes       string         `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (e *Envelope) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = EnvelopePending
	}
	return nil
}

// Advance moves the envelope one step forward and stamps the matching
// timestamp. Skips, repeats and backward moves are rejected, which is what
// keeps a stray direct write from wedging the pipeline out of order.
func (e *Envelope) Advance(to EnvelopeStatus, teacherID string, at time.Time) error {
	if !to.Valid() {
		return ErrUnknownStatus
	}
	if !e.Status.CanAdvance(to) {
		return ErrInvalidTransition
	}
	e.Status = to
	switch to {
	case EnvelopeReceived:
		e.ReceivedAt = &at
		if teacherID != "" {
			e.ReceivedBy = &teacherID
		}
	case EnvelopeDelivered:
		if e.ExamEndedAt == nil {
			e.ExamEndedAt = &at
		}
		e.DeliveredAt = &at
	}
	return nil
}
