package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherAssignment places one observer in one committee for a date/period.
// Slot 1 is the first observer, slot 2 the second. The unique indexes are the
// constraints the old dashboard only faked with disabled dropdown options.
type TeacherAssignment struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	TeacherID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_ta_teacher_slot" json:"teacher_id"`
	CommitteeID string    `gorm:"type:uuid;not null;uniqueIndex:idx_ta_committee_slot" json:"committee_id"`
	ExamDate    string    `gorm:"size:10;not null;uniqueIndex:idx_ta_teacher_slot;uniqueIndex:idx_ta_committee_slot" json:"exam_date"`
	Period      int       `gorm:"not null;uniqueIndex:idx_ta_teacher_slot;uniqueIndex:idx_ta_committee_slot" json:"period"`
	Slot        int       `gorm:"default:1;uniqueIndex:idx_ta_committee_slot" json:"slot"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *TeacherAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
