package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

func ValidAttendanceStatus(s string) bool {
	return s == AttendancePresent || s == AttendanceAbsent || s == AttendanceLate
}

// One row per (committee, student); marks overwrite in place.
type Attendance struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	CommitteeID string    `gorm:"type:uuid;not null;uniqueIndex:idx_att_committee_student" json:"committee_id"`
	StudentID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_att_committee_student" json:"student_id"`
	TeacherID   *string   `gorm:"type:uuid" json:"teacher_id"`
	Status      string    `gorm:"size:10;not null" json:"status"`
	Notes       string    `gorm:"type:text" json:"notes"`
	RecordedAt  time.Time `json:"recorded_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	return nil
}
