package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LateThreshold is how far into an exam absence and unclaimed-envelope
// alerts start firing.
const LateThreshold = 15 * time.Minute

// Committee statuses.
const (
	CommitteeScheduled = "scheduled"
	CommitteeActive    = "active"
	CommitteeCompleted = "completed"
	CommitteeCancelled = "cancelled"
)

// Committee is an exam room: a group of students sitting one subject at a
// fixed date/time, observed by one or two teachers.
type Committee struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:60;not null;index" json:"name"`
	Location  string    `gorm:"size:120" json:"location"`
	Subject   string    `gorm:"size:60" json:"subject"`
	TeacherID *string   `gorm:"type:uuid" json:"teacher_id"`
	ExamDate  string    `gorm:"size:10" json:"exam_date"`  // YYYY-MM-DD
	StartTime string    `gorm:"size:5" json:"start_time"`  // HH:MM
	EndTime   string    `gorm:"size:5" json:"end_time"`    // HH:MM
	RoomNo    string    `gorm:"size:10" json:"room_no"`
	Status    string    `gorm:"size:20;default:'scheduled'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Committee) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// StartedAt resolves the committee's scheduled start on its exam date.
// Returns false when either field is missing or malformed.
func (c *Committee) StartedAt() (time.Time, bool) {
	if c.ExamDate == "" || c.StartTime == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", c.ExamDate+" "+c.StartTime, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
