package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamSchedule is one printed-timetable slot; independent of committees.
// The trailing name fields feed the signature block of the printed sheet.
type ExamSchedule struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	ExamDate      string    `gorm:"size:10;not null;index" json:"exam_date"` // YYYY-MM-DD
	DayName       string    `gorm:"size:20;not null" json:"day_name"`
	Grade         string    `gorm:"size:40;not null;index" json:"grade"`
	Period        int       `gorm:"not null" json:"period"`
	Subject       string    `gorm:"size:60;not null" json:"subject"`
	StartTime     string    `gorm:"size:5;not null" json:"start_time"`
	EndTime       string    `gorm:"size:5;not null" json:"end_time"`
	Duration      string    `gorm:"size:20" json:"duration"`
	Semester      string    `gorm:"size:40;default:'الفصل الدراسي الأول'" json:"semester"`
	AcademicYear  string    `gorm:"size:20;default:'١٤٤٧ هـ'" json:"academic_year"`
	Principal     string    `gorm:"size:80" json:"principal"`
	VicePrincipal string    `gorm:"size:80" json:"vice_principal"`
	Counselor     string    `gorm:"size:120" json:"counselor"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *ExamSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
