package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Teacher struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	TeacherNo string    `gorm:"size:20;uniqueIndex;not null" json:"teacher_no"`
	FullName  string    `gorm:"size:120;not null" json:"full_name"`
	Phone     string    `gorm:"size:15;not null" json:"phone"`
	QRCode    string    `gorm:"type:text" json:"qr_code"` // payload JSON, filled on create
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
