package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff roles. Role gates route groups (see middlewares) — not just menus.
const (
	RolePrincipal = "PRINCIPAL"
	RoleTeacher   = "TEACHER"
	RoleCounselor = "COUNSELOR"
	RoleControl   = "CONTROL"
)

func ValidRole(r string) bool {
	switch r {
	case RolePrincipal, RoleTeacher, RoleCounselor, RoleControl:
		return true
	}
	return false
}

type Staff struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	NationalID string `gorm:"size:20;uniqueIndex;not null" json:"national_id"`
	FullName   string `gorm:"size:120;not null" json:"full_name"`
	Phone      string `gorm:"size:15" json:"phone"`
	Role       string `gorm:"size:20;not null" json:"role"`
	// Optional bcrypt PIN. Staff without one log in with the unified code alone.
	PinHash   string    `gorm:"size:80" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
