package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alert types are severity colors, kept as the dashboard shows them.
const (
	AlertRed   = "red"
	AlertGold  = "gold"
	AlertGreen = "green"
	AlertBlue  = "blue"
)

func ValidAlertType(t string) bool {
	return t == AlertRed || t == AlertGold || t == AlertGreen || t == AlertBlue
}

type Alert struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Type      string    `gorm:"size:10;not null" json:"type"`
	Title     string    `gorm:"size:160;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	// Sweep-generated alerts set this to dedupe per (source, committee, date).
	DedupeKey string    `gorm:"size:120;index" json:"-"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
