package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAlertDue(t *testing.T) {
	start := time.Date(2026, 5, 10, 8, 0, 0, 0, time.Local)
	tests := []struct {
		name  string
		start time.Time
		now   time.Time
		want  bool
	}{
		{"before start", start, start.Add(-time.Minute), false},
		{"just started", start, start, false},
		{"14 minutes in", start, start.Add(14 * time.Minute), false},
		{"exactly 15 minutes", start, start.Add(15 * time.Minute), true},
		{"an hour in", start, start.Add(time.Hour), true},
		{"zero start", time.Time{}, start, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alertDue(tt.start, tt.now))
		})
	}
}
