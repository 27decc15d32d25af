package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepStates(t *testing.T) {
	tests := []struct {
		name   string
		status EnvelopeStatus
		want   [4]StepState
	}{
		{"pending", EnvelopePending, [4]StepState{StepActive, StepPending, StepPending, StepPending}},
		{"received", EnvelopeReceived, [4]StepState{StepDone, StepActive, StepPending, StepPending}},
		{"in_progress", EnvelopeInProgress, [4]StepState{StepDone, StepDone, StepActive, StepPending}},
		{"delivered", EnvelopeDelivered, [4]StepState{StepDone, StepDone, StepDone, StepDone}},
		// garbage collapses to not-started, silently
		{"unknown", EnvelopeStatus("cancelled"), [4]StepState{StepPending, StepPending, StepPending, StepPending}},
		{"empty", EnvelopeStatus(""), [4]StepState{StepPending, StepPending, StepPending, StepPending}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepStates(tt.status))
		})
	}
}

func TestCanAdvance(t *testing.T) {
	all := []EnvelopeStatus{EnvelopePending, EnvelopeReceived, EnvelopeInProgress, EnvelopeDelivered}
	for i, from := range all {
		for j, to := range all {
			got := from.CanAdvance(to)
			want := j == i+1
			assert.Equal(t, want, got, "%s -> %s", from, to)
		}
	}
	assert.False(t, EnvelopeStatus("cancelled").CanAdvance(EnvelopeReceived))
	assert.False(t, EnvelopeDelivered.CanAdvance(EnvelopeStatus("cancelled")))
}

func TestEnvelopeAdvance(t *testing.T) {
	now := time.Date(2026, 5, 10, 8, 15, 0, 0, time.Local)
	env := Envelope{EnvelopeNo: "ENV-001", CommitteeID: "c1", Status: EnvelopePending}

	require.NoError(t, env.Advance(EnvelopeReceived, "t1", now))
	assert.Equal(t, EnvelopeReceived, env.Status)
	require.NotNil(t, env.ReceivedAt)
	assert.Equal(t, now, *env.ReceivedAt)
	require.NotNil(t, env.ReceivedBy)
	assert.Equal(t, "t1", *env.ReceivedBy)

	// no skipping
	assert.ErrorIs(t, env.Advance(EnvelopeReceived, "", now), ErrInvalidTransition)

	require.NoError(t, env.Advance(EnvelopeInProgress, "", now))
	assert.Nil(t, env.DeliveredAt)

	later := now.Add(2 * time.Hour)
	require.NoError(t, env.Advance(EnvelopeDelivered, "", later))
	require.NotNil(t, env.DeliveredAt)
	assert.Equal(t, later, *env.DeliveredAt)
	require.NotNil(t, env.ExamEndedAt)
	assert.Equal(t, later, *env.ExamEndedAt)

	// terminal
	assert.ErrorIs(t, env.Advance(EnvelopeDelivered, "", later), ErrInvalidTransition)
	assert.ErrorIs(t, env.Advance(EnvelopeStatus("cancelled"), "", later), ErrUnknownStatus)
}

func TestMayTransition(t *testing.T) {
	tests := []struct {
		role string
		to   EnvelopeStatus
		want bool
	}{
		{RoleTeacher, EnvelopeReceived, true},
		{RoleTeacher, EnvelopeInProgress, true},
		{RoleTeacher, EnvelopeDelivered, false},
		{RoleControl, EnvelopeDelivered, true},
		{RoleControl, EnvelopeReceived, false},
		{RolePrincipal, EnvelopeReceived, true},
		{RolePrincipal, EnvelopeDelivered, true},
		{RoleCounselor, EnvelopeReceived, false},
		{RoleTeacher, EnvelopePending, false}, // nothing transitions into pending
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MayTransition(tt.role, tt.to), "%s -> %s", tt.role, tt.to)
	}
}
