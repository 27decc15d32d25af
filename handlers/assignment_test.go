package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nalshehri/ExamControl/models"
)

func TestFindDoubleBooked(t *testing.T) {
	tests := []struct {
		name  string
		items []assignmentItem
		dup   string
		want  bool
	}{
		{"empty", nil, "", false},
		{"distinct", []assignmentItem{
			{CommitteeID: "a", TeacherID: "t1", Slot: 1},
			{CommitteeID: "a", TeacherID: "t2", Slot: 2},
			{CommitteeID: "b", TeacherID: "t3", Slot: 1},
		}, "", false},
		{"same teacher two committees", []assignmentItem{
			{CommitteeID: "a", TeacherID: "t1", Slot: 1},
			{CommitteeID: "b", TeacherID: "t1", Slot: 1},
		}, "t1", true},
		{"same teacher both slots of one committee", []assignmentItem{
			{CommitteeID: "a", TeacherID: "t1", Slot: 1},
			{CommitteeID: "a", TeacherID: "t1", Slot: 2},
		}, "t1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, dup := findDoubleBooked(tt.items)
			assert.Equal(t, tt.want, dup)
			assert.Equal(t, tt.dup, id)
		})
	}
}

func TestFindSlotCollision(t *testing.T) {
	ok := []assignmentItem{
		{CommitteeID: "a", TeacherID: "t1", Slot: 1},
		{CommitteeID: "a", TeacherID: "t2", Slot: 2},
	}
	_, dup := findSlotCollision(ok)
	assert.False(t, dup)

	bad := append(ok, assignmentItem{CommitteeID: "a", TeacherID: "t3", Slot: 2})
	id, dup := findSlotCollision(bad)
	assert.True(t, dup)
	assert.Equal(t, "a", id)
}

func TestTakenTeacherIDs(t *testing.T) {
	assignments := []models.TeacherAssignment{
		{TeacherID: "t1", CommitteeID: "a", ExamDate: "2026-05-10", Period: 1, Slot: 1},
		{TeacherID: "t2", CommitteeID: "a", ExamDate: "2026-05-10", Period: 1, Slot: 2},
		{TeacherID: "t3", CommitteeID: "b", ExamDate: "2026-05-10", Period: 1, Slot: 1},
		{TeacherID: "t4", CommitteeID: "a", ExamDate: "2026-05-10", Period: 2, Slot: 1}, // other period
		{TeacherID: "t5", CommitteeID: "a", ExamDate: "2026-05-11", Period: 1, Slot: 1}, // other date
	}

	// editing committee b, slot 1: t3 is my own cell, t1/t2 are taken
	taken := takenTeacherIDs(assignments, "2026-05-10", 1, "b", 1)
	assert.True(t, taken["t1"])
	assert.True(t, taken["t2"])
	assert.False(t, taken["t3"])
	assert.False(t, taken["t4"])
	assert.False(t, taken["t5"])

	// editing the other slot of committee a: t2 stays taken, t1 excluded
	taken = takenTeacherIDs(assignments, "2026-05-10", 1, "a", 1)
	assert.False(t, taken["t1"])
	assert.True(t, taken["t2"])
	assert.True(t, taken["t3"])

	// fresh cell: everyone in (date, period) is taken
	taken = takenTeacherIDs(assignments, "2026-05-10", 1, "", 0)
	assert.Len(t, taken, 3)
}
