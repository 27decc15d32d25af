package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalshehri/ExamControl/models"
)

func TestDefaultRoster(t *testing.T) {
	now := time.Date(2026, 5, 10, 8, 0, 0, 0, time.Local)
	students := []models.Student{
		{ID: "s1", StudentNo: "101"},
		{ID: "s2", StudentNo: "102"},
		{ID: "s3", StudentNo: "103"},
	}

	recs := defaultRoster(students, "cm1", "t1", now)
	require.Len(t, recs, 3)
	for i, r := range recs {
		assert.Equal(t, "cm1", r.CommitteeID)
		assert.Equal(t, students[i].ID, r.StudentID)
		assert.Equal(t, models.AttendancePresent, r.Status)
		assert.Equal(t, now, r.RecordedAt)
		require.NotNil(t, r.TeacherID)
		assert.Equal(t, "t1", *r.TeacherID)
	}

	// ids are assigned at insert time; each row gets its own
	seen := map[string]bool{}
	for i := range recs {
		require.NoError(t, recs[i].BeforeCreate(nil))
		require.NotEmpty(t, recs[i].ID)
		assert.False(t, seen[recs[i].ID])
		seen[recs[i].ID] = true
	}
}

func TestDefaultRosterNoTeacher(t *testing.T) {
	recs := defaultRoster([]models.Student{{ID: "s1"}}, "cm1", "", time.Now())
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].TeacherID)
}

func TestDefaultRosterEmpty(t *testing.T) {
	assert.Empty(t, defaultRoster(nil, "cm1", "t1", time.Now()))
}
