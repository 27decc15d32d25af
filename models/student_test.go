package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeRank(t *testing.T) {
	tests := []struct {
		grade string
		want  int
	}{
		{"الأول الثانوي", 1},
		{"الثاني الثانوي", 2},
		{"الثالث الثانوي", 3},
		{"الثاني", 2},
		{"  الأول الثانوي  ", 1},
		{"رابع", 99},
		{"", 99},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeRank(tt.grade), "grade %q", tt.grade)
	}
}

func TestSortRoster(t *testing.T) {
	list := []Student{
		{StudentNo: "5", FullName: "e", Grade: "الثالث الثانوي", SeatNo: "1"},
		{StudentNo: "4", FullName: "d", Grade: "صف غير معروف", SeatNo: "1"},
		{StudentNo: "2", FullName: "b", Grade: "الأول الثانوي", SeatNo: "10"},
		{StudentNo: "1", FullName: "a", Grade: "الأول الثانوي", SeatNo: "2"},
		{StudentNo: "3", FullName: "c", Grade: "الثاني الثانوي", SeatNo: "1"},
	}
	SortRoster(list)

	var order []string
	for _, s := range list {
		order = append(order, s.StudentNo)
	}
	// rank asc, then seat as integer ("2" before "10"), unmapped grade last
	assert.Equal(t, []string{"1", "2", "3", "5", "4"}, order)
}

func TestSortRosterNonNumericSeatsLast(t *testing.T) {
	list := []Student{
		{StudentNo: "2", Grade: "الأول الثانوي", SeatNo: "غ"},
		{StudentNo: "1", Grade: "الأول الثانوي", SeatNo: "12"},
	}
	SortRoster(list)
	assert.Equal(t, "1", list[0].StudentNo)
	assert.Equal(t, "2", list[1].StudentNo)
}
