package models

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentNo     string    `gorm:"size:20;uniqueIndex;not null" json:"student_no"` // national/student id
	FullName      string    `gorm:"size:120;not null" json:"full_name"`
	Grade         string    `gorm:"size:40;not null" json:"grade"` // Arabic year label, e.g. "الأول الثانوي"
	GradeCode     string    `gorm:"size:10" json:"grade_code"`
	Classroom     string    `gorm:"size:10;not null" json:"classroom"`
	CommitteeName string    `gorm:"size:60;index" json:"committee_name"`
	SeatNo        string    `gorm:"size:10" json:"seat_no"`
	Phone         string    `gorm:"size:15" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// unmappedGradeRank sorts students with an unrecognized grade label last.
const unmappedGradeRank = 99

var gradeRanks = map[string]int{
	"الأول الثانوي":  1,
	"الثاني الثانوي": 2,
	"الثالث الثانوي": 3,
	// bare forms show up in older imports
	"الأول":  1,
	"الثاني": 2,
	"الثالث": 3,
}

// GradeRank maps the free-text grade label to its ordinal year.
func GradeRank(grade string) int {
	if r, ok := gradeRanks[strings.TrimSpace(grade)]; ok {
		return r
	}
	return unmappedGradeRank
}

func seatNum(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1 << 30
	}
	return n
}

// SortRoster orders a committee roster the way seating charts are printed:
// grade rank, then seat number as an integer, then student number.
func SortRoster(list []Student) {
	sort.SliceStable(list, func(i, j int) bool {
		ri, rj := GradeRank(list[i].Grade), GradeRank(list[j].Grade)
		if ri != rj {
			return ri < rj
		}
		si, sj := seatNum(list[i].SeatNo), seatNum(list[j].SeatNo)
		if si != sj {
			return si < sj
		}
		return list[i].StudentNo < list[j].StudentNo
	})
}
