// Package scheduler runs the periodic sweeps the old dashboard spread across
// per-page polling timers. One cron process owns the clock; the pages just
// read the alerts table.
package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/nalshehri/ExamControl/models"
)

type Scheduler struct {
	db   *gorm.DB
	cron *cron.Cron
	now  func() time.Time
}

func New(db *gorm.DB) *Scheduler {
	return &Scheduler{db: db, cron: cron.New(), now: time.Now}
}

// Start registers the minute sweep and kicks off the cron loop.
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc("* * * * *", s.Sweep); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// alertDue reports whether a committee that started at start has crossed the
// alert threshold by now.
func alertDue(start, now time.Time) bool {
	return !start.IsZero() && now.Sub(start) >= models.LateThreshold
}

// Sweep runs both checks once. Exported so a deploy hook or test can force a
// pass outside the cron cadence.
func (s *Scheduler) Sweep() {
	now := s.now()
	today := now.Format("2006-01-02")

	var committees []models.Committee
	if err := s.db.Where("exam_date = ?", today).Find(&committees).Error; err != nil {
		log.Printf("scheduler: load committees: %v", err)
		return
	}

	for _, cm := range committees {
		start, ok := cm.StartedAt()
		if !ok || !alertDue(start, now) {
			continue
		}
		s.absenceCheck(cm, today)
		s.envelopeDelayCheck(cm, today)
	}
}

// absenceCheck fires one red alert per (committee, date) when the committee
// has absentees 15 minutes in. The dedupe key in the alerts table replaces
// the old in-memory alertSent flag, which reset on every page mount.
func (s *Scheduler) absenceCheck(cm models.Committee, today string) {
	var absent int64
	if err := s.db.Model(&models.Attendance{}).
		Where("committee_id = ? AND status = ?", cm.ID, models.AttendanceAbsent).
		Count(&absent).Error; err != nil || absent == 0 {
		return
	}

	key := fmt.Sprintf("absence:%s:%s", cm.ID, today)
	if s.alreadyFired(key) {
		return
	}
	s.fire(models.Alert{
		Type:      models.AlertRed,
		Title:     "غياب في لجنة " + cm.Name,
		Body:      fmt.Sprintf("%d طالب غائب بعد 15 دقيقة من بداية الاختبار", absent),
		DedupeKey: key,
	})
}

// envelopeDelayCheck flags a committee whose envelope is still pending
// 15 minutes into the exam.
func (s *Scheduler) envelopeDelayCheck(cm models.Committee, today string) {
	var pending int64
	if err := s.db.Model(&models.Envelope{}).
		Where("committee_id = ? AND status = ?", cm.ID, models.EnvelopePending).
		Count(&pending).Error; err != nil || pending == 0 {
		return
	}

	key := fmt.Sprintf("envelope_delay:%s:%s", cm.ID, today)
	if s.alreadyFired(key) {
		return
	}
	s.fire(models.Alert{
		Type:      models.AlertGold,
		Title:     "تأخر استلام مظروف لجنة " + cm.Name,
		Body:      "لم يُستلم مظروف اللجنة بعد مرور 15 دقيقة من بداية الاختبار",
		DedupeKey: key,
	})
}

func (s *Scheduler) alreadyFired(key string) bool {
	var n int64
	if err := s.db.Model(&models.Alert{}).Where("dedupe_key = ?", key).Count(&n).Error; err != nil {
		log.Printf("scheduler: dedupe query: %v", err)
		return true // fail closed
	}
	return n > 0
}

func (s *Scheduler) fire(a models.Alert) {
	if err := s.db.Create(&a).Error; err != nil {
		log.Printf("scheduler: insert alert: %v", err)
	}
}
