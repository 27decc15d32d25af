// One-shot migration from the hosted Supabase store the old dashboard wrote
// to. Pulls each table through the legacy REST client and inserts rows that
// are not already present, keyed by their natural identifiers.
package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/nalshehri/ExamControl/client"
	"github.com/nalshehri/ExamControl/config"
	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

func main() {
	cfg := config.Load()
	if cfg.LegacyRESTURL == "" || cfg.LegacyRESTKey == "" {
		log.Fatal("set LEGACY_REST_URL and LEGACY_REST_KEY")
	}
	database.Connect(cfg)
	cl := client.New(cfg.LegacyRESTURL, cfg.LegacyRESTKey)

	fmt.Printf("students:   %d imported\n", importRows(cl, "students", func(raw json.RawMessage) bool {
		var rec models.Student
		if json.Unmarshal(raw, &rec) != nil || rec.StudentNo == "" {
			return false
		}
		var dup models.Student
		if database.DB.Where("student_no = ?", rec.StudentNo).First(&dup).Error == nil {
			return false
		}
		rec.ID = "" // let the local DB assign its own keys
		return database.DB.Create(&rec).Error == nil
	}))

	fmt.Printf("teachers:   %d imported\n", importRows(cl, "teachers", func(raw json.RawMessage) bool {
		var rec models.Teacher
		if json.Unmarshal(raw, &rec) != nil || rec.TeacherNo == "" {
			return false
		}
		var dup models.Teacher
		if database.DB.Where("teacher_no = ?", rec.TeacherNo).First(&dup).Error == nil {
			return false
		}
		rec.ID = ""
		return database.DB.Create(&rec).Error == nil
	}))

	fmt.Printf("staff:      %d imported\n", importRows(cl, "staff", func(raw json.RawMessage) bool {
		var rec models.Staff
		if json.Unmarshal(raw, &rec) != nil || rec.NationalID == "" || !models.ValidRole(rec.Role) {
			return false
		}
		var dup models.Staff
		if database.DB.Where("national_id = ?", rec.NationalID).First(&dup).Error == nil {
			return false
		}
		rec.ID = ""
		return database.DB.Create(&rec).Error == nil
	}))

	// Committees keep their upstream UUIDs: envelopes and attendance
	// reference them by id.
	fmt.Printf("committees: %d imported\n", importRows(cl, "committees", func(raw json.RawMessage) bool {
		var rec models.Committee
		if json.Unmarshal(raw, &rec) != nil || rec.ID == "" || rec.Name == "" {
			return false
		}
		var dup models.Committee
		if database.DB.First(&dup, "id = ?", rec.ID).Error == nil {
			return false
		}
		return database.DB.Create(&rec).Error == nil
	}))

	fmt.Printf("envelopes:  %d imported\n", importRows(cl, "envelopes", func(raw json.RawMessage) bool {
		var rec models.Envelope
		if json.Unmarshal(raw, &rec) != nil || rec.EnvelopeNo == "" {
			return false
		}
		// garbage statuses from direct writes collapse to pending
		if !rec.Status.Valid() {
			rec.Status = models.EnvelopePending
		}
		var dup models.Envelope
		if database.DB.Where("envelope_no = ?", rec.EnvelopeNo).First(&dup).Error == nil {
			return false
		}
		return database.DB.Create(&rec).Error == nil
	}))
}

func importRows(cl *client.Client, table string, insert func(json.RawMessage) bool) int {
	rows := cl.Request(table, "GET", nil, "?select=*")
	if rows == nil {
		log.Printf("%s: fetch failed, skipping", table)
		return 0
	}
	n := 0
	for _, raw := range rows {
		if insert(raw) {
			n++
		}
	}
	return n
}
