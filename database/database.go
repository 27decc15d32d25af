package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nalshehri/ExamControl/config"
	"github.com/nalshehri/ExamControl/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Staff{},
		&models.Student{},
		&models.Teacher{},
		&models.Committee{},
		&models.Envelope{},
		&models.Attendance{},
		&models.ExamSchedule{},
		&models.TeacherAssignment{},
		&models.Alert{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
