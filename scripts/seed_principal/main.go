// Seeds the default principal account (unified code 1234567890) so a fresh
// install has someone who can log in and create the rest of the staff.
package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/nalshehri/ExamControl/config"
	"github.com/nalshehri/ExamControl/database"
	"github.com/nalshehri/ExamControl/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	nationalID := os.Getenv("PRINCIPAL_NATIONAL_ID")
	if nationalID == "" {
		nationalID = "1234567890"
	}

	var existing models.Staff
	err := database.DB.Where("national_id = ?", nationalID).First(&existing).Error
	if err == nil {
		fmt.Println("principal already exists:", existing.FullName)
		os.Exit(0)
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query staff: %v", err)
	}

	rec := models.Staff{
		NationalID: nationalID,
		FullName:   "مدير النظام",
		Role:       models.RolePrincipal,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		log.Fatalf("failed to create principal: %v", err)
	}
	fmt.Println("principal created, unified code:", nationalID)
}
