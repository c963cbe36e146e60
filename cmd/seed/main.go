// Seeds the server database with the default dataset, replacing whatever is
// there. Registrations are left alone; they only ever come from real
// submissions.
package main

import (
	"log"

	"github.com/csbs-dept/portal-api/internal/config"
	"github.com/csbs-dept/portal-api/internal/database"
	"github.com/csbs-dept/portal-api/internal/models"
	"github.com/csbs-dept/portal-api/internal/seed"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	db := database.Connect(cfg)

	clear := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{
		&models.Notice{}, &models.Event{}, &models.Faculty{},
		&models.Student{}, &models.Achievement{},
	} {
		if err := clear.Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear existing data: %v", err)
		}
	}
	log.Println("Cleared existing data")

	notices := seed.Notices()
	events := seed.Events()
	faculty := seed.Faculty()
	students := seed.Students()
	achievements := seed.Achievements()

	for _, batch := range []any{&notices, &events, &faculty, &students, &achievements} {
		if err := db.Create(batch).Error; err != nil {
			log.Fatalf("Failed to insert seed data: %v", err)
		}
	}

	log.Println("Seed data inserted successfully!")
	log.Printf("  Notices: %d", len(notices))
	log.Printf("  Events: %d", len(events))
	log.Printf("  Faculty: %d", len(faculty))
	log.Printf("  Students: %d", len(students))
	log.Printf("  Achievements: %d", len(achievements))
}
