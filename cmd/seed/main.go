package main

import (
	"log"
	"os"

	"pawhaven-be/internal/model"
	"pawhaven-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding PawHaven data...")

	seedAdminUser(db)
	seedCategories(db)
	seedPets(db)
	seedSiteContent(db)
	SeedNotificationTypes(db)

	color.Green("Seeding completed!")
}

func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@pawhaven.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin user '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "PawHaven Admin",
		Role:         "admin",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin user: %v", err)
		return
	}
	log.Printf("Created admin user: %s", email)
}

func seedCategories(db *gorm.DB) {
	categories := []model.Category{
		{Name: "Dogs", Slug: "dogs", Description: strPtr("Loyal companions of every size"), DisplayOrder: 1, IsActive: true},
		{Name: "Cats", Slug: "cats", Description: strPtr("Independent friends for calm homes"), DisplayOrder: 2, IsActive: true},
		{Name: "Special Needs", Slug: "special-needs", Description: strPtr("Pets that need a little extra care"), DisplayOrder: 3, IsActive: true},
	}

	for _, c := range categories {
		var existing model.Category
		if err := db.Where("slug = ?", c.Slug).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating category '%s': %v", c.Slug, err)
		} else {
			log.Printf("Created category: %s", c.Name)
		}
	}
}

func seedPets(db *gorm.DB) {
	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count > 0 {
		log.Println("Pets already present, skipping demo pets...")
		return
	}

	pets := []model.Product{
		{
			Name: "Bella", Species: "Dog", Breed: strPtr("Golden Retriever"), Age: intPtr(3),
			Gender: "female", Price: 150, Category: "dogs", Status: "available",
			Description: strPtr("Friendly and great with kids."),
			Location:    strPtr("Springfield Shelter"),
		},
		{
			Name: "Milo", Species: "Cat", Breed: strPtr("Tabby"), Age: intPtr(2),
			Gender: "male", Price: 80, Category: "cats", Status: "available",
			Description: strPtr("Quiet lap cat, gets along with other cats."),
			Location:    strPtr("Springfield Shelter"),
		},
		{
			Name: "Rocky", Species: "Dog", Breed: strPtr("Beagle Mix"), Age: intPtr(7),
			Gender: "male", Price: 60, Category: "special-needs", Status: "available",
			Description:    strPtr("Senior boy looking for a calm home."),
			MedicalHistory: strPtr("Arthritis, daily medication."),
			Location:       strPtr("Riverside Rescue"),
		},
	}

	for _, p := range pets {
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating pet '%s': %v", p.Name, err)
		} else {
			log.Printf("Created pet: %s", p.Name)
		}
	}
}

func seedSiteContent(db *gorm.DB) {
	settings := []model.Setting{
		{Key: "site_name", Value: "PawHaven"},
		{Key: "contact_email", Value: "hello@pawhaven.local"},
		{Key: "contact_phone", Value: "+1 555 0100"},
		{Key: "address", Value: "12 Shelter Lane, Springfield"},
	}
	for _, s := range settings {
		var existing model.Setting
		if err := db.Where("key = ?", s.Key).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			log.Printf("Error creating setting '%s': %v", s.Key, err)
		}
	}

	team := []model.TeamMember{
		{Name: "Dana Fields", Role: "Shelter Director", Bio: strPtr("Running shelters for 15 years."), DisplayOrder: 1, IsActive: true},
		{Name: "Sam Ortega", Role: "Veterinarian", Bio: strPtr("Keeps every resident healthy."), DisplayOrder: 2, IsActive: true},
	}
	for _, t := range team {
		var existing model.TeamMember
		if err := db.Where("name = ?", t.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			log.Printf("Error creating team member '%s': %v", t.Name, err)
		}
	}

	history := []model.HistoryEvent{
		{Year: 2015, Title: "PawHaven founded", Description: strPtr("Started with three kennels and a dream."), DisplayOrder: 1, IsActive: true},
		{Year: 2020, Title: "1000th adoption", Description: strPtr("Our milestone adoption went to a retired greyhound."), DisplayOrder: 2, IsActive: true},
	}
	for _, h := range history {
		var existing model.HistoryEvent
		if err := db.Where("title = ?", h.Title).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&h).Error; err != nil {
			log.Printf("Error creating history event '%s': %v", h.Title, err)
		}
	}

	log.Println("Site content seeded.")
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
