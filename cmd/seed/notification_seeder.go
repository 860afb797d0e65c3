package main

import (
	"log"

	"pawhaven-be/internal/model"

	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_LOGIN",
			DisplayName: "Login Activity",
			Template:    "Welcome back, {full_name}",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "CONTACT_SUBMITTED",
			DisplayName: "New Contact Submission",
			Template:    "{name} ({email}) sent a message: {subject}",
			TargetType:  "ADMIN",
			IsActive:    true,
		},
	}

	for _, t := range types {
		err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error
		if err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("✅ Notification types seeded successfully.")
}
