package database

import (
	"log"

	"movie_booking/config"
	"movie_booking/constants"
	"movie_booking/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the bootstrap admin account if it does not exist yet.
func SeedData(db *gorm.DB) {
	adminEmail := config.ConfigDefault("ADMIN_EMAIL", "admin@example.com")
	adminPassword := config.ConfigDefault("ADMIN_PASSWORD", "changeme123")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}

	admin := model.User{
		Email:     adminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "User",
		Role:      constants.ROLE_ADMIN,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
	}
}
