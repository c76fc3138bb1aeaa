package config

import (
	"log"
	"os"
	"strconv"

	"brew-and-bite-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "a_super_secret_key_for_your_cafe_app"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AdminEmail is promoted to admin when it verifies its signup
func AdminEmail() string {
	return getEnv("ADMIN_EMAIL", "")
}

// WeatherURL is the Open-Meteo current-weather endpoint for the café's
// coordinates (Kolkata)
func WeatherURL() string {
	return getEnv("WEATHER_URL",
		"https://api.open-meteo.com/v1/forecast?latitude=22.57&longitude=88.36&current_weather=true")
}

// SMTP settings for outbound mail. An empty EMAIL_USER disables sending.
func SMTPHost() string { return getEnv("MAIL_SERVER", "smtp.gmail.com") }

func SMTPPort() int {
	port, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		log.Printf("Invalid MAIL_PORT, using 587: %v", err)
		return 587
	}
	return port
}

func SMTPUser() string { return os.Getenv("EMAIL_USER") }
func SMTPPass() string { return os.Getenv("EMAIL_PASS") }

// MailSender is the From address; defaults to the SMTP user
func MailSender() string { return getEnv("MAIL_SENDER", SMTPUser()) }

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "cafe.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Feedback{},
		&models.Booking{},
		&models.DineInOrder{},
		&models.OnlineOrder{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
