package config

import (
	"fmt"
	"os"

	"github.com/weiyuc/charityevents/internal/helpers"
	"github.com/weiyuc/charityevents/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 10
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxOpenConns int
	DBMaxIdleConns int
	LogLevel       string
	CORSOrigin     string
}

func LoadConfig() (*Config, error) {
	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", defaultMaxIdleConns)
	if err != nil {
		return nil, err
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "charityevents_db"),
		DBMaxOpenConns: maxOpen,
		DBMaxIdleConns: maxIdle,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigin:     os.Getenv("CORS_ORIGIN"),
	}, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Bounded pool shared by all requests; callers queue when it is
	// exhausted rather than failing.
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	err = db.AutoMigrate(&models.Organization{}, &models.Category{}, &models.Event{})
	if err != nil {
		return nil, err
	}

	seedCategories(db)

	return db, nil
}

// Events and organizations are managed by an external administrative path;
// only the category vocabulary is seeded here.
func seedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Fun Run", Description: "Community runs raising money per kilometre."},
		{Name: "Gala Dinner", Description: "Formal fundraising dinners with guest speakers."},
		{Name: "Charity Auction", Description: "Silent and live auctions of donated goods."},
		{Name: "Benefit Concert", Description: "Live music events with proceeds donated."},
	}

	for _, category := range categories {
		var existing models.Category
		result := db.Where("category_name = ?", category.Name).First(&existing)
		if result.Error != nil {
			db.Create(&category)
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := helpers.StringToInt(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return parsed, nil
}
