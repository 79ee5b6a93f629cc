package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"circuithouse-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "circuithouse_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, runs migrations and stores the
// handle in the package-level DB.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	// Parent tables first so FK creation never trips on ordering.
	return DB.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.Pricing{},
		&models.Room{},
		&models.Guest{},
		&models.CheckoutSummary{},
		&models.FoodOrder{},
		&models.OtherCost{},
	)
}

// SeedDatabase ensures the rows a fresh install needs: one admin account,
// the hotel profile and a starter rate card.
func SeedDatabase() error {
	var adminCount int64
	if err := DB.Model(&models.Admin{}).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		password := EnvOrDefault("SEED_ADMIN_PASSWORD", "changeme123")
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.Admin{
			FullName: "System Administrator",
			Username: EnvOrDefault("SEED_ADMIN_USERNAME", "admin"),
			Password: string(hashed),
		}
		if err := DB.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("default admin account created")
	}

	var settingCount int64
	if err := DB.Model(&models.HotelSetting{}).Count(&settingCount).Error; err != nil {
		return err
	}
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:    EnvOrDefault("HOTEL_NAME", "Circuit House"),
			Address: "",
			Phone:   "",
			Email:   "",
		}
		if err := DB.Create(&setting).Error; err != nil {
			return err
		}
	}

	var pricingCount int64
	if err := DB.Model(&models.Pricing{}).Count(&pricingCount).Error; err != nil {
		return err
	}
	if pricingCount == 0 {
		starter := []models.Pricing{
			{Category: "Standard", DailyRate: 1200, ExtraBedRate: 300},
			{Category: "Deluxe", DailyRate: 2000, ExtraBedRate: 400},
			{Category: "Suite", DailyRate: 3500, ExtraBedRate: 500},
		}
		if err := DB.Create(&starter).Error; err != nil {
			return err
		}
		log.Println("starter rate card seeded")
	}

	return nil
}
