package config

import (
	"os"

	"aircond-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the file-backed SQLite store named by DB_PATH
// (default aircond.db) and runs the idempotent schema migration.
func ConnectDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "aircond.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	if err := Migrate(db); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	DB = db
}

// Migrate creates the five relations if they do not exist yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.InventoryItem{},
		&models.ServiceHistory{},
	)
}

// Seed inserts the fixed starter rows, skipping any that already exist:
// one admin account, sample inventory parts and one sample customer.
func Seed(db *gorm.DB) error {
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	admin := models.User{
		Username: "admin",
		Password: adminPassword,
		FullName: "System Administrator",
		Role:     "admin",
	}
	if err := db.Where("username = ?", admin.Username).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	parts := []models.InventoryItem{
		{Name: "Air Filter", PartNumber: "AF-500", Category: "filter", Stock: 50, UnitPrice: 25.0, Supplier: "FilterCo"},
		{Name: "Compressor Capacitor", PartNumber: "CC-220", Category: "capacitor", Stock: 30, UnitPrice: 120.0, Supplier: "ElectroParts"},
		{Name: "R410A Gas (1kg)", PartNumber: "R410A-1", Category: "gas", Stock: 100, UnitPrice: 80.0, Supplier: "GasSupply"},
		{Name: "Coil Cleaner", PartNumber: "CC-500", Category: "other", Stock: 200, UnitPrice: 15.0, Supplier: "Chemicals Inc."},
	}
	for i := range parts {
		if err := db.Where("part_number = ?", parts[i].PartNumber).FirstOrCreate(&parts[i]).Error; err != nil {
			return err
		}
	}

	customer := models.Customer{
		Name:    "Ahmad Zaki",
		Phone:   "012-3456789",
		Email:   "ahmad@example.com",
		Address: "Subang Jaya, Selangor",
		Notes:   "Regular client, prefers weekend slots.",
	}
	return db.Where("phone = ?", customer.Phone).FirstOrCreate(&customer).Error
}
