package config

import (
	"log"
	"os"

	"luxpackers-admin/internal/adapters/persistence/models"
	"luxpackers-admin/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedMasterData seeds initial data: the default admin account and the
// country master list. Existing rows are never touched.
func SeedMasterData(db *gorm.DB) error {
	if err := seedAdminAccount(db); err != nil {
		return err
	}

	if err := seedCountries(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

// seedAdminAccount creates the bootstrap admin credential record when the
// employees_access table is empty. The password comes from ADMIN_PASSWORD
// (default "changeme") and is stored bcrypt-hashed only.
func seedAdminAccount(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.EmployeeAccess{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		plain = "changeme"
		log.Println("⚠️ ADMIN_PASSWORD not set, seeding admin account with default password")
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return err
	}

	admin := models.EmployeeAccess{
		Username:     "admin",
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("✅ Default admin account seeded")
	return nil
}

// seedCountries seeds the country master rows used by the packages pages
func seedCountries(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	countries := []models.Country{
		{Name: "France"},
		{Name: "Indonesia"},
		{Name: "India"},
		{Name: "Singapore"},
		{Name: "Thailand"},
	}

	for _, country := range countries {
		if err := db.Create(&country).Error; err != nil {
			return err
		}
	}

	return nil
}
