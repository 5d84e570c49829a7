package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this backend owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&shopModel{},
		&categoryModel{},
	)
}
