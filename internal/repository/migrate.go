package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every persistence model
// owned by this package. Callers may pass additional models owned by
// feature packages.
func AutoMigrate(db *gorm.DB, extra ...any) error {
	models := []any{
		&userModel{},
		&repairServiceModel{},
		&weekdayHoursModel{},
		&blackoutDateModel{},
		&bookingModel{},
	}
	models = append(models, extra...)
	return db.AutoMigrate(models...)
}
