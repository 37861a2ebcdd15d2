// Package testutil provides shared helpers for package tests: an
// in-memory database with the full schema and seed helpers for
// reference data.
package testutil

import (
	"testing"

	"github.com/Master1941/foodgram-project-react/db"
	"github.com/Master1941/foodgram-project-react/model"
	"github.com/Master1941/foodgram-project-react/util"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenTestDB creates a fresh in-memory database with the full schema.
// TranslateError is on, matching the production connection, so
// constraint violations surface as gorm.ErrDuplicatedKey.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gormDB
}

// SeedUser inserts a user with a hashed default password ("Secret123")
// and returns the row.
func SeedUser(t *testing.T, gormDB *gorm.DB, username string) *model.User {
	t.Helper()

	hash, err := util.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &model.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  hash,
	}
	if err := gormDB.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

// SeedTag inserts a tag and returns the row.
func SeedTag(t *testing.T, gormDB *gorm.DB, name, slug string) *model.Tag {
	t.Helper()

	tag := &model.Tag{Name: name, Color: "#49B64E", Slug: slug}
	if err := gormDB.Create(tag).Error; err != nil {
		t.Fatalf("failed to seed tag %s: %v", slug, err)
	}
	return tag
}

// SeedIngredient inserts an ingredient and returns the row.
func SeedIngredient(t *testing.T, gormDB *gorm.DB, name, unit string) *model.Ingredient {
	t.Helper()

	ing := &model.Ingredient{Name: name, MeasurementUnit: unit}
	if err := gormDB.Create(ing).Error; err != nil {
		t.Fatalf("failed to seed ingredient %s: %v", name, err)
	}
	return ing
}

// PNGDataURI is a valid one-pixel PNG, base64 encoded, for recipe
// payloads in tests.
const PNGDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="
