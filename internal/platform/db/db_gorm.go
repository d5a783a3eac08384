// Package db opens the GORM database connection and runs schema migration.
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	postentity "blog_backend/internal/feature/posts/domain/entity"
	userentity "blog_backend/internal/feature/users/domain/entity"
)

// Open connects to the database selected by driver and migrates the schema.
//
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey on every supported driver; the adapters rely on that
// to make the storage layer the authority on uniqueness.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch driver {
	case "postgres":
		dial = postgres.Open(dsn)
	case "sqlite":
		dial = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&userentity.User{},
		&postentity.Post{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return db, nil
}
