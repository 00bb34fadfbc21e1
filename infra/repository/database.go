package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite" // Sqlite driver based on CGO
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CurrentSchemaVersion is the schema version this build declares. Bump
// it together with additive model changes; new columns pick up their
// zero or tagged defaults during migration. Renames and destructive
// transforms are not supported.
const CurrentSchemaVersion = 1

// schemaVersion tracks the migrations applied to the store file.
type schemaVersion struct {
	ID        uint `gorm:"primaryKey"`
	Version   int  `gorm:"not null"`
	AppliedAt time.Time
}

func (schemaVersion) TableName() string { return "schema_versions" }

// Open opens (creating if absent) the embedded store and migrates it to
// the current schema version. The returned handle is restricted to a
// single connection: SQLite allows one writer at a time and the whole
// application shares this handle, so every transaction serializes on
// it. Opening the same path again yields an equivalent handle, which
// makes Open idempotent within the process.
func Open(path string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(db, logger); err != nil {
		return nil, fmt.Errorf("migrate store %q: %w", path, err)
	}
	return db, nil
}

// migrate applies the version-gated additive migration: when the
// on-disk version is older than CurrentSchemaVersion, missing tables
// and columns are added with their defaults and the version row is
// bumped, all in one transaction.
func migrate(db *gorm.DB, logger *slog.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&schemaVersion{}); err != nil {
			return err
		}

		stored := 0
		var latest schemaVersion
		err := tx.Order("version desc").First(&latest).Error
		switch {
		case err == nil:
			stored = latest.Version
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fresh store
		default:
			return err
		}

		if stored >= CurrentSchemaVersion {
			return nil
		}

		logger.Info("migrating store schema", "from", stored, "to", CurrentSchemaVersion)
		if err := tx.AutoMigrate(&Fish{}, &Weighing{}); err != nil {
			return err
		}
		return tx.Create(&schemaVersion{
			Version:   CurrentSchemaVersion,
			AppliedAt: time.Now().UTC(),
		}).Error
	})
}
