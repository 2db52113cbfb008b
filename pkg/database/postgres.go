package database

import (
	"fmt"

	"github.com/Eursukkul/event-catalog/config"
	"github.com/Eursukkul/event-catalog/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry types cannot outlive their event: deleting an event with tiers is refused.
const entryTypeEventFK = `
DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_entry_type_event') THEN
		ALTER TABLE entry_type
			ADD CONSTRAINT fk_entry_type_event
			FOREIGN KEY (event_id) REFERENCES event (id) ON DELETE RESTRICT;
	END IF;
END
$$`

func NewPostgresDB(dsn string, pool config.PoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the event and entry_type tables. On Postgres it also installs
// the entry_type -> event foreign key.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Event{}, &models.EntryType{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(entryTypeEventFK).Error; err != nil {
			return fmt.Errorf("install entry_type foreign key: %w", err)
		}
	}
	return nil
}
