package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Appointment{},
		&models.BlockedTime{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := EnsureConstraints(db); err != nil {
		log.Fatalf("failed to create constraints: %v", err)
	}

	return db
}

// constraintStatements are idempotent; AutoMigrate cannot express them.
func constraintStatements() []string {
	active := "'PENDING','CONFIRMED'"

	return []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,

		addConstraint("appointments", "appointments_time_order",
			`CHECK (end_at > start_at)`),

		addConstraint("appointments", "appointments_status_valid",
			`CHECK (status IN ('PENDING','CONFIRMED','REJECTED','CANCELLED'))`),

		addConstraint("appointments", repository.ConstraintNoOverlap,
			fmt.Sprintf(`EXCLUDE USING gist (tstzrange(start_at, end_at, '[)') WITH &&) WHERE (status IN (%s))`, active)),

		// one active booking per phone is enforced by the repository under an
		// advisory lock: only future rows count, and index predicates cannot use now()
		`DROP INDEX IF EXISTS appointments_one_active_per_phone`,

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS appointments_active_phone ON appointments (customer_phone, start_at) WHERE status IN (%s)`,
			active),

		addConstraint("blocked_times", "blocked_times_time_order",
			`CHECK (end_at > start_at)`),
	}
}

// Postgres has no ADD CONSTRAINT IF NOT EXISTS.
func addConstraint(table, name, definition string) string {
	return fmt.Sprintf(`DO $$
BEGIN
    IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
        ALTER TABLE %s ADD CONSTRAINT %s %s;
    END IF;
END $$`, name, table, name, definition)
}

func EnsureConstraints(db *gorm.DB) error {
	for _, stmt := range constraintStatements() {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("exec %.60q: %w", stmt, err)
		}
	}
	return nil
}
