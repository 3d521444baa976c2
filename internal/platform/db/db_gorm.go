// Package db opens the relational record store.
package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	accountsentity "nexuscare_backend/internal/feature/accounts/domain/entity"
	appointmentsentity "nexuscare_backend/internal/feature/appointments/domain/entity"
	doctorsentity "nexuscare_backend/internal/feature/doctors/domain/entity"
)

// OpenDB connects to the relational backend and returns the handle together
// with the engine name reported by /api/status.
//
// When DATABASE_URL is set a Postgres connection is used, retrying for up to
// 60 seconds so the service survives a database that is still booting.
// Otherwise it falls back to an embedded SQLite file (SQLITE_PATH, default
// ./nexuscare.db).
//
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func OpenDB() (*gorm.DB, string) {
	cfg := &gorm.Config{TranslateError: true}

	var (
		db     *gorm.DB
		engine string
		err    error
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		engine = "PostgreSQL"
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(gpostgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		engine = "SQLite3"
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "./nexuscare.db"
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") != "false" {
		if err := db.AutoMigrate(
			&accountsentity.User{},
			&doctorsentity.Doctor{},
			&appointmentsentity.Appointment{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db, engine
}
