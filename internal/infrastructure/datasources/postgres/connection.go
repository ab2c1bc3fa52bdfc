package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"captura-leads.backend/internal/config"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	sqlOpen = sql.Open
	dbPing  = func(db *sql.DB) error { return db.Ping() }
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}
}

// NewConnection opens the configured database. Postgres connections go
// through lib/pq and are pinged before GORM takes over the pool.
func NewConnection(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.Driver == "sqlite" {
		return NewSQLiteConnection(cfg.SQLitePath)
	}

	sqlDB, err := sqlOpen("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := dbPing(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	gcfg := gormConfig()
	gcfg.DisableAutomaticPing = true
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// NewSQLiteConnection opens a file backed SQLite database for local runs
func NewSQLiteConnection(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
