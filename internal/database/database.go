package database

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/models"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the configured database. The returned handle is shared by all
// services and must be closed with Close on shutdown.
func Connect(cfg config.Database, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqliteDialector(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	if cfg.Driver == config.DriverSQLite {
		// every sqlite connection to ":memory:" is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("database connected", zap.String("driver", cfg.Driver))
	return db, nil
}

// sqliteDriverName is go-sqlite3 with lower() replaced by a Unicode-aware
// version, so case-insensitive search folds "É" the way postgres does.
const sqliteDriverName = "sqlite3_unicode"

var registerSQLite sync.Once

func sqliteDialector(path string) gorm.Dialector {
	registerSQLite.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", strings.ToLower, true)
			},
		})
	})
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: path})
}

func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	start := time.Now()
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	log.Info("database migrated", zap.Duration("took", time.Since(start)))
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
