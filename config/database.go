package config

import (
	"Storefront/models"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func (d DatabaseConfig) dialector() (gorm.Dialector, error) {
	switch strings.ToLower(d.Driver) {
	case "", "mysql":
		dsn := d.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				d.Username,
				d.Password,
				d.Host,
				d.Port,
				d.Database,
			)
		}
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := d.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
				d.Username,
				d.Password,
				d.Host,
				d.Port,
				d.Database,
			)
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		dsn := d.DSN
		if dsn == "" {
			dsn = d.Database
		}
		if dsn == "" {
			dsn = ":memory:"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", d.Driver)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// OpenDatabase connects with the configured driver, applies pool limits
// and migrates the schema.
func OpenDatabase(d DatabaseConfig) (*gorm.DB, error) {
	dialector, err := d.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(d.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if d.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(d.MaxOpenConns)
	}
	if d.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(d.MaxIdleConns)
	}
	if d.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(d.ConnMaxLifetime)
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// OpenTestDatabase opens a private in-memory SQLite database. A single
// connection keeps the in-memory schema alive and serializes writers.
func OpenTestDatabase() (*gorm.DB, error) {
	return OpenDatabase(DatabaseConfig{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
}
