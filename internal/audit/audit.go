// Package audit persists a record of each operation the tool performs. The
// trail is strictly best-effort: a failure to record never alters the result
// of the operation itself.
package audit

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hallowell/descrypt/internal/core"
)

// Record describes one completed or failed operation.
type Record struct {
	ID          uint64 `gorm:"primaryKey"`
	Action      string `gorm:"not null"`
	Mode        string `gorm:"not null"`
	InputPath   string
	OutputPath  string
	InputBytes  int64
	OutputBytes int64
	Succeeded   bool
	Error       string
	DurationMS  int64
	CreatedAt   time.Time
}

// Initialize opens the audit database described by cfg and ensures the
// schema is in place.
func Initialize(cfg *core.Config, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Audit.Engine) {
	case "sqlite":
		dialector = sqlite.Open(cfg.QualifiedPath(cfg.Audit.Filename))
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL())
	default:
		return nil, fmt.Errorf("unsupported audit database engine: %s", cfg.Audit.Engine)
	}

	// By default only log errors but enable full SQL query prints-to-console
	// with debug mode.
	log := logger.Default.LogMode(logger.Error)
	if debug {
		log = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: log})
	if err != nil {
		return nil, fmt.Errorf("error connecting to audit database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("error auto migrating audit database: %w", err)
	}
	return db, nil
}

// CreateRecord persists the Record to the audit database.
func CreateRecord(db *gorm.DB, record *Record) error {
	return db.Create(record).Error
}

// RecentRecords returns up to limit records, newest first.
func RecentRecords(db *gorm.DB, limit int) ([]Record, error) {
	var records []Record
	if err := db.Order("id desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
