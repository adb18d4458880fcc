package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adilzhan/libra/internal/infrastructure/config"
)

// NewDB opens the MySQL connection, configures the pool and migrates the
// schema. SQL logging is enabled in debug mode only.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	return db, nil
}

// autoMigrate creates missing tables and columns. Production deployments
// should run versioned migrations instead.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&LibrarianModel{},
		&BookModel{},
		&ReaderModel{},
		&BorrowRecordModel{},
	)
}

// LibrarianModel is the GORM mapping for staff accounts. Domain entities do
// not carry GORM tags; the repositories convert between the two.
type LibrarianModel struct {
	ID           uint           `gorm:"primaryKey"`
	Email        string         `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string         `gorm:"size:255;not null"`
	IsLibrarian  bool           `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (LibrarianModel) TableName() string {
	return "librarians"
}

// BookModel is the GORM mapping for catalog entries. ISBN is a nullable
// pointer so several books may omit it while present values stay unique.
// The copies check constraint backs up the guarded update in UpdateCopies.
type BookModel struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"size:200;not null"`
	Author    string         `gorm:"size:100;not null"`
	Year      int            `gorm:"default:0"`
	ISBN      *string        `gorm:"uniqueIndex;size:20"`
	Copies    int            `gorm:"not null;default:1;check:copies >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (BookModel) TableName() string {
	return "books"
}

// ReaderModel is the GORM mapping for roster entries.
type ReaderModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:100;not null"`
	Email     string         `gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ReaderModel) TableName() string {
	return "readers"
}

// BorrowRecordModel is the GORM mapping for the borrow ledger. No soft
// delete: ledger entries are never deleted. The composite index serves the
// outstanding-record lookup on (book, reader, return_date IS NULL); the
// reader index serves the borrow-cap count.
type BorrowRecordModel struct {
	ID         uint       `gorm:"primaryKey"`
	BookID     uint       `gorm:"index:idx_active_pair;not null"`
	ReaderID   uint       `gorm:"index:idx_active_pair;index;not null"`
	BorrowDate time.Time  `gorm:"not null"`
	ReturnDate *time.Time `gorm:"index:idx_active_pair"`
}

func (BorrowRecordModel) TableName() string {
	return "borrow_records"
}
