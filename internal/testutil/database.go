package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/models"
)

var dbSeq atomic.Int64

// allModels lists every GORM model migrated into test databases.
var allModels = []interface{}{
	&models.User{},
	&models.BankAccount{},
	&models.Wallet{},
	&models.Income{},
	&models.Expense{},
	&models.Transfer{},
	&models.Budget{},
	&models.AuditLog{},
}

// SetupTestDB opens a fresh in-memory SQLite database and migrates all
// models into it. Each call gets its own database so tests cannot see
// each other's rows.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:unit%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the connection behind a test database.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("access test database for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("close test database: %v", err)
	}
}
