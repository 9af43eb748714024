// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/home-ledger/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite database used as the persistence
// layer during integration tests.
type Db struct {
	Conn   *gorm.DB
	models []any
}

// NewDb returns the shared in-memory database, migrating the full schema
// on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	models := []any{
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.AccountModel{},
		&model.CardModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.InvoiceOverrideModel{},
		&model.BudgetModel{},
		&model.HouseholdModel{},
		&model.HouseholdMemberModel{},
		&model.HouseholdInviteModel{},
		&model.EmailQueueModel{},
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{Conn: conn, models: models}
}

// Reset removes all rows so each scenario starts from a clean slate.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for %T: %w", m, err)
		}
	}
	return nil
}
