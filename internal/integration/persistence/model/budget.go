package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_slot"`
	Area      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budgets_slot"`
	Category  string          `gorm:"type:varchar(50);uniqueIndex:idx_budgets_slot"`
	Month     int             `gorm:"type:integer;not null;uniqueIndex:idx_budgets_slot"`
	Year      int             `gorm:"type:integer;not null;uniqueIndex:idx_budgets_slot"`
	Planned   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Area:      m.Area,
		Category:  m.Category,
		Month:     time.Month(m.Month),
		Year:      m.Year,
		Planned:   m.Planned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAtPtr(m.DeletedAt),
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:        budget.ID,
		UserID:    budget.UserID,
		Area:      budget.Area,
		Category:  budget.Category,
		Month:     int(budget.Month),
		Year:      budget.Year,
		Planned:   budget.Planned,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
