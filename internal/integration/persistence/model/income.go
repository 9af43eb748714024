package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Value        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Received     bool            `gorm:"default:false"`
	ReceivedDate *time.Time      `gorm:"type:date"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:           m.ID,
		UserID:       m.UserID,
		Description:  m.Description,
		Value:        m.Value,
		Date:         m.Date,
		AccountID:    m.AccountID,
		Received:     m.Received,
		ReceivedDate: m.ReceivedDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAtPtr(m.DeletedAt),
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:           income.ID,
		UserID:       income.UserID,
		Description:  income.Description,
		Value:        income.Value,
		Date:         income.Date,
		AccountID:    income.AccountID,
		Received:     income.Received,
		ReceivedDate: income.ReceivedDate,
		CreatedAt:    income.CreatedAt,
		UpdatedAt:    income.UpdatedAt,
	}
}
