package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. The recurrence
// descriptor is flattened into nullable columns; RecurrenceType selects which
// of them are meaningful.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Area        string          `gorm:"type:varchar(50);index"`
	Category    string          `gorm:"type:varchar(50);index"`
	Value       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Status      string          `gorm:"type:varchar(10);not null"`
	PaymentDate *time.Time      `gorm:"type:date"`
	CardID      *uuid.UUID      `gorm:"type:uuid;index"`
	AccountID   *uuid.UUID      `gorm:"type:uuid;index"`

	RecurrenceType    string     `gorm:"type:varchar(15);not null;default:'none'"`
	RecurrenceEndDate *time.Time `gorm:"type:date"`
	Installments      *int       `gorm:"type:integer"`
	FrequencyUnit     string     `gorm:"type:varchar(10)"`

	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	Card    *CardModel    `gorm:"foreignKey:CardID;references:ID"`
	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Area:        m.Area,
		Category:    m.Category,
		Value:       m.Value,
		Date:        m.Date,
		Status:      entity.ExpenseStatus(m.Status),
		PaymentDate: m.PaymentDate,
		CardID:      m.CardID,
		AccountID:   m.AccountID,
		Recurrence: entity.Recurrence{
			Type:         entity.RecurrenceType(m.RecurrenceType),
			EndDate:      m.RecurrenceEndDate,
			Installments: m.Installments,
			Unit:         entity.FrequencyUnit(m.FrequencyUnit),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAtPtr(m.DeletedAt),
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                expense.ID,
		UserID:            expense.UserID,
		Description:       expense.Description,
		Area:              expense.Area,
		Category:          expense.Category,
		Value:             expense.Value,
		Date:              expense.Date,
		Status:            string(expense.Status),
		PaymentDate:       expense.PaymentDate,
		CardID:            expense.CardID,
		AccountID:         expense.AccountID,
		RecurrenceType:    string(expense.Recurrence.Type),
		RecurrenceEndDate: expense.Recurrence.EndDate,
		Installments:      expense.Recurrence.Installments,
		FrequencyUnit:     string(expense.Recurrence.Unit),
		CreatedAt:         expense.CreatedAt,
		UpdatedAt:         expense.UpdatedAt,
	}
}
