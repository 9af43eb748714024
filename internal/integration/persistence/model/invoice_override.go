package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// InvoiceOverrideModel represents the invoice_overrides table: one row per
// paid invoice. There is no invoices table; everything else about an invoice
// is derived on read.
type InvoiceOverrideModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	CardID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_invoice_overrides_key"`
	Month             int             `gorm:"type:integer;not null;uniqueIndex:idx_invoice_overrides_key"`
	Year              int             `gorm:"type:integer;not null;uniqueIndex:idx_invoice_overrides_key"`
	PaidDate          time.Time       `gorm:"type:date;not null"`
	PaidFromAccountID uuid.UUID       `gorm:"type:uuid;not null"`
	AmountAtPayment   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt         time.Time       `gorm:"not null"`

	Card    *CardModel    `gorm:"foreignKey:CardID;references:ID"`
	Account *AccountModel `gorm:"foreignKey:PaidFromAccountID;references:ID"`
}

// TableName returns the table name for the InvoiceOverrideModel.
func (InvoiceOverrideModel) TableName() string {
	return "invoice_overrides"
}

// ToEntity converts an InvoiceOverrideModel to a domain InvoiceOverride entity.
func (m *InvoiceOverrideModel) ToEntity() *entity.InvoiceOverride {
	return &entity.InvoiceOverride{
		ID:                m.ID,
		UserID:            m.UserID,
		CardID:            m.CardID,
		Month:             time.Month(m.Month),
		Year:              m.Year,
		PaidDate:          m.PaidDate,
		PaidFromAccountID: m.PaidFromAccountID,
		AmountAtPayment:   m.AmountAtPayment,
		CreatedAt:         m.CreatedAt,
	}
}

// InvoiceOverrideFromEntity creates an InvoiceOverrideModel from a domain entity.
func InvoiceOverrideFromEntity(override *entity.InvoiceOverride) *InvoiceOverrideModel {
	return &InvoiceOverrideModel{
		ID:                override.ID,
		UserID:            override.UserID,
		CardID:            override.CardID,
		Month:             int(override.Month),
		Year:              override.Year,
		PaidDate:          override.PaidDate,
		PaidFromAccountID: override.PaidFromAccountID,
		AmountAtPayment:   override.AmountAtPayment,
		CreatedAt:         override.CreatedAt,
	}
}
