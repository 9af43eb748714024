package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// CardModel represents the cards table in the database.
type CardModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Type        string          `gorm:"type:varchar(10);not null"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDay      int             `gorm:"type:integer;not null"`
	ClosingDay  int             `gorm:"type:integer;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the CardModel.
func (CardModel) TableName() string {
	return "cards"
}

// ToEntity converts a CardModel to a domain Card entity.
func (m *CardModel) ToEntity() *entity.Card {
	return &entity.Card{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        entity.CardType(m.Type),
		AccountID:   m.AccountID,
		CreditLimit: m.CreditLimit,
		DueDay:      m.DueDay,
		ClosingDay:  m.ClosingDay,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAtPtr(m.DeletedAt),
	}
}

// CardFromEntity creates a CardModel from a domain Card entity.
func CardFromEntity(card *entity.Card) *CardModel {
	return &CardModel{
		ID:          card.ID,
		UserID:      card.UserID,
		Name:        card.Name,
		Type:        string(card.Type),
		AccountID:   card.AccountID,
		CreditLimit: card.CreditLimit,
		DueDay:      card.DueDay,
		ClosingDay:  card.ClosingDay,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}
