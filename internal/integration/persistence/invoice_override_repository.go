package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
	"github.com/home-ledger/backend/internal/integration/persistence/model"
)

// invoiceOverrideRepository implements the adapter.InvoiceOverrideRepository
// interface.
type invoiceOverrideRepository struct {
	db *gorm.DB
}

// NewInvoiceOverrideRepository creates a new invoice override repository instance.
func NewInvoiceOverrideRepository(db *gorm.DB) adapter.InvoiceOverrideRepository {
	return &invoiceOverrideRepository{
		db: db,
	}
}

// CreateWithSettlement records the payment override and decrements the
// settlement account's balance by the paid amount in a single database
// transaction.
func (r *invoiceOverrideRepository) CreateWithSettlement(ctx context.Context, override *entity.InvoiceOverride) error {
	overrideModel := model.InvoiceOverrideFromEntity(override)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(overrideModel).Error; err != nil {
			return err
		}

		result := tx.Model(&model.AccountModel{}).
			Where("id = ?", override.PaidFromAccountID).
			Update("balance", gorm.Expr("balance - ?", override.AmountAtPayment))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrAccountNotFound
		}

		return nil
	})
}

// FindByUser retrieves all overrides recorded by the user.
func (r *invoiceOverrideRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvoiceOverride, error) {
	var overrideModels []model.InvoiceOverrideModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year ASC, month ASC").
		Find(&overrideModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toOverrideEntities(overrideModels), nil
}

// FindByCard retrieves all overrides for a card.
func (r *invoiceOverrideRepository) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.InvoiceOverride, error) {
	var overrideModels []model.InvoiceOverrideModel
	result := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("year ASC, month ASC").
		Find(&overrideModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toOverrideEntities(overrideModels), nil
}

// FindByKey retrieves the override for (card, month, year), or nil when the
// invoice has not been paid.
func (r *invoiceOverrideRepository) FindByKey(ctx context.Context, cardID uuid.UUID, month time.Month, year int) (*entity.InvoiceOverride, error) {
	var overrideModel model.InvoiceOverrideModel
	result := r.db.WithContext(ctx).
		Where("card_id = ? AND month = ? AND year = ?", cardID, int(month), year).
		First(&overrideModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return overrideModel.ToEntity(), nil
}

func toOverrideEntities(models []model.InvoiceOverrideModel) []*entity.InvoiceOverride {
	overrides := make([]*entity.InvoiceOverride, len(models))
	for i, om := range models {
		overrides[i] = om.ToEntity()
	}
	return overrides
}
