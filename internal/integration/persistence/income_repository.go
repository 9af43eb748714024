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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Create(incomeModel)
	return result.Error
}

// FindByID retrieves an income by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByUser retrieves all incomes for a given user.
func (r *incomeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toIncomeEntities(incomeModels), nil
}

// FindByUserAndRange retrieves incomes dated within [start, end].
func (r *incomeRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC, created_at ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toIncomeEntities(incomeModels), nil
}

// Update updates an existing income in the database.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Save(incomeModel)
	return result.Error
}

// UpdateWithCredit persists the income and credits its account's balance by
// the income value in a single database transaction.
func (r *incomeRepository) UpdateWithCredit(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(incomeModel).Error; err != nil {
			return err
		}

		result := tx.Model(&model.AccountModel{}).
			Where("id = ?", income.AccountID).
			Update("balance", gorm.Expr("balance + ?", income.Value))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrAccountNotFound
		}

		return nil
	})
}

// Delete soft-deletes an income from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

// ExistsByAccount checks whether any income credits the account.
func (r *incomeRepository) ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("account_id = ?", accountID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func toIncomeEntities(models []model.IncomeModel) []*entity.Income {
	incomes := make([]*entity.Income, len(models))
	for i, im := range models {
		incomes[i] = im.ToEntity()
	}
	return incomes
}
