package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
	"github.com/home-ledger/backend/internal/integration/persistence/model"
)

// householdRepository implements the adapter.HouseholdRepository interface.
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new household repository instance.
func NewHouseholdRepository(db *gorm.DB) adapter.HouseholdRepository {
	return &householdRepository{
		db: db,
	}
}

// Create creates a household and its owner membership in one transaction.
func (r *householdRepository) Create(ctx context.Context, household *entity.Household, owner *entity.HouseholdMember) error {
	householdModel := model.HouseholdFromEntity(household)
	ownerModel := model.HouseholdMemberFromEntity(owner)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(householdModel).Error; err != nil {
			return err
		}
		return tx.Create(ownerModel).Error
	})
}

// FindByID retrieves a household by its ID.
func (r *householdRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	var householdModel model.HouseholdModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&householdModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHouseholdNotFound
		}
		return nil, result.Error
	}
	return householdModel.ToEntity(), nil
}

// FindByUser retrieves the households the user is a member of.
func (r *householdRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Household, error) {
	var householdModels []model.HouseholdModel
	result := r.db.WithContext(ctx).
		Joins("JOIN household_members ON household_members.household_id = households.id").
		Where("household_members.user_id = ?", userID).
		Order("households.created_at ASC").
		Find(&householdModels)
	if result.Error != nil {
		return nil, result.Error
	}

	households := make([]*entity.Household, len(householdModels))
	for i, hm := range householdModels {
		households[i] = hm.ToEntity()
	}
	return households, nil
}

// FindMember retrieves the membership of a user in a household, or nil.
func (r *householdRepository) FindMember(ctx context.Context, householdID, userID uuid.UUID) (*entity.HouseholdMember, error) {
	var memberModel model.HouseholdMemberModel
	result := r.db.WithContext(ctx).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindMembers retrieves all members of a household with user info.
func (r *householdRepository) FindMembers(ctx context.Context, householdID uuid.UUID) ([]*entity.HouseholdMember, error) {
	var memberModels []model.HouseholdMemberModel
	result := r.db.WithContext(ctx).
		Select("household_members.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = household_members.user_id").
		Where("household_members.household_id = ?", householdID).
		Order("household_members.joined_at ASC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.HouseholdMember, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}
	return members, nil
}

// AddMember adds a member to a household.
func (r *householdRepository) AddMember(ctx context.Context, member *entity.HouseholdMember) error {
	memberModel := model.HouseholdMemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	return result.Error
}

// RemoveMember removes a member from a household.
func (r *householdRepository) RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		Delete(&model.HouseholdMemberModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotHouseholdMember
	}
	return nil
}

// CreateInvite persists a pending invitation.
func (r *householdRepository) CreateInvite(ctx context.Context, invite *entity.HouseholdInvite) error {
	inviteModel := model.HouseholdInviteFromEntity(invite)
	result := r.db.WithContext(ctx).Create(inviteModel)
	return result.Error
}

// FindInviteByToken retrieves a pending invitation by its token, or nil.
func (r *householdRepository) FindInviteByToken(ctx context.Context, token string) (*entity.HouseholdInvite, error) {
	var inviteModel model.HouseholdInviteModel
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// FindPendingInvite retrieves a pending invite for (household, email), or nil.
func (r *householdRepository) FindPendingInvite(ctx context.Context, householdID uuid.UUID, email string) (*entity.HouseholdInvite, error) {
	var inviteModel model.HouseholdInviteModel
	result := r.db.WithContext(ctx).
		Where("household_id = ? AND email = ? AND status = ?", householdID, email, string(entity.InviteStatusPending)).
		First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// UpdateInviteStatus updates an invitation's status.
func (r *householdRepository) UpdateInviteStatus(ctx context.Context, inviteID uuid.UUID, status entity.InviteStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.HouseholdInviteModel{}).
		Where("id = ?", inviteID).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInviteNotFound
	}
	return nil
}
