// Package household contains household-related use cases.
package household

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// CreateHouseholdInput represents the input for household creation.
type CreateHouseholdInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateHouseholdOutput represents the output of household creation.
type CreateHouseholdOutput struct {
	Household *entity.Household
}

// CreateHouseholdUseCase handles household creation logic. The creator
// becomes the owner.
type CreateHouseholdUseCase struct {
	householdRepo adapter.HouseholdRepository
}

// NewCreateHouseholdUseCase creates a new CreateHouseholdUseCase instance.
func NewCreateHouseholdUseCase(householdRepo adapter.HouseholdRepository) *CreateHouseholdUseCase {
	return &CreateHouseholdUseCase{householdRepo: householdRepo}
}

// Execute performs the household creation.
func (uc *CreateHouseholdUseCase) Execute(ctx context.Context, input CreateHouseholdInput) (*CreateHouseholdOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeMissingHouseholdName,
			"household name is required",
			nil,
		)
	}

	household := entity.NewHousehold(strings.TrimSpace(input.Name), input.UserID)
	owner := entity.NewHouseholdMember(household.ID, input.UserID, entity.HouseholdRoleOwner)

	if err := uc.householdRepo.Create(ctx, household, owner); err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	return &CreateHouseholdOutput{Household: household}, nil
}
