package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/billing"
)

// Uncategorized is the bucket label for expenses without a category.
const Uncategorized = "uncategorized"

// GetCategoryBreakdownInput represents the input for the category breakdown
// report.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	ItemCount  int             `json:"item_count"`
}

// GetCategoryBreakdownOutput represents the output of the category breakdown
// report.
type GetCategoryBreakdownOutput struct {
	Month         time.Month              `json:"month"`
	Year          int                     `json:"year"`
	TotalExpenses decimal.Decimal         `json:"total_expenses"`
	Categories    []CategoryBreakdownItem `json:"categories"`
}

// GetCategoryBreakdownUseCase computes the month's spending split by category,
// ordered by amount descending.
type GetCategoryBreakdownUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(expenseRepo adapter.ExpenseRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{expenseRepo: expenseRepo}
}

// Execute computes the category breakdown for the month.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	amounts := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	total := decimal.Zero

	for _, inst := range billing.ExpandAll(expenses) {
		if inst.Date.Month() != input.Month || inst.Date.Year() != input.Year {
			continue
		}
		category := inst.Category
		if category == "" {
			category = Uncategorized
		}
		amounts[category] = amounts[category].Add(inst.Value)
		counts[category]++
		total = total.Add(inst.Value)
	}

	categories := make([]CategoryBreakdownItem, 0, len(amounts))
	for category, amount := range amounts {
		var percentage float64
		if !total.IsZero() {
			pct := amount.Mul(decimal.NewFromInt(100)).Div(total)
			percentage, _ = pct.Round(2).Float64()
		}
		categories = append(categories, CategoryBreakdownItem{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
			ItemCount:  counts[category],
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Amount.GreaterThan(categories[j].Amount)
		}
		return categories[i].Category < categories[j].Category
	})

	return &GetCategoryBreakdownOutput{
		Month:         input.Month,
		Year:          input.Year,
		TotalExpenses: total,
		Categories:    categories,
	}, nil
}
