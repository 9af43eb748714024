package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/billing"
)

// GetCalendarInput represents the input for the calendar report.
type GetCalendarInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// CalendarDay represents one day of the calendar with its totals.
type CalendarDay struct {
	Day      int             `json:"day"`
	Expenses decimal.Decimal `json:"expenses"`
	Incomes  decimal.Decimal `json:"incomes"`
}

// GetCalendarOutput represents the output of the calendar report. Days covers
// every day of the month, including days with no activity.
type GetCalendarOutput struct {
	Month time.Month    `json:"month"`
	Year  int           `json:"year"`
	Days  []CalendarDay `json:"days"`
}

// GetCalendarUseCase computes daily expense and income totals for a month.
type GetCalendarUseCase struct {
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(expenseRepo adapter.ExpenseRepository, incomeRepo adapter.IncomeRepository) *GetCalendarUseCase {
	return &GetCalendarUseCase{expenseRepo: expenseRepo, incomeRepo: incomeRepo}
}

// Execute computes the calendar for the month.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	monthStart := time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	incomes, err := uc.incomeRepo.FindByUserAndRange(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	days := make([]CalendarDay, daysInMonth)
	for i := range days {
		days[i] = CalendarDay{Day: i + 1, Expenses: decimal.Zero, Incomes: decimal.Zero}
	}

	for _, inst := range billing.ExpandAll(expenses) {
		if inst.Date.Month() != input.Month || inst.Date.Year() != input.Year {
			continue
		}
		d := &days[inst.Date.Day()-1]
		d.Expenses = d.Expenses.Add(inst.Value)
	}

	for _, inc := range incomes {
		d := &days[inc.Date.Day()-1]
		d.Incomes = d.Incomes.Add(inc.Value)
	}

	return &GetCalendarOutput{Month: input.Month, Year: input.Year, Days: days}, nil
}
