// Package report contains reporting use cases. Reports fold expanded expense
// instances, so recurring expenses contribute to every month their series
// touches.
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

// GetMonthlySummaryInput represents the input for the monthly summary report.
// When StartDate and EndDate are zero the range defaults to the user's stored
// data range.
type GetMonthlySummaryInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// MonthlySummaryItem represents one month in the summary.
type MonthlySummaryItem struct {
	Month    time.Month      `json:"month"`
	Year     int             `json:"year"`
	Incomes  decimal.Decimal `json:"incomes"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// GetMonthlySummaryOutput represents the output of the monthly summary report.
type GetMonthlySummaryOutput struct {
	Months []MonthlySummaryItem `json:"months"`
}

// GetMonthlySummaryUseCase computes per-month income and expense totals over
// a date range.
type GetMonthlySummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
	reportRepo  adapter.ReportRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	reportRepo adapter.ReportRepository,
) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		reportRepo:  reportRepo,
	}
}

// Execute computes the monthly summary.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	start, end := input.StartDate, input.EndDate
	if start.IsZero() || end.IsZero() {
		earliest, latest, err := uc.reportRepo.DataRange(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data range: %w", err)
		}
		if earliest == nil || latest == nil {
			return &GetMonthlySummaryOutput{Months: []MonthlySummaryItem{}}, nil
		}
		start, end = *earliest, *latest
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	incomes, err := uc.incomeRepo.FindByUserAndRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	totals := make(map[monthKey]*MonthlySummaryItem)

	item := func(year int, month time.Month) *MonthlySummaryItem {
		key := monthKey{year, month}
		it, ok := totals[key]
		if !ok {
			it = &MonthlySummaryItem{
				Month:    month,
				Year:     year,
				Incomes:  decimal.Zero,
				Expenses: decimal.Zero,
			}
			totals[key] = it
		}
		return it
	}

	for _, inst := range billing.ExpandAll(expenses) {
		if inst.Date.Before(start) || inst.Date.After(end) {
			continue
		}
		it := item(inst.Date.Year(), inst.Date.Month())
		it.Expenses = it.Expenses.Add(inst.Value)
	}

	for _, inc := range incomes {
		it := item(inc.Date.Year(), inc.Date.Month())
		it.Incomes = it.Incomes.Add(inc.Value)
	}

	// Emit every month of the range so the series has no gaps.
	months := make([]MonthlySummaryItem, 0, len(totals))
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(last) {
		it := item(cursor.Year(), cursor.Month())
		it.Balance = it.Incomes.Sub(it.Expenses)
		months = append(months, *it)
		cursor = cursor.AddDate(0, 1, 0)
	}

	return &GetMonthlySummaryOutput{Months: months}, nil
}
