// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseStatus represents the lifecycle status of an expense.
type ExpenseStatus string

const (
	ExpenseStatusPaid      ExpenseStatus = "paid"
	ExpenseStatusScheduled ExpenseStatus = "scheduled"
)

// RecurrenceType tags the recurrence variant of an expense.
type RecurrenceType string

const (
	RecurrenceNone         RecurrenceType = "none"
	RecurrenceDateRange    RecurrenceType = "date_range"
	RecurrenceInstallments RecurrenceType = "installments"
	RecurrenceFrequency    RecurrenceType = "frequency"
)

// FrequencyUnit is the step unit for open-ended recurring expenses.
type FrequencyUnit string

const (
	FrequencyWeekly  FrequencyUnit = "weekly"
	FrequencyMonthly FrequencyUnit = "monthly"
	FrequencyYearly  FrequencyUnit = "yearly"
)

const (
	// MinInstallments is the minimum allowed installment count.
	MinInstallments = 1
	// MaxInstallments is the maximum allowed installment count.
	MaxInstallments = 360
)

// Recurrence describes how a stored expense expands into dated instances.
// The Type tag selects the variant; only the fields of the active variant are
// meaningful. Use the variant constructors to keep illegal combinations out.
type Recurrence struct {
	Type         RecurrenceType
	EndDate      *time.Time    // date_range: inclusive end month
	Installments *int          // installments: instance count
	Unit         FrequencyUnit // frequency: step unit
}

// NoRecurrence returns the non-expanding variant.
func NoRecurrence() Recurrence {
	return Recurrence{Type: RecurrenceNone}
}

// DateRangeRecurrence returns a variant expanding one instance per month up
// to and including endDate's month.
func DateRangeRecurrence(endDate time.Time) Recurrence {
	return Recurrence{Type: RecurrenceDateRange, EndDate: &endDate}
}

// InstallmentsRecurrence returns a variant expanding exactly count monthly
// instances. Count must be validated to [MinInstallments, MaxInstallments]
// before the expense is stored.
func InstallmentsRecurrence(count int) Recurrence {
	return Recurrence{Type: RecurrenceInstallments, Installments: &count}
}

// FrequencyRecurrence returns an open-ended variant stepping by unit.
func FrequencyRecurrence(unit FrequencyUnit) Recurrence {
	return Recurrence{Type: RecurrenceFrequency, Unit: unit}
}

// Expense represents a stored expense record. Recurring expenses are stored
// once and expanded into dated instances on read; instances are never
// persisted.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Area        string
	Category    string
	Value       decimal.Decimal // Non-negative, 2 fraction digits
	Date        time.Time
	Status      ExpenseStatus
	PaymentDate *time.Time
	CardID      *uuid.UUID
	AccountID   *uuid.UUID
	Recurrence  Recurrence
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	description string,
	area string,
	category string,
	value decimal.Decimal,
	date time.Time,
	status ExpenseStatus,
	cardID *uuid.UUID,
	accountID *uuid.UUID,
	recurrence Recurrence,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Area:        area,
		Category:    category,
		Value:       value,
		Date:        date,
		Status:      status,
		CardID:      cardID,
		AccountID:   accountID,
		Recurrence:  recurrence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseInstance is a materialized, dated occurrence of an expense. For a
// non-recurring expense it is the expense itself; for recurring expenses the
// identity is derived from the parent id and the 1-based sequence position,
// so re-expanding unchanged input yields identical instance sets.
type ExpenseInstance struct {
	ID                string
	ParentID          *uuid.UUID // Set only on generated instances
	UserID            uuid.UUID
	Description       string
	Area              string
	Category          string
	Value             decimal.Decimal
	Date              time.Time
	Status            ExpenseStatus
	PaymentDate       *time.Time
	CardID            *uuid.UUID
	AccountID         *uuid.UUID
	InstallmentNumber *int // Set only on generated instances
	TotalInstallments *int // Set only for bounded series (date_range, installments)
}
