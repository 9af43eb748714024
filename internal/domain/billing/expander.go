// Package billing implements the pure transformation core of the system:
// expanding recurring expenses into dated instances and folding expense
// instances into per-card monthly invoices. Everything here is a pure
// function over in-memory collections; there is no I/O and no error path,
// malformed input degrades to a safe default.
package billing

import (
	"fmt"
	"time"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// frequencyHorizon is the fixed number of instances emitted for open-ended
// (frequency) recurrences.
const frequencyHorizon = 12

// Expand materializes the dated instances of a stored expense according to
// its recurrence descriptor. It never fails: a missing or malformed
// descriptor yields the single unexpanded expense.
//
// Instance identity is derived from the parent id and the 1-based sequence
// position, so expanding unchanged input always yields an identical set.
func Expand(e *entity.Expense) []entity.ExpenseInstance {
	switch e.Recurrence.Type {
	case entity.RecurrenceDateRange:
		if e.Recurrence.EndDate != nil {
			n := monthsBetween(e.Date, *e.Recurrence.EndDate) + 1
			if n >= 1 {
				return boundedSeries(e, n)
			}
		}

	case entity.RecurrenceInstallments:
		// Count is validated upstream to [MinInstallments, MaxInstallments];
		// anything non-positive is treated as malformed.
		if e.Recurrence.Installments != nil && *e.Recurrence.Installments >= 1 {
			return boundedSeries(e, *e.Recurrence.Installments)
		}

	case entity.RecurrenceFrequency:
		if validFrequencyUnit(e.Recurrence.Unit) {
			return openSeries(e)
		}
	}

	return []entity.ExpenseInstance{asInstance(e)}
}

// ExpandAll expands every expense in the set into a flattened instance view.
func ExpandAll(expenses []*entity.Expense) []entity.ExpenseInstance {
	var instances []entity.ExpenseInstance
	for _, e := range expenses {
		instances = append(instances, Expand(e)...)
	}
	return instances
}

// boundedSeries emits n monthly instances with installment numbering and a
// known total.
func boundedSeries(e *entity.Expense, n int) []entity.ExpenseInstance {
	instances := make([]entity.ExpenseInstance, 0, n)
	for i := 1; i <= n; i++ {
		inst := instanceAt(e, i, addMonths(e.Date, i-1))
		total := n
		inst.TotalInstallments = &total
		instances = append(instances, inst)
	}
	return instances
}

// openSeries emits a fixed horizon of instances advancing by the frequency
// unit. TotalInstallments stays unset: the series is open-ended.
func openSeries(e *entity.Expense) []entity.ExpenseInstance {
	instances := make([]entity.ExpenseInstance, 0, frequencyHorizon)
	for i := 1; i <= frequencyHorizon; i++ {
		instances = append(instances, instanceAt(e, i, stepDate(e.Date, e.Recurrence.Unit, i-1)))
	}
	return instances
}

// stepDate advances start by n frequency units.
func stepDate(start time.Time, unit entity.FrequencyUnit, n int) time.Time {
	switch unit {
	case entity.FrequencyWeekly:
		return start.AddDate(0, 0, 7*n)
	case entity.FrequencyMonthly:
		return addMonths(start, n)
	case entity.FrequencyYearly:
		return addMonths(start, 12*n)
	default:
		return start
	}
}

// addMonths advances t by n calendar months, clamping the day of month to
// the target month's length. time.AddDate normalizes overflow instead (Jan 31
// plus one month lands on Mar 3), which would skip February entirely and bill
// March twice for a series started on the 29th or later.
func addMonths(t time.Time, n int) time.Time {
	target := time.Date(t.Year(), t.Month()+time.Month(n), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return target.AddDate(0, 0, day-1)
}

// daysInMonth returns the number of days in the given month. Day zero of the
// following month normalizes back to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// instanceAt builds the i-th generated instance of an expense. Every field of
// the original is copied except id, date and the lineage fields.
func instanceAt(e *entity.Expense, i int, date time.Time) entity.ExpenseInstance {
	seq := i
	parentID := e.ID
	return entity.ExpenseInstance{
		ID:                fmt.Sprintf("%s_%d", e.ID, i),
		ParentID:          &parentID,
		UserID:            e.UserID,
		Description:       e.Description,
		Area:              e.Area,
		Category:          e.Category,
		Value:             e.Value,
		Date:              date,
		Status:            e.Status,
		PaymentDate:       e.PaymentDate,
		CardID:            e.CardID,
		AccountID:         e.AccountID,
		InstallmentNumber: &seq,
	}
}

// asInstance returns the expense as its own sole instance, lineage unset.
func asInstance(e *entity.Expense) entity.ExpenseInstance {
	return entity.ExpenseInstance{
		ID:          e.ID.String(),
		UserID:      e.UserID,
		Description: e.Description,
		Area:        e.Area,
		Category:    e.Category,
		Value:       e.Value,
		Date:        e.Date,
		Status:      e.Status,
		PaymentDate: e.PaymentDate,
		CardID:      e.CardID,
		AccountID:   e.AccountID,
	}
}

// monthsBetween returns the whole-month difference between two dates,
// ignoring the day of month.
func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

func validFrequencyUnit(unit entity.FrequencyUnit) bool {
	switch unit {
	case entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyYearly:
		return true
	default:
		return false
	}
}
