package billing

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/domain/entity"
)

func newTestExpense(date time.Time, recurrence entity.Recurrence) *entity.Expense {
	return &entity.Expense{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Description: "Internet",
		Area:        "Home",
		Category:    "Utilities",
		Value:       decimal.NewFromFloat(89.90),
		Date:        date,
		Status:      entity.ExpenseStatusScheduled,
		Recurrence:  recurrence,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestExpandNoRecurrence(t *testing.T) {
	e := newTestExpense(date(2025, time.March, 10), entity.NoRecurrence())

	instances := Expand(e)

	if len(instances) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(instances))
	}
	inst := instances[0]
	if inst.ID != e.ID.String() {
		t.Errorf("expected instance id %q, got %q", e.ID.String(), inst.ID)
	}
	if inst.ParentID != nil {
		t.Error("stored original must not carry a parent id")
	}
	if inst.InstallmentNumber != nil || inst.TotalInstallments != nil {
		t.Error("stored original must not carry installment lineage")
	}
	if !inst.Date.Equal(e.Date) {
		t.Errorf("expected date %v, got %v", e.Date, inst.Date)
	}
}

func TestExpandInstallments(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{name: "single installment", count: 1},
		{name: "twelve installments", count: 12},
		{name: "maximum installments", count: 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := date(2025, time.January, 15)
			e := newTestExpense(start, entity.InstallmentsRecurrence(tt.count))

			instances := Expand(e)

			if len(instances) != tt.count {
				t.Fatalf("expected %d instances, got %d", tt.count, len(instances))
			}
			for i, inst := range instances {
				wantID := fmt.Sprintf("%s_%d", e.ID, i+1)
				if inst.ID != wantID {
					t.Errorf("instance %d: expected id %q, got %q", i, wantID, inst.ID)
				}
				if inst.ParentID == nil || *inst.ParentID != e.ID {
					t.Errorf("instance %d: expected parent id %s", i, e.ID)
				}
				if inst.InstallmentNumber == nil || *inst.InstallmentNumber != i+1 {
					t.Errorf("instance %d: expected installment number %d", i, i+1)
				}
				if inst.TotalInstallments == nil || *inst.TotalInstallments != tt.count {
					t.Errorf("instance %d: expected total installments %d", i, tt.count)
				}
				wantDate := start.AddDate(0, i, 0)
				if !inst.Date.Equal(wantDate) {
					t.Errorf("instance %d: expected date %v, got %v", i, wantDate, inst.Date)
				}
				if !inst.Value.Equal(e.Value) {
					t.Errorf("instance %d: value not copied", i)
				}
			}
		})
	}
}

func TestExpandTwelveInstallmentsCoversCalendarYear(t *testing.T) {
	e := newTestExpense(date(2025, time.January, 15), entity.InstallmentsRecurrence(12))

	instances := Expand(e)

	if len(instances) != 12 {
		t.Fatalf("expected 12 instances, got %d", len(instances))
	}
	for i, inst := range instances {
		if inst.Date.Day() != 15 {
			t.Errorf("instance %d: expected day 15, got %d", i, inst.Date.Day())
		}
		if inst.Date.Month() != time.Month(i+1) || inst.Date.Year() != 2025 {
			t.Errorf("instance %d: expected %v 2025, got %v %d", i, time.Month(i+1), inst.Date.Month(), inst.Date.Year())
		}
	}
}

func TestExpandClampsEndOfMonth(t *testing.T) {
	tests := []struct {
		name       string
		start      time.Time
		recurrence entity.Recurrence
		want       []time.Time
	}{
		{
			name:       "installments from the 31st clamp to short months",
			start:      date(2025, time.January, 31),
			recurrence: entity.InstallmentsRecurrence(3),
			want: []time.Time{
				date(2025, time.January, 31),
				date(2025, time.February, 28),
				date(2025, time.March, 31),
			},
		},
		{
			name:       "leap year keeps February 29",
			start:      date(2024, time.January, 31),
			recurrence: entity.InstallmentsRecurrence(2),
			want: []time.Time{
				date(2024, time.January, 31),
				date(2024, time.February, 29),
			},
		},
		{
			name:       "date range from the 30th lands in every month once",
			start:      date(2025, time.January, 30),
			recurrence: entity.DateRangeRecurrence(date(2025, time.April, 1)),
			want: []time.Time{
				date(2025, time.January, 30),
				date(2025, time.February, 28),
				date(2025, time.March, 30),
				date(2025, time.April, 30),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExpense(tt.start, tt.recurrence)

			instances := Expand(e)

			if len(instances) != len(tt.want) {
				t.Fatalf("expected %d instances, got %d", len(tt.want), len(instances))
			}
			for i, inst := range instances {
				if !inst.Date.Equal(tt.want[i]) {
					t.Errorf("instance %d: expected date %v, got %v", i, tt.want[i], inst.Date)
				}
			}
		})
	}
}

func TestExpandMonthlyFrequencyClampsEndOfMonth(t *testing.T) {
	e := newTestExpense(date(2025, time.May, 31), entity.FrequencyRecurrence(entity.FrequencyMonthly))

	instances := Expand(e)

	if len(instances) != 12 {
		t.Fatalf("expected 12 instances, got %d", len(instances))
	}
	for i, inst := range instances {
		wantMonth := time.May + time.Month(i)
		wantYear := 2025
		if wantMonth > time.December {
			wantMonth -= 12
			wantYear++
		}
		if inst.Date.Month() != wantMonth || inst.Date.Year() != wantYear {
			t.Errorf("instance %d: expected %v %d, got %v %d",
				i, wantMonth, wantYear, inst.Date.Month(), inst.Date.Year())
		}
		wantDay := 31
		if last := daysInMonth(inst.Date.Year(), inst.Date.Month()); wantDay > last {
			wantDay = last
		}
		if inst.Date.Day() != wantDay {
			t.Errorf("instance %d: expected day %d, got %d", i, wantDay, inst.Date.Day())
		}
	}
}

func TestExpandDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{name: "same month", start: date(2025, time.March, 5), end: date(2025, time.March, 28), want: 1},
		{name: "three months", start: date(2025, time.January, 10), end: date(2025, time.March, 1), want: 3},
		{name: "across year boundary", start: date(2024, time.November, 20), end: date(2025, time.February, 3), want: 4},
		{name: "day of month ignored", start: date(2025, time.January, 31), end: date(2025, time.February, 1), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExpense(tt.start, entity.DateRangeRecurrence(tt.end))

			instances := Expand(e)

			if len(instances) != tt.want {
				t.Fatalf("expected %d instances, got %d", tt.want, len(instances))
			}
			last := instances[len(instances)-1]
			if last.Date.Month() != tt.end.Month() || last.Date.Year() != tt.end.Year() {
				t.Errorf("last instance in %v %d, expected %v %d",
					last.Date.Month(), last.Date.Year(), tt.end.Month(), tt.end.Year())
			}
			for i, inst := range instances {
				if inst.TotalInstallments == nil || *inst.TotalInstallments != tt.want {
					t.Errorf("instance %d: expected total installments %d", i, tt.want)
				}
			}
		})
	}
}

func TestExpandFrequency(t *testing.T) {
	start := date(2025, time.January, 6)

	tests := []struct {
		name     string
		unit     entity.FrequencyUnit
		wantDate func(i int) time.Time
	}{
		{
			name:     "weekly advances seven days",
			unit:     entity.FrequencyWeekly,
			wantDate: func(i int) time.Time { return start.AddDate(0, 0, 7*i) },
		},
		{
			name:     "monthly advances one month",
			unit:     entity.FrequencyMonthly,
			wantDate: func(i int) time.Time { return start.AddDate(0, i, 0) },
		},
		{
			name:     "yearly advances one year",
			unit:     entity.FrequencyYearly,
			wantDate: func(i int) time.Time { return start.AddDate(i, 0, 0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExpense(start, entity.FrequencyRecurrence(tt.unit))

			instances := Expand(e)

			if len(instances) != 12 {
				t.Fatalf("expected 12 instances, got %d", len(instances))
			}
			for i, inst := range instances {
				if !inst.Date.Equal(tt.wantDate(i)) {
					t.Errorf("instance %d: expected date %v, got %v", i, tt.wantDate(i), inst.Date)
				}
				if inst.TotalInstallments != nil {
					t.Errorf("instance %d: open-ended series must not set total installments", i)
				}
			}
		})
	}
}

func TestExpandMalformedDescriptorFallsBack(t *testing.T) {
	zero := 0
	tests := []struct {
		name       string
		recurrence entity.Recurrence
	}{
		{name: "date range without end", recurrence: entity.Recurrence{Type: entity.RecurrenceDateRange}},
		{name: "end before start", recurrence: entity.DateRangeRecurrence(date(2024, time.January, 1))},
		{name: "installments without count", recurrence: entity.Recurrence{Type: entity.RecurrenceInstallments}},
		{name: "zero installments", recurrence: entity.Recurrence{Type: entity.RecurrenceInstallments, Installments: &zero}},
		{name: "frequency without unit", recurrence: entity.Recurrence{Type: entity.RecurrenceFrequency}},
		{name: "frequency with unknown unit", recurrence: entity.Recurrence{Type: entity.RecurrenceFrequency, Unit: "daily"}},
		{name: "unknown type", recurrence: entity.Recurrence{Type: "bizarre"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExpense(date(2025, time.June, 1), tt.recurrence)

			instances := Expand(e)

			if len(instances) != 1 {
				t.Fatalf("expected fallback to single instance, got %d", len(instances))
			}
			if instances[0].ID != e.ID.String() {
				t.Errorf("fallback must preserve the expense identity")
			}
		})
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	e := newTestExpense(date(2025, time.February, 10), entity.InstallmentsRecurrence(6))

	first := Expand(e)
	second := Expand(e)

	if len(first) != len(second) {
		t.Fatalf("instance counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("instance %d: ids differ: %q vs %q", i, first[i].ID, second[i].ID)
		}
		if !first[i].Date.Equal(second[i].Date) {
			t.Errorf("instance %d: dates differ", i)
		}
		if !first[i].Value.Equal(second[i].Value) {
			t.Errorf("instance %d: values differ", i)
		}
	}
}

func TestExpandAllFlattens(t *testing.T) {
	plain := newTestExpense(date(2025, time.April, 2), entity.NoRecurrence())
	split := newTestExpense(date(2025, time.April, 12), entity.InstallmentsRecurrence(3))

	instances := ExpandAll([]*entity.Expense{plain, split})

	if len(instances) != 4 {
		t.Fatalf("expected 4 instances, got %d", len(instances))
	}
}
