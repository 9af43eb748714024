package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/domain/entity"
)

func newTestCard(closingDay int) *entity.Card {
	return &entity.Card{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Visa Gold",
		Type:        entity.CardTypeCredit,
		AccountID:   uuid.New(),
		CreditLimit: decimal.NewFromInt(5000),
		DueDay:      17,
		ClosingDay:  closingDay,
	}
}

func cardInstance(cardID uuid.UUID, day time.Time, value float64, status entity.ExpenseStatus) entity.ExpenseInstance {
	id := cardID
	return entity.ExpenseInstance{
		ID:     uuid.NewString(),
		UserID: uuid.New(),
		Value:  decimal.NewFromFloat(value),
		Date:   day,
		Status: status,
		CardID: &id,
	}
}

func TestBillingMonth(t *testing.T) {
	card := newTestCard(10)

	tests := []struct {
		name      string
		date      time.Time
		wantMonth time.Month
		wantYear  int
	}{
		{name: "on closing day stays in month", date: date(2025, time.March, 10), wantMonth: time.March, wantYear: 2025},
		{name: "day after closing rolls forward", date: date(2025, time.March, 11), wantMonth: time.April, wantYear: 2025},
		{name: "first of month stays", date: date(2025, time.March, 1), wantMonth: time.March, wantYear: 2025},
		{name: "december rolls into next year", date: date(2025, time.December, 11), wantMonth: time.January, wantYear: 2026},
		{name: "december on closing day stays", date: date(2025, time.December, 10), wantMonth: time.December, wantYear: 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := BillingMonth(card, tt.date)
			if month != tt.wantMonth || year != tt.wantYear {
				t.Errorf("BillingMonth(%v) = (%v, %d), want (%v, %d)",
					tt.date, month, year, tt.wantMonth, tt.wantYear)
			}
		})
	}
}

func TestAggregateBucketsByBillingMonth(t *testing.T) {
	card := newTestCard(10)
	now := date(2025, time.June, 1)

	instances := []entity.ExpenseInstance{
		cardInstance(card.ID, date(2025, time.March, 10), 100, entity.ExpenseStatusScheduled),
		cardInstance(card.ID, date(2025, time.March, 11), 250, entity.ExpenseStatusScheduled),
		cardInstance(card.ID, date(2025, time.March, 3), 50, entity.ExpenseStatusScheduled),
	}

	invoices := Aggregate(instances, []*entity.Card{card}, nil, now)

	march := invoices[entity.InvoiceKey{CardID: card.ID, Month: time.March, Year: 2025}]
	if march == nil {
		t.Fatal("expected a March invoice")
	}
	if !march.TotalAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("March total = %s, want 150", march.TotalAmount)
	}
	if march.ItemCount != 2 {
		t.Errorf("March item count = %d, want 2", march.ItemCount)
	}

	april := invoices[entity.InvoiceKey{CardID: card.ID, Month: time.April, Year: 2025}]
	if april == nil {
		t.Fatal("expected an April invoice for post-closing spend")
	}
	if !april.TotalAmount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("April total = %s, want 250", april.TotalAmount)
	}
}

func TestAggregateStatusDerivation(t *testing.T) {
	card := newTestCard(20)

	tests := []struct {
		name string
		date time.Time
		now  time.Time
		want entity.InvoiceStatus
	}{
		{
			name: "current month before closing day is open",
			date: date(2025, time.June, 5),
			now:  date(2025, time.June, 10),
			want: entity.InvoiceStatusOpen,
		},
		{
			name: "current month on closing day is closed",
			date: date(2025, time.June, 5),
			now:  date(2025, time.June, 20),
			want: entity.InvoiceStatusClosed,
		},
		{
			name: "past month is closed",
			date: date(2025, time.February, 5),
			now:  date(2025, time.June, 10),
			want: entity.InvoiceStatusClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instances := []entity.ExpenseInstance{
				cardInstance(card.ID, tt.date, 10, entity.ExpenseStatusScheduled),
			}
			invoices := Aggregate(instances, []*entity.Card{card}, nil, tt.now)

			month, year := BillingMonth(card, tt.date)
			inv := invoices[entity.InvoiceKey{CardID: card.ID, Month: month, Year: year}]
			if inv == nil {
				t.Fatal("expected an invoice")
			}
			if inv.Status != tt.want {
				t.Errorf("status = %s, want %s", inv.Status, tt.want)
			}
		})
	}
}

func TestAggregateOverrideMarksPaidButRecomputesTotal(t *testing.T) {
	card := newTestCard(10)
	now := date(2025, time.June, 1)
	paidDate := date(2025, time.April, 17)
	accountID := uuid.New()

	instances := []entity.ExpenseInstance{
		cardInstance(card.ID, date(2025, time.March, 5), 120, entity.ExpenseStatusScheduled),
		cardInstance(card.ID, date(2025, time.March, 8), 80, entity.ExpenseStatusScheduled),
	}
	override := &entity.InvoiceOverride{
		ID:                uuid.New(),
		CardID:            card.ID,
		Month:             time.March,
		Year:              2025,
		PaidDate:          paidDate,
		PaidFromAccountID: accountID,
		AmountAtPayment:   decimal.NewFromInt(120), // stale: an expense was edited after payment
	}

	invoices := Aggregate(instances, []*entity.Card{card}, []*entity.InvoiceOverride{override}, now)

	inv := invoices[entity.InvoiceKey{CardID: card.ID, Month: time.March, Year: 2025}]
	if inv == nil {
		t.Fatal("expected a March invoice")
	}
	if inv.Status != entity.InvoiceStatusPaid {
		t.Errorf("status = %s, want paid", inv.Status)
	}
	if inv.PaidDate == nil || !inv.PaidDate.Equal(paidDate) {
		t.Error("paid date not taken from override")
	}
	if inv.PaidFromAccountID == nil || *inv.PaidFromAccountID != accountID {
		t.Error("settlement account not taken from override")
	}
	// The total always comes from the live expense set, never the override.
	if !inv.TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("total = %s, want recomputed 200", inv.TotalAmount)
	}
}

func TestAggregateOverrideWithoutExpensesStillAppears(t *testing.T) {
	card := newTestCard(10)
	override := &entity.InvoiceOverride{
		ID:                uuid.New(),
		CardID:            card.ID,
		Month:             time.January,
		Year:              2025,
		PaidDate:          date(2025, time.January, 17),
		PaidFromAccountID: uuid.New(),
	}

	invoices := Aggregate(nil, []*entity.Card{card}, []*entity.InvoiceOverride{override}, date(2025, time.June, 1))

	inv := invoices[entity.InvoiceKey{CardID: card.ID, Month: time.January, Year: 2025}]
	if inv == nil {
		t.Fatal("expected the paid invoice to appear")
	}
	if inv.Status != entity.InvoiceStatusPaid {
		t.Errorf("status = %s, want paid", inv.Status)
	}
	if !inv.TotalAmount.IsZero() {
		t.Errorf("total = %s, want 0", inv.TotalAmount)
	}
}

func TestAggregateExcludesUnknownCards(t *testing.T) {
	card := newTestCard(10)
	ghost := uuid.New()

	instances := []entity.ExpenseInstance{
		cardInstance(card.ID, date(2025, time.March, 5), 40, entity.ExpenseStatusScheduled),
		cardInstance(ghost, date(2025, time.March, 5), 999, entity.ExpenseStatusScheduled),
	}

	invoices := Aggregate(instances, []*entity.Card{card}, nil, date(2025, time.June, 1))

	if len(invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(invoices))
	}
	inv := invoices[entity.InvoiceKey{CardID: card.ID, Month: time.March, Year: 2025}]
	if inv == nil || !inv.TotalAmount.Equal(decimal.NewFromInt(40)) {
		t.Error("unknown-card expense leaked into an invoice")
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	card := newTestCard(15)
	now := date(2025, time.July, 3)
	instances := []entity.ExpenseInstance{
		cardInstance(card.ID, date(2025, time.May, 14), 33.33, entity.ExpenseStatusScheduled),
		cardInstance(card.ID, date(2025, time.May, 16), 66.67, entity.ExpenseStatusPaid),
		cardInstance(card.ID, date(2025, time.June, 1), 12.5, entity.ExpenseStatusScheduled),
	}
	cards := []*entity.Card{card}

	first := Aggregate(instances, cards, nil, now)
	second := Aggregate(instances, cards, nil, now)

	if len(first) != len(second) {
		t.Fatalf("invoice counts differ: %d vs %d", len(first), len(second))
	}
	for key, a := range first {
		b, ok := second[key]
		if !ok {
			t.Fatalf("key %v missing from second run", key)
		}
		if a.Status != b.Status || !a.TotalAmount.Equal(b.TotalAmount) || a.ItemCount != b.ItemCount {
			t.Errorf("invoice %v differs between runs", key)
		}
	}
}

func TestUsedLimit(t *testing.T) {
	card := newTestCard(10)

	instances := []entity.ExpenseInstance{
		cardInstance(card.ID, date(2025, time.March, 5), 100, entity.ExpenseStatusScheduled),
		cardInstance(card.ID, date(2025, time.April, 5), 250, entity.ExpenseStatusScheduled),
		cardInstance(card.ID, date(2025, time.March, 8), 50, entity.ExpenseStatusPaid),
	}

	used := UsedLimit(card.ID, instances)
	if !used.Equal(decimal.NewFromInt(350)) {
		t.Errorf("used limit = %s, want 350 (paid expenses excluded)", used)
	}

	available := AvailableLimit(card, instances)
	if !available.Equal(decimal.NewFromInt(4650)) {
		t.Errorf("available limit = %s, want 4650", available)
	}
}

func TestAvailableLimitGoesNegativeWhenOverspent(t *testing.T) {
	card := newTestCard(10)
	card.CreditLimit = decimal.NewFromInt(100)

	instances := []entity.ExpenseInstance{
		cardInstance(card.ID, date(2025, time.March, 5), 180, entity.ExpenseStatusScheduled),
	}

	available := AvailableLimit(card, instances)
	if !available.Equal(decimal.NewFromInt(-80)) {
		t.Errorf("available limit = %s, want -80 (no clamping)", available)
	}
}
