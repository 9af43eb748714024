package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

type stubCardRepo struct {
	cards map[uuid.UUID]*entity.Card
}

func (s *stubCardRepo) Create(ctx context.Context, card *entity.Card) error { return nil }
func (s *stubCardRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	card, ok := s.cards[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return card, nil
}
func (s *stubCardRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	var out []*entity.Card
	for _, c := range s.cards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (s *stubCardRepo) Update(ctx context.Context, card *entity.Card) error { return nil }
func (s *stubCardRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (s *stubCardRepo) CountExpenses(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

type stubAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func (s *stubAccountRepo) Create(ctx context.Context, account *entity.Account) error { return nil }
func (s *stubAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return account, nil
}
func (s *stubAccountRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	return nil, nil
}
func (s *stubAccountRepo) Update(ctx context.Context, account *entity.Account) error { return nil }
func (s *stubAccountRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	if account, ok := s.accounts[id]; ok {
		account.Balance = account.Balance.Add(delta)
	}
	return nil
}
func (s *stubAccountRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubExpenseRepo struct {
	expenses []*entity.Expense
}

func (s *stubExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error { return nil }
func (s *stubExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, errors.New("record not found")
}
func (s *stubExpenseRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	return s.expenses, nil
}
func (s *stubExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	return s.expenses, nil
}
func (s *stubExpenseRepo) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range s.expenses {
		if e.CardID != nil && *e.CardID == cardID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (s *stubExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error { return nil }
func (s *stubExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (s *stubExpenseRepo) ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return false, nil
}

type stubOverrideRepo struct {
	overrides   []*entity.InvoiceOverride
	settlements []*entity.InvoiceOverride
}

func (s *stubOverrideRepo) CreateWithSettlement(ctx context.Context, override *entity.InvoiceOverride) error {
	s.overrides = append(s.overrides, override)
	s.settlements = append(s.settlements, override)
	return nil
}
func (s *stubOverrideRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvoiceOverride, error) {
	return s.overrides, nil
}
func (s *stubOverrideRepo) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.InvoiceOverride, error) {
	var out []*entity.InvoiceOverride
	for _, o := range s.overrides {
		if o.CardID == cardID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (s *stubOverrideRepo) FindByKey(ctx context.Context, cardID uuid.UUID, month time.Month, year int) (*entity.InvoiceOverride, error) {
	for _, o := range s.overrides {
		if o.CardID == cardID && o.Month == month && o.Year == year {
			return o, nil
		}
	}
	return nil, nil
}

type payFixture struct {
	userID    uuid.UUID
	card      *entity.Card
	account   *entity.Account
	cards     *stubCardRepo
	accounts  *stubAccountRepo
	expenses  *stubExpenseRepo
	overrides *stubOverrideRepo
	uc        *PayInvoiceUseCase
}

func newPayFixture(t *testing.T) *payFixture {
	t.Helper()

	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", entity.AccountTypeChecking, decimal.NewFromInt(1000))
	card := entity.NewCard(userID, "Main", entity.CardTypeCredit, account.ID, decimal.NewFromInt(5000), 15, 10)

	expense := entity.NewExpense(
		userID, "Groceries", "home", "food",
		decimal.NewFromInt(200),
		time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		entity.ExpenseStatusScheduled,
		&card.ID, nil,
		entity.NoRecurrence(),
	)

	f := &payFixture{
		userID:    userID,
		card:      card,
		account:   account,
		cards:     &stubCardRepo{cards: map[uuid.UUID]*entity.Card{card.ID: card}},
		accounts:  &stubAccountRepo{accounts: map[uuid.UUID]*entity.Account{account.ID: account}},
		expenses:  &stubExpenseRepo{expenses: []*entity.Expense{expense}},
		overrides: &stubOverrideRepo{},
	}
	f.uc = NewPayInvoiceUseCase(f.expenses, f.cards, f.accounts, f.overrides)
	f.uc.now = func() time.Time {
		return time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func TestPayInvoiceRecordsOverride(t *testing.T) {
	f := newPayFixture(t)

	out, err := f.uc.Execute(context.Background(), PayInvoiceInput{
		UserID:            f.userID,
		CardID:            f.card.ID,
		Month:             time.March,
		Year:              2025,
		PaidFromAccountID: f.account.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Invoice.Status != entity.InvoiceStatusPaid {
		t.Errorf("expected status paid, got %s", out.Invoice.Status)
	}
	if out.Invoice.PaidDate == nil {
		t.Error("expected paid date to be set")
	}
	if len(f.overrides.settlements) != 1 {
		t.Fatalf("expected one settlement, got %d", len(f.overrides.settlements))
	}

	recorded := f.overrides.settlements[0]
	if !recorded.AmountAtPayment.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected amount snapshot 200, got %s", recorded.AmountAtPayment)
	}
	if recorded.PaidFromAccountID != f.account.ID {
		t.Errorf("expected settlement account %s, got %s", f.account.ID, recorded.PaidFromAccountID)
	}
}

func TestPayInvoiceRejectsDoublePayment(t *testing.T) {
	f := newPayFixture(t)

	input := PayInvoiceInput{
		UserID:            f.userID,
		CardID:            f.card.ID,
		Month:             time.March,
		Year:              2025,
		PaidFromAccountID: f.account.ID,
	}

	if _, err := f.uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	_, err := f.uc.Execute(context.Background(), input)
	if err == nil {
		t.Fatal("expected second payment to fail")
	}

	var invErr *domainerror.InvoiceError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvoiceError, got %T", err)
	}
	if invErr.Code != domainerror.ErrCodeInvoiceAlreadyPaid {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvoiceAlreadyPaid, invErr.Code)
	}
}

func TestPayInvoiceRejectsDebitCard(t *testing.T) {
	f := newPayFixture(t)
	f.card.Type = entity.CardTypeDebit

	_, err := f.uc.Execute(context.Background(), PayInvoiceInput{
		UserID:            f.userID,
		CardID:            f.card.ID,
		Month:             time.March,
		Year:              2025,
		PaidFromAccountID: f.account.ID,
	})
	if err == nil {
		t.Fatal("expected payment on debit card to fail")
	}

	var invErr *domainerror.InvoiceError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvoiceError, got %T", err)
	}
	if invErr.Code != domainerror.ErrCodeInvoiceNotCreditCard {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvoiceNotCreditCard, invErr.Code)
	}
}

func TestPayInvoiceUnknownMonthFails(t *testing.T) {
	f := newPayFixture(t)

	_, err := f.uc.Execute(context.Background(), PayInvoiceInput{
		UserID:            f.userID,
		CardID:            f.card.ID,
		Month:             time.August,
		Year:              2025,
		PaidFromAccountID: f.account.ID,
	})
	if err == nil {
		t.Fatal("expected payment of nonexistent invoice to fail")
	}

	var invErr *domainerror.InvoiceError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvoiceError, got %T", err)
	}
	if invErr.Code != domainerror.ErrCodeInvoiceNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvoiceNotFound, invErr.Code)
	}
}

func TestListInvoicesRequiresMonthYearPair(t *testing.T) {
	f := newPayFixture(t)
	list := NewListInvoicesUseCase(f.expenses, f.cards, f.overrides)

	month := time.March
	year := 2025
	tests := []struct {
		name  string
		input ListInvoicesInput
	}{
		{name: "month without year", input: ListInvoicesInput{UserID: f.userID, Month: &month}},
		{name: "year without month", input: ListInvoicesInput{UserID: f.userID, Year: &year}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := list.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected half-specified billing month to fail")
			}

			var invErr *domainerror.InvoiceError
			if !errors.As(err, &invErr) {
				t.Fatalf("expected InvoiceError, got %T", err)
			}
			if invErr.Code != domainerror.ErrCodeInvalidInvoiceMonth {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidInvoiceMonth, invErr.Code)
			}
		})
	}
}

func TestListInvoicesMergesPaymentOverride(t *testing.T) {
	f := newPayFixture(t)

	if _, err := f.uc.Execute(context.Background(), PayInvoiceInput{
		UserID:            f.userID,
		CardID:            f.card.ID,
		Month:             time.March,
		Year:              2025,
		PaidFromAccountID: f.account.ID,
	}); err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	list := NewListInvoicesUseCase(f.expenses, f.cards, f.overrides)
	list.now = f.uc.now

	out, err := list.Execute(context.Background(), ListInvoicesInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Invoices) != 1 {
		t.Fatalf("expected one invoice, got %d", len(out.Invoices))
	}

	inv := out.Invoices[0]
	if inv.Status != entity.InvoiceStatusPaid {
		t.Errorf("expected status paid, got %s", inv.Status)
	}
	if !inv.TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected total 200, got %s", inv.TotalAmount)
	}
}
