package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// BillingMonth returns the invoice month an expense dated at date belongs to
// for the given card. Spend on or before the closing day bills to the
// statement of the same month; spend after it rolls into the next cycle,
// crossing the year boundary in December.
func BillingMonth(card *entity.Card, date time.Time) (time.Month, int) {
	month, year := date.Month(), date.Year()
	if date.Day() > card.ClosingDay {
		if month == time.December {
			return time.January, year + 1
		}
		return month + 1, year
	}
	return month, year
}

// Aggregate folds the expanded expense set into per-card monthly invoices.
// Expenses without a card, or whose card is not in the set, are excluded.
// Overrides are merged by (card, month, year) and contribute only the paid
// status and payment fields; totals are always recomputed from expenses, so a
// retroactive edit to a billed expense shows up even on a paid invoice.
//
// The fold is pure and deterministic: identical inputs yield an identical
// invoice map.
func Aggregate(
	instances []entity.ExpenseInstance,
	cards []*entity.Card,
	overrides []*entity.InvoiceOverride,
	now time.Time,
) map[entity.InvoiceKey]*entity.Invoice {
	cardsByID := make(map[uuid.UUID]*entity.Card, len(cards))
	for _, c := range cards {
		cardsByID[c.ID] = c
	}

	invoices := make(map[entity.InvoiceKey]*entity.Invoice)

	for _, inst := range instances {
		if inst.CardID == nil {
			continue
		}
		card, ok := cardsByID[*inst.CardID]
		if !ok {
			continue
		}

		month, year := BillingMonth(card, inst.Date)
		key := entity.InvoiceKey{CardID: card.ID, Month: month, Year: year}

		inv, ok := invoices[key]
		if !ok {
			inv = &entity.Invoice{
				CardID:      card.ID,
				Month:       month,
				Year:        year,
				Status:      deriveStatus(card, month, year, now),
				TotalAmount: decimal.Zero,
			}
			invoices[key] = inv
		}

		inv.TotalAmount = inv.TotalAmount.Add(inst.Value)
		inv.ItemCount++
	}

	for _, o := range overrides {
		key := o.Key()
		inv, ok := invoices[key]
		if !ok {
			// A paid invoice whose expenses were all edited away still shows
			// up, with its recomputed (zero) total.
			card, found := cardsByID[o.CardID]
			if !found {
				continue
			}
			inv = &entity.Invoice{
				CardID:      card.ID,
				Month:       o.Month,
				Year:        o.Year,
				TotalAmount: decimal.Zero,
			}
			invoices[key] = inv
		}

		paidDate := o.PaidDate
		paidFrom := o.PaidFromAccountID
		inv.Status = entity.InvoiceStatusPaid
		inv.PaidDate = &paidDate
		inv.PaidFromAccountID = &paidFrom
	}

	return invoices
}

// deriveStatus computes the status of an invoice that has no payment
// override: the current billing month stays open while today is strictly
// before the card's closing day; everything else is closed.
func deriveStatus(card *entity.Card, month time.Month, year int, now time.Time) entity.InvoiceStatus {
	if month == now.Month() && year == now.Year() && now.Day() < card.ClosingDay {
		return entity.InvoiceStatusOpen
	}
	return entity.InvoiceStatusClosed
}

// UsedLimit sums the value of every non-paid expense instance on the card,
// regardless of which invoice bucket it falls in.
func UsedLimit(cardID uuid.UUID, instances []entity.ExpenseInstance) decimal.Decimal {
	used := decimal.Zero
	for _, inst := range instances {
		if inst.CardID == nil || *inst.CardID != cardID {
			continue
		}
		if inst.Status == entity.ExpenseStatusPaid {
			continue
		}
		used = used.Add(inst.Value)
	}
	return used
}

// AvailableLimit returns the card's remaining credit. The result may go
// negative when overspent; callers display that as an over-limit condition
// rather than clamping.
func AvailableLimit(card *entity.Card, instances []entity.ExpenseInstance) decimal.Decimal {
	return card.CreditLimit.Sub(UsedLimit(card.ID, instances))
}
