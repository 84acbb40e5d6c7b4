package matching

import (
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// The event-account reconciliation flow joins ledger entries to bank
// transactions on exact tuple equality (day, 2-decimal amount, flow type)
// rather than fuzzy scoring. This is a deterministic join.

// SameDay reports whether two timestamps fall on the same calendar day
// in their respective locations' UTC rendering.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// AmountsEqual compares two amounts after rounding to 2 decimal places,
// the scale at which bank statements report money.
func AmountsEqual(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}

// ExactMatch reports whether the entry and the bank transaction agree on
// date (same day), amount (2-decimal equality) and flow type. Entries with
// no transaction date never match.
func ExactMatch(entry domain.LedgerEntry, txn domain.BankTransaction) bool {
	if entry.TransactionDate == nil {
		return false
	}
	return entry.FlowType == txn.FlowType &&
		SameDay(*entry.TransactionDate, txn.TransactionDate) &&
		AmountsEqual(entry.Amount, txn.Amount)
}
