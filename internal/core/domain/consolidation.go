package domain

import "github.com/shopspring/decimal"

// CategoryStatus classifies how far a category's actuals have progressed
// against its forecast.
type CategoryStatus string

const (
	CategoryPending   CategoryStatus = "PENDING"
	CategoryPartial   CategoryStatus = "PARTIAL"
	CategoryCompleted CategoryStatus = "COMPLETED"
	CategoryExceeded  CategoryStatus = "EXCEEDED"
)

// CategoryComparisonRow compares forecast against actual for one
// (flow type, category) pair.
type CategoryComparisonRow struct {
	FlowType   FlowType        `json:"flowType"`
	Category   string          `json:"category"`
	Forecast   decimal.Decimal `json:"forecast"`
	Actual     decimal.Decimal `json:"actual"`
	Variance   decimal.Decimal `json:"variance"`   // actual - forecast
	Percentage decimal.Decimal `json:"percentage"` // actual/forecast*100, 0 when forecast is 0
	Status     CategoryStatus  `json:"status"`
}

// ConsolidationTotals holds the account-level rollups.
type ConsolidationTotals struct {
	ForecastIncome  decimal.Decimal `json:"forecastIncome"`
	ForecastExpense decimal.Decimal `json:"forecastExpense"`
	ForecastProfit  decimal.Decimal `json:"forecastProfit"`

	// Actuals come from ledger entries with status pending or completed;
	// cancelled entries are excluded.
	ActualIncome  decimal.Decimal `json:"actualIncome"`
	ActualExpense decimal.Decimal `json:"actualExpense"`
	ActualProfit  decimal.Decimal `json:"actualProfit"`

	// Raw bank-transaction rollups, unfiltered by reconciliation state.
	BankIncome  decimal.Decimal `json:"bankIncome"`
	BankExpense decimal.Decimal `json:"bankExpense"`
	BankCount   int             `json:"bankCount"`

	// Ledger entries (pending/completed) still lacking a reconciliation link.
	UnreconciledIncome  decimal.Decimal `json:"unreconciledIncome"`
	UnreconciledExpense decimal.Decimal `json:"unreconciledExpense"`
	UnreconciledCount   int             `json:"unreconciledCount"`
}

// ConsolidationSnapshot is the forecast-vs-actual comparison report for one
// event account. It is recomputed from its inputs on every request and never
// persisted; identical inputs always yield an identical snapshot.
type ConsolidationSnapshot struct {
	AccountID string                  `json:"accountID"`
	Rows      []CategoryComparisonRow `json:"rows"`
	Totals    ConsolidationTotals     `json:"totals"`
}
