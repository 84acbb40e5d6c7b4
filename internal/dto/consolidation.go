package dto

import (
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryRowResponse is one category line of the consolidation report.
type CategoryRowResponse struct {
	FlowType   domain.FlowType       `json:"flowType"`
	Category   string                `json:"category"`
	Forecast   decimal.Decimal       `json:"forecast"`
	Actual     decimal.Decimal       `json:"actual"`
	Variance   decimal.Decimal       `json:"variance"`
	Percentage decimal.Decimal       `json:"percentage"`
	Status     domain.CategoryStatus `json:"status"`
}

// ConsolidationTotalsResponse carries the account-level rollups.
type ConsolidationTotalsResponse struct {
	ForecastIncome  decimal.Decimal `json:"forecastIncome"`
	ForecastExpense decimal.Decimal `json:"forecastExpense"`
	ForecastProfit  decimal.Decimal `json:"forecastProfit"`

	ActualIncome  decimal.Decimal `json:"actualIncome"`
	ActualExpense decimal.Decimal `json:"actualExpense"`
	ActualProfit  decimal.Decimal `json:"actualProfit"`

	BankIncome  decimal.Decimal `json:"bankIncome"`
	BankExpense decimal.Decimal `json:"bankExpense"`
	BankCount   int             `json:"bankCount"`

	UnreconciledIncome  decimal.Decimal `json:"unreconciledIncome"`
	UnreconciledExpense decimal.Decimal `json:"unreconciledExpense"`
	UnreconciledCount   int             `json:"unreconciledCount"`
}

// ConsolidationResponse is the API shape of a consolidation snapshot.
type ConsolidationResponse struct {
	AccountID string                      `json:"accountId"`
	Rows      []CategoryRowResponse       `json:"rows"`
	Totals    ConsolidationTotalsResponse `json:"totals"`
}

// ToCategoryRowResponse converts a domain comparison row to its API shape.
func ToCategoryRowResponse(row domain.CategoryComparisonRow) CategoryRowResponse {
	return CategoryRowResponse{
		FlowType:   row.FlowType,
		Category:   row.Category,
		Forecast:   row.Forecast,
		Actual:     row.Actual,
		Variance:   row.Variance,
		Percentage: row.Percentage,
		Status:     row.Status,
	}
}

// ToConsolidationResponse converts a domain snapshot to its API shape.
func ToConsolidationResponse(snap *domain.ConsolidationSnapshot) ConsolidationResponse {
	rows := make([]CategoryRowResponse, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		rows = append(rows, ToCategoryRowResponse(row))
	}
	return ConsolidationResponse{
		AccountID: snap.AccountID,
		Rows:      rows,
		Totals: ConsolidationTotalsResponse{
			ForecastIncome:      snap.Totals.ForecastIncome,
			ForecastExpense:     snap.Totals.ForecastExpense,
			ForecastProfit:      snap.Totals.ForecastProfit,
			ActualIncome:        snap.Totals.ActualIncome,
			ActualExpense:       snap.Totals.ActualExpense,
			ActualProfit:        snap.Totals.ActualProfit,
			BankIncome:          snap.Totals.BankIncome,
			BankExpense:         snap.Totals.BankExpense,
			BankCount:           snap.Totals.BankCount,
			UnreconciledIncome:  snap.Totals.UnreconciledIncome,
			UnreconciledExpense: snap.Totals.UnreconciledExpense,
			UnreconciledCount:   snap.Totals.UnreconciledCount,
		},
	}
}
