package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// consolidationService implements the ConsolidationSvcFacade interface
type consolidationService struct {
	BaseService
	itemRepo    portsrepo.PlannedItemReader
	entryRepo   portsrepo.LedgerEntryReader
	bankRepo    portsrepo.BankTransactionReader
	accountRepo portsrepo.EventAccountReader
}

// NewConsolidationService creates a new consolidation service
func NewConsolidationService(
	itemRepo portsrepo.PlannedItemReader,
	entryRepo portsrepo.LedgerEntryReader,
	bankRepo portsrepo.BankTransactionReader,
	accountRepo portsrepo.EventAccountReader,
) portssvc.ConsolidationSvcFacade {
	return &consolidationService{
		itemRepo:    itemRepo,
		entryRepo:   entryRepo,
		bankRepo:    bankRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.ConsolidationSvcFacade = (*consolidationService)(nil)

func (s *consolidationService) Consolidate(ctx context.Context, accountID string) (*domain.ConsolidationSnapshot, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	items, err := s.itemRepo.ListItemsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned items: %w", err)
	}
	entries, err := s.entryRepo.ListEntriesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	txns, err := s.bankRepo.ListBankTransactions(ctx, account.FinancialAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}

	snap := computeSnapshot(accountID, items, entries, txns)
	s.LogDebug(ctx, "Consolidation computed",
		slog.String("account_id", accountID),
		slog.Int("rows", len(snap.Rows)))
	return snap, nil
}

type flowCategory struct {
	flow     domain.FlowType
	category string
}

// categoryStatus applies the progression policy. Order matters: a category
// whose actuals have reached or passed the forecast is exceeded even when
// the percentage also clears the completed threshold.
func categoryStatus(forecast, actual, percentage decimal.Decimal) domain.CategoryStatus {
	switch {
	case actual.IsZero():
		return domain.CategoryPending
	case actual.GreaterThanOrEqual(forecast):
		return domain.CategoryExceeded
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return domain.CategoryCompleted
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return domain.CategoryPartial
	default:
		return domain.CategoryPending
	}
}

// computeSnapshot derives the consolidation report from its inputs alone.
// It performs no I/O, so identical inputs always produce identical output.
func computeSnapshot(accountID string, items []domain.PlannedItem, entries []domain.LedgerEntry, txns []domain.BankTransaction) *domain.ConsolidationSnapshot {
	forecastByCat := make(map[flowCategory]decimal.Decimal)
	actualByCat := make(map[flowCategory]decimal.Decimal)

	totals := domain.ConsolidationTotals{}

	for _, item := range items {
		key := flowCategory{item.FlowType, item.Category}
		forecastByCat[key] = forecastByCat[key].Add(item.Amount)
		if item.FlowType == domain.Income {
			totals.ForecastIncome = totals.ForecastIncome.Add(item.Amount)
		} else {
			totals.ForecastExpense = totals.ForecastExpense.Add(item.Amount)
		}
	}
	totals.ForecastProfit = totals.ForecastIncome.Sub(totals.ForecastExpense)

	for _, txn := range txns {
		totals.BankCount++
		if txn.FlowType == domain.Income {
			totals.BankIncome = totals.BankIncome.Add(txn.Amount)
		} else {
			totals.BankExpense = totals.BankExpense.Add(txn.Amount)
		}
		if txn.Category == "" {
			continue
		}
		key := flowCategory{txn.FlowType, txn.Category}
		actualByCat[key] = actualByCat[key].Add(txn.Amount)
	}

	for _, entry := range entries {
		if entry.Status == domain.EntryCancelled {
			continue
		}
		if entry.FlowType == domain.Income {
			totals.ActualIncome = totals.ActualIncome.Add(entry.Amount)
		} else {
			totals.ActualExpense = totals.ActualExpense.Add(entry.Amount)
		}
		if !entry.IsReconciled() {
			totals.UnreconciledCount++
			if entry.FlowType == domain.Income {
				totals.UnreconciledIncome = totals.UnreconciledIncome.Add(entry.Amount)
			} else {
				totals.UnreconciledExpense = totals.UnreconciledExpense.Add(entry.Amount)
			}
		}
	}
	totals.ActualProfit = totals.ActualIncome.Sub(totals.ActualExpense)

	// Rows cover the union of forecast and actual categories, so money spent
	// outside the plan still shows up.
	keys := make([]flowCategory, 0, len(forecastByCat)+len(actualByCat))
	seen := make(map[flowCategory]bool)
	for key := range forecastByCat {
		keys = append(keys, key)
		seen[key] = true
	}
	for key := range actualByCat {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].flow != keys[j].flow {
			return keys[i].flow < keys[j].flow
		}
		return keys[i].category < keys[j].category
	})

	rows := make([]domain.CategoryComparisonRow, 0, len(keys))
	for _, key := range keys {
		forecast := forecastByCat[key]
		actual := actualByCat[key]
		variance := actual.Sub(forecast)
		percentage := decimal.Zero
		if forecast.IsPositive() {
			percentage = actual.Mul(decimal.NewFromInt(100)).Div(forecast).Round(2)
		}
		rows = append(rows, domain.CategoryComparisonRow{
			FlowType:   key.flow,
			Category:   key.category,
			Forecast:   forecast,
			Actual:     actual,
			Variance:   variance,
			Percentage: percentage,
			Status:     categoryStatus(forecast, actual, percentage),
		})
	}

	return &domain.ConsolidationSnapshot{
		AccountID: accountID,
		Rows:      rows,
		Totals:    totals,
	}
}
