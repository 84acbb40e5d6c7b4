package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func makePlannedItem(id, category, amount string, flow domain.FlowType) domain.PlannedItem {
	return domain.PlannedItem{
		PlannedItemID: id,
		AccountID:     testAccountID,
		FlowType:      flow,
		Category:      category,
		Description:   "planned " + category,
		Amount:        decimal.RequireFromString(amount),
		ExpectedDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:        domain.PlannedItemConfirmed,
	}
}

func makeCategorizedTxn(id, category, amount string, flow domain.FlowType) domain.BankTransaction {
	txn := makeTxn(id, "txn "+id, amount, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), flow)
	txn.Category = category
	return txn
}

type ConsolidationServiceTestSuite struct {
	suite.Suite
	itemRepo    *MockPlannedItemRepository
	entryRepo   *MockLedgerEntryRepository
	bankRepo    *MockBankTransactionRepository
	accountRepo *MockEventAccountRepository
	service     portssvc.ConsolidationSvcFacade
}

func (suite *ConsolidationServiceTestSuite) SetupTest() {
	suite.itemRepo = new(MockPlannedItemRepository)
	suite.entryRepo = new(MockLedgerEntryRepository)
	suite.bankRepo = new(MockBankTransactionRepository)
	suite.accountRepo = new(MockEventAccountRepository)
	suite.service = services.NewConsolidationService(suite.itemRepo, suite.entryRepo, suite.bankRepo, suite.accountRepo)
	suite.accountRepo.On("FindAccountByID", mock.Anything, testAccountID).Return(testAccount(), nil).Maybe()
}

func (suite *ConsolidationServiceTestSuite) stub(items []domain.PlannedItem, entries []domain.LedgerEntry, txns []domain.BankTransaction) {
	suite.itemRepo.On("ListItemsByAccount", mock.Anything, testAccountID).Return(items, nil)
	suite.entryRepo.On("ListEntriesByAccount", mock.Anything, testAccountID).Return(entries, nil)
	suite.bankRepo.On("ListBankTransactions", mock.Anything, testFinAccountID).Return(txns, nil)
}

func (suite *ConsolidationServiceTestSuite) TestRowsCoverUnionOfCategories() {
	suite.stub(
		[]domain.PlannedItem{
			makePlannedItem("p1", "CATERING", "200.00", domain.Expense),
		},
		[]domain.LedgerEntry{},
		[]domain.BankTransaction{
			// Spending outside the plan still gets a row.
			makeCategorizedTxn("t1", "DECOR", "45.00", domain.Expense),
		},
	)

	snap, err := suite.service.Consolidate(context.Background(), testAccountID)

	suite.Require().NoError(err)
	suite.Require().Len(snap.Rows, 2)
	suite.Equal("CATERING", snap.Rows[0].Category)
	suite.Equal(domain.CategoryPending, snap.Rows[0].Status)
	suite.Equal("DECOR", snap.Rows[1].Category)
	suite.True(snap.Rows[1].Forecast.IsZero())
	suite.Equal(domain.CategoryExceeded, snap.Rows[1].Status)
}

func (suite *ConsolidationServiceTestSuite) TestCategoryStatusProgression() {
	suite.stub(
		[]domain.PlannedItem{
			makePlannedItem("p1", "PENDING_CAT", "100.00", domain.Expense),
			makePlannedItem("p2", "LOW_CAT", "100.00", domain.Expense),
			makePlannedItem("p3", "PARTIAL_CAT", "100.00", domain.Expense),
			makePlannedItem("p4", "EXCEEDED_CAT", "100.00", domain.Expense),
		},
		[]domain.LedgerEntry{},
		[]domain.BankTransaction{
			makeCategorizedTxn("t1", "LOW_CAT", "30.00", domain.Expense),
			makeCategorizedTxn("t2", "PARTIAL_CAT", "50.00", domain.Expense),
			makeCategorizedTxn("t3", "EXCEEDED_CAT", "120.00", domain.Expense),
		},
	)

	snap, err := suite.service.Consolidate(context.Background(), testAccountID)

	suite.Require().NoError(err)
	statuses := make(map[string]domain.CategoryStatus)
	for _, row := range snap.Rows {
		statuses[row.Category] = row.Status
	}
	suite.Equal(domain.CategoryPending, statuses["PENDING_CAT"])
	suite.Equal(domain.CategoryPending, statuses["LOW_CAT"])
	suite.Equal(domain.CategoryPartial, statuses["PARTIAL_CAT"])
	suite.Equal(domain.CategoryExceeded, statuses["EXCEEDED_CAT"])
}

func (suite *ConsolidationServiceTestSuite) TestActualAtForecastIsExceeded() {
	suite.stub(
		[]domain.PlannedItem{makePlannedItem("p1", "CATERING", "100.00", domain.Expense)},
		[]domain.LedgerEntry{},
		[]domain.BankTransaction{makeCategorizedTxn("t1", "CATERING", "100.00", domain.Expense)},
	)

	snap, err := suite.service.Consolidate(context.Background(), testAccountID)

	suite.Require().NoError(err)
	suite.Require().Len(snap.Rows, 1)
	suite.Equal(domain.CategoryExceeded, snap.Rows[0].Status)
	suite.True(snap.Rows[0].Variance.IsZero())
}

func (suite *ConsolidationServiceTestSuite) TestTotals() {
	txnID := "t-linked"
	linked := makeEntry("e1", "tickets", "300.00", datePtr(2025, 3, 10), domain.Income)
	linked.ReconciledBankTransactionID = &txnID
	linked.Status = domain.EntryCompleted
	unlinked := makeEntry("e2", "decor", "45.00", datePtr(2025, 3, 11), domain.Expense)
	cancelled := makeEntry("e3", "cancelled thing", "999.00", datePtr(2025, 3, 12), domain.Expense)
	cancelled.Status = domain.EntryCancelled

	suite.stub(
		[]domain.PlannedItem{
			makePlannedItem("p1", "TICKETS", "400.00", domain.Income),
			makePlannedItem("p2", "DECOR", "50.00", domain.Expense),
		},
		[]domain.LedgerEntry{linked, unlinked, cancelled},
		[]domain.BankTransaction{
			makeTxn("t-linked", "TICKET SALES", "300.00", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), domain.Income),
			makeTxn("t-other", "SOMETHING", "10.00", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), domain.Expense),
		},
	)

	snap, err := suite.service.Consolidate(context.Background(), testAccountID)

	suite.Require().NoError(err)
	totals := snap.Totals
	suite.True(totals.ForecastIncome.Equal(decimal.RequireFromString("400.00")))
	suite.True(totals.ForecastExpense.Equal(decimal.RequireFromString("50.00")))
	suite.True(totals.ForecastProfit.Equal(decimal.RequireFromString("350.00")))
	// Cancelled entries are excluded from actuals.
	suite.True(totals.ActualIncome.Equal(decimal.RequireFromString("300.00")))
	suite.True(totals.ActualExpense.Equal(decimal.RequireFromString("45.00")))
	suite.True(totals.ActualProfit.Equal(decimal.RequireFromString("255.00")))
	suite.Equal(2, totals.BankCount)
	suite.True(totals.BankIncome.Equal(decimal.RequireFromString("300.00")))
	suite.True(totals.BankExpense.Equal(decimal.RequireFromString("10.00")))
	suite.Equal(1, totals.UnreconciledCount)
	suite.True(totals.UnreconciledExpense.Equal(decimal.RequireFromString("45.00")))
	suite.True(totals.UnreconciledIncome.IsZero())
}

func (suite *ConsolidationServiceTestSuite) TestRecomputationIsPure() {
	suite.stub(
		[]domain.PlannedItem{makePlannedItem("p1", "CATERING", "200.00", domain.Expense)},
		[]domain.LedgerEntry{makeEntry("e1", "catering", "80.00", datePtr(2025, 3, 10), domain.Expense)},
		[]domain.BankTransaction{makeCategorizedTxn("t1", "CATERING", "80.00", domain.Expense)},
	)

	first, err := suite.service.Consolidate(context.Background(), testAccountID)
	suite.Require().NoError(err)
	second, err := suite.service.Consolidate(context.Background(), testAccountID)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func TestConsolidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConsolidationServiceTestSuite))
}
