package services_test

import (
	"context"
	"testing"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/core/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerEntryServiceTestSuite struct {
	suite.Suite
	entryRepo   *MockLedgerEntryRepository
	accountRepo *MockEventAccountRepository
	service     portssvc.LedgerEntrySvcFacade
}

func (suite *LedgerEntryServiceTestSuite) SetupTest() {
	suite.entryRepo = new(MockLedgerEntryRepository)
	suite.accountRepo = new(MockEventAccountRepository)
	suite.service = services.NewLedgerEntryService(suite.entryRepo, suite.accountRepo)
	suite.accountRepo.On("FindAccountByID", mock.Anything, testAccountID).Return(testAccount(), nil).Maybe()
}

func (suite *LedgerEntryServiceTestSuite) TestCreateEntry_DefaultsToPendingWithoutLink() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		TransactionDate: datePtr(2025, 3, 10),
		FlowType:        domain.Expense,
		Category:        "CATERING",
		Description:     "pizza",
		Amount:          decimal.RequireFromString("60.00"),
	}

	suite.entryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(entry domain.LedgerEntry) bool {
		return entry.Status == domain.EntryPending && entry.ReconciledBankTransactionID == nil
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, testAccountID, req, testUserID)

	suite.Require().NoError(err)
	suite.False(entry.IsReconciled())
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerEntryServiceTestSuite) TestCreateEntries_CollectsInvalidRows() {
	ctx := context.Background()
	reqs := []dto.CreateLedgerEntryRequest{
		{
			FlowType:    domain.Expense,
			Category:    "CATERING",
			Description: "pizza",
			Amount:      decimal.RequireFromString("60.00"),
		},
		{
			FlowType:    domain.Expense,
			Category:    "CATERING",
			Description: "bad amount",
			Amount:      decimal.RequireFromString("-1.00"),
		},
	}

	suite.entryRepo.On("SaveEntries", ctx, mock.MatchedBy(func(entries []domain.LedgerEntry) bool {
		return len(entries) == 1
	})).Return(portsrepo.BatchOutcome{Succeeded: []string{"whatever"}}, nil).Once()

	res, err := suite.service.CreateEntries(ctx, testAccountID, reqs, testUserID)

	suite.Require().NoError(err)
	suite.Equal(1, res.SucceededCount)
	suite.Equal(1, res.FailedCount)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntry_CannotCancelWhileReconciled() {
	ctx := context.Background()
	entry := makeEntry("e1", "pizza", "60.00", datePtr(2025, 3, 10), domain.Expense)
	txnID := "t1"
	entry.ReconciledBankTransactionID = &txnID
	entry.Status = domain.EntryCompleted
	cancelled := domain.EntryCancelled

	suite.entryRepo.On("FindEntryByID", ctx, "e1").Return(&entry, nil)

	_, err := suite.service.UpdateEntry(ctx, testAccountID, "e1", dto.UpdateLedgerEntryRequest{Status: &cancelled}, testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.entryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntry_AmountAndDateLockedWhileReconciled() {
	ctx := context.Background()
	entry := makeEntry("e1", "pizza", "60.00", datePtr(2025, 3, 10), domain.Expense)
	txnID := "t1"
	entry.ReconciledBankTransactionID = &txnID
	entry.Status = domain.EntryCompleted

	suite.entryRepo.On("FindEntryByID", ctx, "e1").Return(&entry, nil)

	newAmount := decimal.RequireFromString("75.00")
	_, err := suite.service.UpdateEntry(ctx, testAccountID, "e1", dto.UpdateLedgerEntryRequest{Amount: &newAmount}, testUserID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateEntry(ctx, testAccountID, "e1", dto.UpdateLedgerEntryRequest{TransactionDate: datePtr(2025, 3, 11)}, testUserID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	suite.entryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)

	// Notes stay editable; they carry no weight in the link.
	newNotes := "paid from petty cash"
	suite.entryRepo.On("UpdateEntry", ctx, mock.Anything).Return(nil).Once()
	updated, err := suite.service.UpdateEntry(ctx, testAccountID, "e1", dto.UpdateLedgerEntryRequest{Notes: &newNotes}, testUserID)
	suite.Require().NoError(err)
	suite.Equal(newNotes, updated.Notes)
}

func (suite *LedgerEntryServiceTestSuite) TestUpdateEntry_EditableFieldsOnly() {
	ctx := context.Background()
	entry := makeEntry("e1", "pizza", "60.00", datePtr(2025, 3, 10), domain.Expense)
	newNotes := "receipt attached"

	suite.entryRepo.On("FindEntryByID", ctx, "e1").Return(&entry, nil)
	suite.entryRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(updated domain.LedgerEntry) bool {
		return updated.Notes == newNotes && updated.ReconciledBankTransactionID == nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(ctx, testAccountID, "e1", dto.UpdateLedgerEntryRequest{Notes: &newNotes}, testUserID)

	suite.Require().NoError(err)
	suite.Equal(newNotes, updated.Notes)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerEntryServiceTestSuite) TestDeleteEntry_BlockedWhileReconciled() {
	ctx := context.Background()
	entry := makeEntry("e1", "pizza", "60.00", datePtr(2025, 3, 10), domain.Expense)
	txnID := "t1"
	entry.ReconciledBankTransactionID = &txnID
	entry.Status = domain.EntryCompleted

	suite.entryRepo.On("FindEntryByID", ctx, "e1").Return(&entry, nil)

	err := suite.service.DeleteEntry(ctx, testAccountID, "e1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.entryRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerEntryServiceTestSuite) TestDeleteEntries_ReconciledOnesFail() {
	ctx := context.Background()
	plain := makeEntry("e1", "pizza", "60.00", datePtr(2025, 3, 10), domain.Expense)
	linked := makeEntry("e2", "venue", "150.00", datePtr(2025, 3, 11), domain.Expense)
	txnID := "t1"
	linked.ReconciledBankTransactionID = &txnID
	linked.Status = domain.EntryCompleted

	suite.entryRepo.On("FindEntryByID", ctx, "e1").Return(&plain, nil)
	suite.entryRepo.On("FindEntryByID", ctx, "e2").Return(&linked, nil)
	suite.entryRepo.On("DeleteEntries", ctx, []string{"e1"}).
		Return(portsrepo.BatchOutcome{Succeeded: []string{"e1"}}, nil).Once()

	res, err := suite.service.DeleteEntries(ctx, testAccountID, []string{"e1", "e2"})

	suite.Require().NoError(err)
	suite.Equal(1, res.SucceededCount)
	suite.Equal(1, res.FailedCount)
	suite.Contains(res.Failures, "e2")
}

func TestLedgerEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerEntryServiceTestSuite))
}
