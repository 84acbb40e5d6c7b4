package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func makeTestEvent(id, name string, date time.Time, regular string) domain.Event {
	return domain.Event{
		EventID:   id,
		Name:      name,
		EventDate: date,
		Prices: domain.PriceTable{
			Regular: decimal.RequireFromString(regular),
		},
	}
}

type EventMatchServiceTestSuite struct {
	suite.Suite
	bankRepo    *MockBankTransactionRepository
	eventRepo   *MockEventRepository
	accountRepo *MockEventAccountRepository
	service     portssvc.EventMatchSvcFacade
}

func (suite *EventMatchServiceTestSuite) SetupTest() {
	suite.bankRepo = new(MockBankTransactionRepository)
	suite.eventRepo = new(MockEventRepository)
	suite.accountRepo = new(MockEventAccountRepository)
	suite.service = services.NewEventMatchService(suite.bankRepo, suite.eventRepo, suite.accountRepo)
	suite.accountRepo.On("FindAccountByID", mock.Anything, testAccountID).Return(testAccount(), nil).Maybe()
}

func (suite *EventMatchServiceTestSuite) TestMatch_HighConfidenceSuggestion() {
	eventDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	txn := makeTxn("t1", "spring gala ticket", "50.00", eventDate, domain.Income)
	event := makeTestEvent("ev1", "Spring Gala", eventDate, "50.00")

	suite.bankRepo.On("ListBankTransactions", mock.Anything, testFinAccountID).Return([]domain.BankTransaction{txn}, nil)
	suite.eventRepo.On("ListEvents", mock.Anything).Return([]domain.Event{event}, nil)

	suggestions, err := suite.service.MatchBankTransactions(context.Background(), testAccountID)

	suite.Require().NoError(err)
	suite.Require().Len(suggestions, 1)
	suite.Require().NotNil(suggestions[0].Best)
	suite.Equal("ev1", suggestions[0].Best.EventID)
	suite.Equal(domain.ConfidenceHigh, suggestions[0].Best.Confidence)
	suite.Require().NotNil(suggestions[0].BestAttempt)
	suite.Equal(suggestions[0].Best, suggestions[0].BestAttempt)
}

func (suite *EventMatchServiceTestSuite) TestMatch_UnderFloorStillReportsBestAttempt() {
	eventDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	// Months away, unrelated amount and wording: no tier is reachable.
	txn := makeTxn("t1", "xyzcorp payout", "123.45", eventDate.AddDate(0, 6, 0), domain.Income)
	event := makeTestEvent("ev1", "Spring Gala", eventDate, "50.00")

	suite.bankRepo.On("ListBankTransactions", mock.Anything, testFinAccountID).Return([]domain.BankTransaction{txn}, nil)
	suite.eventRepo.On("ListEvents", mock.Anything).Return([]domain.Event{event}, nil)

	suggestions, err := suite.service.MatchBankTransactions(context.Background(), testAccountID)

	suite.Require().NoError(err)
	suite.Require().Len(suggestions, 1)
	suite.Nil(suggestions[0].Best)
	suite.Require().NotNil(suggestions[0].BestAttempt)
	suite.Equal(domain.ConfidenceNone, suggestions[0].BestAttempt.Confidence)
}

func (suite *EventMatchServiceTestSuite) TestMatch_SkipsVerifiedTransactions() {
	eventDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	verified := makeTxn("t1", "spring gala ticket", "50.00", eventDate, domain.Income)
	verified.Verified = true

	suite.bankRepo.On("ListBankTransactions", mock.Anything, testFinAccountID).Return([]domain.BankTransaction{verified}, nil)
	suite.eventRepo.On("ListEvents", mock.Anything).Return([]domain.Event{makeTestEvent("ev1", "Spring Gala", eventDate, "50.00")}, nil)

	suggestions, err := suite.service.MatchBankTransactions(context.Background(), testAccountID)

	suite.Require().NoError(err)
	suite.Empty(suggestions)
}

func (suite *EventMatchServiceTestSuite) TestMatch_RetriesTransientListFailures() {
	eventDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	txn := makeTxn("t1", "spring gala ticket", "50.00", eventDate, domain.Income)

	transient := errors.New("connection reset")
	suite.bankRepo.On("ListBankTransactions", mock.Anything, testFinAccountID).Return(nil, transient).Twice()
	suite.bankRepo.On("ListBankTransactions", mock.Anything, testFinAccountID).Return([]domain.BankTransaction{txn}, nil).Once()
	suite.eventRepo.On("ListEvents", mock.Anything).Return([]domain.Event{makeTestEvent("ev1", "Spring Gala", eventDate, "50.00")}, nil)

	suggestions, err := suite.service.MatchBankTransactions(context.Background(), testAccountID)

	suite.Require().NoError(err)
	suite.Len(suggestions, 1)
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *EventMatchServiceTestSuite) TestMatch_GivesUpAfterRetriesExhausted() {
	transient := errors.New("connection reset")
	suite.bankRepo.On("ListBankTransactions", mock.Anything, testFinAccountID).Return(nil, transient)

	_, err := suite.service.MatchBankTransactions(context.Background(), testAccountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, transient)
	suite.bankRepo.AssertNumberOfCalls(suite.T(), "ListBankTransactions", 3)
}

func TestEventMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventMatchServiceTestSuite))
}
