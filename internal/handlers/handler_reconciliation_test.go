package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/evtfin/eventfin_backend/internal/handlers"
	"github.com/evtfin/eventfin_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) Reconcile(ctx context.Context, accountID string, entryID string, bankTransactionID string, userID string) error {
	args := m.Called(ctx, accountID, entryID, bankTransactionID, userID)
	return args.Error(0)
}
func (m *MockReconciliationService) ClearReconciliation(ctx context.Context, accountID string, entryID string, userID string) error {
	args := m.Called(ctx, accountID, entryID, userID)
	return args.Error(0)
}
func (m *MockReconciliationService) IsReconciled(ctx context.Context, accountID string, entryID string) (bool, error) {
	args := m.Called(ctx, accountID, entryID)
	return args.Bool(0), args.Error(1)
}
func (m *MockReconciliationService) ListCandidates(ctx context.Context, accountID string, entryID string) ([]domain.BankTransaction, error) {
	args := m.Called(ctx, accountID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankTransaction), args.Error(1)
}
func (m *MockReconciliationService) AutoReconcile(ctx context.Context, accountID string, userID string) (*domain.AutoReconcileReport, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutoReconcileReport), args.Error(1)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Test Suite ---
type ReconciliationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReconciliationService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ReconciliationHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "eventfin-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReconciliationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockReconciliationService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTIssuer:         "eventfin-test",
		JWTExpiryDuration: time.Hour,
		IsProduction:      true, // skip swagger registration
	}

	services := &portssvc.ServiceContainer{
		Reconciliation: suite.mockService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ReconciliationHandlerTestSuite) doRequest(method, url string, body any, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReconciliationHandlerTestSuite) TestReconcile_Success() {
	accountID := uuid.NewString()
	entryID := uuid.NewString()
	txnID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("Reconcile", mock.Anything, accountID, entryID, txnID, userID).
		Return(nil).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/ledger-entries/%s/reconcile", accountID, entryID)
	w := suite.doRequest(http.MethodPut, url, dto.ReconcileRequest{BankTransactionID: txnID}, userID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReconciliationHandlerTestSuite) TestReconcile_ConsumedTransactionIsConflict() {
	accountID := uuid.NewString()
	entryID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("Reconcile", mock.Anything, accountID, entryID, mock.Anything, userID).
		Return(fmt.Errorf("%w: bank transaction already reconciled", apperrors.ErrDuplicateReconciliation)).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/ledger-entries/%s/reconcile", accountID, entryID)
	w := suite.doRequest(http.MethodPut, url, dto.ReconcileRequest{BankTransactionID: uuid.NewString()}, userID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ReconciliationHandlerTestSuite) TestReconcile_MissingBodyIsBadRequest() {
	url := fmt.Sprintf("/api/v1/accounts/%s/ledger-entries/%s/reconcile", uuid.NewString(), uuid.NewString())
	w := suite.doRequest(http.MethodPut, url, map[string]string{}, uuid.NewString())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Reconcile")
}

func (suite *ReconciliationHandlerTestSuite) TestReconcile_Unauthenticated() {
	url := fmt.Sprintf("/api/v1/accounts/%s/ledger-entries/%s/reconcile", uuid.NewString(), uuid.NewString())
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(nil))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ReconciliationHandlerTestSuite) TestClearReconciliation_Success() {
	accountID := uuid.NewString()
	entryID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("ClearReconciliation", mock.Anything, accountID, entryID, userID).
		Return(nil).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/ledger-entries/%s/reconcile", accountID, entryID)
	w := suite.doRequest(http.MethodDelete, url, nil, userID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReconciliationHandlerTestSuite) TestListCandidates_Success() {
	accountID := uuid.NewString()
	entryID := uuid.NewString()
	txnID := uuid.NewString()

	candidates := []domain.BankTransaction{
		{
			BankTransactionID:  txnID,
			FinancialAccountID: "fin-1",
			TransactionDate:    time.Now(),
			FlowType:           domain.Expense,
			Amount:             decimal.NewFromFloat(42.50),
			Description:        "PRINTING SVC INV 42",
		},
	}
	suite.mockService.On("ListCandidates", mock.Anything, accountID, entryID).
		Return(candidates, nil).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/ledger-entries/%s/candidates", accountID, entryID)
	w := suite.doRequest(http.MethodGet, url, nil, uuid.NewString())

	suite.Equal(http.StatusOK, w.Code)

	var body dto.CandidateListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(entryID, body.EntryID)
	suite.Require().Len(body.Candidates, 1)
	suite.Equal(txnID, body.Candidates[0].BankTransactionID)
}

func (suite *ReconciliationHandlerTestSuite) TestAutoReconcile_ReportsCounts() {
	accountID := uuid.NewString()
	userID := uuid.NewString()

	report := &domain.AutoReconcileReport{
		MatchedCount:   3,
		UnmatchedCount: 2,
		Failures: map[string]error{
			"entry-9": fmt.Errorf("%w: bank transaction already reconciled", apperrors.ErrDuplicateReconciliation),
		},
	}
	suite.mockService.On("AutoReconcile", mock.Anything, accountID, userID).
		Return(report, nil).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/reconciliation/auto", accountID)
	w := suite.doRequest(http.MethodPost, url, nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.AutoReconcileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(3, body.MatchedCount)
	suite.Equal(2, body.UnmatchedCount)
	suite.Equal(1, body.FailedCount)
	suite.Contains(body.Failures, "entry-9")
}

func (suite *ReconciliationHandlerTestSuite) TestAutoReconcile_InProgressIsConflict() {
	accountID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("AutoReconcile", mock.Anything, accountID, userID).
		Return(nil, apperrors.ErrReconcileInProgress).Once()

	url := fmt.Sprintf("/api/v1/accounts/%s/reconciliation/auto", accountID)
	w := suite.doRequest(http.MethodPost, url, nil, userID)

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestReconciliationHandler(t *testing.T) {
	suite.Run(t, new(ReconciliationHandlerTestSuite))
}
