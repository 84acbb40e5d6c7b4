package services_test

import (
	"context"
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockEventAccountRepository is a mock type for the EventAccountRepositoryFacade interface
type MockEventAccountRepository struct {
	mock.Mock
}

func (m *MockEventAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.EventAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventAccount), args.Error(1)
}

func (m *MockEventAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.EventAccount, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventAccount), args.Error(1)
}

func (m *MockEventAccountRepository) SaveAccount(ctx context.Context, account domain.EventAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockEventAccountRepository) UpdateAccount(ctx context.Context, account domain.EventAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockEventAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// MockPlannedItemRepository is a mock type for the PlannedItemRepositoryFacade interface
type MockPlannedItemRepository struct {
	mock.Mock
}

func (m *MockPlannedItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.PlannedItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlannedItem), args.Error(1)
}

func (m *MockPlannedItemRepository) ListItemsByAccount(ctx context.Context, accountID string) ([]domain.PlannedItem, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlannedItem), args.Error(1)
}

func (m *MockPlannedItemRepository) SaveItem(ctx context.Context, item domain.PlannedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPlannedItemRepository) UpdateItem(ctx context.Context, item domain.PlannedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPlannedItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockPlannedItemRepository) DeleteItems(ctx context.Context, itemIDs []string) (portsrepo.BatchOutcome, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).(portsrepo.BatchOutcome), args.Error(1)
}

// MockLedgerEntryRepository is a mock type for the LedgerEntryRepositoryFacade interface
type MockLedgerEntryRepository struct {
	mock.Mock
}

func (m *MockLedgerEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListEntriesByAccount(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) (portsrepo.BatchOutcome, error) {
	args := m.Called(ctx, entries)
	return args.Get(0).(portsrepo.BatchOutcome), args.Error(1)
}

func (m *MockLedgerEntryRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) SetReconciliation(ctx context.Context, entryID string, bankTransactionID string, userID string) error {
	args := m.Called(ctx, entryID, bankTransactionID, userID)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) ClearReconciliation(ctx context.Context, entryID string, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) ApplyReconciliations(ctx context.Context, updates []portsrepo.ReconciliationUpdate, userID string) (portsrepo.BatchOutcome, error) {
	args := m.Called(ctx, updates, userID)
	return args.Get(0).(portsrepo.BatchOutcome), args.Error(1)
}

func (m *MockLedgerEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) DeleteEntries(ctx context.Context, entryIDs []string) (portsrepo.BatchOutcome, error) {
	args := m.Called(ctx, entryIDs)
	return args.Get(0).(portsrepo.BatchOutcome), args.Error(1)
}

// MockBankTransactionRepository is a mock type for the BankTransactionReader interface
type MockBankTransactionRepository struct {
	mock.Mock
}

func (m *MockBankTransactionRepository) FindBankTransactionByID(ctx context.Context, bankTransactionID string) (*domain.BankTransaction, error) {
	args := m.Called(ctx, bankTransactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepository) ListBankTransactions(ctx context.Context, financialAccountID string) ([]domain.BankTransaction, error) {
	args := m.Called(ctx, financialAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankTransaction), args.Error(1)
}

// MockEventRepository is a mock type for the EventRepositoryFacade interface
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
