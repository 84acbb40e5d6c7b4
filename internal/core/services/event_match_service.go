package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/utils/matching"
)

const (
	listRetryAttempts = 3
	listRetryBaseWait = 200 * time.Millisecond
)

// eventMatchService implements the EventMatchSvcFacade interface. Read-only:
// it scores, it never links.
type eventMatchService struct {
	BaseService
	bankRepo    portsrepo.BankTransactionReader
	eventRepo   portsrepo.EventReader
	accountRepo portsrepo.EventAccountReader
	matchCfg    matching.Config
}

// EventMatchOption is a functional option for configuring the event-match
// service
type EventMatchOption func(*eventMatchService)

// WithEventMatchConfig overrides the default matching configuration
func WithEventMatchConfig(cfg matching.Config) EventMatchOption {
	return func(s *eventMatchService) {
		s.matchCfg = cfg
	}
}

// NewEventMatchService creates a new event auto-match service
func NewEventMatchService(
	bankRepo portsrepo.BankTransactionReader,
	eventRepo portsrepo.EventReader,
	accountRepo portsrepo.EventAccountReader,
	options ...EventMatchOption,
) portssvc.EventMatchSvcFacade {
	svc := &eventMatchService{
		bankRepo:    bankRepo,
		eventRepo:   eventRepo,
		accountRepo: accountRepo,
		matchCfg:    matching.DefaultConfig(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EventMatchSvcFacade = (*eventMatchService)(nil)

// listTransactionsWithRetry retries transient read failures with a linear
// backoff. Retrying is safe here because the call only reads.
func (s *eventMatchService) listTransactionsWithRetry(ctx context.Context, financialAccountID string) ([]domain.BankTransaction, error) {
	var lastErr error
	for attempt := 1; attempt <= listRetryAttempts; attempt++ {
		txns, err := s.bankRepo.ListBankTransactions(ctx, financialAccountID)
		if err == nil {
			return txns, nil
		}
		lastErr = err
		s.LogDebug(ctx, "Bank transaction listing failed, retrying",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * listRetryBaseWait):
		}
	}
	return nil, fmt.Errorf("failed to list bank transactions after %d attempts: %w", listRetryAttempts, lastErr)
}

func (s *eventMatchService) MatchBankTransactions(ctx context.Context, accountID string) ([]domain.MatchSuggestion, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	txns, err := s.listTransactionsWithRetry(ctx, account.FinancialAccountID)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	suggestions := make([]domain.MatchSuggestion, 0)
	for _, txn := range txns {
		if txn.Verified {
			continue
		}
		best, bestAttempt := s.matchCfg.BestEventMatch(txn, events)
		suggestions = append(suggestions, domain.MatchSuggestion{
			BankTransaction: txn,
			Best:            best,
			BestAttempt:     bestAttempt,
		})
	}

	s.LogInfo(ctx, "Event matching finished",
		slog.String("account_id", accountID),
		slog.Int("transactions", len(suggestions)),
		slog.Int("events", len(events)))
	return suggestions, nil
}
