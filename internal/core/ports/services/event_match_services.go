package services

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// EventMatchSvcFacade scores unverified bank transactions against events.
// Read-only; its suggestions feed a review UI and are never auto-applied
// below the confidence floor.
type EventMatchSvcFacade interface {
	MatchBankTransactions(ctx context.Context, accountID string) ([]domain.MatchSuggestion, error)
}
