package dto

import "github.com/evtfin/eventfin_backend/internal/core/domain"

// MatchResultResponse is the API shape of one scored (transaction, event)
// pairing.
type MatchResultResponse struct {
	BankTransactionID string                `json:"bankTransactionId"`
	EventID           string                `json:"eventId"`
	EventName         string                `json:"eventName"`
	DateScore         int                   `json:"dateScore"`
	PriceScore        int                   `json:"priceScore"`
	NameScore         int                   `json:"nameScore"`
	TotalScore        int                   `json:"totalScore"`
	Confidence        domain.ConfidenceTier `json:"confidence"`
	Explanation       string                `json:"explanation"`
}

// MatchSuggestionResponse pairs one bank transaction with its best event
// candidate. BestAttempt is populated even when no candidate clears the
// confidence floor, so the review UI always has something to show.
type MatchSuggestionResponse struct {
	BankTransaction BankTransactionResponse `json:"bankTransaction"`
	Best            *MatchResultResponse    `json:"best,omitempty"`
	BestAttempt     *MatchResultResponse    `json:"bestAttempt,omitempty"`
}

func toMatchResultResponse(res *domain.MatchResult) *MatchResultResponse {
	if res == nil {
		return nil
	}
	return &MatchResultResponse{
		BankTransactionID: res.BankTransactionID,
		EventID:           res.EventID,
		EventName:         res.EventName,
		DateScore:         res.DateScore,
		PriceScore:        res.PriceScore,
		NameScore:         res.NameScore,
		TotalScore:        res.TotalScore,
		Confidence:        res.Confidence,
		Explanation:       res.Explanation,
	}
}

// ToMatchSuggestionResponse converts a domain suggestion to its API shape.
func ToMatchSuggestionResponse(s domain.MatchSuggestion) MatchSuggestionResponse {
	return MatchSuggestionResponse{
		BankTransaction: ToBankTransactionResponse(&s.BankTransaction),
		Best:            toMatchResultResponse(s.Best),
		BestAttempt:     toMatchResultResponse(s.BestAttempt),
	}
}

// ToMatchSuggestionResponses converts a slice of suggestions.
func ToMatchSuggestionResponses(suggestions []domain.MatchSuggestion) []MatchSuggestionResponse {
	out := make([]MatchSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, ToMatchSuggestionResponse(s))
	}
	return out
}
