package domain

// ConfidenceTier buckets a numeric match score. Only HIGH and MEDIUM results
// are eligible for automatic application; NONE results are surfaced to the
// manual-review UI as the closest candidate.
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "HIGH"   // total >= 80
	ConfidenceMedium ConfidenceTier = "MEDIUM" // 60 <= total < 80
	ConfidenceNone   ConfidenceTier = "NONE"   // total < 60
)

// MatchSuggestion pairs one bank transaction with its best event candidates.
// Best is nil when no candidate clears the no-match floor; BestAttempt is
// always the closest candidate (if any events exist) so the review UI can
// display "closest candidate, needs manual confirmation".
type MatchSuggestion struct {
	BankTransaction BankTransaction `json:"bankTransaction"`
	Best            *MatchResult    `json:"best,omitempty"`
	BestAttempt     *MatchResult    `json:"bestAttempt,omitempty"`
}

// MatchResult is the ephemeral outcome of scoring one bank transaction
// against one candidate event. It is never persisted.
type MatchResult struct {
	BankTransactionID string         `json:"bankTransactionID"`
	EventID           string         `json:"eventID"`
	EventName         string         `json:"eventName"`
	DateScore         int            `json:"dateScore"`  // 0..40
	PriceScore        int            `json:"priceScore"` // 0..40
	NameScore         int            `json:"nameScore"`  // 0..20
	TotalScore        int            `json:"totalScore"` // 0..100
	Confidence        ConfidenceTier `json:"confidence"`
	Explanation       string         `json:"explanation"`
}
