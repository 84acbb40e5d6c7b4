package domain

// AutoReconcileReport summarizes one batch auto-reconcile run over an
// account. The run is best effort: Failures lists staged links that did not
// apply, without rolling back the ones that did.
type AutoReconcileReport struct {
	AccountID string `json:"accountID"`
	// MatchedCount is the number of links applied successfully.
	MatchedCount int `json:"matchedCount"`
	// UnmatchedCount is the number of unreconciled entries no bank
	// transaction could be found for.
	UnmatchedCount int `json:"unmatchedCount"`
	// Assignments maps entry ID to the bank transaction it was linked to.
	Assignments map[string]string `json:"assignments,omitempty"`
	// Failures maps entry ID to the error that prevented its staged link
	// from applying.
	Failures map[string]error `json:"-"`
}
