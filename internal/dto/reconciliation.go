package dto

import "github.com/evtfin/eventfin_backend/internal/core/domain"

// ReconcileRequest asks to link one ledger entry to one bank transaction.
type ReconcileRequest struct {
	BankTransactionID string `json:"bankTransactionID" binding:"required"`
}

// AutoReconcileResponse reports the outcome of a batch auto-reconcile run.
// The run is best effort: failed items do not roll back successful ones.
type AutoReconcileResponse struct {
	MatchedCount   int               `json:"matchedCount"`
	UnmatchedCount int               `json:"unmatchedCount"`
	FailedCount    int               `json:"failedCount"`
	Failures       map[string]string `json:"failures,omitempty"` // entry ID -> reason
}

// CandidateListResponse wraps the bank transactions a user may pick from
// when manually reconciling one ledger entry.
type CandidateListResponse struct {
	EntryID    string                    `json:"entryID"`
	Candidates []BankTransactionResponse `json:"candidates"`
}

// ToAutoReconcileResponse converts a domain.AutoReconcileReport.
func ToAutoReconcileResponse(report *domain.AutoReconcileReport) AutoReconcileResponse {
	resp := AutoReconcileResponse{
		MatchedCount:   report.MatchedCount,
		UnmatchedCount: report.UnmatchedCount,
		FailedCount:    len(report.Failures),
	}
	if len(report.Failures) > 0 {
		resp.Failures = make(map[string]string, len(report.Failures))
		for entryID, err := range report.Failures {
			resp.Failures[entryID] = err.Error()
		}
	}
	return resp
}
