package handlers

import (
	"net/http"

	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(reconciliationService portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: reconciliationService}
}

func registerReconciliationRoutes(account *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	entry := account.Group("/ledger-entries/:entryID")
	entry.GET("/candidates", h.listCandidates)
	entry.GET("/reconciliation", h.getReconciliationStatus)
	entry.PUT("/reconcile", h.reconcile)
	entry.DELETE("/reconcile", h.clearReconciliation)

	account.POST("/reconciliation/auto", h.autoReconcile)
}

// listCandidates godoc
// @Summary      List bank transactions that could back a ledger entry
// @Description  Same flow type, equal amount, not yet claimed by another entry
// @Tags         reconciliation
// @Produce      json
// @Param        accountID  path      string  true  "Account ID"
// @Param        entryID    path      string  true  "Ledger entry ID"
// @Success      200        {object}  dto.CandidateListResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/{entryID}/candidates [get]
func (h *reconciliationHandler) listCandidates(c *gin.Context) {
	entryID := c.Param("entryID")
	candidates, err := h.reconciliationService.ListCandidates(c.Request.Context(), c.Param("accountID"), entryID)
	if err != nil {
		respondServiceError(c, err, "Failed to list reconciliation candidates")
		return
	}
	c.JSON(http.StatusOK, dto.CandidateListResponse{
		EntryID:    entryID,
		Candidates: dto.ToListBankTransactionResponse(candidates),
	})
}

// getReconciliationStatus godoc
// @Summary      Report whether a ledger entry is reconciled
// @Tags         reconciliation
// @Produce      json
// @Param        accountID  path      string  true  "Account ID"
// @Param        entryID    path      string  true  "Ledger entry ID"
// @Success      200        {object}  map[string]bool
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/{entryID}/reconciliation [get]
func (h *reconciliationHandler) getReconciliationStatus(c *gin.Context) {
	reconciled, err := h.reconciliationService.IsReconciled(c.Request.Context(), c.Param("accountID"), c.Param("entryID"))
	if err != nil {
		respondServiceError(c, err, "Failed to check reconciliation status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reconciled": reconciled})
}

// reconcile godoc
// @Summary      Link a ledger entry to a bank transaction
// @Description  Idempotent for the same pair; 409 when the bank transaction
// @Description  already backs a different entry
// @Tags         reconciliation
// @Accept       json
// @Param        accountID  path  string               true  "Account ID"
// @Param        entryID    path  string               true  "Ledger entry ID"
// @Param        link       body  dto.ReconcileRequest true  "Bank transaction to link"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/{entryID}/reconcile [put]
func (h *reconciliationHandler) reconcile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	err := h.reconciliationService.Reconcile(c.Request.Context(), c.Param("accountID"), c.Param("entryID"), req.BankTransactionID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to reconcile ledger entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// clearReconciliation godoc
// @Summary      Remove the reconciliation link of a ledger entry
// @Description  Reverts the entry to pending and frees the bank transaction.
// @Description  No-op when the entry is already unreconciled.
// @Tags         reconciliation
// @Param        accountID  path  string  true  "Account ID"
// @Param        entryID    path  string  true  "Ledger entry ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/{entryID}/reconcile [delete]
func (h *reconciliationHandler) clearReconciliation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.reconciliationService.ClearReconciliation(c.Request.Context(), c.Param("accountID"), c.Param("entryID"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to clear reconciliation")
		return
	}
	c.Status(http.StatusNoContent)
}

// autoReconcile godoc
// @Summary      Auto-reconcile every unreconciled entry of the account
// @Description  Best-effort batch; 409 when a run is already in progress for
// @Description  the account
// @Tags         reconciliation
// @Produce      json
// @Param        accountID  path      string  true  "Account ID"
// @Success      200        {object}  dto.AutoReconcileResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/reconciliation/auto [post]
func (h *reconciliationHandler) autoReconcile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.reconciliationService.AutoReconcile(c.Request.Context(), c.Param("accountID"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to auto-reconcile account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutoReconcileResponse(report))
}
