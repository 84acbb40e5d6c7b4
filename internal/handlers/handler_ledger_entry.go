package handlers

import (
	"net/http"

	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type ledgerEntryHandler struct {
	entryService portssvc.LedgerEntrySvcFacade
}

func newLedgerEntryHandler(entryService portssvc.LedgerEntrySvcFacade) *ledgerEntryHandler {
	return &ledgerEntryHandler{entryService: entryService}
}

func registerLedgerEntryRoutes(account *gin.RouterGroup, entryService portssvc.LedgerEntrySvcFacade) {
	h := newLedgerEntryHandler(entryService)
	entries := account.Group("/ledger-entries")
	entries.POST("", h.createEntry)
	entries.POST("/bulk", h.createEntries)
	entries.GET("", h.listEntries)
	entries.GET("/:entryID", h.getEntry)
	entries.PUT("/:entryID", h.updateEntry)
	entries.DELETE("/:entryID", h.deleteEntry)
	entries.POST("/batch-delete", h.deleteEntries)
}

// createEntry godoc
// @Summary      Create a ledger entry
// @Description  Records an actual income or expense against the account
// @Tags         ledger-entries
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                        true  "Account ID"
// @Param        entry      body      dto.CreateLedgerEntryRequest  true  "Entry data"
// @Success      201        {object}  dto.LedgerEntryResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries [post]
func (h *ledgerEntryHandler) createEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create ledger entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// createEntries godoc
// @Summary      Create ledger entries in bulk
// @Description  Valid rows are saved, invalid ones are reported per index
// @Tags         ledger-entries
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                              true  "Account ID"
// @Param        entries    body      dto.BulkCreateLedgerEntriesRequest  true  "Entries to create"
// @Success      200        {object}  dto.BatchResultResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/bulk [post]
func (h *ledgerEntryHandler) createEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.BulkCreateLedgerEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.entryService.CreateEntries(c.Request.Context(), c.Param("accountID"), req.Entries, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create ledger entries")
		return
	}
	c.JSON(http.StatusOK, result)
}

// listEntries godoc
// @Summary      List ledger entries of an account
// @Tags         ledger-entries
// @Produce      json
// @Param        accountID  path     string  true  "Account ID"
// @Success      200        {array}  dto.LedgerEntryResponse
// @Failure      404        {object} ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries [get]
func (h *ledgerEntryHandler) listEntries(c *gin.Context) {
	entries, err := h.entryService.ListEntries(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerEntryResponse(entries))
}

// getEntry godoc
// @Summary      Get a ledger entry by ID
// @Tags         ledger-entries
// @Produce      json
// @Param        accountID  path      string  true  "Account ID"
// @Param        entryID    path      string  true  "Ledger entry ID"
// @Success      200        {object}  dto.LedgerEntryResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/{entryID} [get]
func (h *ledgerEntryHandler) getEntry(c *gin.Context) {
	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("accountID"), c.Param("entryID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// updateEntry godoc
// @Summary      Update a ledger entry
// @Description  Reconciled entries only allow edits that keep them completed;
// @Description  clear the reconciliation first to change status
// @Tags         ledger-entries
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                        true  "Account ID"
// @Param        entryID    path      string                        true  "Ledger entry ID"
// @Param        entry      body      dto.UpdateLedgerEntryRequest  true  "Fields to update"
// @Success      200        {object}  dto.LedgerEntryResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/{entryID} [put]
func (h *ledgerEntryHandler) updateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), c.Param("accountID"), c.Param("entryID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// deleteEntry godoc
// @Summary      Delete a ledger entry
// @Description  Reconciled entries cannot be deleted until the link is cleared
// @Tags         ledger-entries
// @Param        accountID  path  string  true  "Account ID"
// @Param        entryID    path  string  true  "Ledger entry ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/{entryID} [delete]
func (h *ledgerEntryHandler) deleteEntry(c *gin.Context) {
	if err := h.entryService.DeleteEntry(c.Request.Context(), c.Param("accountID"), c.Param("entryID")); err != nil {
		respondServiceError(c, err, "Failed to delete ledger entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteEntries godoc
// @Summary      Delete ledger entries in a batch
// @Tags         ledger-entries
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                  true  "Account ID"
// @Param        ids        body      dto.BatchDeleteRequest  true  "IDs to delete"
// @Success      200        {object}  dto.BatchResultResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/ledger-entries/batch-delete [post]
func (h *ledgerEntryHandler) deleteEntries(c *gin.Context) {
	var req dto.BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.entryService.DeleteEntries(c.Request.Context(), c.Param("accountID"), req.IDs)
	if err != nil {
		respondServiceError(c, err, "Failed to delete ledger entries")
		return
	}
	c.JSON(http.StatusOK, result)
}
