package handlers

import (
	"net/http"

	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(accountService portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: accountService}
}

// registerAccountRoutes sets up the account CRUD routes and the nested
// per-account resources (planned items, ledger entries, reconciliation,
// consolidation, event matches).
func registerAccountRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAccountHandler(services.Account)

	accounts := rg.Group("/accounts")
	accounts.POST("", h.createAccount)
	accounts.GET("", h.listAccounts)
	accounts.GET("/:accountID", h.getAccount)
	accounts.PUT("/:accountID", h.updateAccount)
	accounts.DELETE("/:accountID", h.deactivateAccount)

	account := accounts.Group("/:accountID")
	registerPlannedItemRoutes(account, services.PlannedItem)
	registerLedgerEntryRoutes(account, services.LedgerEntry)
	registerReconciliationRoutes(account, services.Reconciliation)
	registerConsolidationRoutes(account, services.Consolidation)
	registerEventMatchRoutes(account, services.EventMatch)
}

// createAccount godoc
// @Summary      Create an event account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account  body      dto.CreateAccountRequest  true  "Account data"
// @Success      201      {object}  dto.AccountResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary      List active event accounts
// @Tags         accounts
// @Produce      json
// @Param        limit   query     int  false  "Page size"     default(20)
// @Param        offset  query     int  false  "Page offset"   default(0)
// @Success      200     {array}   dto.AccountResponse
// @Failure      400     {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccount godoc
// @Summary      Get an event account by ID
// @Tags         accounts
// @Produce      json
// @Param        accountID  path      string  true  "Account ID"
// @Success      200        {object}  dto.AccountResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary      Update an event account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                    true  "Account ID"
// @Param        account    body      dto.UpdateAccountRequest  true  "Fields to update"
// @Success      200        {object}  dto.AccountResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary      Deactivate an event account
// @Description  Soft delete; the account disappears from listings but its
// @Description  records stay queryable by ID
// @Tags         accounts
// @Param        accountID  path  string  true  "Account ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), c.Param("accountID"), userID); err != nil {
		respondServiceError(c, err, "Failed to deactivate account")
		return
	}
	c.Status(http.StatusNoContent)
}
