package handlers

import (
	"net/http"

	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type eventMatchHandler struct {
	matchService portssvc.EventMatchSvcFacade
}

func newEventMatchHandler(matchService portssvc.EventMatchSvcFacade) *eventMatchHandler {
	return &eventMatchHandler{matchService: matchService}
}

func registerEventMatchRoutes(account *gin.RouterGroup, matchService portssvc.EventMatchSvcFacade) {
	h := newEventMatchHandler(matchService)
	account.GET("/event-matches", h.matchBankTransactions)
}

// matchBankTransactions godoc
// @Summary      Suggest event matches for unverified bank transactions
// @Description  Scores each unverified transaction against known events and
// @Description  returns the best candidate per transaction. Read-only.
// @Tags         event-matches
// @Produce      json
// @Param        accountID  path     string  true  "Account ID"
// @Success      200        {array}  dto.MatchSuggestionResponse
// @Failure      404        {object} ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/event-matches [get]
func (h *eventMatchHandler) matchBankTransactions(c *gin.Context) {
	suggestions, err := h.matchService.MatchBankTransactions(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, err, "Failed to match bank transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToMatchSuggestionResponses(suggestions))
}
