package handlers

import (
	"net/http"

	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type consolidationHandler struct {
	consolidationService portssvc.ConsolidationSvcFacade
}

func newConsolidationHandler(consolidationService portssvc.ConsolidationSvcFacade) *consolidationHandler {
	return &consolidationHandler{consolidationService: consolidationService}
}

func registerConsolidationRoutes(account *gin.RouterGroup, consolidationService portssvc.ConsolidationSvcFacade) {
	h := newConsolidationHandler(consolidationService)
	account.GET("/consolidation", h.consolidate)
}

// consolidate godoc
// @Summary      Get the forecast-vs-actual comparison for an account
// @Description  Recomputed on every call from planned items, ledger entries
// @Description  and bank transactions
// @Tags         consolidation
// @Produce      json
// @Param        accountID  path      string  true  "Account ID"
// @Success      200        {object}  dto.ConsolidationResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/consolidation [get]
func (h *consolidationHandler) consolidate(c *gin.Context) {
	snapshot, err := h.consolidationService.Consolidate(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, err, "Failed to consolidate account")
		return
	}
	c.JSON(http.StatusOK, dto.ToConsolidationResponse(snapshot))
}
