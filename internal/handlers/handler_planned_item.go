package handlers

import (
	"net/http"

	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type plannedItemHandler struct {
	itemService portssvc.PlannedItemSvcFacade
}

func newPlannedItemHandler(itemService portssvc.PlannedItemSvcFacade) *plannedItemHandler {
	return &plannedItemHandler{itemService: itemService}
}

func registerPlannedItemRoutes(account *gin.RouterGroup, itemService portssvc.PlannedItemSvcFacade) {
	h := newPlannedItemHandler(itemService)
	items := account.Group("/planned-items")
	items.POST("", h.createItem)
	items.GET("", h.listItems)
	items.GET("/:itemID", h.getItem)
	items.PUT("/:itemID", h.updateItem)
	items.DELETE("/:itemID", h.deleteItem)
	items.POST("/batch-delete", h.deleteItems)
}

// createItem godoc
// @Summary      Create a planned item
// @Description  Adds a forecast line to the account budget
// @Tags         planned-items
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                       true  "Account ID"
// @Param        item       body      dto.CreatePlannedItemRequest true  "Planned item data"
// @Success      201        {object}  dto.PlannedItemResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/planned-items [post]
func (h *plannedItemHandler) createItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePlannedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create planned item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPlannedItemResponse(item))
}

// listItems godoc
// @Summary      List planned items of an account
// @Tags         planned-items
// @Produce      json
// @Param        accountID  path     string  true  "Account ID"
// @Success      200        {array}  dto.PlannedItemResponse
// @Failure      404        {object} ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/planned-items [get]
func (h *plannedItemHandler) listItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list planned items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPlannedItemResponse(items))
}

// getItem godoc
// @Summary      Get a planned item by ID
// @Tags         planned-items
// @Produce      json
// @Param        accountID  path      string  true  "Account ID"
// @Param        itemID     path      string  true  "Planned item ID"
// @Success      200        {object}  dto.PlannedItemResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/planned-items/{itemID} [get]
func (h *plannedItemHandler) getItem(c *gin.Context) {
	item, err := h.itemService.GetItemByID(c.Request.Context(), c.Param("accountID"), c.Param("itemID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get planned item")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlannedItemResponse(item))
}

// updateItem godoc
// @Summary      Update a planned item
// @Tags         planned-items
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                       true  "Account ID"
// @Param        itemID     path      string                       true  "Planned item ID"
// @Param        item       body      dto.UpdatePlannedItemRequest true  "Fields to update"
// @Success      200        {object}  dto.PlannedItemResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/planned-items/{itemID} [put]
func (h *plannedItemHandler) updateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePlannedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), c.Param("accountID"), c.Param("itemID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update planned item")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlannedItemResponse(item))
}

// deleteItem godoc
// @Summary      Delete a planned item
// @Tags         planned-items
// @Param        accountID  path  string  true  "Account ID"
// @Param        itemID     path  string  true  "Planned item ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/planned-items/{itemID} [delete]
func (h *plannedItemHandler) deleteItem(c *gin.Context) {
	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("accountID"), c.Param("itemID")); err != nil {
		respondServiceError(c, err, "Failed to delete planned item")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteItems godoc
// @Summary      Delete planned items in a batch
// @Description  Collects per-item failures instead of aborting on the first
// @Tags         planned-items
// @Accept       json
// @Produce      json
// @Param        accountID  path      string                  true  "Account ID"
// @Param        ids        body      dto.BatchDeleteRequest  true  "IDs to delete"
// @Success      200        {object}  dto.BatchResultResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /accounts/{accountID}/planned-items/batch-delete [post]
func (h *plannedItemHandler) deleteItems(c *gin.Context) {
	var req dto.BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.itemService.DeleteItems(c.Request.Context(), c.Param("accountID"), req.IDs)
	if err != nil {
		respondServiceError(c, err, "Failed to delete planned items")
		return
	}
	c.JSON(http.StatusOK, result)
}
