package handlers

import (
	"net/http"

	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(eventService portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: eventService}
}

func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)
	events := rg.Group("/events")
	events.POST("", h.createEvent)
	events.GET("", h.listEvents)
	events.GET("/:eventID", h.getEvent)
	events.PUT("/:eventID", h.updateEvent)
}

// createEvent godoc
// @Summary      Create an event
// @Description  Creates an event with its ticket price table
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body      dto.CreateEventRequest  true  "Event data"
// @Success      201    {object}  dto.EventResponse
// @Failure      400    {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {array}  dto.EventResponse
// @Security     BearerAuth
// @Router       /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventResponse(events))
}

// getEvent godoc
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  dto.EventResponse
// @Failure      404      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /events/{eventID} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                  true  "Event ID"
// @Param        event    body      dto.UpdateEventRequest  true  "Fields to update"
// @Success      200      {object}  dto.EventResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /events/{eventID} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("eventID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
