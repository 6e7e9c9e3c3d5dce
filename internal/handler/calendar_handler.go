package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/service"
)

// CalendarHandler handles calendar event endpoints
type CalendarHandler struct {
	calendarService service.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// CreateEvent godoc
// @Summary      Create a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateEventRequest true "Event payload"
// @Router       /calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	userID, _, ok := callerFrom(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	event, err := h.calendarService.CreateEvent(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, event)
}

// GetEvents godoc
// @Summary      List events inside a date window
// @Description  Clients only see events flagged visible to them
// @Tags         calendar
// @Produce      json
// @Param        from query string false "Window start (YYYY-MM-DD), defaults to start of month"
// @Param        to query string false "Window end (YYYY-MM-DD)"
// @Param        projectId query string false "Restrict to one project"
// @Router       /calendar/events [get]
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	_, role, ok := callerFrom(c)
	if !ok {
		return
	}

	var query dto.EventRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	events, err := h.calendarService.GetEvents(c.Request.Context(), &query, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, events)
}

// UpdateEvent godoc
// @Summary      Update a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        eventId path string true "Event ID (UUID)"
// @Param        request body dto.UpdateEventRequest true "Fields to update"
// @Router       /calendar/events/{eventId} [put]
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid event ID")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	event, err := h.calendarService.UpdateEvent(c.Request.Context(), eventID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary      Delete a calendar event
// @Tags         calendar
// @Produce      json
// @Param        eventId path string true "Event ID (UUID)"
// @Router       /calendar/events/{eventId} [delete]
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid event ID")
		return
	}

	if err := h.calendarService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
