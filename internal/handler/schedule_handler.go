package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/schedule"
	"construction-dashboard-api/internal/service"
)

// ScheduleHandler handles schedule and phase endpoints
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// GetSchedule godoc
// @Summary      Get a project's full schedule
// @Description  Every phase with its activities, overall stats and upcoming work
// @Tags         schedule
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Router       /projects/{projectId}/schedule [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}
	userID, role, ok := callerFrom(c)
	if !ok {
		return
	}

	sched, err := h.scheduleService.GetSchedule(c.Request.Context(), projectID, userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, sched)
}

// GetGroupedSchedule godoc
// @Summary      Get the phase-and-week grouped schedule view
// @Tags         schedule
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        status query string false "Status filter, 'all' for no filter"
// @Param        search query string false "Substring match over title, contractor, supervisor"
// @Router       /projects/{projectId}/schedule/grouped [get]
func (h *ScheduleHandler) GetGroupedSchedule(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	filter := schedule.Filter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}
	grouped, err := h.scheduleService.GetGroupedSchedule(c.Request.Context(), projectID, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, grouped)
}

// CreatePhase godoc
// @Summary      Add a phase to a project's schedule
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreatePhaseRequest true "Phase payload"
// @Router       /projects/{projectId}/schedule [post]
func (h *ScheduleHandler) CreatePhase(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	phase, err := h.scheduleService.CreatePhase(c.Request.Context(), projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, phase)
}

// UpdatePhase godoc
// @Summary      Update a schedule phase
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        phaseId path string true "Phase ID (UUID)"
// @Param        request body dto.UpdatePhaseRequest true "Fields to update"
// @Param        projectId path string true "Project ID (UUID)"
// @Router       /projects/{projectId}/schedule/{phaseId} [put]
func (h *ScheduleHandler) UpdatePhase(c *gin.Context) {
	phaseID, err := uuid.Parse(c.Param("phaseId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid phase ID")
		return
	}

	var req dto.UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	phase, err := h.scheduleService.UpdatePhase(c.Request.Context(), phaseID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, phase)
}

// DeletePhase godoc
// @Summary      Delete a schedule phase and its activities
// @Tags         schedule
// @Produce      json
// @Param        phaseId path string true "Phase ID (UUID)"
// @Param        projectId path string true "Project ID (UUID)"
// @Router       /projects/{projectId}/schedule/{phaseId} [delete]
func (h *ScheduleHandler) DeletePhase(c *gin.Context) {
	phaseID, err := uuid.Parse(c.Param("phaseId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid phase ID")
		return
	}

	if err := h.scheduleService.DeletePhase(c.Request.Context(), phaseID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
