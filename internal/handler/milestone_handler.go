package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/service"
)

// MilestoneHandler handles milestone endpoints
type MilestoneHandler struct {
	milestoneService service.MilestoneService
}

// NewMilestoneHandler creates a new MilestoneHandler
func NewMilestoneHandler(milestoneService service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// CreateMilestone godoc
// @Summary      Create a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateMilestoneRequest true "Milestone payload"
// @Router       /projects/{projectId}/milestones [post]
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	milestone, err := h.milestoneService.CreateMilestone(c.Request.Context(), projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, milestone)
}

// GetMilestones godoc
// @Summary      List a project's milestones ordered by due date
// @Tags         milestones
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Router       /projects/{projectId}/milestones [get]
func (h *MilestoneHandler) GetMilestones(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	milestones, err := h.milestoneService.GetMilestones(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, milestones)
}

// UpdateMilestone godoc
// @Summary      Update a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        milestoneId path string true "Milestone ID (UUID)"
// @Param        request body dto.UpdateMilestoneRequest true "Fields to update"
// @Router       /milestones/{milestoneId} [put]
func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("milestoneId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid milestone ID")
		return
	}

	var req dto.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	milestone, err := h.milestoneService.UpdateMilestone(c.Request.Context(), milestoneID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, milestone)
}

// DeleteMilestone godoc
// @Summary      Delete a milestone
// @Tags         milestones
// @Produce      json
// @Param        milestoneId path string true "Milestone ID (UUID)"
// @Router       /milestones/{milestoneId} [delete]
func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("milestoneId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid milestone ID")
		return
	}

	if err := h.milestoneService.DeleteMilestone(c.Request.Context(), milestoneID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
