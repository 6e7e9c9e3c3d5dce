package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/middleware"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/service"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProjectRequest true "Project payload"
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, project)
}

// GetProject godoc
// @Summary      Get one project
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Router       /projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}
	userID, role, ok := callerFrom(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID, userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, project)
}

// ListProjects godoc
// @Summary      List projects visible to the caller
// @Tags         projects
// @Produce      json
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, role, ok := callerFrom(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, projects)
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.UpdateProjectRequest true "Fields to update"
// @Router       /projects/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, project)
}

// UpdateProjectStatus godoc
// @Summary      Change a project's status
// @Description  Single-field patch for status transitions
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Router       /projects/{projectId}/status [patch]
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, &dto.UpdateProjectRequest{Status: &req.Status})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, project)
}

// ArchiveProject godoc
// @Summary      Archive a project
// @Description  Marks the project cancelled; its history stays readable
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Router       /projects/{projectId} [delete]
func (h *ProjectHandler) ArchiveProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	if err := h.projectService.ArchiveProject(c.Request.Context(), projectID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"archived": true})
}

// callerFrom extracts the authenticated user and role, writing the 401 itself
// when the auth middleware did not run or stored the wrong types
func callerFrom(c *gin.Context) (uuid.UUID, domain.Role, bool) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User not found in context")
		return uuid.Nil, "", false
	}
	role, ok := middleware.RoleFrom(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Role not found in context")
		return uuid.Nil, "", false
	}
	return userID, role, true
}
