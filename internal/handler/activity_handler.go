package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/service"
)

// ActivityHandler handles the cross-project activity endpoints
type ActivityHandler struct {
	activityService service.ActivityService
	fileService     service.FileService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService service.ActivityService, fileService service.FileService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, fileService: fileService}
}

// ListActivities godoc
// @Summary      List activities across projects
// @Description  Flat list with project titles embedded; filters are ANDed and
// @Description  'all' disables an enum filter
// @Tags         activities
// @Produce      json
// @Param        status query string false "Status filter"
// @Param        category query string false "Category filter"
// @Param        priority query string false "Priority filter"
// @Param        search query string false "Free-text search"
// @Param        projectId query string false "Restrict to one project"
// @Param        from query string false "Start of date window (YYYY-MM-DD)"
// @Param        to query string false "End of date window (YYYY-MM-DD)"
// @Router       /site-schedule/activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var query dto.ActivityFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	records, stats, err := h.activityService.ListActivities(c.Request.Context(), &query)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{
		"activities": records,
		"stats":      stats,
	})
}

// CreateActivity godoc
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateActivityRequest true "Activity payload"
// @Router       /projects/{projectId}/activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, activity)
}

// UpdateActivity godoc
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityId path string true "Activity ID (UUID)"
// @Param        request body dto.UpdateActivityRequest true "Fields to update"
// @Router       /activities/{activityId} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid activity ID")
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), activityID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, activity)
}

// UpdateActivityStatus godoc
// @Summary      Change an activity's status
// @Description  Single-field patch, open to every authenticated role. Legacy
// @Description  hyphenated spellings are accepted and normalized.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityId path string true "Activity ID (UUID)"
// @Router       /activities/{activityId}/status [patch]
func (h *ActivityHandler) UpdateActivityStatus(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid activity ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), activityID, &dto.UpdateActivityRequest{Status: &req.Status})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, activity)
}

// DeleteActivity godoc
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Param        activityId path string true "Activity ID (UUID)"
// @Router       /activities/{activityId} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid activity ID")
		return
	}

	if err := h.activityService.DeleteActivity(c.Request.Context(), activityID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// UploadImages godoc
// @Summary      Upload site photos for a project's activities
// @Description  Multipart batch under the "images" field. Non-images and files
// @Description  over 10MB are skipped; the rest upload.
// @Tags         activities
// @Accept       multipart/form-data
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Router       /projects/{projectId}/activities/images [post]
func (h *ActivityHandler) UploadImages(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid multipart form")
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "No images in request")
		return
	}

	urls, skipped, err := h.fileService.UploadActivityImages(c.Request.Context(), projectID, headers)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, gin.H{
		"urls":    urls,
		"skipped": skipped,
	})
}
