package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/service"
)

// DailyHandler handles the daily site progress endpoints. A snapshot is
// addressed by the projectId and date query parameters, matching the composite
// key of the daily log.
type DailyHandler struct {
	dailyService service.DailyService
}

// NewDailyHandler creates a new DailyHandler
func NewDailyHandler(dailyService service.DailyService) *DailyHandler {
	return &DailyHandler{dailyService: dailyService}
}

func parseDayQuery(c *gin.Context) (uuid.UUID, time.Time, bool) {
	projectID, err := uuid.Parse(c.Query("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid or missing projectId")
		return uuid.Nil, time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid or missing date, expected YYYY-MM-DD")
		return uuid.Nil, time.Time{}, false
	}
	return projectID, date, true
}

// GetDaily godoc
// @Summary      Get the daily snapshot for one project and date
// @Tags         daily
// @Produce      json
// @Param        projectId query string true "Project ID (UUID)"
// @Param        date query string true "Work date (YYYY-MM-DD)"
// @Router       /site-schedule/daily [get]
func (h *DailyHandler) GetDaily(c *gin.Context) {
	projectID, date, ok := parseDayQuery(c)
	if !ok {
		return
	}

	snapshot, err := h.dailyService.GetDaily(c.Request.Context(), projectID, date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, snapshot)
}

// AddActivity godoc
// @Summary      Add an activity to a daily snapshot
// @Tags         daily
// @Accept       json
// @Produce      json
// @Param        projectId query string true "Project ID (UUID)"
// @Param        date query string true "Work date (YYYY-MM-DD)"
// @Param        request body dto.CreateActivityRequest true "Activity payload"
// @Router       /site-schedule/daily [post]
func (h *DailyHandler) AddActivity(c *gin.Context) {
	projectID, date, ok := parseDayQuery(c)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	snapshot, err := h.dailyService.AddActivity(c.Request.Context(), projectID, date, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, snapshot)
}

// UpdateActivity godoc
// @Summary      Patch one activity inside a daily snapshot
// @Description  The activity is addressed in the body by projectId, date and
// @Description  activityId; updates carries only the changed fields
// @Tags         daily
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateDailyActivityRequest true "Patch payload"
// @Router       /site-schedule/daily [put]
func (h *DailyHandler) UpdateActivity(c *gin.Context) {
	var req dto.UpdateDailyActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	snapshot, err := h.dailyService.UpdateActivity(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, snapshot)
}

// DeleteDaily godoc
// @Summary      Delete a daily snapshot, or one activity from it
// @Description  With an activityId query parameter only that activity is
// @Description  removed and the rebuilt snapshot is returned; without one the
// @Description  whole day is deleted
// @Tags         daily
// @Produce      json
// @Param        projectId query string true "Project ID (UUID)"
// @Param        date query string true "Work date (YYYY-MM-DD)"
// @Param        activityId query string false "Activity ID (UUID)"
// @Router       /site-schedule/daily [delete]
func (h *DailyHandler) DeleteDaily(c *gin.Context) {
	projectID, date, ok := parseDayQuery(c)
	if !ok {
		return
	}

	if raw := c.Query("activityId"); raw != "" {
		activityID, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid activity ID")
			return
		}
		snapshot, err := h.dailyService.RemoveActivity(c.Request.Context(), projectID, date, activityID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		response.SendSuccess(c, http.StatusOK, snapshot)
		return
	}

	if err := h.dailyService.DeleteDay(c.Request.Context(), projectID, date); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// UpsertNote godoc
// @Summary      Record the site conditions for a date
// @Tags         daily
// @Accept       json
// @Produce      json
// @Param        projectId query string true "Project ID (UUID)"
// @Param        date query string true "Work date (YYYY-MM-DD)"
// @Param        request body dto.UpsertDailyNoteRequest true "Note payload"
// @Router       /site-schedule/daily/note [put]
func (h *DailyHandler) UpsertNote(c *gin.Context) {
	projectID, date, ok := parseDayQuery(c)
	if !ok {
		return
	}

	var req dto.UpsertDailyNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	snapshot, err := h.dailyService.UpsertNote(c.Request.Context(), projectID, date, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, snapshot)
}
