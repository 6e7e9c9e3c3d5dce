package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/service"
)

// FileHandler handles project file library endpoints
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// UploadFile godoc
// @Summary      Upload a file to a project's library
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File to upload"
// @Param        projectId formData string true "Project ID (UUID)"
// @Param        description formData string false "File description"
// @Param        tags formData string false "Comma-separated tags"
// @Param        isPublic formData bool false "Visible to the client role"
// @Router       /files [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	userID, _, ok := callerFrom(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "No file in request")
		return
	}
	var form dto.UploadFileForm
	if err := c.ShouldBind(&form); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid form fields")
		return
	}
	projectID, err := uuid.Parse(form.ProjectID)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid project ID")
		return
	}

	file, err := h.fileService.UploadFile(c.Request.Context(), projectID, userID, header, &form)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, file)
}

// ListFiles godoc
// @Summary      List a project's files with library stats
// @Description  Clients only see files flagged public
// @Tags         files
// @Produce      json
// @Param        projectId query string true "Project ID (UUID)"
// @Router       /files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	projectID, err := uuid.Parse(c.Query("projectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid or missing projectId")
		return
	}
	_, role, ok := callerFrom(c)
	if !ok {
		return
	}

	files, err := h.fileService.ListFiles(c.Request.Context(), projectID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	stats, err := h.fileService.GetStats(c.Request.Context(), projectID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.FileListResponse{Files: files, Stats: stats})
}

// DownloadFile godoc
// @Summary      Resolve a file's download URL and count the download
// @Tags         files
// @Produce      json
// @Param        fileId path string true "File ID (UUID)"
// @Router       /files/{fileId}/download [get]
func (h *FileHandler) DownloadFile(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid file ID")
		return
	}
	_, role, ok := callerFrom(c)
	if !ok {
		return
	}

	url, err := h.fileService.GetDownloadURL(c.Request.Context(), fileID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"url": url})
}

// UpdateFile godoc
// @Summary      Update a file's metadata
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        fileId path string true "File ID (UUID)"
// @Param        request body dto.UpdateFileRequest true "Fields to update"
// @Router       /files/{fileId} [put]
func (h *FileHandler) UpdateFile(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid file ID")
		return
	}

	var req dto.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	file, err := h.fileService.UpdateFile(c.Request.Context(), fileID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, file)
}

// DeleteFile godoc
// @Summary      Delete a file and its stored object
// @Tags         files
// @Produce      json
// @Param        fileId path string true "File ID (UUID)"
// @Router       /files/{fileId} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid file ID")
		return
	}

	if err := h.fileService.DeleteFile(c.Request.Context(), fileID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
