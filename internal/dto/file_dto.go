package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadFileForm carries the multipart form fields accompanying a file upload.
// The file itself arrives as the "file" form part.
type UploadFileForm struct {
	ProjectID   string `form:"projectId" binding:"required"`
	Description string `form:"description" binding:"max=2000"`
	Tags        string `form:"tags" example:"drawings,stage-2"`
	IsPublic    bool   `form:"isPublic"`
}

// UpdateFileRequest represents a metadata update to a stored file
type UpdateFileRequest struct {
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    *bool    `json:"isPublic,omitempty"`
}

// FileResponse represents a project file in API responses
type FileResponse struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"projectId"`
	FileName      string    `json:"fileName"`
	FileSize      int64     `json:"fileSize"`
	ContentType   string    `json:"contentType"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	UploadedBy    uuid.UUID `json:"uploadedBy"`
	Tags          []string  `json:"tags"`
	IsPublic      bool      `json:"isPublic"`
	DownloadCount int64     `json:"downloadCount"`
	URL           string    `json:"url,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FileStatsResponse summarizes a project's file library by category
type FileStatsResponse struct {
	TotalFiles      int64            `json:"totalFiles"`
	TotalSize       int64            `json:"totalSize"`
	CountByCategory map[string]int64 `json:"countByCategory"`
}

// FileListResponse carries a project's files together with the library stats
type FileListResponse struct {
	Files []*FileResponse    `json:"files"`
	Stats *FileStatsResponse `json:"stats"`
}
