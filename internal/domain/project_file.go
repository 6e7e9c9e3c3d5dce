package domain

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FileCategory is derived from the uploaded file's content type
type FileCategory string

const (
	FileCategoryImage    FileCategory = "image"
	FileCategoryDocument FileCategory = "document"
	FileCategoryDrawing  FileCategory = "drawing"
	FileCategoryArchive  FileCategory = "archive"
	FileCategoryOther    FileCategory = "other"
)

// CategoryFromContentType maps a MIME type onto a file category
func CategoryFromContentType(contentType string) FileCategory {
	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, "image/"):
		return FileCategoryImage
	case strings.Contains(ct, "dwg"), strings.Contains(ct, "dxf"), strings.Contains(ct, "vnd.autocad"):
		return FileCategoryDrawing
	case strings.Contains(ct, "zip"), strings.Contains(ct, "tar"), strings.Contains(ct, "compressed"):
		return FileCategoryArchive
	case strings.HasPrefix(ct, "application/"), strings.HasPrefix(ct, "text/"):
		return FileCategoryDocument
	}
	return FileCategoryOther
}

// ProjectFile represents a file in a project's library. FileKey is the S3
// object key, not a full URL.
type ProjectFile struct {
	BaseModel
	ProjectID     uuid.UUID                   `gorm:"type:uuid;not null;index:idx_project_files_project_id" json:"projectId"`
	FileName      string                      `gorm:"type:varchar(255);not null" json:"fileName"`
	FileKey       string                      `gorm:"type:varchar(512);not null;uniqueIndex" json:"-"`
	FileSize      int64                       `gorm:"not null" json:"fileSize"`
	ContentType   string                      `gorm:"type:varchar(100);not null" json:"contentType"`
	Category      FileCategory                `gorm:"type:varchar(50);not null;index:idx_project_files_category" json:"category"`
	Description   string                      `gorm:"type:text" json:"description"`
	UploadedBy    uuid.UUID                   `gorm:"type:uuid;not null;index:idx_project_files_uploaded_by" json:"uploadedBy"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	IsPublic      bool                        `gorm:"not null;default:false;index:idx_project_files_is_public" json:"isPublic"`
	DownloadCount int64                       `gorm:"not null;default:0" json:"downloadCount"`
}

// TableName specifies the table name for ProjectFile
func (ProjectFile) TableName() string {
	return "project_files"
}
