package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/client"
	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/metrics"
	"construction-dashboard-api/internal/repository"
	"construction-dashboard-api/internal/response"
)

// MaxImageSize caps a single uploaded site photo at 10MB
const MaxImageSize = 10 * 1024 * 1024

// MaxFileSize caps a single library file at 50MB
const MaxFileSize = 50 * 1024 * 1024

// FileService defines the interface for the project file library
type FileService interface {
	UploadFile(ctx context.Context, projectID, uploadedBy uuid.UUID, header *multipart.FileHeader, form *dto.UploadFileForm) (*dto.FileResponse, error)
	UploadActivityImages(ctx context.Context, projectID uuid.UUID, headers []*multipart.FileHeader) ([]string, []string, error)
	ListFiles(ctx context.Context, projectID uuid.UUID, role domain.Role) ([]*dto.FileResponse, error)
	GetDownloadURL(ctx context.Context, fileID uuid.UUID, role domain.Role) (string, error)
	GetStats(ctx context.Context, projectID uuid.UUID, role domain.Role) (*dto.FileStatsResponse, error)
	UpdateFile(ctx context.Context, fileID uuid.UUID, req *dto.UpdateFileRequest) (*dto.FileResponse, error)
	DeleteFile(ctx context.Context, fileID uuid.UUID) error
}

type fileServiceImpl struct {
	fileRepo repository.FileRepository
	s3Client client.S3ClientInterface
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewFileService creates a new instance of FileService
func NewFileService(fileRepo repository.FileRepository, s3Client client.S3ClientInterface, m *metrics.Metrics, logger *zap.Logger) FileService {
	return &fileServiceImpl{
		fileRepo: fileRepo,
		s3Client: s3Client,
		metrics:  m,
		logger:   logger,
	}
}

// UploadFile stores one library file in S3 and records its metadata
func (s *fileServiceImpl) UploadFile(ctx context.Context, projectID, uploadedBy uuid.UUID, header *multipart.FileHeader, form *dto.UploadFileForm) (*dto.FileResponse, error) {
	if header.Size > MaxFileSize {
		return nil, response.NewAppError(response.ErrCodeUpload, "File exceeds the 50MB limit", header.Filename)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := s.s3Client.GenerateFileKey(client.StorageKindFiles, projectID, header.Filename)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpload, "Failed to generate storage key", err.Error())
	}

	src, err := header.Open()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUpload, "Failed to read uploaded file", err.Error())
	}
	defer src.Close()

	if _, err := s.s3Client.UploadFile(ctx, key, src, contentType); err != nil {
		return nil, response.NewAppError(response.ErrCodeUpload, "Failed to store file", err.Error())
	}

	var tags []string
	for _, t := range strings.Split(form.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	file := &domain.ProjectFile{
		ProjectID:   projectID,
		FileName:    header.Filename,
		FileKey:     key,
		FileSize:    header.Size,
		ContentType: contentType,
		Category:    domain.CategoryFromContentType(contentType),
		Description: form.Description,
		UploadedBy:  uploadedBy,
		Tags:        datatypes.JSONSlice[string](tags),
		IsPublic:    form.IsPublic,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		// best effort: do not leave an orphan object behind
		if delErr := s.s3Client.DeleteFile(ctx, key); delErr != nil {
			s.logger.Error("failed to clean up orphaned object", zap.String("key", key), zap.Error(delErr))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record file", err.Error())
	}

	s.metrics.RecordFileUpload(header.Size)
	s.logger.Info("file uploaded",
		zap.String("project_id", projectID.String()),
		zap.String("file_id", file.ID.String()),
		zap.Int64("size", header.Size),
	)
	return s.toFileResponse(file), nil
}

// UploadActivityImages stores a batch of site photos. Each file must be an
// image under the size cap; failures skip the file and are reported back,
// they never abort the batch.
func (s *fileServiceImpl) UploadActivityImages(ctx context.Context, projectID uuid.UUID, headers []*multipart.FileHeader) ([]string, []string, error) {
	urls := make([]string, 0, len(headers))
	var skipped []string

	for _, header := range headers {
		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
			skipped = append(skipped, header.Filename+": not an image")
			continue
		}
		if header.Size > MaxImageSize {
			skipped = append(skipped, header.Filename+": exceeds the 10MB limit")
			continue
		}

		key, err := s.s3Client.GenerateFileKey(client.StorageKindActivities, projectID, header.Filename)
		if err != nil {
			skipped = append(skipped, header.Filename+": "+err.Error())
			continue
		}
		src, err := header.Open()
		if err != nil {
			skipped = append(skipped, header.Filename+": "+err.Error())
			continue
		}
		url, err := s.s3Client.UploadFile(ctx, key, src, contentType)
		src.Close()
		if err != nil {
			s.logger.Warn("activity image upload failed",
				zap.String("file", header.Filename),
				zap.Error(err),
			)
			skipped = append(skipped, header.Filename+": upload failed")
			continue
		}

		s.metrics.RecordFileUpload(header.Size)
		urls = append(urls, url)
	}

	if len(urls) == 0 && len(skipped) > 0 {
		return nil, skipped, response.NewAppError(response.ErrCodeUpload, "No images could be uploaded", strings.Join(skipped, "; "))
	}
	return urls, skipped, nil
}

// ListFiles returns a project's files. Clients only see public files.
func (s *fileServiceImpl) ListFiles(ctx context.Context, projectID uuid.UUID, role domain.Role) ([]*dto.FileResponse, error) {
	files, err := s.fileRepo.FindByProjectID(ctx, projectID, role == domain.RoleClient)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load files", err.Error())
	}

	responses := make([]*dto.FileResponse, 0, len(files))
	for _, f := range files {
		responses = append(responses, s.toFileResponse(f))
	}
	return responses, nil
}

// GetDownloadURL resolves a file's URL and counts the download
func (s *fileServiceImpl) GetDownloadURL(ctx context.Context, fileID uuid.UUID, role domain.Role) (string, error) {
	file, err := s.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NewNotFoundError("File not found", fileID.String())
		}
		return "", response.NewAppError(response.ErrCodeInternal, "Failed to load file", err.Error())
	}
	if role == domain.RoleClient && !file.IsPublic {
		return "", response.NewForbiddenError("You do not have access to this file", "")
	}

	if err := s.fileRepo.IncrementDownloadCount(ctx, fileID); err != nil {
		s.logger.Warn("failed to count download", zap.String("file_id", fileID.String()), zap.Error(err))
	}
	return s.s3Client.GetFileURL(file.FileKey), nil
}

// GetStats summarizes a project's file library
func (s *fileServiceImpl) GetStats(ctx context.Context, projectID uuid.UUID, role domain.Role) (*dto.FileStatsResponse, error) {
	stats, err := s.fileRepo.StatsByProject(ctx, projectID, role == domain.RoleClient)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load file stats", err.Error())
	}
	return &dto.FileStatsResponse{
		TotalFiles:      stats.TotalFiles,
		TotalSize:       stats.TotalSize,
		CountByCategory: stats.CountByCategory,
	}, nil
}

// UpdateFile applies a metadata update
func (s *fileServiceImpl) UpdateFile(ctx context.Context, fileID uuid.UUID, req *dto.UpdateFileRequest) (*dto.FileResponse, error) {
	file, err := s.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("File not found", fileID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load file", err.Error())
	}

	if req.Description != nil {
		file.Description = *req.Description
	}
	if req.Tags != nil {
		file.Tags = datatypes.JSONSlice[string](req.Tags)
	}
	if req.IsPublic != nil {
		file.IsPublic = *req.IsPublic
	}
	if err := s.fileRepo.Update(ctx, file); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update file", err.Error())
	}
	return s.toFileResponse(file), nil
}

// DeleteFile removes a file's metadata and its stored object
func (s *fileServiceImpl) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	file, err := s.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("File not found", fileID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load file", err.Error())
	}

	if err := s.fileRepo.Delete(ctx, fileID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete file", err.Error())
	}
	if err := s.s3Client.DeleteFile(ctx, file.FileKey); err != nil {
		s.logger.Error("failed to delete stored object", zap.String("key", file.FileKey), zap.Error(err))
	}
	return nil
}

func (s *fileServiceImpl) toFileResponse(f *domain.ProjectFile) *dto.FileResponse {
	return &dto.FileResponse{
		ID:            f.ID,
		ProjectID:     f.ProjectID,
		FileName:      f.FileName,
		FileSize:      f.FileSize,
		ContentType:   f.ContentType,
		Category:      string(f.Category),
		Description:   f.Description,
		UploadedBy:    f.UploadedBy,
		Tags:          f.Tags,
		IsPublic:      f.IsPublic,
		DownloadCount: f.DownloadCount,
		URL:           s.s3Client.GetFileURL(f.FileKey),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
