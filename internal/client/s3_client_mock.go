package client

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket string
	Region string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc func(kind string, projectID uuid.UUID, fileName string) (string, error)
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc      func(ctx context.Context, key string) error
	GetFileURLFunc      func(key string) string

	// Uploaded and Deleted record the keys seen, for assertions
	Uploaded []string
	Deleted  []string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket: "test-bucket",
		Region: "ap-northeast-2",
	}
}

func (m *MockS3Client) GenerateFileKey(kind string, projectID uuid.UUID, fileName string) (string, error) {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(kind, projectID, fileName)
	}
	if kind != StorageKindFiles && kind != StorageKindActivities {
		return "", fmt.Errorf("invalid storage kind: %s", kind)
	}
	return fmt.Sprintf("site/%s/%s/%s%s", kind, projectID, uuid.New(), strings.ToLower(path.Ext(fileName))), nil
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	m.Uploaded = append(m.Uploaded, key)
	return m.GetFileURL(key), nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	m.Deleted = append(m.Deleted, key)
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}
