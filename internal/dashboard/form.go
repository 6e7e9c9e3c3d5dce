package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"construction-dashboard-api/internal/dto"
)

// MaxStagedImageSize caps each staged image at 10 MB
const MaxStagedImageSize = 10 * 1024 * 1024

// ValidationError is a draft rejected before any request is made
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StagedImage is a candidate image held in the form before submit
type StagedImage struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ImageUploader pushes one image to storage and returns its URL
type ImageUploader interface {
	UploadImage(ctx context.Context, projectID uuid.UUID, image StagedImage) (string, error)
}

// ActivityForm builds a create-activity request from user input. Images are
// staged with per-file validation: a rejected file is skipped with a
// notification, never aborting the rest of the form.
type ActivityForm struct {
	Title       string
	Description string
	Contractor  string
	Supervisor  string
	StartTime   *time.Time
	EndTime     *time.Time
	Status      string
	Priority    string
	Category    string
	SitePhase   string
	WeekNumber  int
	Comments    string

	staged   []StagedImage
	notifier Notifier
}

// NewActivityForm creates an empty form
func NewActivityForm(notifier Notifier) *ActivityForm {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ActivityForm{notifier: notifier}
}

// StageImages validates each candidate and keeps the ones that pass.
// Non-images and files over the size cap are skipped with a notification.
func (f *ActivityForm) StageImages(images ...StagedImage) {
	for _, img := range images {
		if !strings.HasPrefix(img.ContentType, "image/") {
			f.notifier.Error(fmt.Sprintf("%s: only image files can be attached", img.Name))
			continue
		}
		if img.Size > MaxStagedImageSize {
			f.notifier.Error(fmt.Sprintf("%s: image exceeds the 10MB limit", img.Name))
			continue
		}
		f.staged = append(f.staged, img)
	}
}

// StagedCount reports how many images passed staging
func (f *ActivityForm) StagedCount() int {
	return len(f.staged)
}

// Validate checks the draft. It runs before any request is issued, so an
// invalid draft never reaches the network.
func (f *ActivityForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if strings.TrimSpace(f.Contractor) == "" {
		return &ValidationError{Field: "contractor", Message: "Contractor is required"}
	}
	if f.StartTime != nil && f.EndTime != nil && !f.EndTime.After(*f.StartTime) {
		return &ValidationError{Field: "endTime", Message: "End Date must be after Start Date"}
	}
	return nil
}

// Submit validates the draft, uploads the staged images one by one, then
// assembles the payload and hands it to create. An upload failure skips that
// image and continues; validation failure returns before anything is sent.
func (f *ActivityForm) Submit(ctx context.Context, projectID uuid.UUID, uploader ImageUploader, create func(ctx context.Context, req *dto.CreateActivityRequest) error) error {
	if err := f.Validate(); err != nil {
		f.notifier.Error(userMessage(err))
		return err
	}

	var urls []string
	for _, img := range f.staged {
		url, err := uploader.UploadImage(ctx, projectID, img)
		if err != nil {
			f.notifier.Error(fmt.Sprintf("%s: upload failed", img.Name))
			continue
		}
		urls = append(urls, url)
	}

	req := &dto.CreateActivityRequest{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Contractor:  strings.TrimSpace(f.Contractor),
		Supervisor:  f.Supervisor,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		Status:      f.Status,
		Priority:    f.Priority,
		Category:    f.Category,
		Images:      urls,
		SitePhase:   f.SitePhase,
		WeekNumber:  f.WeekNumber,
		Comments:    f.Comments,
	}
	if err := create(ctx, req); err != nil {
		f.notifier.Error(userMessage(err))
		return err
	}
	return nil
}

// PhaseForm builds a create-phase request
type PhaseForm struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string

	notifier Notifier
}

// NewPhaseForm creates an empty form
func NewPhaseForm(notifier Notifier) *PhaseForm {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &PhaseForm{notifier: notifier}
}

// Validate checks the draft
func (f *PhaseForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Message: "Name is required"}
	}
	if f.StartDate != nil && f.EndDate != nil && !f.EndDate.After(*f.StartDate) {
		return &ValidationError{Field: "endDate", Message: "End Date must be after Start Date"}
	}
	return nil
}

// Submit validates the draft and hands the assembled payload to create
func (f *PhaseForm) Submit(ctx context.Context, create func(ctx context.Context, req *dto.CreatePhaseRequest) error) error {
	if err := f.Validate(); err != nil {
		f.notifier.Error(userMessage(err))
		return err
	}
	req := &dto.CreatePhaseRequest{
		Name:        strings.TrimSpace(f.Name),
		Description: f.Description,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Status:      f.Status,
	}
	if err := create(ctx, req); err != nil {
		f.notifier.Error(userMessage(err))
		return err
	}
	return nil
}

// MilestoneForm builds a create-milestone request
type MilestoneForm struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    string

	now      func() time.Time
	notifier Notifier
}

// NewMilestoneForm creates an empty form
func NewMilestoneForm(notifier Notifier) *MilestoneForm {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &MilestoneForm{now: time.Now, notifier: notifier}
}

// Validate checks the draft. The due date may be today but not earlier.
func (f *MilestoneForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	todayStart := f.now().UTC().Truncate(24 * time.Hour)
	if f.DueDate.Before(todayStart) {
		return &ValidationError{Field: "dueDate", Message: "Due date cannot be in the past"}
	}
	return nil
}

// Submit validates the draft and hands the assembled payload to create
func (f *MilestoneForm) Submit(ctx context.Context, create func(ctx context.Context, req *dto.CreateMilestoneRequest) error) error {
	if err := f.Validate(); err != nil {
		f.notifier.Error(userMessage(err))
		return err
	}
	req := &dto.CreateMilestoneRequest{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		DueDate:     f.DueDate,
		Priority:    f.Priority,
	}
	if err := create(ctx, req); err != nil {
		f.notifier.Error(userMessage(err))
		return err
	}
	return nil
}
