package dashboard

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"construction-dashboard-api/internal/dto"
)

type fakeUploader struct {
	uploaded []string
	failOn   map[string]bool
}

func (u *fakeUploader) UploadImage(_ context.Context, _ uuid.UUID, image StagedImage) (string, error) {
	if u.failOn[image.Name] {
		return "", fmt.Errorf("upload failed")
	}
	u.uploaded = append(u.uploaded, image.Name)
	return "https://files.example.com/" + image.Name, nil
}

func validActivityForm(notifier Notifier) *ActivityForm {
	f := NewActivityForm(notifier)
	f.Title = "Pour ground floor slab"
	f.Contractor = "Hewitt Concrete"
	return f
}

func TestActivityFormValidate(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	tests := []struct {
		name    string
		mutate  func(f *ActivityForm)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(f *ActivityForm) {},
		},
		{
			name:    "whitespace title",
			mutate:  func(f *ActivityForm) { f.Title = "   " },
			wantErr: "Title is required",
		},
		{
			name:    "whitespace contractor",
			mutate:  func(f *ActivityForm) { f.Contractor = "\t" },
			wantErr: "Contractor is required",
		},
		{
			name: "end before start",
			mutate: func(f *ActivityForm) {
				f.StartTime = &start
				f.EndTime = &end
			},
			wantErr: "End Date must be after Start Date",
		},
		{
			name: "end equals start",
			mutate: func(f *ActivityForm) {
				f.StartTime = &start
				f.EndTime = &start
			},
			wantErr: "End Date must be after Start Date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validActivityForm(nil)
			tt.mutate(f)
			err := f.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestActivityFormSubmitInvalidNeverCallsCreate(t *testing.T) {
	notifier := &recordingNotifier{}
	f := validActivityForm(notifier)
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(-2 * time.Hour)
	f.StartTime = &start
	f.EndTime = &end

	uploader := &fakeUploader{}
	created := false
	err := f.Submit(context.Background(), uuid.New(), uploader, func(ctx context.Context, req *dto.CreateActivityRequest) error {
		created = true
		return nil
	})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "End Date must be after Start Date", valErr.Message)
	assert.False(t, created, "an invalid draft must not reach the network")
	assert.Empty(t, uploader.uploaded)
	assert.Equal(t, []string{"End Date must be after Start Date"}, notifier.errorMessages())
}

func TestActivityFormStageImagesSkipsInvalid(t *testing.T) {
	notifier := &recordingNotifier{}
	f := validActivityForm(notifier)

	f.StageImages(
		StagedImage{Name: "slab.jpg", ContentType: "image/jpeg", Size: 2 << 20, Content: strings.NewReader("a")},
		StagedImage{Name: "drone.png", ContentType: "image/png", Size: MaxStagedImageSize + 1, Content: strings.NewReader("b")},
		StagedImage{Name: "rebar.jpg", ContentType: "image/jpeg", Size: 5 << 20, Content: strings.NewReader("c")},
		StagedImage{Name: "report.pdf", ContentType: "application/pdf", Size: 1 << 20, Content: strings.NewReader("d")},
	)

	assert.Equal(t, 2, f.StagedCount())
	require.Len(t, notifier.errorMessages(), 2)
	assert.Contains(t, notifier.errorMessages()[0], "drone.png")
	assert.Contains(t, notifier.errorMessages()[1], "report.pdf")
}

func TestActivityFormSubmitUploadsStagedImages(t *testing.T) {
	notifier := &recordingNotifier{}
	f := validActivityForm(notifier)
	f.StageImages(
		StagedImage{Name: "one.jpg", ContentType: "image/jpeg", Size: 100, Content: strings.NewReader("1")},
		StagedImage{Name: "two.jpg", ContentType: "image/jpeg", Size: 100, Content: strings.NewReader("2")},
	)

	uploader := &fakeUploader{}
	var got *dto.CreateActivityRequest
	err := f.Submit(context.Background(), uuid.New(), uploader, func(ctx context.Context, req *dto.CreateActivityRequest) error {
		got = req
		return nil
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, []string{
		"https://files.example.com/one.jpg",
		"https://files.example.com/two.jpg",
	}, got.Images)
}

func TestActivityFormSubmitSkipsFailedUpload(t *testing.T) {
	notifier := &recordingNotifier{}
	f := validActivityForm(notifier)
	f.StageImages(
		StagedImage{Name: "one.jpg", ContentType: "image/jpeg", Size: 100, Content: strings.NewReader("1")},
		StagedImage{Name: "two.jpg", ContentType: "image/jpeg", Size: 100, Content: strings.NewReader("2")},
		StagedImage{Name: "three.jpg", ContentType: "image/jpeg", Size: 100, Content: strings.NewReader("3")},
	)

	uploader := &fakeUploader{failOn: map[string]bool{"two.jpg": true}}
	var got *dto.CreateActivityRequest
	err := f.Submit(context.Background(), uuid.New(), uploader, func(ctx context.Context, req *dto.CreateActivityRequest) error {
		got = req
		return nil
	})
	require.NoError(t, err, "a single failed upload must not abort the submission")

	require.NotNil(t, got)
	assert.Len(t, got.Images, 2)
	assert.Equal(t, []string{"one.jpg", "three.jpg"}, uploader.uploaded)
	assert.Contains(t, notifier.errorMessages(), "two.jpg: upload failed")
}

func TestPhaseFormValidate(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	f := NewPhaseForm(nil)
	f.Name = "Foundations"
	f.StartDate = &start
	f.EndDate = &end

	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, "End Date must be after Start Date", err.Error())

	ok := end.AddDate(0, 2, 0)
	f.EndDate = &ok
	assert.NoError(t, f.Validate())
}

func TestMilestoneFormValidateDueDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	f := NewMilestoneForm(nil)
	f.now = func() time.Time { return now }
	f.Title = "Roof watertight"

	// earlier today is still acceptable
	f.DueDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, f.Validate())

	f.DueDate = time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, "Due date cannot be in the past", err.Error())
}

func TestMilestoneFormSubmitInvalidNeverCallsCreate(t *testing.T) {
	f := NewMilestoneForm(&recordingNotifier{})
	f.Title = "Roof watertight"
	f.DueDate = time.Now().UTC().AddDate(0, 0, -7)

	created := false
	err := f.Submit(context.Background(), func(ctx context.Context, req *dto.CreateMilestoneRequest) error {
		created = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, created)
}
