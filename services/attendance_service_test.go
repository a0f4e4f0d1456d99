package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/errors"
	"github.com/Nandu8821/Attendance-Project/models"
)

type fakeUploader struct {
	uploads  int
	lastID   string
	fail     bool
	resolved string
}

func (f *fakeUploader) Upload(ctx context.Context, base64Image, publicID string) (string, error) {
	if f.fail {
		return "", fmt.Errorf("UPLOAD_ERROR")
	}
	f.uploads++
	f.lastID = publicID
	if f.resolved == "" {
		f.resolved = "https://res.example.com/" + publicID + ".jpg"
	}
	return f.resolved, nil
}

var testDBSeq int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:attendance_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AttendanceRecord{}))
	return db
}

func newTestService(t *testing.T, uploader *fakeUploader) *AttendanceService {
	t.Helper()
	return NewAttendanceService(AttendanceServiceOptions{
		DB:       openTestDB(t),
		Uploader: uploader,
	})
}

func validRequest() *dto.CreateAttendanceRequest {
	return &dto.CreateAttendanceRequest{
		Email:        "a@x.com",
		Name:         "Asha Rao",
		EmpCode:      "E1",
		Site:         "Home",
		EntryType:    "In",
		WorkShift:    "09:00 AM - 06:00 PM",
		LocationName: "Home",
	}
}

func TestCreateWithoutImage(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{}
	svc := newTestService(t, uploader)

	record, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Empty(t, record.ImageURL)
	assert.Zero(t, uploader.uploads)
	assert.WithinDuration(t, time.Now(), record.Timestamp, 5*time.Second)
}

func TestCreateUploadsImage(t *testing.T) {
	ctx := context.Background()
	uploader := &fakeUploader{}
	svc := newTestService(t, uploader)

	req := validRequest()
	req.Image = "data:image/jpeg;base64,aGVsbG8="
	record, err := svc.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 1, uploader.uploads)
	assert.Equal(t, uploader.resolved, record.ImageURL)
	assert.Regexp(t, `^attendance_a@x\.com_\d+$`, uploader.lastID)
}

func TestCreateUploadFailure(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeUploader{fail: true})

	req := validRequest()
	req.Image = "data:image/jpeg;base64,aGVsbG8="
	_, err := svc.Create(ctx, req)
	require.True(t, errors.HasCode(err, errors.ErrCodeUpload))

	// A failed upload must not leave a half-written record behind.
	records, qerr := svc.Query(ctx, "")
	require.NoError(t, qerr)
	assert.Empty(t, records)
}

func TestCreateRejectsInvalidRequests(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeUploader{})

	missing := validRequest()
	missing.LocationName = ""
	_, err := svc.Create(ctx, missing)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	badType := validRequest()
	badType.EntryType = "Sideways"
	_, err = svc.Create(ctx, badType)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEntryType))
}

func TestQueryScopesToEmailAndDay(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	svc := NewAttendanceService(AttendanceServiceOptions{DB: db, Uploader: &fakeUploader{}})

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Email = "b@x.com"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	// Yesterday's record for the same email must not count toward today.
	stale := models.AttendanceRecord{
		Email:     "a@x.com",
		EntryType: "Out",
		Timestamp: time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, db.Create(&stale).Error)

	records, err := svc.Query(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a@x.com", records[0].Email)
	assert.Equal(t, "In", records[0].EntryType)

	all, err := svc.Query(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHealthCheck(t *testing.T) {
	svc := newTestService(t, &fakeUploader{})
	assert.NoError(t, svc.HealthCheck(context.Background()))
}
