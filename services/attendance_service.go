package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/errors"
	"github.com/Nandu8821/Attendance-Project/models"
	"github.com/Nandu8821/Attendance-Project/services/logger"
	"github.com/Nandu8821/Attendance-Project/validator"
)

// AttendanceService is the attendance store: one immutable insert per
// submission plus read-only queries. No read-modify-write sequences, so no
// locking.
type AttendanceService struct {
	db       *gorm.DB
	uploader ImageUploader
	logger   logger.Logger
	now      func() time.Time
}

// AttendanceServiceOptions configures an AttendanceService.
type AttendanceServiceOptions struct {
	DB       *gorm.DB
	Uploader ImageUploader
	Logger   logger.Logger
	Now      func() time.Time
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AttendanceService{
		db:       opts.DB,
		uploader: opts.Uploader,
		logger:   opts.Logger,
		now:      opts.Now,
	}
}

// Create validates a submission, uploads the photo when one is attached and
// persists the record with a server-assigned timestamp.
func (s *AttendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*models.AttendanceRecord, error) {
	if err := validator.ValidateAttendance(req); err != nil {
		return nil, err
	}

	record := models.AttendanceRecord{
		Email:        req.Email,
		Name:         req.Name,
		EmpCode:      req.EmpCode,
		Site:         req.Site,
		EntryType:    req.EntryType,
		WorkShift:    req.WorkShift,
		LocationName: req.LocationName,
	}

	if req.Image != "" {
		publicID := fmt.Sprintf("attendance_%s_%d", req.Email, s.now().UnixMilli())
		s.logger.Info("Uploading attendance photo %s", publicID)
		url, err := s.uploader.Upload(ctx, req.Image, publicID)
		if err != nil {
			s.logger.Error("Image upload failed for %s: %v", req.Email, err)
			return nil, errors.NewAppError(errors.ErrCodeUpload, "Failed to upload image", err)
		}
		record.ImageURL = url
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		s.logger.Error("Failed to save attendance record for %s: %v", req.Email, err)
		return nil, errors.NewAppError(errors.ErrCodePersistence, "Failed to save attendance record", err)
	}

	s.logger.Info("Attendance recorded for %s (%s)", req.Email, req.EntryType)
	return &record, nil
}

// Query returns attendance records. With an email it returns only that
// email's records for the current server-local day; without one it returns
// everything.
func (s *AttendanceService) Query(ctx context.Context, email string) ([]models.AttendanceRecord, error) {
	tx := s.db.WithContext(ctx).Model(&models.AttendanceRecord{})

	if email != "" {
		start, end := dayBounds(s.now())
		tx = tx.Where("email = ? AND timestamp >= ? AND timestamp < ?", email, start, end)
	}

	records := []models.AttendanceRecord{}
	if err := tx.Find(&records).Error; err != nil {
		s.logger.Error("Failed to fetch attendance records: %v", err)
		return nil, errors.NewAppError(errors.ErrCodePersistence, "Failed to fetch attendance records", err)
	}
	return records, nil
}

// HealthCheck verifies the database is reachable.
func (s *AttendanceService) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// dayBounds returns the local midnight-to-midnight window containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
