package services

import (
	"context"
	"time"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/policy"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

type attendanceRepository interface {
	Create(ctx context.Context, att *models.Attendance) error
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	GetAll(ctx context.Context, filter dto.AttendanceListFilter) ([]*models.Attendance, int64, error)
	Update(ctx context.Context, att *models.Attendance) error
	SummaryByStudent(ctx context.Context, studentID int64, from, to time.Time) (*dto.AttendanceSummaryResponse, error)
}

// AttendanceService handles daily attendance marking and summaries
type AttendanceService struct {
	attendanceRepo attendanceRepository
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo attendanceRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// MarkAttendance records a student's attendance for a day. One record per
// student per day; a second mark is a conflict.
func (s *AttendanceService) MarkAttendance(ctx context.Context, actor policy.Actor, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourceAttendance); err != nil {
		return nil, err
	}

	if !req.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid attendance status")
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date, expected YYYY-MM-DD")
	}

	att := &models.Attendance{
		StudentID: req.StudentID,
		Date:      date,
		Status:    req.Status,
		MarkedBy:  actor.UserID,
		Notes:     req.Notes,
	}

	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, err
	}

	resp := dto.FromAttendance(att)
	return &resp, nil
}

// ListAttendance lists attendance records. Student callers see only their
// own records no matter what filter they send.
func (s *AttendanceService) ListAttendance(ctx context.Context, actor policy.Actor, filter dto.AttendanceListFilter) ([]dto.AttendanceResponse, int64, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceAttendance); err != nil {
		return nil, 0, err
	}

	if ownID, restricted := policy.Scope(actor); restricted {
		filter.StudentID = &ownID
	}

	records, total, err := s.attendanceRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return dto.FromAttendances(records), total, nil
}

// UpdateAttendance corrects the status or notes of an existing record
func (s *AttendanceService) UpdateAttendance(ctx context.Context, actor policy.Actor, id int64, status models.AttendanceStatus, notes *string) (*dto.AttendanceResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceAttendance); err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid attendance status")
	}

	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	att.Status = status
	if notes != nil {
		att.Notes = notes
	}
	att.MarkedBy = actor.UserID

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return nil, err
	}

	resp := dto.FromAttendance(att)
	return &resp, nil
}

// GetSummary aggregates a student's attendance over a date range; the
// range defaults to the last 30 days. Student callers get their own
// summary only.
func (s *AttendanceService) GetSummary(ctx context.Context, actor policy.Actor, studentID int64, from, to *time.Time) (*dto.AttendanceSummaryResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceAttendance); err != nil {
		return nil, err
	}

	if ownID, restricted := policy.Scope(actor); restricted {
		if studentID != 0 && studentID != ownID {
			return nil, apperrors.ErrStudentNotFound
		}
		studentID = ownID
	}
	if studentID == 0 {
		return nil, apperrors.NewValidationError("student_id is required")
	}

	end := helpers.TruncateToDay(s.now())
	if to != nil {
		end = helpers.TruncateToDay(*to)
	}
	start := end.AddDate(0, 0, -29)
	if from != nil {
		start = helpers.TruncateToDay(*from)
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("from must not be after to")
	}

	return s.attendanceRepo.SummaryByStudent(ctx, studentID, start, end)
}
