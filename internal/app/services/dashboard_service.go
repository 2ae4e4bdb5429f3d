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

type dashboardRoomRepository interface {
	CountAll(ctx context.Context) (int64, error)
	CountOccupied(ctx context.Context) (int64, error)
}

type dashboardStudentRepository interface {
	CountActive(ctx context.Context) (int64, error)
}

type dashboardFeeRepository interface {
	PendingStats(ctx context.Context) (count int64, total float64, err error)
	SumOutstandingByStudent(ctx context.Context, studentID int64) (float64, error)
}

type dashboardAttendanceRepository interface {
	CountByStatusOnDate(ctx context.Context, status models.AttendanceStatus, date time.Time) (int64, error)
	SummaryByStudent(ctx context.Context, studentID int64, from, to time.Time) (*dto.AttendanceSummaryResponse, error)
}

type dashboardVisitorRepository interface {
	CountToday(ctx context.Context) (int64, error)
}

type dashboardComplaintRepository interface {
	CountOpen(ctx context.Context) (int64, error)
	CountOpenByStudent(ctx context.Context, studentID int64) (int64, error)
}

// DashboardService aggregates counters for the role-specific dashboards.
// All numbers are computed on demand from the live tables.
type DashboardService struct {
	roomRepo       dashboardRoomRepository
	studentRepo    dashboardStudentRepository
	feeRepo        dashboardFeeRepository
	attendanceRepo dashboardAttendanceRepository
	visitorRepo    dashboardVisitorRepository
	complaintRepo  dashboardComplaintRepository
	now            func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	roomRepo dashboardRoomRepository,
	studentRepo dashboardStudentRepository,
	feeRepo dashboardFeeRepository,
	attendanceRepo dashboardAttendanceRepository,
	visitorRepo dashboardVisitorRepository,
	complaintRepo dashboardComplaintRepository,
) *DashboardService {
	return &DashboardService{
		roomRepo:       roomRepo,
		studentRepo:    studentRepo,
		feeRepo:        feeRepo,
		attendanceRepo: attendanceRepo,
		visitorRepo:    visitorRepo,
		complaintRepo:  complaintRepo,
		now:            time.Now,
	}
}

// GetStats returns the metric set for the caller's role
func (s *DashboardService) GetStats(ctx context.Context, actor policy.Actor) (*dto.DashboardStatsResponse, error) {
	switch actor.Role {
	case models.RoleAdmin:
		return s.adminStats(ctx, actor)
	case models.RoleWarden:
		return s.wardenStats(ctx, actor)
	case models.RoleStudent:
		return s.studentStats(ctx, actor)
	default:
		return nil, apperrors.ErrPermissionDenied
	}
}

func (s *DashboardService) adminStats(ctx context.Context, actor policy.Actor) (*dto.DashboardStatsResponse, error) {
	stats := map[string]float64{}

	totalRooms, err := s.roomRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	occupiedRooms, err := s.roomRepo.CountOccupied(ctx)
	if err != nil {
		return nil, err
	}
	totalStudents, err := s.studentRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	pendingCount, pendingAmount, err := s.feeRepo.PendingStats(ctx)
	if err != nil {
		return nil, err
	}
	openComplaints, err := s.complaintRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	visitorsToday, err := s.visitorRepo.CountToday(ctx)
	if err != nil {
		return nil, err
	}

	stats["totalRooms"] = float64(totalRooms)
	stats["occupiedRooms"] = float64(occupiedRooms)
	stats["availableRooms"] = float64(totalRooms - occupiedRooms)
	stats["totalStudents"] = float64(totalStudents)
	stats["pendingFees"] = float64(pendingCount)
	stats["pendingFeeAmount"] = pendingAmount
	stats["openComplaints"] = float64(openComplaints)
	stats["visitorsToday"] = float64(visitorsToday)

	return &dto.DashboardStatsResponse{Role: string(actor.Role), Stats: stats}, nil
}

func (s *DashboardService) wardenStats(ctx context.Context, actor policy.Actor) (*dto.DashboardStatsResponse, error) {
	stats := map[string]float64{}
	today := helpers.TruncateToDay(s.now())

	totalStudents, err := s.studentRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	presentToday, err := s.attendanceRepo.CountByStatusOnDate(ctx, models.AttendancePresent, today)
	if err != nil {
		return nil, err
	}
	absentToday, err := s.attendanceRepo.CountByStatusOnDate(ctx, models.AttendanceAbsent, today)
	if err != nil {
		return nil, err
	}
	openComplaints, err := s.complaintRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	visitorsToday, err := s.visitorRepo.CountToday(ctx)
	if err != nil {
		return nil, err
	}

	stats["totalStudents"] = float64(totalStudents)
	stats["presentToday"] = float64(presentToday)
	stats["absentToday"] = float64(absentToday)
	stats["openComplaints"] = float64(openComplaints)
	stats["visitorsToday"] = float64(visitorsToday)

	return &dto.DashboardStatsResponse{Role: string(actor.Role), Stats: stats}, nil
}

func (s *DashboardService) studentStats(ctx context.Context, actor policy.Actor) (*dto.DashboardStatsResponse, error) {
	if actor.StudentID == 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	stats := map[string]float64{}

	outstanding, err := s.feeRepo.SumOutstandingByStudent(ctx, actor.StudentID)
	if err != nil {
		return nil, err
	}
	openComplaints, err := s.complaintRepo.CountOpenByStudent(ctx, actor.StudentID)
	if err != nil {
		return nil, err
	}

	end := helpers.TruncateToDay(s.now())
	start := end.AddDate(0, 0, -29)
	summary, err := s.attendanceRepo.SummaryByStudent(ctx, actor.StudentID, start, end)
	if err != nil {
		return nil, err
	}

	stats["outstandingFees"] = outstanding
	stats["openComplaints"] = float64(openComplaints)
	stats["attendancePercentage"] = summary.Percentage

	return &dto.DashboardStatsResponse{Role: string(actor.Role), Stats: stats}, nil
}
