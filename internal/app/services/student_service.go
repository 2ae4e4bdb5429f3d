package services

import (
	"context"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/policy"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

type studentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetAll(ctx context.Context, filter dto.StudentListFilter) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	AssignRoom(ctx context.Context, studentID, roomID int64) error
	UnassignRoom(ctx context.Context, studentID int64) error
	Deactivate(ctx context.Context, id int64) error
}

type studentUserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// StudentService handles student profile management and room assignment
type StudentService struct {
	studentRepo studentRepository
	userRepo    studentUserRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo studentRepository, userRepo studentUserRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
	}
}

// CreateStudent creates a student profile for an existing STUDENT user
func (s *StudentService) CreateStudent(ctx context.Context, actor policy.Actor, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourceStudent); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, apperrors.NewValidationError("user does not have the student role")
	}

	student := &models.Student{
		UserID:           req.UserID,
		Contact:          req.Contact,
		EmergencyContact: req.EmergencyContact,
		GuardianName:     req.GuardianName,
		Address:          req.Address,
		DateOfJoining:    helpers.Today(),
		IsActive:         true,
	}

	if req.DateOfBirth != nil {
		dob, err := helpers.ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid dateOfBirth, expected YYYY-MM-DD")
		}
		student.DateOfBirth = &dob
	}
	if req.DateOfJoining != nil {
		doj, err := helpers.ParseDate(*req.DateOfJoining)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid dateOfJoining, expected YYYY-MM-DD")
		}
		student.DateOfJoining = doj
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	student.User = user
	resp := dto.FromStudent(student)
	return &resp, nil
}

// GetStudent retrieves a student profile. A student caller only sees their
// own profile; other ids read as not found so existence does not leak.
func (s *StudentService) GetStudent(ctx context.Context, actor policy.Actor, id int64) (*dto.StudentResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceStudent); err != nil {
		return nil, err
	}

	if !policy.OwnsRecord(actor, id) {
		return nil, apperrors.ErrStudentNotFound
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromStudent(student)
	return &resp, nil
}

// ListStudents lists student profiles. Student callers get a list scoped to
// themselves regardless of the requested filter.
func (s *StudentService) ListStudents(ctx context.Context, actor policy.Actor, filter dto.StudentListFilter) ([]dto.StudentResponse, error) {
	if err := policy.Authorize(actor, policy.OpRead, policy.ResourceStudent); err != nil {
		return nil, err
	}

	if ownID, restricted := policy.Scope(actor); restricted {
		student, err := s.studentRepo.GetByID(ctx, ownID)
		if err != nil {
			return nil, err
		}
		return dto.FromStudents([]*models.Student{student}), nil
	}

	students, err := s.studentRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromStudents(students), nil
}

// UpdateStudent updates a student's profile fields
func (s *StudentService) UpdateStudent(ctx context.Context, actor policy.Actor, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceStudent); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Contact != nil {
		student.Contact = *req.Contact
	}
	if req.EmergencyContact != nil {
		student.EmergencyContact = *req.EmergencyContact
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	resp := dto.FromStudent(student)
	return &resp, nil
}

// AssignRoom places a student into a room, enforcing capacity and the
// maintenance tag inside a single transaction
func (s *StudentService) AssignRoom(ctx context.Context, actor policy.Actor, studentID, roomID int64) (*dto.StudentResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceStudent); err != nil {
		return nil, err
	}

	if err := s.studentRepo.AssignRoom(ctx, studentID, roomID); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromStudent(student)
	return &resp, nil
}

// UnassignRoom frees a student's room
func (s *StudentService) UnassignRoom(ctx context.Context, actor policy.Actor, studentID int64) (*dto.StudentResponse, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceStudent); err != nil {
		return nil, err
	}

	if err := s.studentRepo.UnassignRoom(ctx, studentID); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromStudent(student)
	return &resp, nil
}

// DeactivateStudent marks a student inactive and releases their room.
// Profiles are kept for record history rather than hard-deleted.
func (s *StudentService) DeactivateStudent(ctx context.Context, actor policy.Actor, id int64) error {
	if err := policy.Authorize(actor, policy.OpDelete, policy.ResourceStudent); err != nil {
		return err
	}

	return s.studentRepo.Deactivate(ctx, id)
}
