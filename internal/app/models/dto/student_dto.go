package dto

import "github.com/okan/hostelhub/internal/app/models"

// CreateStudentRequest creates a student profile for an existing user with
// role STUDENT.
type CreateStudentRequest struct {
	UserID           int64   `json:"userId" binding:"required,gt=0"`
	Contact          string  `json:"contact" binding:"required"`
	EmergencyContact string  `json:"emergencyContact" binding:"required"`
	GuardianName     string  `json:"guardianName" binding:"required"`
	Address          string  `json:"address" binding:"required"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty" example:"2004-06-15"` // YYYY-MM-DD
	DateOfJoining    *string `json:"dateOfJoining,omitempty" example:"2024-09-01"`
}

// UpdateStudentRequest represents a student profile update
type UpdateStudentRequest struct {
	Contact          *string `json:"contact,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	GuardianName     *string `json:"guardianName,omitempty"`
	Address          *string `json:"address,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

// AssignRoomRequest assigns a student to a room
type AssignRoomRequest struct {
	RoomID int64 `json:"roomId" binding:"required,gt=0"`
}

// StudentListFilter holds query parameters for listing students
type StudentListFilter struct {
	RoomID   *int64 `form:"room_id"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
}

// StudentResponse is the API representation of a student profile
type StudentResponse struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"userId"`
	Username         string  `json:"username,omitempty"`
	FirstName        string  `json:"firstName,omitempty"`
	LastName         string  `json:"lastName,omitempty"`
	RoomID           *int64  `json:"roomId,omitempty"`
	Contact          string  `json:"contact"`
	EmergencyContact string  `json:"emergencyContact"`
	GuardianName     string  `json:"guardianName"`
	Address          string  `json:"address"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty"`
	DateOfJoining    string  `json:"dateOfJoining"`
	IsActive         bool    `json:"isActive"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(student *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:               student.ID,
		UserID:           student.UserID,
		RoomID:           student.RoomID,
		Contact:          student.Contact,
		EmergencyContact: student.EmergencyContact,
		GuardianName:     student.GuardianName,
		Address:          student.Address,
		DateOfJoining:    student.DateOfJoining.Format("2006-01-02"),
		IsActive:         student.IsActive,
	}
	if student.DateOfBirth != nil {
		dob := student.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	if student.User != nil {
		resp.Username = student.User.Username
		resp.FirstName = student.User.FirstName
		resp.LastName = student.User.LastName
	}
	return resp
}

// FromStudents converts a slice of students
func FromStudents(students []*models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, FromStudent(student))
	}
	return responses
}
