package repositories

import (
	"github.com/okan/hostelhub/internal/db"
)

// Repositories is the container for all data access objects
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	RoomRepository       *RoomRepository
	StudentRepository    *StudentRepository
	FeeRepository        *FeeRepository
	AttendanceRepository *AttendanceRepository
	VisitorRepository    *VisitorRepository
	ComplaintRepository  *ComplaintRepository
	MessMenuRepository   *MessMenuRepository
	ContactRepository    *ContactRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database.Pool),
		TokenRepository:      NewTokenRepository(database.Pool),
		RoomRepository:       NewRoomRepository(database.Pool),
		StudentRepository:    NewStudentRepository(database),
		FeeRepository:        NewFeeRepository(database.Pool),
		AttendanceRepository: NewAttendanceRepository(database.Pool),
		VisitorRepository:    NewVisitorRepository(database.Pool),
		ComplaintRepository:  NewComplaintRepository(database.Pool),
		MessMenuRepository:   NewMessMenuRepository(database.Pool),
		ContactRepository:    NewContactRepository(database.Pool),
	}
}
