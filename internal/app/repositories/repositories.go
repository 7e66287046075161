package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances for dependency injection
type Repositories struct {
	UserRepository      *UserRepository
	StudentRepository   *StudentRepository
	RoomRepository      *RoomRepository
	LeaveRepository     *LeaveRepository
	MenuRepository      *MenuRepository
	ComplaintRepository *ComplaintRepository
	ForumRepository     *ForumRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		StudentRepository:   NewStudentRepository(db),
		RoomRepository:      NewRoomRepository(db),
		LeaveRepository:     NewLeaveRepository(db),
		MenuRepository:      NewMenuRepository(db),
		ComplaintRepository: NewComplaintRepository(db),
		ForumRepository:     NewForumRepository(db),
	}
}
