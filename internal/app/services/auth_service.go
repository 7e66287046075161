package services

import (
	"context"
	"errors"
	"strings"

	"github.com/hostelmate/hostelmate-backend/internal/app/models"
	"github.com/hostelmate/hostelmate-backend/internal/app/models/dto"
	"github.com/hostelmate/hostelmate-backend/internal/app/repositories"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/auth"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/logger"
)

// AuthService handles registration, login and profile lookup
type AuthService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, studentRepo *repositories.StudentRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
	}
}

// Register creates a student account with a PENDING admission profile
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		RoleType:     models.RoleStudent,
	}
	student := &models.Student{
		RollNumber:      req.RollNumber,
		Course:          req.Course,
		GuardianName:    req.GuardianName,
		GuardianPhone:   req.GuardianPhone,
		AdmissionStatus: models.AdmissionPending,
	}

	if _, err := s.studentRepo.CreateWithUser(ctx, user, student); err != nil {
		return nil, err
	}

	student.User = user
	return student, nil
}

// Login verifies credentials and returns a fresh session token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn().Str("email", user.Email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// GetProfile returns the authenticated user's own view, with the student
// profile attached for student accounts.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RoleType:  string(user.RoleType),
	}

	if user.RoleType == models.RoleStudent {
		student, err := s.studentRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		if student != nil {
			sr := dto.FromStudent(student)
			resp.Student = &sr
		}
	}

	return resp, nil
}
