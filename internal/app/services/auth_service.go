package services

import (
	"context"
	"errors"
	"time"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/auth"
	"github.com/okan/hostelhub/internal/pkg/logger"
)

type authUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

type authTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

type authStudentRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// AuthService handles registration, login and session token lifecycle
type AuthService struct {
	userRepo    authUserRepository
	tokenRepo   authTokenRepository
	studentRepo authStudentRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo authUserRepository,
	tokenRepo authTokenRepository,
	studentRepo authStudentRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
	}
}

// Register creates a new user account. The role defaults to STUDENT; a
// student profile is a separate admin-driven step.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      role,
		IsActive:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.FromUser(user, 0)
	return &resp, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	studentID, err := s.linkedStudentID(ctx, user)
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user, studentID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to record last login")
	}

	return &dto.LoginResponse{
		User:   dto.FromUser(user, studentID),
		Tokens: *tokens,
	}, nil
}

// RefreshTokens rotates a refresh token for a new token pair. The old
// token is revoked so each refresh token is single-use.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	studentID, err := s.linkedStudentID(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user, studentID)
}

// Logout revokes the presented refresh token. Unknown tokens are treated
// as already logged out.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	err := s.tokenRepo.Revoke(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

// GetCurrentUser returns the authenticated user's profile
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	studentID, err := s.linkedStudentID(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := dto.FromUser(user, studentID)
	return &resp, nil
}

// UpdateProfile updates the authenticated user's own profile fields.
// The role is never touched here.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	studentID, err := s.linkedStudentID(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := dto.FromUser(user, studentID)
	return &resp, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User, studentID int64) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user, studentID)
	if err != nil {
		return nil, err
	}

	err = s.tokenRepo.Create(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	})
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// linkedStudentID resolves the student profile id for STUDENT users; 0
// for staff or students without a profile yet.
func (s *AuthService) linkedStudentID(ctx context.Context, user *models.User) (int64, error) {
	if user.Role != models.RoleStudent {
		return 0, nil
	}

	student, err := s.studentRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return student.ID, nil
}
