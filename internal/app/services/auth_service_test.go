package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/auth"
)

type mockAuthUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMockAuthUserRepo() *mockAuthUserRepo {
	return &mockAuthUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (m *mockAuthUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockAuthUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockAuthUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockAuthUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockAuthUserRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	user, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.LastLoginAt = &at
	return nil
}

type mockTokenRepo struct {
	tokens map[string]*models.RefreshToken
	nextID int64
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: map[string]*models.RefreshToken{}, nextID: 1}
}

func (m *mockTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = m.nextID
	m.nextID++
	cp := *token
	m.tokens[token.Token] = &cp
	return nil
}

func (m *mockTokenRepo) GetByToken(_ context.Context, token string) (*models.RefreshToken, error) {
	stored, ok := m.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	cp := *stored
	return &cp, nil
}

func (m *mockTokenRepo) Revoke(_ context.Context, token string) error {
	stored, ok := m.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.Revoked = true
	return nil
}

func (m *mockTokenRepo) RevokeAllForUser(_ context.Context, userID int64) error {
	for _, stored := range m.tokens {
		if stored.UserID == userID {
			stored.Revoked = true
		}
	}
	return nil
}

type mockAuthStudentRepo struct {
	byUserID map[int64]*models.Student
}

func (m *mockAuthStudentRepo) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	student, ok := m.byUserID[userID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *student
	return &cp, nil
}

type authTestEnv struct {
	svc       *AuthService
	userRepo  *mockAuthUserRepo
	tokenRepo *mockTokenRepo
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()
	userRepo := newMockAuthUserRepo()
	tokenRepo := newMockTokenRepo()
	studentRepo := &mockAuthStudentRepo{byUserID: map[int64]*models.Student{}}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "hostelhub.test",
	})
	return &authTestEnv{
		svc:       NewAuthService(userRepo, tokenRepo, studentRepo, jwtService),
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

func registerTestUser(t *testing.T, env *authTestEnv) *dto.UserResponse {
	t.Helper()
	resp, err := env.svc.Register(context.Background(), &dto.RegisterRequest{
		Username:  "jdoe",
		Email:     "jdoe@hostel.edu",
		Password:  "secret123",
		FirstName: "John",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	env := newAuthTestEnv(t)

	resp := registerTestUser(t, env)
	assert.Equal(t, models.RoleStudent, resp.Role)
	assert.True(t, resp.IsActive)
	assert.Nil(t, resp.StudentID)

	// The stored password must be a bcrypt hash, never the plaintext
	stored := env.userRepo.users[resp.ID]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := newAuthTestEnv(t)
	registerTestUser(t, env)

	_, err := env.svc.Register(context.Background(), &dto.RegisterRequest{
		Username:  "jdoe",
		Email:     "other@hostel.edu",
		Password:  "secret123",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	assert.True(t, errors.Is(err, apperrors.ErrUsernameAlreadyExists))
}

func TestRegister_InvalidRole(t *testing.T) {
	env := newAuthTestEnv(t)

	_, err := env.svc.Register(context.Background(), &dto.RegisterRequest{
		Username:  "jdoe",
		Email:     "jdoe@hostel.edu",
		Password:  "secret123",
		FirstName: "John",
		LastName:  "Doe",
		Role:      "SUPERUSER",
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestLogin(t *testing.T) {
	env := newAuthTestEnv(t)
	registerTestUser(t, env)

	resp, err := env.svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "jdoe", resp.User.Username)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, 3600, resp.Tokens.ExpiresIn)

	// Refresh token is persisted for rotation and revocation
	_, err = env.tokenRepo.GetByToken(context.Background(), resp.Tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newAuthTestEnv(t)
	registerTestUser(t, env)

	_, err := env.svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "wrong-pass"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLogin_UnknownUser(t *testing.T) {
	env := newAuthTestEnv(t)

	// Unknown usernames get the same error as bad passwords
	_, err := env.svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "secret123"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLogin_DisabledAccount(t *testing.T) {
	env := newAuthTestEnv(t)
	user := registerTestUser(t, env)
	env.userRepo.users[user.ID].IsActive = false

	_, err := env.svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "secret123"})
	assert.True(t, errors.Is(err, apperrors.ErrAccountDisabled))
}

func TestRefreshTokens_Rotation(t *testing.T) {
	env := newAuthTestEnv(t)
	registerTestUser(t, env)

	login, err := env.svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "secret123"})
	require.NoError(t, err)

	rotated, err := env.svc.RefreshTokens(context.Background(), login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.RefreshToken, rotated.RefreshToken)

	// The used token is revoked, so a second refresh with it fails
	_, err = env.svc.RefreshTokens(context.Background(), login.Tokens.RefreshToken)
	assert.True(t, errors.Is(err, apperrors.ErrTokenRevoked))

	// The rotated token still works
	_, err = env.svc.RefreshTokens(context.Background(), rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshTokens_Expired(t *testing.T) {
	env := newAuthTestEnv(t)
	user := registerTestUser(t, env)

	require.NoError(t, env.tokenRepo.Create(context.Background(), &models.RefreshToken{
		UserID:    user.ID,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := env.svc.RefreshTokens(context.Background(), "stale-token")
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
}

func TestRefreshTokens_Unknown(t *testing.T) {
	env := newAuthTestEnv(t)

	_, err := env.svc.RefreshTokens(context.Background(), "no-such-token")
	assert.True(t, errors.Is(err, apperrors.ErrTokenNotFound))
}

func TestLogout(t *testing.T) {
	env := newAuthTestEnv(t)
	registerTestUser(t, env)

	login, err := env.svc.Login(context.Background(), &dto.LoginRequest{Username: "jdoe", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, env.svc.Logout(context.Background(), login.Tokens.RefreshToken))

	_, err = env.svc.RefreshTokens(context.Background(), login.Tokens.RefreshToken)
	assert.True(t, errors.Is(err, apperrors.ErrTokenRevoked))

	// Logging out an unknown or empty token is a no-op
	assert.NoError(t, env.svc.Logout(context.Background(), "already-gone"))
	assert.NoError(t, env.svc.Logout(context.Background(), ""))
}

func TestUpdateProfile(t *testing.T) {
	env := newAuthTestEnv(t)
	user := registerTestUser(t, env)

	email := "john.doe@hostel.edu"
	phone := "+90 555 111 2233"
	resp, err := env.svc.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{
		Email: &email,
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, email, resp.Email)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, phone, *resp.Phone)
	assert.Equal(t, "John", resp.FirstName)
}
