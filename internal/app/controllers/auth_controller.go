// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/services"
	"github.com/okan/hostelhub/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService  *services.AuthService
	cookieSecure bool
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, cookieSecure bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a new user account. The role defaults to STUDENT.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User registered")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// Login handles user login
// @Summary Log in
// @Description Verifies credentials, sets the HTTP-only session cookies and returns the token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials or disabled account"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookies(ctx, &resp.Tokens)
	c.logger.Info().Str("username", resp.User.Username).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// RefreshToken rotates the refresh token
// @Summary Refresh session tokens
// @Description Exchanges a valid refresh token (body or cookie) for a fresh token pair. The used token is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest false "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Unknown, expired or revoked token"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	_ = ctx.ShouldBindJSON(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken, _ = ctx.Cookie(middleware.RefreshCookieName)
	}
	if refreshToken == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Refresh token is required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	tokens, err := c.authService.RefreshTokens(ctx, refreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookies(ctx, tokens)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokens))
}

// Logout revokes the session
// @Summary Log out
// @Description Revokes the refresh token and clears the session cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	_ = ctx.ShouldBindJSON(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken, _ = ctx.Cookie(middleware.RefreshCookieName)
	}

	if err := c.authService.Logout(ctx, refreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.clearSessionCookies(ctx)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Logged out successfully"}))
}

// Me returns the authenticated user
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	actor := middleware.GetActor(ctx)

	user, err := c.authService.GetCurrentUser(ctx, actor.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// UpdateProfile updates the current user's profile
// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	actor := middleware.GetActor(ctx)

	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.UpdateProfile(ctx, actor.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

func (c *AuthController) setSessionCookies(ctx *gin.Context, tokens *dto.TokenResponse) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, tokens.AccessToken,
		tokens.ExpiresIn, "/", "", c.cookieSecure, true)
	ctx.SetCookie(middleware.RefreshCookieName, tokens.RefreshToken,
		tokens.RefreshExpiresIn, "/api/v1/auth", "", c.cookieSecure, true)
}

func (c *AuthController) clearSessionCookies(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", c.cookieSecure, true)
	ctx.SetCookie(middleware.RefreshCookieName, "", -1, "/api/v1/auth", "", c.cookieSecure, true)
}
