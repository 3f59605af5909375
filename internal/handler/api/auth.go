package api

import (
	"errors"
	"net/http"

	"aquaflow/internal/domain/user"
	reqdto "aquaflow/internal/handler/dto/request"
	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/handler/httperr"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/pkg/config"
	"aquaflow/internal/pkg/cookie"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/jwt"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	cookieCfg  config.CookieConfig
	jwtService *jwt.Service
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cookieCfg: cfg.Cookie, jwtService: jwtService}
}

// @Summary Register user
// @Description Register a new customer account, optionally with a referral code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, commands.ErrReferralCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Referral code not found", nil)
		case isUserValidationErr(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration details", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration failed", nil)
		}
		return
	}
	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusCreated, resdto.AuthResponse{
		AccessToken: result.Token,
		UserID:      result.UserID.String(),
		Role:        string(result.Role),
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	creds, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid credentials format", nil)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials), errors.Is(err, commands.ErrUserNotFoundWrite):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		}
		return
	}
	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.AuthResponse{
		AccessToken: result.Token,
		UserID:      result.UserID.String(),
		Role:        string(result.Role),
	})
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update profile
// @Description Update the authenticated user's contact details
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/profile [patch]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case isUserValidationErr(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile details", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		}
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// isUserValidationErr reports whether err is one of the user domain's
// input validation errors, which map to 400 rather than 500.
func isUserValidationErr(err error) bool {
	return errors.Is(err, user.ErrInvalidEmail) ||
		errors.Is(err, user.ErrPasswordTooWeak) ||
		errors.Is(err, user.ErrEmptyUsername) ||
		errors.Is(err, user.ErrEmptyPhone)
}
