package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	userusecases "adaptivegame/internal/application/user/usecases"
	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/shared/config"
	"adaptivegame/internal/shared/constants"
	apperrors "adaptivegame/internal/shared/errors"
	"adaptivegame/internal/shared/logger"
	"adaptivegame/internal/shared/utils"
)

// AuthHandler serves the login page and the session and credential-reset
// endpoints.
type AuthHandler struct {
	loginUC        loginUseCase
	requestResetUC requestPasswordResetUseCase
	resetUC        resetPasswordUseCase
	sessionCfg     config.SessionConfig
	cookieCfg      config.CookieConfig
	logger         logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetUC resetPasswordUseCase,
	sessionCfg config.SessionConfig,
	cookieCfg config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:        loginUC,
		requestResetUC: requestResetUC,
		resetUC:        resetUC,
		sessionCfg:     sessionCfg,
		cookieCfg:      cookieCfg,
		logger:         logger,
	}
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// ShowLogin renders the login page. The optional from parameter survives the
// round trip so a successful login can land where the visitor was headed.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"From": c.Query(constants.QueryParamFrom),
	})
}

// Login authenticates and establishes the session cookie. Form posts get a
// redirect, JSON clients get the target in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.respondLoginFailure(c, constants.ErrMsgInvalidCredentials)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), userusecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			h.respondLoginFailure(c, constants.ErrMsgInvalidCredentials)
			return
		}
		h.logger.Errorw("login failed", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError(constants.ErrMsgInternalServerError))
		return
	}

	maxAge := h.sessionCfg.ExpDays * 24 * 60 * 60
	utils.SetSessionCookie(c, h.cookieCfg, result.User.ID, maxAge)

	target := sanitizeRedirect(c.PostForm(constants.QueryParamFrom))
	if target == "" {
		target = sanitizeRedirect(c.Query(constants.QueryParamFrom))
	}
	if target == "" {
		target = constants.RouteDashboard
	}

	if wantsHTML(c) {
		c.Redirect(http.StatusFound, target)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "logged in", gin.H{"redirect": target})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieCfg)

	if wantsHTML(c) {
		c.Redirect(http.StatusFound, constants.RouteLogin)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

type requestResetRequest struct {
	Email string `form:"email" json:"email" binding:"required,email"`
}

// RequestPasswordReset starts the reset flow. The response is identical for
// known and unknown emails.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req requestResetRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.FieldErrorResponse(c, constants.ErrMsgValidationFailed, map[string]string{
			"email": "a valid email is required",
		})
		return
	}

	if err := h.requestResetUC.Execute(c.Request.Context(), userusecases.RequestPasswordResetCommand{
		Email: req.Email,
	}); err != nil {
		h.logger.Errorw("password reset request failed", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError(constants.ErrMsgInternalServerError))
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		"if the email is registered, a reset link has been sent", nil)
}

type resetPasswordRequest struct {
	Token       string `form:"token" json:"token" binding:"required"`
	NewPassword string `form:"new_password" json:"new_password" binding:"required"`
}

// ResetPassword completes the reset flow with a token from the emailed link.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.FieldErrorResponse(c, constants.ErrMsgValidationFailed, map[string]string{
			"token":        "token is required",
			"new_password": "new password is required",
		})
		return
	}

	err := h.resetUC.Execute(c.Request.Context(), userusecases.ResetPasswordCommand{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	switch {
	case err == nil:
		utils.SuccessResponse(c, http.StatusOK, "password updated", nil)
	case errors.Is(err, user.ErrPasswordTooShort):
		utils.FieldErrorResponse(c, constants.ErrMsgValidationFailed, map[string]string{
			"new_password": user.ErrPasswordTooShort.Error(),
		})
	case errors.Is(err, user.ErrResetNotFound):
		utils.AppErrorResponse(c, apperrors.NewUnauthorizedError("reset link is invalid or has expired"))
	default:
		h.logger.Errorw("password reset failed", "error", err)
		utils.AppErrorResponse(c, apperrors.NewInternalError(constants.ErrMsgInternalServerError))
	}
}

func (h *AuthHandler) respondLoginFailure(c *gin.Context, message string) {
	if wantsHTML(c) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": message,
			"From":  c.PostForm(constants.QueryParamFrom),
		})
		return
	}
	utils.ErrorResponse(c, http.StatusUnauthorized, message)
}

// wantsHTML reports whether the client posted a browser form rather than an
// API request.
func wantsHTML(c *gin.Context) bool {
	ct := c.ContentType()
	if ct == "application/x-www-form-urlencoded" || ct == "multipart/form-data" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// sanitizeRedirect keeps login redirects inside the application. Anything
// that is not a local absolute path is dropped.
func sanitizeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return ""
	}
	if _, err := url.Parse(target); err != nil {
		return ""
	}
	return target
}
