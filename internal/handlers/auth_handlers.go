package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/apperrors"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/common"
	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/services"
)

// AuthHandlers handles authentication and profile self-service requests.
type AuthHandlers struct {
	authService services.AuthService
}

func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
}

func (r *RegisterRequest) validate() error {
	if err := common.ValidateRequiredString(r.FullName, "full name"); err != nil {
		return err
	}
	if len(r.FullName) < 2 || len(r.FullName) > 255 {
		return apperrors.BadRequest("full name must be between 2 and 255 characters")
	}
	if err := common.ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := common.ValidateMobileNumber(r.MobileNumber); err != nil {
		return err
	}
	return common.ValidatePassword(r.Password, "password")
}

// Register handles new account creation.
func (h *AuthHandlers) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := req.validate(); err != nil {
		return apperrors.BadRequest(err.Error())
	}

	resp, err := h.authService.Register(c.Request().Context(), req.FullName, req.Email, req.MobileNumber, req.Password)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusCreated, resp, "User registered successfully")
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a bearer token.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := common.ValidateEmail(req.Email); err != nil {
		return apperrors.BadRequest(err.Error())
	}
	if req.Password == "" {
		return apperrors.BadRequest("password is required")
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, resp, "Login successful")
}

// Me returns the authenticated user's profile.
func (h *AuthHandlers) Me(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return apperrors.Unauthorized("User not authenticated")
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, user, "User information retrieved successfully")
}

// ChangePasswordRequest represents the password change request payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ChangePasswordRequest) validate() error {
	if r.CurrentPassword == "" {
		return apperrors.BadRequest("current password is required")
	}
	if err := common.ValidatePassword(r.NewPassword, "new password"); err != nil {
		return err
	}
	if r.ConfirmPassword == "" {
		return apperrors.BadRequest("confirm password is required")
	}
	if r.NewPassword != r.ConfirmPassword {
		return apperrors.BadRequest("New password and confirm password do not match")
	}
	return nil
}

// ChangePassword rotates the authenticated user's password.
func (h *AuthHandlers) ChangePassword(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return apperrors.Unauthorized("User not authenticated")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if err := req.validate(); err != nil {
		return apperrors.BadRequest(err.Error())
	}

	user, err := h.authService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, user, "Password changed successfully")
}

// UpdateAccount applies a merge-patch to the authenticated user's account.
func (h *AuthHandlers) UpdateAccount(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return apperrors.Unauthorized("User not authenticated")
	}

	var patch services.AccountPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.BadRequest("Invalid request format")
	}
	if patch.Name != nil && (len(*patch.Name) < 2 || len(*patch.Name) > 255) {
		return apperrors.BadRequest("full name must be between 2 and 255 characters")
	}
	if patch.Email != nil {
		if err := common.ValidateEmail(*patch.Email); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}
	if patch.MobileNumber != nil {
		if err := common.ValidateMobileNumber(*patch.MobileNumber); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}

	user, err := h.authService.UpdateAccount(c.Request().Context(), userID, &patch)
	if err != nil {
		return err
	}

	return common.Respond(c, http.StatusOK, user, "Account updated successfully")
}
