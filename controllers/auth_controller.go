package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/middleware"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/services"
)

type AuthController struct {
	Auth *services.AuthService
}

// @Summary Register
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account"
// @Success 201 {object} models.Response{data=models.TokenResponse}
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := ctrl.Auth.Register(c.Request.Context(), middleware.ProfileID(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusCreated, "Registration successful", resp)
}

// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response{data=models.TokenResponse}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := ctrl.Auth.Login(c.Request.Context(), middleware.ProfileID(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Login successful", resp)
}

// @Summary Logout
// @Description Forget the stored token and empty the cart
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.Auth.Logout(c.Request.Context(), middleware.ProfileID(c))
	ok(c, http.StatusOK, "Logged out", nil)
}

// @Summary Get profile
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response{data=models.User}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	user, err := ctrl.Auth.Me(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Profile retrieved", user)
}

// @Summary Update profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.Response{data=models.User}
// @Router /auth/me [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	user, err := ctrl.Auth.UpdateProfile(c.Request.Context(), middleware.ProfileID(c), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, "Profile updated", user)
}

// @Summary Forgot password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Email"
// @Success 200 {object} models.Response
// @Router /auth/forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	msg, err := ctrl.Auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, msg.Message, nil)
}

// @Summary Reset password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} models.Response
// @Router /auth/reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	msg, err := ctrl.Auth.ResetPassword(c.Request.Context(), req)
	if err != nil {
		failFrom(c, err)
		return
	}
	ok(c, http.StatusOK, msg.Message, nil)
}
