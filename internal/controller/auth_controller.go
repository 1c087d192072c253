package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/dto"
)

// SignupHandler godoc
// @Summary Register a new user
// @Description Create an account and return an access token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "New account data"
// @Success 201 {object} dto.Response{data=dto.TokenResponse}
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 422 {object} dto.ErrorResponse "Invalid request body"
// @Router /auth/signup [post]
func (ctrl *Controller) SignupHandler(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := ctrl.authSvc.Signup(req)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := ctrl.authSvc.IssueToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, "Account created")
}

// LoginHandler godoc
// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email address"
// @Param password formData string true "Password"
// @Success 200 {object} dto.Response{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Incorrect credentials"
// @Router /auth/login [post]
func (ctrl *Controller) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := ctrl.authSvc.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := ctrl.authSvc.IssueToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, "Logged in")
}

// TestTokenHandler godoc
// @Summary Validate the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/test-token [post]
func (ctrl *Controller) TestTokenHandler(c *gin.Context) {
	respond(c, http.StatusOK, toUserResponse(currentUser(c)), "Token is valid")
}
