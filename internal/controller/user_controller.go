package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/dto"
)

// GetMeHandler godoc
// @Summary Get the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me [get]
func (ctrl *Controller) GetMeHandler(c *gin.Context) {
	respond(c, http.StatusOK, toUserResponse(currentUser(c)), "")
}

// UpdateMeHandler godoc
// @Summary Update the current user
// @Description Partially update the account. Omitted fields are left unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.UserUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 422 {object} dto.ErrorResponse
// @Router /users/me [put]
func (ctrl *Controller) UpdateMeHandler(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	user, err := ctrl.userSvc.UpdateMe(currentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toUserResponse(user), "Account updated")
}

// DeleteMeHandler godoc
// @Summary Delete the current user
// @Description Remove the account together with all recordings, quizzes, saved papers and study sessions
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me [delete]
func (ctrl *Controller) DeleteMeHandler(c *gin.Context) {
	if err := ctrl.userSvc.DeleteMe(currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Account deleted")
}

// GetProfileHandler godoc
// @Summary Get the current user's study profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.ProfileResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me/profile [get]
func (ctrl *Controller) GetProfileHandler(c *gin.Context) {
	profile, err := ctrl.userSvc.GetProfile(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toProfileResponse(profile), "")
}

// UpdateProfileHandler godoc
// @Summary Update the current user's study preferences
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.ProfileUpdateRequest true "Study preferences"
// @Success 200 {object} dto.Response{data=dto.ProfileResponse}
// @Failure 422 {object} dto.ErrorResponse
// @Router /users/me/profile [put]
func (ctrl *Controller) UpdateProfileHandler(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	profile, err := ctrl.userSvc.UpdateProfile(currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toProfileResponse(profile), "Profile updated")
}
