package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/dto"
)

// GenerateQuizHandler godoc
// @Summary Generate a quiz from a recording
// @Description Ask the AI to build a multiple-choice quiz from the recording's transcript
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param recording_id path int true "Recording ID"
// @Success 201 {object} dto.Response{data=dto.QuizResponse}
// @Failure 404 {object} dto.ErrorResponse "Recording not found"
// @Failure 422 {object} dto.ErrorResponse "Recording has no transcript"
// @Failure 502 {object} dto.ErrorResponse "Quiz generation failed"
// @Router /quizzes/generate/{recording_id} [post]
func (ctrl *Controller) GenerateQuizHandler(c *gin.Context) {
	recordingID, ok := parseID(c, "recording_id")
	if !ok {
		return
	}
	quiz, err := ctrl.quizSvc.Generate(c.Request.Context(), recordingID, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toQuizResponse(quiz), "Quiz generated")
}

// ListQuizzesHandler godoc
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param recording_id query int false "Filter by recording"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} dto.Response
// @Router /quizzes [get]
func (ctrl *Controller) ListQuizzesHandler(c *gin.Context) {
	filter, ok := recordingFilter(c)
	if !ok {
		return
	}
	page, err := ctrl.quizSvc.List(currentUser(c).ID, filter, pageParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mapPage(page, toQuizResponse), "")
}

// GetQuizHandler godoc
// @Summary Get a quiz with its questions
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.Response{data=dto.QuizResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (ctrl *Controller) GetQuizHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	quiz, err := ctrl.quizSvc.Get(id, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toQuizResponse(quiz), "")
}

// SubmitQuizHandler godoc
// @Summary Submit quiz answers
// @Description Score the submitted answers and return per-question feedback
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param answers body dto.QuizSubmitRequest true "Answers keyed by question ID"
// @Success 200 {object} dto.Response{data=dto.QuizResultResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (ctrl *Controller) SubmitQuizHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.QuizSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	result, err := ctrl.quizSvc.Submit(id, currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Quiz submitted")
}

// DeleteQuizHandler godoc
// @Summary Delete a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (ctrl *Controller) DeleteQuizHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.quizSvc.Delete(id, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Quiz deleted")
}
