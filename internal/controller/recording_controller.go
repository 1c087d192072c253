package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/dto"
)

// CreateRecordingHandler godoc
// @Summary Upload a lecture recording
// @Description Store the audio file, transcribe and summarize it, and create the recording
// @Tags recordings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Recording title"
// @Param duration formData number false "Recording length in seconds"
// @Param file formData file true "Audio file"
// @Success 201 {object} dto.Response{data=dto.RecordingResponse}
// @Failure 422 {object} dto.ErrorResponse "Missing title or non-audio file"
// @Failure 502 {object} dto.ErrorResponse "Transcription or summarization failed"
// @Router /recordings [post]
func (ctrl *Controller) CreateRecordingHandler(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "title is required", Code: "VALIDATION_ERROR"})
		return
	}
	duration, _ := strconv.ParseFloat(c.DefaultPostForm("duration", "0"), 64)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "file is required", Code: "VALIDATION_ERROR"})
		return
	}

	recording, err := ctrl.recordingSvc.Create(c.Request.Context(), currentUser(c).ID, title, duration, file)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toRecordingResponse(recording), "Recording created")
}

// ListRecordingsHandler godoc
// @Summary List recordings
// @Description List the current user's recordings with per-recording study progress
// @Tags recordings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} dto.Response
// @Router /recordings [get]
func (ctrl *Controller) ListRecordingsHandler(c *gin.Context) {
	page, err := ctrl.recordingSvc.List(currentUser(c).ID, pageParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page, "")
}

// GetRecordingHandler godoc
// @Summary Get a recording
// @Tags recordings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recording ID"
// @Success 200 {object} dto.Response{data=dto.RecordingResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /recordings/{id} [get]
func (ctrl *Controller) GetRecordingHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	recording, err := ctrl.recordingSvc.Get(id, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toRecordingResponse(recording), "")
}

// UpdateRecordingHandler godoc
// @Summary Update a recording
// @Description Update the title or summary. Omitted fields are left unchanged.
// @Tags recordings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recording ID"
// @Param recording body dto.RecordingUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.RecordingResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /recordings/{id} [put]
func (ctrl *Controller) UpdateRecordingHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.RecordingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	recording, err := ctrl.recordingSvc.Update(id, currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toRecordingResponse(recording), "Recording updated")
}

// DeleteRecordingHandler godoc
// @Summary Delete a recording
// @Description Remove the recording together with its quizzes, recommendations and study sessions
// @Tags recordings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recording ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Router /recordings/{id} [delete]
func (ctrl *Controller) DeleteRecordingHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.recordingSvc.Delete(id, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Recording deleted")
}
