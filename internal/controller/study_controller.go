package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/dto"
)

// StartSessionHandler godoc
// @Summary Start a study session
// @Tags study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body dto.StudySessionCreateRequest true "Session data"
// @Success 201 {object} dto.Response{data=dto.StudySessionResponse}
// @Failure 404 {object} dto.ErrorResponse "Recording not found"
// @Failure 422 {object} dto.ErrorResponse
// @Router /study/sessions [post]
func (ctrl *Controller) StartSessionHandler(c *gin.Context) {
	var req dto.StudySessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	session, err := ctrl.studySvc.Start(currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toSessionResponse(session), "Session started")
}

// ListSessionsHandler godoc
// @Summary List study sessions
// @Tags study
// @Produce json
// @Security BearerAuth
// @Param recording_id query int false "Filter by recording"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} dto.Response
// @Router /study/sessions [get]
func (ctrl *Controller) ListSessionsHandler(c *gin.Context) {
	filter, ok := recordingFilter(c)
	if !ok {
		return
	}
	page, err := ctrl.studySvc.List(currentUser(c).ID, filter, pageParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mapPage(page, toSessionResponse), "")
}

// GetSessionHandler godoc
// @Summary Get a study session
// @Tags study
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.Response{data=dto.StudySessionResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /study/sessions/{id} [get]
func (ctrl *Controller) GetSessionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	session, err := ctrl.studySvc.Get(id, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSessionResponse(session), "")
}

// UpdateSessionHandler godoc
// @Summary Update or close a study session
// @Description Set the end time to close a session; duration is derived in minutes when not given
// @Tags study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param session body dto.StudySessionUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.StudySessionResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "End time before start"
// @Router /study/sessions/{id} [put]
func (ctrl *Controller) UpdateSessionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.StudySessionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	session, err := ctrl.studySvc.Update(id, currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSessionResponse(session), "Session updated")
}

// DeleteSessionHandler godoc
// @Summary Delete a study session
// @Tags study
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Router /study/sessions/{id} [delete]
func (ctrl *Controller) DeleteSessionHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.studySvc.Delete(id, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Session deleted")
}

// ListSessionsByRecordingHandler godoc
// @Summary List study sessions for one recording
// @Tags study
// @Produce json
// @Security BearerAuth
// @Param recording_id path int true "Recording ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} dto.Response
// @Router /study/sessions/recording/{recording_id} [get]
func (ctrl *Controller) ListSessionsByRecordingHandler(c *gin.Context) {
	recordingID, ok := parseID(c, "recording_id")
	if !ok {
		return
	}
	page, err := ctrl.studySvc.List(currentUser(c).ID, &recordingID, pageParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mapPage(page, toSessionResponse), "")
}

// StudyStatsHandler godoc
// @Summary Get overall study statistics
// @Description Totals and averages over sessions that recorded a duration
// @Tags study
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=dto.StudyStatsResponse}
// @Router /study/stats/overall [get]
func (ctrl *Controller) StudyStatsHandler(c *gin.Context) {
	stats, err := ctrl.studySvc.Stats(currentUser(c).ID, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toStatsResponse(stats), "")
}

// RecordingStudyStatsHandler godoc
// @Summary Get study statistics for one recording
// @Tags study
// @Produce json
// @Security BearerAuth
// @Param recording_id path int true "Recording ID"
// @Success 200 {object} dto.Response{data=dto.StudyStatsResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /study/stats/recording/{recording_id} [get]
func (ctrl *Controller) RecordingStudyStatsHandler(c *gin.Context) {
	recordingID, ok := parseID(c, "recording_id")
	if !ok {
		return
	}
	stats, err := ctrl.studySvc.Stats(currentUser(c).ID, &recordingID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toStatsResponse(stats), "")
}
