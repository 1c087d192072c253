package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/dto"
)

// GenerateResearchHandler godoc
// @Summary Generate research recommendations for a recording
// @Description Ask the AI for papers and articles related to the recording's transcript
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param recording_id path int true "Recording ID"
// @Success 201 {object} dto.Response{data=[]dto.ResearchResponse}
// @Failure 404 {object} dto.ErrorResponse "Recording not found"
// @Failure 422 {object} dto.ErrorResponse "Recording has no transcript"
// @Failure 502 {object} dto.ErrorResponse "Recommendation generation failed"
// @Router /research/generate/{recording_id} [post]
func (ctrl *Controller) GenerateResearchHandler(c *gin.Context) {
	recordingID, ok := parseID(c, "recording_id")
	if !ok {
		return
	}
	recs, err := ctrl.researchSvc.Generate(c.Request.Context(), recordingID, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.ResearchResponse, 0, len(recs))
	for i := range recs {
		items = append(items, toResearchResponse(&recs[i]))
	}
	respond(c, http.StatusCreated, items, "Recommendations generated")
}

// CreateResearchHandler godoc
// @Summary Add a research recommendation manually
// @Tags research
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recommendation body dto.ResearchCreateRequest true "Recommendation data"
// @Success 201 {object} dto.Response{data=dto.ResearchResponse}
// @Failure 404 {object} dto.ErrorResponse "Recording not found"
// @Failure 422 {object} dto.ErrorResponse
// @Router /research [post]
func (ctrl *Controller) CreateResearchHandler(c *gin.Context) {
	var req dto.ResearchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	rec, err := ctrl.researchSvc.CreateRecommendation(currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toResearchResponse(rec), "Recommendation created")
}

// ListResearchHandler godoc
// @Summary List research recommendations
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param recording_id query int false "Filter by recording"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} dto.Response
// @Router /research [get]
func (ctrl *Controller) ListResearchHandler(c *gin.Context) {
	filter, ok := recordingFilter(c)
	if !ok {
		return
	}
	page, err := ctrl.researchSvc.ListRecommendations(currentUser(c).ID, filter, pageParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mapPage(page, toResearchResponse), "")
}

// GetResearchHandler godoc
// @Summary Get a research recommendation
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recommendation ID"
// @Success 200 {object} dto.Response{data=dto.ResearchResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /research/{id} [get]
func (ctrl *Controller) GetResearchHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rec, err := ctrl.researchSvc.GetRecommendation(id, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toResearchResponse(rec), "")
}

// UpdateResearchHandler godoc
// @Summary Update a research recommendation
// @Tags research
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recommendation ID"
// @Param recommendation body dto.ResearchUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.ResearchResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /research/{id} [put]
func (ctrl *Controller) UpdateResearchHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ResearchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	rec, err := ctrl.researchSvc.UpdateRecommendation(id, currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toResearchResponse(rec), "Recommendation updated")
}

// DeleteResearchHandler godoc
// @Summary Delete a research recommendation
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recommendation ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Router /research/{id} [delete]
func (ctrl *Controller) DeleteResearchHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.researchSvc.DeleteRecommendation(id, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Recommendation deleted")
}

// SavePaperHandler godoc
// @Summary Save a recommendation to the reading list
// @Tags research
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param paper body dto.SavedPaperCreateRequest true "Recommendation to save"
// @Success 201 {object} dto.Response{data=dto.SavedPaperResponse}
// @Failure 404 {object} dto.ErrorResponse "Recommendation not found"
// @Failure 409 {object} dto.ErrorResponse "Already saved"
// @Router /research/papers [post]
func (ctrl *Controller) SavePaperHandler(c *gin.Context) {
	var req dto.SavedPaperCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	paper, err := ctrl.researchSvc.SavePaper(currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, toSavedPaperResponse(paper), "Paper saved")
}

// ListSavedPapersHandler godoc
// @Summary List saved papers
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} dto.Response
// @Router /research/papers [get]
func (ctrl *Controller) ListSavedPapersHandler(c *gin.Context) {
	page, err := ctrl.researchSvc.ListSavedPapers(currentUser(c).ID, pageParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mapPage(page, toSavedPaperResponse), "")
}

// GetSavedPaperHandler godoc
// @Summary Get a saved paper
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param id path int true "Saved paper ID"
// @Success 200 {object} dto.Response{data=dto.SavedPaperResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /research/papers/{id} [get]
func (ctrl *Controller) GetSavedPaperHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	paper, err := ctrl.researchSvc.GetSavedPaper(id, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSavedPaperResponse(paper), "")
}

// UpdateSavedPaperHandler godoc
// @Summary Update reading progress on a saved paper
// @Description Update status, progress or notes. Progress and status changes refresh last_read_at.
// @Tags research
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Saved paper ID"
// @Param paper body dto.SavedPaperUpdateRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.SavedPaperResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /research/papers/{id} [put]
func (ctrl *Controller) UpdateSavedPaperHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SavedPaperUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	paper, err := ctrl.researchSvc.UpdateSavedPaper(id, currentUser(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, toSavedPaperResponse(paper), "Paper updated")
}

// DeleteSavedPaperHandler godoc
// @Summary Remove a paper from the reading list
// @Tags research
// @Produce json
// @Security BearerAuth
// @Param id path int true "Saved paper ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Router /research/papers/{id} [delete]
func (ctrl *Controller) DeleteSavedPaperHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.researchSvc.DeleteSavedPaper(id, currentUser(c).ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Paper removed")
}
