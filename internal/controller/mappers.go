package controller

import (
	"github.com/jinzhu/copier"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"github.com/notewyze/backend/internal/repository"
)

func toUserResponse(user *model.User) dto.UserResponse {
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return resp
}

func toProfileResponse(profile *model.Profile) dto.ProfileResponse {
	var resp dto.ProfileResponse
	copier.Copy(&resp, profile)
	return resp
}

func toRecordingResponse(rec *model.Recording) dto.RecordingResponse {
	var resp dto.RecordingResponse
	copier.Copy(&resp, rec)
	return resp
}

func toQuizResponse(quiz *model.Quiz) dto.QuizResponse {
	resp := dto.QuizResponse{
		ID:          quiz.ID,
		RecordingID: quiz.RecordingID,
		Title:       quiz.Title,
		Score:       quiz.Score,
		CompletedAt: quiz.CompletedAt,
		CreatedAt:   quiz.CreatedAt,
	}
	for _, q := range quiz.Questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestionResponse{
			ID:       q.ID,
			QuizID:   q.QuizID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return resp
}

func toResearchResponse(rec *model.ResearchRecommendation) dto.ResearchResponse {
	return dto.ResearchResponse{
		ID:              rec.ID,
		RecordingID:     rec.RecordingID,
		Title:           rec.Title,
		Description:     rec.Description,
		URL:             rec.URL,
		Difficulty:      rec.Difficulty,
		KeyTakeaways:    rec.KeyTakeaways,
		Relevance:       rec.Relevance,
		PublicationDate: rec.PublicationDate,
		CreatedAt:       rec.CreatedAt,
	}
}

func toSavedPaperResponse(paper *model.SavedPaper) dto.SavedPaperResponse {
	resp := dto.SavedPaperResponse{
		ID:               paper.ID,
		UserID:           paper.UserID,
		RecommendationID: paper.RecommendationID,
		ReadStatus:       paper.ReadStatus,
		ReadingProgress:  paper.ReadingProgress,
		Notes:            paper.Notes,
		LastReadAt:       paper.LastReadAt,
		CreatedAt:        paper.CreatedAt,
	}
	if paper.Recommendation != nil {
		rec := toResearchResponse(paper.Recommendation)
		resp.Recommendation = &rec
	}
	return resp
}

func toSessionResponse(session *model.StudySession) dto.StudySessionResponse {
	var resp dto.StudySessionResponse
	copier.Copy(&resp, session)
	return resp
}

func toStatsResponse(stats repository.StudyStats) dto.StudyStatsResponse {
	return dto.StudyStatsResponse{
		TotalSessions:          stats.TotalSessions,
		TotalDuration:          stats.TotalDuration,
		AverageSessionDuration: stats.AverageDuration,
		LastSessionEnd:         stats.LastSessionEnd,
	}
}

// mapPage converts a page of models into a page of response DTOs, keeping
// the page info intact.
func mapPage[M any, D any](page pagination.Page[M], convert func(*M) D) pagination.Page[D] {
	items := make([]D, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, convert(&page.Items[i]))
	}
	return pagination.Page[D]{Items: items, PageInfo: page.PageInfo}
}
