package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"github.com/notewyze/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ResearchService interface {
	Generate(ctx context.Context, recordingID, userID uint) ([]model.ResearchRecommendation, error)
	CreateRecommendation(userID uint, req dto.ResearchCreateRequest) (*model.ResearchRecommendation, error)
	GetRecommendation(id, userID uint) (*model.ResearchRecommendation, error)
	ListRecommendations(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.ResearchRecommendation], error)
	UpdateRecommendation(id, userID uint, req dto.ResearchUpdateRequest) (*model.ResearchRecommendation, error)
	DeleteRecommendation(id, userID uint) error

	SavePaper(userID uint, req dto.SavedPaperCreateRequest) (*model.SavedPaper, error)
	GetSavedPaper(id, userID uint) (*model.SavedPaper, error)
	ListSavedPapers(userID uint, p pagination.Params) (pagination.Page[model.SavedPaper], error)
	UpdateSavedPaper(id, userID uint, req dto.SavedPaperUpdateRequest) (*model.SavedPaper, error)
	DeleteSavedPaper(id, userID uint) error
}

type researchService struct {
	researchRepo  repository.ResearchRepository
	recordingRepo repository.RecordingRepository
	gemini        GeminiService
}

func NewResearchService(researchRepo repository.ResearchRepository, recordingRepo repository.RecordingRepository, gemini GeminiService) ResearchService {
	return &researchService{researchRepo: researchRepo, recordingRepo: recordingRepo, gemini: gemini}
}

func (s *researchService) Generate(ctx context.Context, recordingID, userID uint) ([]model.ResearchRecommendation, error) {
	recording, err := s.recordingRepo.FindByIDForUser(recordingID, userID)
	if err != nil {
		return nil, orNotFound(err, "Recording not found")
	}
	if strings.TrimSpace(recording.Transcript) == "" {
		return nil, apperror.Validation("Recording has no transcript to generate recommendations from")
	}

	generated, err := s.gemini.GenerateRecommendations(ctx, recording.Transcript)
	if err != nil {
		return nil, err
	}

	recs := make([]model.ResearchRecommendation, 0, len(generated))
	for _, g := range generated {
		recs = append(recs, model.ResearchRecommendation{
			RecordingID:     recording.ID,
			Title:           g.Title,
			Description:     g.Description,
			URL:             g.URL,
			Difficulty:      g.Difficulty,
			KeyTakeaways:    g.KeyTakeaways,
			Relevance:       g.Relevance,
			PublicationDate: ParsePublicationDate(g.PublicationDate),
		})
	}
	if err := s.researchRepo.CreateRecommendations(recs); err != nil {
		return nil, apperror.Internal("failed to store recommendations", err)
	}
	log.Info().Uint("recording_id", recordingID).Int("count", len(recs)).Msg("Research recommendations generated")
	return recs, nil
}

func (s *researchService) CreateRecommendation(userID uint, req dto.ResearchCreateRequest) (*model.ResearchRecommendation, error) {
	if _, err := s.recordingRepo.FindByIDForUser(req.RecordingID, userID); err != nil {
		return nil, orNotFound(err, "Recording not found")
	}
	relevance := req.Relevance
	if relevance == 0 {
		relevance = 5
	}
	rec := &model.ResearchRecommendation{
		RecordingID:     req.RecordingID,
		Title:           req.Title,
		Description:     req.Description,
		URL:             req.URL,
		Difficulty:      req.Difficulty,
		KeyTakeaways:    req.KeyTakeaways,
		Relevance:       relevance,
		PublicationDate: req.PublicationDate,
	}
	if err := s.researchRepo.CreateRecommendation(rec); err != nil {
		return nil, apperror.Internal("failed to create recommendation", err)
	}
	return rec, nil
}

func (s *researchService) GetRecommendation(id, userID uint) (*model.ResearchRecommendation, error) {
	rec, err := s.researchRepo.FindRecommendationForUser(id, userID)
	if err != nil {
		return nil, orNotFound(err, "Research recommendation not found")
	}
	return rec, nil
}

func (s *researchService) ListRecommendations(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.ResearchRecommendation], error) {
	page, err := s.researchRepo.ListRecommendationsForUser(userID, recordingID, p)
	if err != nil {
		return page, apperror.Internal("failed to list recommendations", err)
	}
	return page, nil
}

func (s *researchService) UpdateRecommendation(id, userID uint, req dto.ResearchUpdateRequest) (*model.ResearchRecommendation, error) {
	rec, err := s.GetRecommendation(id, userID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		rec.Title = *req.Title
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}
	if req.URL != nil {
		rec.URL = *req.URL
	}
	if req.Difficulty != nil {
		rec.Difficulty = *req.Difficulty
	}
	if req.KeyTakeaways != nil {
		rec.KeyTakeaways = req.KeyTakeaways
	}
	if req.Relevance != nil {
		rec.Relevance = *req.Relevance
	}
	if req.PublicationDate != nil {
		rec.PublicationDate = req.PublicationDate
	}
	if err := s.researchRepo.UpdateRecommendation(rec); err != nil {
		return nil, apperror.Internal("failed to update recommendation", err)
	}
	return rec, nil
}

func (s *researchService) DeleteRecommendation(id, userID uint) error {
	if _, err := s.GetRecommendation(id, userID); err != nil {
		return err
	}
	if err := s.researchRepo.DeleteRecommendation(id); err != nil {
		return apperror.Internal("failed to delete recommendation", err)
	}
	return nil
}

func (s *researchService) SavePaper(userID uint, req dto.SavedPaperCreateRequest) (*model.SavedPaper, error) {
	if _, err := s.GetRecommendation(req.RecommendationID, userID); err != nil {
		return nil, err
	}
	if _, err := s.researchRepo.FindSavedPaperByRecommendation(userID, req.RecommendationID); err == nil {
		return nil, apperror.Conflict("Paper is already saved")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal("database error", err)
	}

	paper := &model.SavedPaper{
		UserID:           userID,
		RecommendationID: req.RecommendationID,
		ReadStatus:       model.ReadStatusUnread,
		Notes:            req.Notes,
	}
	if err := s.researchRepo.CreateSavedPaper(paper); err != nil {
		return nil, apperror.Internal("failed to save paper", err)
	}
	return s.GetSavedPaper(paper.ID, userID)
}

func (s *researchService) GetSavedPaper(id, userID uint) (*model.SavedPaper, error) {
	paper, err := s.researchRepo.FindSavedPaperForUser(id, userID)
	if err != nil {
		return nil, orNotFound(err, "Saved paper not found")
	}
	return paper, nil
}

func (s *researchService) ListSavedPapers(userID uint, p pagination.Params) (pagination.Page[model.SavedPaper], error) {
	page, err := s.researchRepo.ListSavedPapersForUser(userID, p)
	if err != nil {
		return page, apperror.Internal("failed to list saved papers", err)
	}
	return page, nil
}

func (s *researchService) UpdateSavedPaper(id, userID uint, req dto.SavedPaperUpdateRequest) (*model.SavedPaper, error) {
	paper, err := s.GetSavedPaper(id, userID)
	if err != nil {
		return nil, err
	}
	touched := false
	if req.ReadStatus != nil {
		paper.ReadStatus = *req.ReadStatus
		if *req.ReadStatus == model.ReadStatusCompleted {
			paper.ReadingProgress = 100
		}
		touched = true
	}
	if req.ReadingProgress != nil {
		paper.ReadingProgress = *req.ReadingProgress
		touched = true
	}
	if req.Notes != nil {
		paper.Notes = *req.Notes
	}
	if touched {
		now := time.Now()
		paper.LastReadAt = &now
	}
	if err := s.researchRepo.UpdateSavedPaper(paper); err != nil {
		return nil, apperror.Internal("failed to update saved paper", err)
	}
	return paper, nil
}

func (s *researchService) DeleteSavedPaper(id, userID uint) error {
	if _, err := s.GetSavedPaper(id, userID); err != nil {
		return err
	}
	if err := s.researchRepo.DeleteSavedPaper(id); err != nil {
		return apperror.Internal("failed to delete saved paper", err)
	}
	return nil
}
