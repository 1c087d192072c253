package service

import (
	"context"
	"mime/multipart"

	"github.com/jinzhu/copier"
	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"github.com/notewyze/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type RecordingService interface {
	Create(ctx context.Context, userID uint, title string, duration float64, file *multipart.FileHeader) (*model.Recording, error)
	Get(id, userID uint) (*model.Recording, error)
	List(userID uint, p pagination.Params) (pagination.Page[dto.RecordingWithProgress], error)
	Update(id, userID uint, req dto.RecordingUpdateRequest) (*model.Recording, error)
	Delete(id, userID uint) error
}

type recordingService struct {
	recordingRepo repository.RecordingRepository
	storage       StorageService
	gemini        GeminiService
}

func NewRecordingService(recordingRepo repository.RecordingRepository, storage StorageService, gemini GeminiService) RecordingService {
	return &recordingService{recordingRepo: recordingRepo, storage: storage, gemini: gemini}
}

// Create stores the upload, then transcribes and summarizes it before the
// recording row is written. A failed AI step removes the stored file so no
// orphaned uploads accumulate.
func (s *recordingService) Create(ctx context.Context, userID uint, title string, duration float64, file *multipart.FileHeader) (*model.Recording, error) {
	path, err := s.storage.SaveAudio(file)
	if err != nil {
		return nil, err
	}

	transcript, err := s.gemini.Transcribe(ctx, path)
	if err != nil {
		s.storage.Remove(path)
		return nil, err
	}
	summary, err := s.gemini.Summarize(ctx, transcript)
	if err != nil {
		s.storage.Remove(path)
		return nil, err
	}

	recording := &model.Recording{
		UserID:     userID,
		Title:      title,
		Duration:   duration,
		Transcript: transcript,
		Summary:    summary,
		FilePath:   path,
	}
	if err := s.recordingRepo.Create(recording); err != nil {
		s.storage.Remove(path)
		return nil, apperror.Internal("failed to create recording", err)
	}
	log.Info().Uint("recording_id", recording.ID).Uint("user_id", userID).Msg("Recording created")
	return recording, nil
}

func (s *recordingService) Get(id, userID uint) (*model.Recording, error) {
	recording, err := s.recordingRepo.FindByIDForUser(id, userID)
	if err != nil {
		return nil, orNotFound(err, "Recording not found")
	}
	return recording, nil
}

func (s *recordingService) List(userID uint, p pagination.Params) (pagination.Page[dto.RecordingWithProgress], error) {
	var out pagination.Page[dto.RecordingWithProgress]

	page, err := s.recordingRepo.ListForUser(userID, p)
	if err != nil {
		return out, apperror.Internal("failed to list recordings", err)
	}

	ids := make([]uint, 0, len(page.Items))
	for _, rec := range page.Items {
		ids = append(ids, rec.ID)
	}
	progress, err := s.recordingRepo.ProgressByRecording(ids)
	if err != nil {
		return out, apperror.Internal("failed to load recording progress", err)
	}

	items := make([]dto.RecordingWithProgress, 0, len(page.Items))
	for _, rec := range page.Items {
		var item dto.RecordingWithProgress
		if err := copier.Copy(&item.RecordingResponse, &rec); err != nil {
			return out, apperror.Internal("failed to map recording", err)
		}
		if prog, ok := progress[rec.ID]; ok {
			item.QuizCount = prog.QuizCount
			item.AverageQuizScore = prog.AverageQuizScore
			item.StudyTime = prog.StudyTime
			item.ResearchCount = prog.ResearchCount
		}
		items = append(items, item)
	}

	out.Items = items
	out.PageInfo = page.PageInfo
	return out, nil
}

func (s *recordingService) Update(id, userID uint, req dto.RecordingUpdateRequest) (*model.Recording, error) {
	recording, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		recording.Title = *req.Title
	}
	if req.Summary != nil {
		recording.Summary = *req.Summary
	}
	if err := s.recordingRepo.Update(recording); err != nil {
		return nil, apperror.Internal("failed to update recording", err)
	}
	return recording, nil
}

func (s *recordingService) Delete(id, userID uint) error {
	recording, err := s.Get(id, userID)
	if err != nil {
		return err
	}
	if err := s.recordingRepo.DeleteCascade(id); err != nil {
		return apperror.Internal("failed to delete recording", err)
	}
	s.storage.Remove(recording.FilePath)
	log.Info().Uint("recording_id", id).Uint("user_id", userID).Msg("Recording deleted")
	return nil
}
