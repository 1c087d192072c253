package service

import (
	"time"

	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"github.com/notewyze/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type StudyService interface {
	Start(userID uint, req dto.StudySessionCreateRequest) (*model.StudySession, error)
	Get(id, userID uint) (*model.StudySession, error)
	List(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.StudySession], error)
	Update(id, userID uint, req dto.StudySessionUpdateRequest) (*model.StudySession, error)
	Delete(id, userID uint) error
	Stats(userID uint, recordingID *uint) (repository.StudyStats, error)
}

type studyService struct {
	studyRepo     repository.StudyRepository
	recordingRepo repository.RecordingRepository
	profileRepo   repository.ProfileRepository
}

func NewStudyService(studyRepo repository.StudyRepository, recordingRepo repository.RecordingRepository, profileRepo repository.ProfileRepository) StudyService {
	return &studyService{studyRepo: studyRepo, recordingRepo: recordingRepo, profileRepo: profileRepo}
}

func (s *studyService) Start(userID uint, req dto.StudySessionCreateRequest) (*model.StudySession, error) {
	if _, err := s.recordingRepo.FindByIDForUser(req.RecordingID, userID); err != nil {
		return nil, orNotFound(err, "Recording not found")
	}
	start := time.Now()
	if req.StartTime != nil {
		start = *req.StartTime
	}
	session := &model.StudySession{
		UserID:      userID,
		RecordingID: req.RecordingID,
		StartTime:   start,
		Notes:       req.Notes,
	}
	if err := s.studyRepo.Create(session); err != nil {
		return nil, apperror.Internal("failed to create study session", err)
	}
	return session, nil
}

func (s *studyService) Get(id, userID uint) (*model.StudySession, error) {
	session, err := s.studyRepo.FindByIDForUser(id, userID)
	if err != nil {
		return nil, orNotFound(err, "Study session not found")
	}
	return session, nil
}

func (s *studyService) List(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.StudySession], error) {
	page, err := s.studyRepo.ListForUser(userID, recordingID, p)
	if err != nil {
		return page, apperror.Internal("failed to list study sessions", err)
	}
	return page, nil
}

// Update closes or annotates a session. When an end time arrives without an
// explicit duration, the duration is derived from the start time in minutes.
func (s *studyService) Update(id, userID uint, req dto.StudySessionUpdateRequest) (*model.StudySession, error) {
	session, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if req.EndTime != nil {
		if req.EndTime.Before(session.StartTime) {
			return nil, apperror.Validation("End time must be after the session start")
		}
		session.EndTime = req.EndTime
		if req.Duration == nil {
			minutes := req.EndTime.Sub(session.StartTime).Minutes()
			session.Duration = &minutes
		}
	}
	if req.Duration != nil {
		session.Duration = req.Duration
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}
	if err := s.studyRepo.Update(session); err != nil {
		return nil, apperror.Internal("failed to update study session", err)
	}
	if session.Duration != nil {
		s.refreshProfileStats(userID)
	}
	return session, nil
}

// refreshProfileStats keeps the total_study_time counter on the profile in
// step with recorded session durations. Failures only log; the session
// update itself already succeeded.
func (s *studyService) refreshProfileStats(userID uint) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Failed to load profile for stats refresh")
		return
	}
	stats, err := s.studyRepo.StatsForUser(userID, nil)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Failed to compute study stats")
		return
	}
	if profile.Statistics == nil {
		profile.Statistics = model.JSONMap{}
	}
	profile.Statistics["total_study_time"] = stats.TotalDuration
	if err := s.profileRepo.Update(profile); err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Failed to update profile statistics")
	}
}

func (s *studyService) Delete(id, userID uint) error {
	if _, err := s.Get(id, userID); err != nil {
		return err
	}
	if err := s.studyRepo.Delete(id); err != nil {
		return apperror.Internal("failed to delete study session", err)
	}
	return nil
}

// Stats summarizes the user's sessions, optionally scoped to a single
// recording. The recording must belong to the user.
func (s *studyService) Stats(userID uint, recordingID *uint) (repository.StudyStats, error) {
	var stats repository.StudyStats
	if recordingID != nil {
		if _, err := s.recordingRepo.FindByIDForUser(*recordingID, userID); err != nil {
			return stats, orNotFound(err, "Recording not found")
		}
	}
	stats, err := s.studyRepo.StatsForUser(userID, recordingID)
	if err != nil {
		return stats, apperror.Internal("failed to compute study stats", err)
	}
	return stats, nil
}
