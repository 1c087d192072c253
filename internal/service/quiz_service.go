package service

import (
	"context"
	"strings"
	"time"

	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"github.com/notewyze/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	Generate(ctx context.Context, recordingID, userID uint) (*model.Quiz, error)
	Get(id, userID uint) (*model.Quiz, error)
	List(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.Quiz], error)
	Submit(id, userID uint, req dto.QuizSubmitRequest) (*dto.QuizResultResponse, error)
	Delete(id, userID uint) error
}

type quizService struct {
	quizRepo      repository.QuizRepository
	recordingRepo repository.RecordingRepository
	profileRepo   repository.ProfileRepository
	gemini        GeminiService
}

func NewQuizService(quizRepo repository.QuizRepository, recordingRepo repository.RecordingRepository, profileRepo repository.ProfileRepository, gemini GeminiService) QuizService {
	return &quizService{quizRepo: quizRepo, recordingRepo: recordingRepo, profileRepo: profileRepo, gemini: gemini}
}

func (s *quizService) Generate(ctx context.Context, recordingID, userID uint) (*model.Quiz, error) {
	recording, err := s.recordingRepo.FindByIDForUser(recordingID, userID)
	if err != nil {
		return nil, orNotFound(err, "Recording not found")
	}
	if strings.TrimSpace(recording.Transcript) == "" {
		return nil, apperror.Validation("Recording has no transcript to generate a quiz from")
	}

	generated, err := s.gemini.GenerateQuiz(ctx, recording.Transcript)
	if err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		RecordingID: recording.ID,
		UserID:      userID,
		Title:       generated.Title,
	}
	for _, q := range generated.Questions {
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, apperror.Internal("failed to create quiz", err)
	}
	log.Info().Uint("quiz_id", quiz.ID).Uint("recording_id", recordingID).Int("questions", len(quiz.Questions)).Msg("Quiz generated")
	return quiz, nil
}

func (s *quizService) Get(id, userID uint) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByIDForUser(id, userID)
	if err != nil {
		return nil, orNotFound(err, "Quiz not found")
	}
	return quiz, nil
}

func (s *quizService) List(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.Quiz], error) {
	page, err := s.quizRepo.ListForUser(userID, recordingID, p)
	if err != nil {
		return page, apperror.Internal("failed to list quizzes", err)
	}
	return page, nil
}

// answersMatch compares answers ignoring case and surrounding whitespace.
func answersMatch(given, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(correct))
}

func (s *quizService) Submit(id, userID uint, req dto.QuizSubmitRequest) (*dto.QuizResultResponse, error) {
	quiz, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	total := len(quiz.Questions)
	correct := 0
	feedback := make([]dto.QuestionFeedback, 0, total)
	for _, q := range quiz.Questions {
		answer := req.Answers[q.ID]
		ok := answer != "" && answersMatch(answer, q.CorrectAnswer)
		if ok {
			correct++
		}
		feedback = append(feedback, dto.QuestionFeedback{
			QuestionID:    q.ID,
			Correct:       ok,
			YourAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	score := 0.0
	if total > 0 {
		score = 100 * float64(correct) / float64(total)
	}
	now := time.Now()
	quiz.Score = &score
	quiz.CompletedAt = &now
	if err := s.quizRepo.Update(quiz); err != nil {
		return nil, apperror.Internal("failed to record quiz result", err)
	}
	s.refreshProfileStats(userID)

	return &dto.QuizResultResponse{
		QuizID:         quiz.ID,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: total,
		CompletedAt:    now,
		Feedback:       feedback,
	}, nil
}

// refreshProfileStats recomputes the quiz counters stored on the profile.
// Failures only log; the submission itself already succeeded.
func (s *quizService) refreshProfileStats(userID uint) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Failed to load profile for stats refresh")
		return
	}
	count, avg, err := s.quizRepo.CompletedStatsForUser(userID)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Failed to compute quiz stats")
		return
	}
	if profile.Statistics == nil {
		profile.Statistics = model.JSONMap{}
	}
	profile.Statistics["completed_quizzes"] = float64(count)
	profile.Statistics["average_score"] = avg
	if err := s.profileRepo.Update(profile); err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Failed to update profile statistics")
	}
}

func (s *quizService) Delete(id, userID uint) error {
	if _, err := s.Get(id, userID); err != nil {
		return err
	}
	if err := s.quizRepo.Delete(id); err != nil {
		return apperror.Internal("failed to delete quiz", err)
	}
	return nil
}
