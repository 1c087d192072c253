package service

import (
	"context"
	"testing"
	"time"

	"github.com/notewyze/backend/config"
	"github.com/notewyze/backend/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Recording{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.ResearchRecommendation{},
		&model.SavedPaper{},
		&model.StudySession{},
	))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.TokenLifetime = time.Hour
	return cfg
}

func createUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		Email:          email,
		FullName:       "Test User",
		HashedPassword: "x",
		IsActive:       true,
		Profile: &model.Profile{
			StudyPreferences: model.DefaultStudyPreferences(),
			Statistics:       model.DefaultStatistics(),
		},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createRecording(t *testing.T, db *gorm.DB, userID uint, transcript string) *model.Recording {
	t.Helper()
	recording := &model.Recording{
		UserID:     userID,
		Title:      "Lecture 1",
		Duration:   120,
		Transcript: transcript,
		Summary:    "A summary",
		FilePath:   "uploads/test.mp3",
	}
	require.NoError(t, db.Create(recording).Error)
	return recording
}

// stubGemini returns canned responses so services can be exercised without
// a live AI provider.
type stubGemini struct {
	quiz *GeneratedQuiz
	recs []GeneratedRecommendation
	err  error
}

func (s *stubGemini) Transcribe(ctx context.Context, filePath string) (string, error) {
	return "stub transcript", s.err
}

func (s *stubGemini) Summarize(ctx context.Context, transcript string) (string, error) {
	return "stub summary", s.err
}

func (s *stubGemini) GenerateQuiz(ctx context.Context, transcript string) (*GeneratedQuiz, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quiz, nil
}

func (s *stubGemini) GenerateRecommendations(ctx context.Context, transcript string) ([]GeneratedRecommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.recs, nil
}

func (s *stubGemini) Ping(ctx context.Context) error { return s.err }
