package service

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"github.com/notewyze/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubStorage records what was saved and removed without touching disk.
type stubStorage struct {
	path    string
	removed []string
}

func (s *stubStorage) SaveAudio(file *multipart.FileHeader) (string, error) {
	return s.path, nil
}

func (s *stubStorage) Remove(path string) {
	s.removed = append(s.removed, path)
}

func newRecordingService(db *gorm.DB, storage StorageService, gemini GeminiService) RecordingService {
	return NewRecordingService(repository.NewRecordingRepository(db), storage, gemini)
}

func TestCreateRecordingTranscribesAndSummarizes(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "rec@example.com")
	storage := &stubStorage{path: "uploads/abc.mp3"}
	svc := newRecordingService(db, storage, &stubGemini{})

	file := &multipart.FileHeader{Filename: "lecture.mp3", Size: 1024}
	recording, err := svc.Create(context.Background(), user.ID, "Lecture 1", 90, file)
	require.NoError(t, err)
	assert.Equal(t, "stub transcript", recording.Transcript)
	assert.Equal(t, "stub summary", recording.Summary)
	assert.Equal(t, "uploads/abc.mp3", recording.FilePath)
	assert.Empty(t, storage.removed)
}

func TestCreateRecordingCleansUpOnAIFailure(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "fail@example.com")
	storage := &stubStorage{path: "uploads/abc.mp3"}
	gemini := &stubGemini{err: apperror.Generation("AI request failed", nil)}
	svc := newRecordingService(db, storage, gemini)

	file := &multipart.FileHeader{Filename: "lecture.mp3", Size: 1024}
	_, err := svc.Create(context.Background(), user.ID, "Lecture 1", 90, file)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindGeneration))
	assert.Equal(t, []string{"uploads/abc.mp3"}, storage.removed)

	var count int64
	require.NoError(t, db.Model(&model.Recording{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListRecordingsIncludesProgress(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "progress@example.com")
	recording := createRecording(t, db, user.ID, "transcript")

	score := 80.0
	now := time.Now()
	require.NoError(t, db.Create(&model.Quiz{
		RecordingID: recording.ID, UserID: user.ID, Title: "Q1", Score: &score, CompletedAt: &now,
	}).Error)
	require.NoError(t, db.Create(&model.Quiz{
		RecordingID: recording.ID, UserID: user.ID, Title: "Q2",
	}).Error)

	minutes := 30.0
	end := now.Add(30 * time.Minute)
	require.NoError(t, db.Create(&model.StudySession{
		UserID: user.ID, RecordingID: recording.ID, StartTime: now, EndTime: &end, Duration: &minutes,
	}).Error)
	require.NoError(t, db.Create(&model.ResearchRecommendation{
		RecordingID: recording.ID, Title: "Paper", Difficulty: model.DifficultyBeginner, Relevance: 5,
	}).Error)

	svc := newRecordingService(db, &stubStorage{}, &stubGemini{})
	page, err := svc.List(user.ID, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	item := page.Items[0]
	assert.Equal(t, recording.ID, item.ID)
	assert.Equal(t, 2, item.QuizCount)
	require.NotNil(t, item.AverageQuizScore)
	assert.InDelta(t, 80.0, *item.AverageQuizScore, 0.001)
	assert.InDelta(t, 30.0, item.StudyTime, 0.001)
	assert.Equal(t, 1, item.ResearchCount)
}

func TestUpdateRecordingPartial(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "upd@example.com")
	recording := createRecording(t, db, user.ID, "transcript")
	svc := newRecordingService(db, &stubStorage{}, &stubGemini{})

	title := "Renamed"
	updated, err := svc.Update(recording.ID, user.ID, dto.RecordingUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "A summary", updated.Summary)
}

func TestDeleteRecordingCascadesAndRemovesFile(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "del@example.com")
	recording := createRecording(t, db, user.ID, "transcript")

	require.NoError(t, db.Create(&model.Quiz{
		RecordingID: recording.ID, UserID: user.ID, Title: "Q",
		Questions: []model.QuizQuestion{{Question: "?", Options: model.StringList{"a", "b", "c", "d"}, CorrectAnswer: "a"}},
	}).Error)
	rec := &model.ResearchRecommendation{RecordingID: recording.ID, Title: "Paper", Difficulty: model.DifficultyBeginner, Relevance: 5}
	require.NoError(t, db.Create(rec).Error)
	require.NoError(t, db.Create(&model.SavedPaper{UserID: user.ID, RecommendationID: rec.ID, ReadStatus: model.ReadStatusUnread}).Error)
	require.NoError(t, db.Create(&model.StudySession{UserID: user.ID, RecordingID: recording.ID, StartTime: time.Now()}).Error)

	storage := &stubStorage{}
	svc := newRecordingService(db, storage, &stubGemini{})
	require.NoError(t, svc.Delete(recording.ID, user.ID))

	assert.Equal(t, []string{recording.FilePath}, storage.removed)
	for _, target := range []interface{}{
		&model.Recording{}, &model.Quiz{}, &model.QuizQuestion{},
		&model.ResearchRecommendation{}, &model.SavedPaper{}, &model.StudySession{},
	} {
		var count int64
		require.NoError(t, db.Model(target).Count(&count).Error)
		assert.Zero(t, count, "%T should be empty after cascade", target)
	}
}

func TestRecordingOwnershipHidden(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "ro@example.com")
	other := createUser(t, db, "rx@example.com")
	recording := createRecording(t, db, owner.ID, "transcript")
	svc := newRecordingService(db, &stubStorage{}, &stubGemini{})

	_, err := svc.Get(recording.ID, other.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
