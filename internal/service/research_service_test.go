package service

import (
	"context"
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

func newResearchService(db *gorm.DB, gemini GeminiService) ResearchService {
	return NewResearchService(
		repository.NewResearchRepository(db),
		repository.NewRecordingRepository(db),
		gemini,
	)
}

func TestGenerateRecommendationsPersists(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "research@example.com")
	recording := createRecording(t, db, user.ID, "a lecture on distributed systems")
	gemini := &stubGemini{recs: []GeneratedRecommendation{
		{
			Title:           "Time, Clocks, and the Ordering of Events",
			Description:     "Foundational paper on logical clocks.",
			URL:             "https://example.com/lamport",
			Difficulty:      model.DifficultyAdvanced,
			KeyTakeaways:    []string{"happened-before relation"},
			Relevance:       9,
			PublicationDate: "1978-07-01",
		},
	}}
	svc := newResearchService(db, gemini)

	recs, err := svc.Generate(context.Background(), recording.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.NotZero(t, recs[0].ID)
	require.NotNil(t, recs[0].PublicationDate)
	assert.Equal(t, 1978, recs[0].PublicationDate.Year())
}

func TestRecommendationOwnershipThroughRecording(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "rowner@example.com")
	other := createUser(t, db, "rother@example.com")
	recording := createRecording(t, db, owner.ID, "transcript")
	svc := newResearchService(db, &stubGemini{})

	rec, err := svc.CreateRecommendation(owner.ID, dto.ResearchCreateRequest{
		RecordingID: recording.ID,
		Title:       "Some paper",
		Difficulty:  model.DifficultyBeginner,
		Relevance:   5,
	})
	require.NoError(t, err)

	_, err = svc.GetRecommendation(rec.ID, other.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	got, err := svc.GetRecommendation(rec.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestSavePaperDuplicateConflicts(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "saver@example.com")
	recording := createRecording(t, db, user.ID, "transcript")
	svc := newResearchService(db, &stubGemini{})

	rec, err := svc.CreateRecommendation(user.ID, dto.ResearchCreateRequest{
		RecordingID: recording.ID,
		Title:       "Some paper",
		Difficulty:  model.DifficultyIntermediate,
		Relevance:   5,
	})
	require.NoError(t, err)

	paper, err := svc.SavePaper(user.ID, dto.SavedPaperCreateRequest{RecommendationID: rec.ID})
	require.NoError(t, err)
	assert.Equal(t, model.ReadStatusUnread, paper.ReadStatus)
	assert.Equal(t, 0, paper.ReadingProgress)
	assert.Nil(t, paper.LastReadAt)
	require.NotNil(t, paper.Recommendation)
	assert.Equal(t, "Some paper", paper.Recommendation.Title)

	_, err = svc.SavePaper(user.ID, dto.SavedPaperCreateRequest{RecommendationID: rec.ID})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestUpdateSavedPaperTouchesLastReadAt(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "reader@example.com")
	recording := createRecording(t, db, user.ID, "transcript")
	svc := newResearchService(db, &stubGemini{})

	rec, err := svc.CreateRecommendation(user.ID, dto.ResearchCreateRequest{
		RecordingID: recording.ID,
		Title:       "Some paper",
		Difficulty:  model.DifficultyIntermediate,
		Relevance:   5,
	})
	require.NoError(t, err)
	paper, err := svc.SavePaper(user.ID, dto.SavedPaperCreateRequest{RecommendationID: rec.ID})
	require.NoError(t, err)

	progress := 40
	updated, err := svc.UpdateSavedPaper(paper.ID, user.ID, dto.SavedPaperUpdateRequest{ReadingProgress: &progress})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.ReadingProgress)
	assert.NotNil(t, updated.LastReadAt)

	// A notes-only update must not refresh last_read_at.
	past := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&model.SavedPaper{}).Where("id = ?", paper.ID).Update("last_read_at", past).Error)
	notes := "good intro"
	updated, err = svc.UpdateSavedPaper(paper.ID, user.ID, dto.SavedPaperUpdateRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "good intro", updated.Notes)
	require.NotNil(t, updated.LastReadAt)
	assert.WithinDuration(t, past, *updated.LastReadAt, time.Second)

	status := model.ReadStatusCompleted
	updated, err = svc.UpdateSavedPaper(paper.ID, user.ID, dto.SavedPaperUpdateRequest{ReadStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, model.ReadStatusCompleted, updated.ReadStatus)
	assert.Equal(t, 100, updated.ReadingProgress)
}

func TestDeleteRecommendationRemovesSavedPapers(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "cleanup@example.com")
	recording := createRecording(t, db, user.ID, "transcript")
	svc := newResearchService(db, &stubGemini{})

	rec, err := svc.CreateRecommendation(user.ID, dto.ResearchCreateRequest{
		RecordingID: recording.ID,
		Title:       "Some paper",
		Difficulty:  model.DifficultyIntermediate,
		Relevance:   5,
	})
	require.NoError(t, err)
	paper, err := svc.SavePaper(user.ID, dto.SavedPaperCreateRequest{RecommendationID: rec.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecommendation(rec.ID, user.ID))

	_, err = svc.GetSavedPaper(paper.ID, user.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	page, err := svc.ListSavedPapers(user.ID, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}
