package service

import (
	"testing"
	"time"

	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStudyService(db *gorm.DB) StudyService {
	return NewStudyService(
		repository.NewStudyRepository(db),
		repository.NewRecordingRepository(db),
		repository.NewProfileRepository(db),
	)
}

func TestStartSessionRequiresOwnedRecording(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "sowner@example.com")
	other := createUser(t, db, "sother@example.com")
	recording := createRecording(t, db, owner.ID, "transcript")
	svc := newStudyService(db)

	session, err := svc.Start(owner.ID, dto.StudySessionCreateRequest{RecordingID: recording.ID})
	require.NoError(t, err)
	assert.False(t, session.StartTime.IsZero())
	assert.Nil(t, session.EndTime)

	_, err = svc.Start(other.ID, dto.StudySessionCreateRequest{RecordingID: recording.ID})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCloseSessionDerivesDurationMinutes(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "closer@example.com")
	recording := createRecording(t, db, user.ID, "transcript")
	svc := newStudyService(db)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	session, err := svc.Start(user.ID, dto.StudySessionCreateRequest{RecordingID: recording.ID, StartTime: &start})
	require.NoError(t, err)

	end := start.Add(45 * time.Minute)
	updated, err := svc.Update(session.ID, user.ID, dto.StudySessionUpdateRequest{EndTime: &end})
	require.NoError(t, err)
	require.NotNil(t, updated.Duration)
	assert.InDelta(t, 45.0, *updated.Duration, 0.001)
}

func TestCloseSessionRejectsEndBeforeStart(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "badclose@example.com")
	recording := createRecording(t, db, user.ID, "transcript")
	svc := newStudyService(db)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	session, err := svc.Start(user.ID, dto.StudySessionCreateRequest{RecordingID: recording.ID, StartTime: &start})
	require.NoError(t, err)

	end := start.Add(-time.Minute)
	_, err = svc.Update(session.ID, user.ID, dto.StudySessionUpdateRequest{EndTime: &end})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestStudyStatsIgnoreOpenSessions(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "stats@example.com")
	recording := createRecording(t, db, user.ID, "transcript")
	svc := newStudyService(db)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, minutes := range []float64{30, 60} {
		session, err := svc.Start(user.ID, dto.StudySessionCreateRequest{RecordingID: recording.ID, StartTime: &start})
		require.NoError(t, err)
		end := start.Add(time.Duration(minutes) * time.Minute)
		_, err = svc.Update(session.ID, user.ID, dto.StudySessionUpdateRequest{EndTime: &end})
		require.NoError(t, err)
	}
	// Open session without a duration must not count.
	_, err := svc.Start(user.ID, dto.StudySessionCreateRequest{RecordingID: recording.ID})
	require.NoError(t, err)

	stats, err := svc.Stats(user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.InDelta(t, 90.0, stats.TotalDuration, 0.001)
	assert.InDelta(t, 45.0, stats.AverageDuration, 0.001)
	require.NotNil(t, stats.LastSessionEnd)

	var profile model.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, 90.0, profile.Statistics["total_study_time"])
}

func TestStudyStatsScopedToRecording(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "scoped@example.com")
	rec1 := createRecording(t, db, user.ID, "transcript")
	rec2 := createRecording(t, db, user.ID, "transcript")
	svc := newStudyService(db)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, rec := range []uint{rec1.ID, rec1.ID, rec2.ID} {
		session, err := svc.Start(user.ID, dto.StudySessionCreateRequest{RecordingID: rec, StartTime: &start})
		require.NoError(t, err)
		end := start.Add(20 * time.Minute)
		_, err = svc.Update(session.ID, user.ID, dto.StudySessionUpdateRequest{EndTime: &end})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(user.ID, &rec1.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.InDelta(t, 40.0, stats.TotalDuration, 0.001)

	other := createUser(t, db, "scoped2@example.com")
	_, err = svc.Stats(other.ID, &rec1.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestStudyStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "empty@example.com")
	svc := newStudyService(db)

	stats, err := svc.Stats(user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Zero(t, stats.TotalDuration)
	assert.Zero(t, stats.AverageDuration)
	assert.Nil(t, stats.LastSessionEnd)
}

func TestDeleteSessionOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "downer@example.com")
	other := createUser(t, db, "dother@example.com")
	recording := createRecording(t, db, owner.ID, "transcript")
	svc := newStudyService(db)

	session, err := svc.Start(owner.ID, dto.StudySessionCreateRequest{RecordingID: recording.ID})
	require.NoError(t, err)

	err = svc.Delete(session.ID, other.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	require.NoError(t, svc.Delete(session.ID, owner.ID))

	var count int64
	require.NoError(t, db.Model(&model.StudySession{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	assert.Zero(t, count)
}
