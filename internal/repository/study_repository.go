package repository

import (
	"time"

	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"gorm.io/gorm"
)

// StudyStats summarizes a user's completed sessions. Only sessions with a
// recorded duration count toward totals and averages.
type StudyStats struct {
	TotalSessions   int
	TotalDuration   float64
	AverageDuration float64
	LastSessionEnd  *time.Time
}

type StudyRepository interface {
	Create(session *model.StudySession) error
	FindByIDForUser(id, userID uint) (*model.StudySession, error)
	ListForUser(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.StudySession], error)
	Update(session *model.StudySession) error
	Delete(id uint) error
	StatsForUser(userID uint, recordingID *uint) (StudyStats, error)
}

type studyRepository struct {
	db *gorm.DB
}

func NewStudyRepository(db *gorm.DB) StudyRepository {
	return &studyRepository{db: db}
}

func (r *studyRepository) Create(session *model.StudySession) error {
	return r.db.Create(session).Error
}

func (r *studyRepository) FindByIDForUser(id, userID uint) (*model.StudySession, error) {
	var session model.StudySession
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *studyRepository) ListForUser(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.StudySession], error) {
	query := r.db.Model(&model.StudySession{}).Where("user_id = ?", userID).Order("start_time desc, id desc")
	if recordingID != nil {
		query = query.Where("recording_id = ?", *recordingID)
	}
	return pagination.Paginate[model.StudySession](query, p)
}

func (r *studyRepository) Update(session *model.StudySession) error {
	return r.db.Save(session).Error
}

func (r *studyRepository) Delete(id uint) error {
	return r.db.Delete(&model.StudySession{}, id).Error
}

func (r *studyRepository) StatsForUser(userID uint, recordingID *uint) (StudyStats, error) {
	var stats StudyStats

	scope := func() *gorm.DB {
		query := r.db.Model(&model.StudySession{}).Where("user_id = ?", userID)
		if recordingID != nil {
			query = query.Where("recording_id = ?", *recordingID)
		}
		return query
	}

	type row struct {
		Cnt   int
		Total float64
	}
	var agg row
	err := scope().
		Select("count(*) as cnt, coalesce(sum(duration), 0) as total").
		Where("duration IS NOT NULL").
		Scan(&agg).Error
	if err != nil {
		return stats, err
	}
	stats.TotalSessions = agg.Cnt
	stats.TotalDuration = agg.Total
	if agg.Cnt > 0 {
		stats.AverageDuration = agg.Total / float64(agg.Cnt)
	}

	var last model.StudySession
	err = scope().
		Where("end_time IS NOT NULL").
		Order("end_time desc").
		First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return stats, nil
		}
		return stats, err
	}
	stats.LastSessionEnd = last.EndTime
	return stats, nil
}
