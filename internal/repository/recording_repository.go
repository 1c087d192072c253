package repository

import (
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"gorm.io/gorm"
)

// RecordingProgress aggregates per-recording study activity for listings.
type RecordingProgress struct {
	QuizCount        int
	AverageQuizScore *float64
	StudyTime        float64
	ResearchCount    int
}

type RecordingRepository interface {
	Create(recording *model.Recording) error
	FindByID(id uint) (*model.Recording, error)
	FindByIDForUser(id, userID uint) (*model.Recording, error)
	ListForUser(userID uint, p pagination.Params) (pagination.Page[model.Recording], error)
	ProgressByRecording(ids []uint) (map[uint]RecordingProgress, error)
	Update(recording *model.Recording) error
	// DeleteCascade removes the recording and everything derived from it.
	DeleteCascade(id uint) error
}

type recordingRepository struct {
	db *gorm.DB
}

func NewRecordingRepository(db *gorm.DB) RecordingRepository {
	return &recordingRepository{db: db}
}

func (r *recordingRepository) Create(recording *model.Recording) error {
	return r.db.Create(recording).Error
}

func (r *recordingRepository) FindByID(id uint) (*model.Recording, error) {
	var recording model.Recording
	if err := r.db.First(&recording, id).Error; err != nil {
		return nil, err
	}
	return &recording, nil
}

func (r *recordingRepository) FindByIDForUser(id, userID uint) (*model.Recording, error) {
	var recording model.Recording
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&recording).Error; err != nil {
		return nil, err
	}
	return &recording, nil
}

func (r *recordingRepository) ListForUser(userID uint, p pagination.Params) (pagination.Page[model.Recording], error) {
	query := r.db.Model(&model.Recording{}).Where("user_id = ?", userID).Order("created_at desc, id desc")
	return pagination.Paginate[model.Recording](query, p)
}

func (r *recordingRepository) ProgressByRecording(ids []uint) (map[uint]RecordingProgress, error) {
	progress := make(map[uint]RecordingProgress, len(ids))
	if len(ids) == 0 {
		return progress, nil
	}
	for _, id := range ids {
		progress[id] = RecordingProgress{}
	}

	type quizRow struct {
		RecordingID uint
		Cnt         int
		AvgScore    *float64
	}
	var quizRows []quizRow
	if err := r.db.Model(&model.Quiz{}).
		Select("recording_id, count(*) as cnt, avg(score) as avg_score").
		Where("recording_id IN ?", ids).
		Group("recording_id").
		Scan(&quizRows).Error; err != nil {
		return nil, err
	}
	for _, row := range quizRows {
		entry := progress[row.RecordingID]
		entry.QuizCount = row.Cnt
		entry.AverageQuizScore = row.AvgScore
		progress[row.RecordingID] = entry
	}

	type studyRow struct {
		RecordingID uint
		Total       float64
	}
	var studyRows []studyRow
	if err := r.db.Model(&model.StudySession{}).
		Select("recording_id, coalesce(sum(duration), 0) as total").
		Where("recording_id IN ? AND duration IS NOT NULL", ids).
		Group("recording_id").
		Scan(&studyRows).Error; err != nil {
		return nil, err
	}
	for _, row := range studyRows {
		entry := progress[row.RecordingID]
		entry.StudyTime = row.Total
		progress[row.RecordingID] = entry
	}

	type researchRow struct {
		RecordingID uint
		Cnt         int
	}
	var researchRows []researchRow
	if err := r.db.Model(&model.ResearchRecommendation{}).
		Select("recording_id, count(*) as cnt").
		Where("recording_id IN ?", ids).
		Group("recording_id").
		Scan(&researchRows).Error; err != nil {
		return nil, err
	}
	for _, row := range researchRows {
		entry := progress[row.RecordingID]
		entry.ResearchCount = row.Cnt
		progress[row.RecordingID] = entry
	}

	return progress, nil
}

func (r *recordingRepository) Update(recording *model.Recording) error {
	return r.db.Save(recording).Error
}

func (r *recordingRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var quizIDs []uint
		if err := tx.Model(&model.Quiz{}).Where("recording_id = ?", id).Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		if len(quizIDs) > 0 {
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&model.QuizQuestion{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", quizIDs).Delete(&model.Quiz{}).Error; err != nil {
				return err
			}
		}
		var recIDs []uint
		if err := tx.Model(&model.ResearchRecommendation{}).Where("recording_id = ?", id).Pluck("id", &recIDs).Error; err != nil {
			return err
		}
		if len(recIDs) > 0 {
			if err := tx.Where("recommendation_id IN ?", recIDs).Delete(&model.SavedPaper{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", recIDs).Delete(&model.ResearchRecommendation{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("recording_id = ?", id).Delete(&model.StudySession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Recording{}, id).Error
	})
}
