package repository

import (
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByIDForUser(id, userID uint) (*model.Quiz, error)
	ListForUser(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.Quiz], error)
	Update(quiz *model.Quiz) error
	Delete(id uint) error
	// CompletedStatsForUser returns the number of completed quizzes and
	// their average score.
	CompletedStatsForUser(userID uint) (int, float64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByIDForUser(id, userID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.id ASC")
	}).Where("id = ? AND user_id = ?", id, userID).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListForUser(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.Quiz], error) {
	query := r.db.Model(&model.Quiz{}).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc")
	if recordingID != nil {
		query = query.Where("recording_id = ?", *recordingID)
	}
	return pagination.Paginate[model.Quiz](query, p)
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *quizRepository) CompletedStatsForUser(userID uint) (int, float64, error) {
	type row struct {
		Cnt int
		Avg float64
	}
	var agg row
	err := r.db.Model(&model.Quiz{}).
		Select("count(*) as cnt, coalesce(avg(score), 0) as avg").
		Where("user_id = ? AND score IS NOT NULL", userID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.Cnt, agg.Avg, nil
}

func (r *quizRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
