package repository

import (
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"gorm.io/gorm"
)

// Recommendations are owned through their recording, so every lookup joins
// recordings and scopes on its user_id.
type ResearchRepository interface {
	CreateRecommendation(rec *model.ResearchRecommendation) error
	CreateRecommendations(recs []model.ResearchRecommendation) error
	FindRecommendationForUser(id, userID uint) (*model.ResearchRecommendation, error)
	ListRecommendationsForUser(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.ResearchRecommendation], error)
	UpdateRecommendation(rec *model.ResearchRecommendation) error
	DeleteRecommendation(id uint) error

	CreateSavedPaper(paper *model.SavedPaper) error
	FindSavedPaperForUser(id, userID uint) (*model.SavedPaper, error)
	FindSavedPaperByRecommendation(userID, recommendationID uint) (*model.SavedPaper, error)
	ListSavedPapersForUser(userID uint, p pagination.Params) (pagination.Page[model.SavedPaper], error)
	UpdateSavedPaper(paper *model.SavedPaper) error
	DeleteSavedPaper(id uint) error
}

type researchRepository struct {
	db *gorm.DB
}

func NewResearchRepository(db *gorm.DB) ResearchRepository {
	return &researchRepository{db: db}
}

func (r *researchRepository) CreateRecommendation(rec *model.ResearchRecommendation) error {
	return r.db.Create(rec).Error
}

func (r *researchRepository) CreateRecommendations(recs []model.ResearchRecommendation) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.Create(&recs).Error
}

func (r *researchRepository) ownedRecommendations(userID uint) *gorm.DB {
	return r.db.Model(&model.ResearchRecommendation{}).
		Joins("JOIN recordings ON recordings.id = research_recommendations.recording_id AND recordings.deleted_at IS NULL").
		Where("recordings.user_id = ?", userID)
}

func (r *researchRepository) FindRecommendationForUser(id, userID uint) (*model.ResearchRecommendation, error) {
	var rec model.ResearchRecommendation
	if err := r.ownedRecommendations(userID).Where("research_recommendations.id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *researchRepository) ListRecommendationsForUser(userID uint, recordingID *uint, p pagination.Params) (pagination.Page[model.ResearchRecommendation], error) {
	query := r.ownedRecommendations(userID).Order("research_recommendations.relevance desc, research_recommendations.id asc")
	if recordingID != nil {
		query = query.Where("research_recommendations.recording_id = ?", *recordingID)
	}
	return pagination.Paginate[model.ResearchRecommendation](query, p)
}

func (r *researchRepository) UpdateRecommendation(rec *model.ResearchRecommendation) error {
	return r.db.Save(rec).Error
}

func (r *researchRepository) DeleteRecommendation(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recommendation_id = ?", id).Delete(&model.SavedPaper{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ResearchRecommendation{}, id).Error
	})
}

func (r *researchRepository) CreateSavedPaper(paper *model.SavedPaper) error {
	return r.db.Create(paper).Error
}

func (r *researchRepository) FindSavedPaperForUser(id, userID uint) (*model.SavedPaper, error) {
	var paper model.SavedPaper
	err := r.db.Preload("Recommendation").
		Where("id = ? AND user_id = ?", id, userID).
		First(&paper).Error
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *researchRepository) FindSavedPaperByRecommendation(userID, recommendationID uint) (*model.SavedPaper, error) {
	var paper model.SavedPaper
	err := r.db.Where("user_id = ? AND recommendation_id = ?", userID, recommendationID).First(&paper).Error
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *researchRepository) ListSavedPapersForUser(userID uint, p pagination.Params) (pagination.Page[model.SavedPaper], error) {
	query := r.db.Model(&model.SavedPaper{}).
		Preload("Recommendation").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc")
	return pagination.Paginate[model.SavedPaper](query, p)
}

func (r *researchRepository) UpdateSavedPaper(paper *model.SavedPaper) error {
	return r.db.Save(paper).Error
}

func (r *researchRepository) DeleteSavedPaper(id uint) error {
	return r.db.Delete(&model.SavedPaper{}, id).Error
}
