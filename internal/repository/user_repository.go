package repository

import (
	"github.com/notewyze/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	// DeleteCascade removes the user together with everything they own:
	// profile, recordings, quizzes, recommendations, saved papers and
	// study sessions. Soft deletes do not propagate through foreign keys,
	// so the cascade is explicit and runs in one transaction.
	DeleteCascade(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var recordingIDs []uint
		if err := tx.Model(&model.Recording{}).Where("user_id = ?", id).Pluck("id", &recordingIDs).Error; err != nil {
			return err
		}
		var quizIDs []uint
		if err := tx.Model(&model.Quiz{}).Where("user_id = ?", id).Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		if len(quizIDs) > 0 {
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&model.QuizQuestion{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.SavedPaper{}).Error; err != nil {
			return err
		}
		if len(recordingIDs) > 0 {
			var recIDs []uint
			if err := tx.Model(&model.ResearchRecommendation{}).Where("recording_id IN ?", recordingIDs).Pluck("id", &recIDs).Error; err != nil {
				return err
			}
			// Other users may have saved papers against these recommendations.
			if len(recIDs) > 0 {
				if err := tx.Where("recommendation_id IN ?", recIDs).Delete(&model.SavedPaper{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("recording_id IN ?", recordingIDs).Delete(&model.ResearchRecommendation{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.StudySession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Recording{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}
