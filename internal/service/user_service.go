package service

import (
	"errors"

	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	GetByID(id uint) (*model.User, error)
	UpdateMe(user *model.User, req dto.UserUpdateRequest) (*model.User, error)
	GetProfile(userID uint) (*model.Profile, error)
	UpdateProfile(userID uint, req dto.ProfileUpdateRequest) (*model.Profile, error)
	DeleteMe(userID uint) error
}

type userService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewUserService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) UserService {
	return &userService{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *userService) GetByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err, "User not found")
	}
	return user, nil
}

func (s *userService) UpdateMe(user *model.User, req dto.UserUpdateRequest) (*model.User, error) {
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, apperror.Conflict("A user with this email already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Internal("database error", err)
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, apperror.Internal("failed to hash password", err)
		}
		user.HashedPassword = hashed
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperror.Internal("failed to update user", err)
	}
	return user, nil
}

func (s *userService) GetProfile(userID uint) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal("database error", err)
	}
	// Users created before profiles existed get one lazily.
	profile = &model.Profile{
		UserID:           userID,
		StudyPreferences: model.DefaultStudyPreferences(),
		Statistics:       model.DefaultStatistics(),
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, apperror.Internal("failed to create profile", err)
	}
	return profile, nil
}

func (s *userService) UpdateProfile(userID uint, req dto.ProfileUpdateRequest) (*model.Profile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	profile.StudyPreferences = req.StudyPreferences
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperror.Internal("failed to update profile", err)
	}
	return profile, nil
}

func (s *userService) DeleteMe(userID uint) error {
	if err := s.userRepo.DeleteCascade(userID); err != nil {
		return apperror.Internal("failed to delete user", err)
	}
	log.Info().Uint("user_id", userID).Msg("User account deleted")
	return nil
}
