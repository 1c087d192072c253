package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/notewyze/backend/config"
	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(req dto.SignupRequest) (*model.User, error)
	Login(email, password string) (*model.User, error)
	IssueToken(userID uint) (string, error)
	ResolveToken(token string) (uint, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Signup(req dto.SignupRequest) (*model.User, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperror.Conflict("A user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal("database error", err)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal("failed to hash password", err)
	}

	user := &model.User{
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashed,
		IsActive:       true,
		Profile: &model.Profile{
			StudyPreferences: model.DefaultStudyPreferences(),
			Statistics:       model.DefaultStatistics(),
		},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperror.Internal("failed to create user", err)
	}
	log.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("User registered")
	return user, nil
}

func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Authentication("Incorrect email or password")
		}
		return nil, apperror.Internal("database error", err)
	}
	if !verifyPassword(user.HashedPassword, password) {
		return nil, apperror.Authentication("Incorrect email or password")
	}
	if !user.IsActive {
		return nil, apperror.Authentication("Inactive user")
	}
	return user, nil
}

func (s *authService) IssueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenLifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.SecretKey))
	if err != nil {
		return "", apperror.Internal("failed to sign token", err)
	}
	return signed, nil
}

func (s *authService) ResolveToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return 0, apperror.Authentication("Could not validate credentials")
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, apperror.Authentication("Could not validate credentials")
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperror.Authentication("Could not validate credentials")
	}
	return uint(id), nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func verifyPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
