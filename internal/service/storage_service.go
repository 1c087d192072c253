package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/notewyze/backend/config"
	"github.com/notewyze/backend/internal/apperror"
	"github.com/rs/zerolog/log"
)

// StorageService persists uploaded audio files under the configured upload
// directory. Stored names are random so uploads can never collide or
// traverse outside the directory.
type StorageService interface {
	SaveAudio(file *multipart.FileHeader) (string, error)
	Remove(path string)
}

type storageService struct {
	cfg *config.Config
}

func NewStorageService(cfg *config.Config) (StorageService, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.Upload.Dir, err)
	}
	return &storageService{cfg: cfg}, nil
}

func (s *storageService) SaveAudio(file *multipart.FileHeader) (string, error) {
	if file.Size > s.cfg.Upload.MaxSizeBytes {
		return "", apperror.Validation(fmt.Sprintf("File exceeds the maximum upload size of %d bytes", s.cfg.Upload.MaxSizeBytes))
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		return "", apperror.Validation("File must be an audio recording")
	}

	src, err := file.Open()
	if err != nil {
		return "", apperror.Internal("failed to open uploaded file", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(s.cfg.Upload.Dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", apperror.Internal("failed to store uploaded file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", apperror.Internal("failed to store uploaded file", err)
	}
	return path, nil
}

func (s *storageService) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to remove stored file")
	}
}
