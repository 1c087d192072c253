package model

import (
	"time"

	"gorm.io/gorm"
)

type StudySession struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	RecordingID uint       `json:"recording_id" gorm:"not null;index"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	// Duration is in minutes, derived from end-start when the session is
	// closed.
	Duration  *float64       `json:"duration,omitempty"`
	Notes     string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
