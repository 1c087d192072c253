package model

import (
	"time"

	"gorm.io/gorm"
)

type Recording struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	UserID     uint    `json:"user_id" gorm:"not null;index"`
	Title      string  `json:"title" gorm:"not null;index"`
	Duration   float64 `json:"duration"` // seconds
	Transcript string  `json:"transcript,omitempty" gorm:"type:text"`
	Summary    string  `json:"summary,omitempty" gorm:"type:text"`
	// FilePath is the on-disk storage location. Internal use only, never
	// serialized to clients.
	FilePath  string         `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
