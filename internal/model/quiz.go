package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	RecordingID uint           `json:"recording_id" gorm:"not null;index"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Title       string         `json:"title"`
	Score       *float64       `json:"score,omitempty"` // nil until answers are submitted
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Questions   []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type QuizQuestion struct {
	ID       uint       `gorm:"primarykey" json:"id"`
	QuizID   uint       `json:"quiz_id" gorm:"not null;index"`
	Question string     `json:"question" gorm:"type:text;not null"`
	Options  StringList `json:"options" gorm:"type:text"` // exactly 4 entries
	// CorrectAnswer holds the exact text of the correct option.
	CorrectAnswer string         `json:"correct_answer" gorm:"type:text;not null"`
	Explanation   string         `json:"explanation" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
