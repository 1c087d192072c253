package model

import (
	"time"

	"gorm.io/gorm"
)

// Difficulty levels of a recommended paper.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Read statuses of a saved paper.
const (
	ReadStatusUnread    = "unread"
	ReadStatusReading   = "reading"
	ReadStatusCompleted = "completed"
)

func ValidDifficulty(d string) bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyAdvanced
}

type ResearchRecommendation struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	RecordingID     uint           `json:"recording_id" gorm:"not null;index"`
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description" gorm:"type:text"`
	URL             string         `json:"url"`
	Difficulty      string         `json:"difficulty" gorm:"not null"`
	KeyTakeaways    StringList     `json:"key_takeaways" gorm:"type:text"`
	Relevance       int            `json:"relevance"` // 1-10 scale
	PublicationDate *time.Time     `json:"publication_date,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

type SavedPaper struct {
	ID               uint                    `gorm:"primarykey" json:"id"`
	UserID           uint                    `json:"user_id" gorm:"not null;index"`
	RecommendationID uint                    `json:"recommendation_id" gorm:"not null;index"`
	Recommendation   *ResearchRecommendation `json:"recommendation,omitempty" gorm:"foreignKey:RecommendationID"`
	ReadStatus       string                  `json:"read_status" gorm:"default:'unread'"`
	ReadingProgress  int                     `json:"reading_progress"` // 0-100 percent
	Notes            string                  `json:"notes,omitempty" gorm:"type:text"`
	LastReadAt       *time.Time              `json:"last_read_at,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
	DeletedAt        gorm.DeletedAt          `gorm:"index" json:"-"`
}
