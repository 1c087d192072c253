package model

import (
	"time"

	"gorm.io/gorm"
)

type Profile struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	UserID           uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	StudyPreferences JSONMap        `json:"study_preferences" gorm:"type:text"`
	Statistics       JSONMap        `json:"statistics" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// DefaultStudyPreferences seeds a fresh profile.
func DefaultStudyPreferences() JSONMap {
	return JSONMap{
		"preferred_duration": 30,
		"difficulty_level":   "intermediate",
		"topics_of_interest": []string{},
	}
}

// DefaultStatistics seeds a fresh profile.
func DefaultStatistics() JSONMap {
	return JSONMap{
		"total_study_time":  0.0,
		"completed_quizzes": 0.0,
		"average_score":     0.0,
	}
}
