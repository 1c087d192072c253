package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Email          string         `json:"email" gorm:"not null;uniqueIndex"`
	FullName       string         `json:"full_name"`
	HashedPassword string         `json:"-" gorm:"not null"`
	AvatarURL      *string        `json:"avatar_url,omitempty"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	IsSuperuser    bool           `json:"is_superuser" gorm:"default:false"`
	Profile        *Profile       `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Recordings     []Recording    `json:"recordings,omitempty" gorm:"foreignKey:UserID"`
	SavedPapers    []SavedPaper   `json:"saved_papers,omitempty" gorm:"foreignKey:UserID"`
	StudySessions  []StudySession `json:"study_sessions,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
