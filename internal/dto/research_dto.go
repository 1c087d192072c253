package dto

import "time"

type ResearchCreateRequest struct {
	RecordingID     uint       `json:"recording_id" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	URL             string     `json:"url" binding:"omitempty,url"`
	Difficulty      string     `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	KeyTakeaways    []string   `json:"key_takeaways"`
	Relevance       int        `json:"relevance" binding:"omitempty,min=1,max=10"`
	PublicationDate *time.Time `json:"publication_date"`
}

type ResearchUpdateRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	URL             *string    `json:"url" binding:"omitempty,url"`
	Difficulty      *string    `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	KeyTakeaways    []string   `json:"key_takeaways"`
	Relevance       *int       `json:"relevance" binding:"omitempty,min=1,max=10"`
	PublicationDate *time.Time `json:"publication_date"`
}

type ResearchResponse struct {
	ID              uint       `json:"id"`
	RecordingID     uint       `json:"recording_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	URL             string     `json:"url,omitempty"`
	Difficulty      string     `json:"difficulty"`
	KeyTakeaways    []string   `json:"key_takeaways"`
	Relevance       int        `json:"relevance"`
	PublicationDate *time.Time `json:"publication_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type SavedPaperCreateRequest struct {
	RecommendationID uint   `json:"recommendation_id" binding:"required"`
	Notes            string `json:"notes"`
}

type SavedPaperUpdateRequest struct {
	ReadStatus      *string `json:"read_status" binding:"omitempty,oneof=unread reading completed"`
	ReadingProgress *int    `json:"reading_progress" binding:"omitempty,min=0,max=100"`
	Notes           *string `json:"notes"`
}

type SavedPaperResponse struct {
	ID               uint              `json:"id"`
	UserID           uint              `json:"user_id"`
	RecommendationID uint              `json:"recommendation_id"`
	Recommendation   *ResearchResponse `json:"recommendation,omitempty"`
	ReadStatus       string            `json:"read_status"`
	ReadingProgress  int               `json:"reading_progress"`
	Notes            string            `json:"notes,omitempty"`
	LastReadAt       *time.Time        `json:"last_read_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}
