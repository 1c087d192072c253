package dto

import "time"

type RecordingResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Title      string    `json:"title"`
	Duration   float64   `json:"duration"`
	Transcript string    `json:"transcript,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RecordingWithProgress adds per-recording study progress to the listing.
type RecordingWithProgress struct {
	RecordingResponse
	QuizCount        int      `json:"quiz_count"`
	AverageQuizScore *float64 `json:"average_quiz_score,omitempty"`
	StudyTime        float64  `json:"study_time"` // minutes
	ResearchCount    int      `json:"research_count"`
}

type RecordingUpdateRequest struct {
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
}
