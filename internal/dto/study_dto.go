package dto

import "time"

type StudySessionCreateRequest struct {
	RecordingID uint       `json:"recording_id" binding:"required"`
	StartTime   *time.Time `json:"start_time"`
	Notes       string     `json:"notes"`
}

type StudySessionUpdateRequest struct {
	EndTime  *time.Time `json:"end_time"`
	Duration *float64   `json:"duration" binding:"omitempty,gt=0"`
	Notes    *string    `json:"notes"`
}

type StudySessionResponse struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	RecordingID uint       `json:"recording_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Duration    *float64   `json:"duration,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type StudyStatsResponse struct {
	TotalSessions          int        `json:"total_sessions"`
	TotalDuration          float64    `json:"total_duration"` // minutes
	AverageSessionDuration float64    `json:"average_session_duration"`
	LastSessionEnd         *time.Time `json:"last_session_end,omitempty"`
}

type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
	Version  string            `json:"version"`
}
