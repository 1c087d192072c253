package dto

import "time"

// QuizQuestionResponse hides the correct answer and explanation; those are
// only revealed in the submission feedback.
type QuizQuestionResponse struct {
	ID       uint     `json:"id"`
	QuizID   uint     `json:"quiz_id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizResponse struct {
	ID          uint                   `json:"id"`
	RecordingID uint                   `json:"recording_id"`
	Title       string                 `json:"title"`
	Score       *float64               `json:"score,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	Questions   []QuizQuestionResponse `json:"questions,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// QuizSubmitRequest maps question IDs to the answer text the user picked.
type QuizSubmitRequest struct {
	Answers map[uint]string `json:"answers" binding:"required"`
}

type QuestionFeedback struct {
	QuestionID    uint   `json:"question_id"`
	Correct       bool   `json:"correct"`
	YourAnswer    string `json:"your_answer,omitempty"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

type QuizResultResponse struct {
	QuizID         uint               `json:"quiz_id"`
	Score          float64            `json:"score"`
	CorrectAnswers int                `json:"correct_answers"`
	TotalQuestions int                `json:"total_questions"`
	CompletedAt    time.Time          `json:"completed_at"`
	Feedback       []QuestionFeedback `json:"feedback"`
}
