package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/notewyze/backend/config"
	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeneratedQuestion is the shape Gemini must return for each quiz question.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type GeneratedQuiz struct {
	Title     string              `json:"title"`
	Questions []GeneratedQuestion `json:"questions"`
}

type GeneratedRecommendation struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	URL             string   `json:"url"`
	Difficulty      string   `json:"difficulty"`
	KeyTakeaways    []string `json:"key_takeaways"`
	Relevance       int      `json:"relevance"`
	PublicationDate string   `json:"publication_date"`
}

type GeminiService interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
	Summarize(ctx context.Context, transcript string) (string, error)
	GenerateQuiz(ctx context.Context, transcript string) (*GeneratedQuiz, error)
	GenerateRecommendations(ctx context.Context, transcript string) ([]GeneratedRecommendation, error)
	Ping(ctx context.Context) error
}

type geminiService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will not function.")
		return &geminiService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiService{client: model, cfg: cfg}, nil
}

func (s *geminiService) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	if s.client == nil {
		return "", apperror.Generation("AI service is not configured", nil)
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.AITimeout)
	defer cancel()

	resp, err := s.client.GenerateContent(ctx, parts...)
	if err != nil {
		return "", apperror.Generation("AI request failed", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperror.Generation("AI returned an empty response", nil)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", apperror.Generation("AI returned an empty response", nil)
	}
	return out, nil
}

// stripJSONFences removes a leading ```json / trailing ``` wrapper that the
// model sometimes adds despite being told not to.
func stripJSONFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	}
	return strings.TrimSpace(raw)
}

func (s *geminiService) Transcribe(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", apperror.Internal("failed to read audio file", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(filePath))
	if !strings.HasPrefix(mimeType, "audio/") {
		mimeType = "audio/mpeg"
	}

	prompt := "Transcribe this lecture recording verbatim. " +
		"Return only the spoken text, without timestamps, speaker labels or commentary."
	return s.generate(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
}

func (s *geminiService) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following lecture transcript for a student reviewing the material. "+
			"Cover the main concepts and key points in a few short paragraphs.\n\nTranscript:\n%s",
		transcript,
	)
	return s.generate(ctx, genai.Text(prompt))
}

func (s *geminiService) GenerateQuiz(ctx context.Context, transcript string) (*GeneratedQuiz, error) {
	prompt := fmt.Sprintf(
		`Create a multiple-choice quiz from the following lecture transcript.
Respond with JSON only, no markdown fences, in exactly this shape:
{
  "title": "quiz title",
  "questions": [
    {
      "question": "...",
      "options": ["...", "...", "...", "..."],
      "correct_answer": "the exact text of the correct option",
      "explanation": "why this answer is correct"
    }
  ]
}
Each question must have exactly 4 options, and correct_answer must match one of them exactly.
Generate 5 questions.

Transcript:
%s`, transcript)

	raw, err := s.generate(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	return parseGeneratedQuiz(raw)
}

// parseGeneratedQuiz decodes and validates the model's quiz payload. Every
// question needs exactly 4 options with the correct answer among them.
func parseGeneratedQuiz(raw string) (*GeneratedQuiz, error) {
	var quiz GeneratedQuiz
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &quiz); err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("Failed to parse quiz JSON from Gemini")
		return nil, apperror.Generation("AI returned malformed quiz data", err)
	}
	if quiz.Title == "" || len(quiz.Questions) == 0 {
		return nil, apperror.Generation("AI returned an incomplete quiz", nil)
	}
	for i, q := range quiz.Questions {
		if len(q.Options) != 4 {
			return nil, apperror.Generation(fmt.Sprintf("question %d does not have exactly 4 options", i+1), nil)
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return nil, apperror.Generation(fmt.Sprintf("question %d has a correct answer that is not among its options", i+1), nil)
		}
	}
	return &quiz, nil
}

func (s *geminiService) GenerateRecommendations(ctx context.Context, transcript string) ([]GeneratedRecommendation, error) {
	prompt := fmt.Sprintf(
		`Recommend research papers and articles that deepen the topics of the following lecture transcript.
Respond with JSON only, no markdown fences: an array of objects in exactly this shape:
[
  {
    "title": "...",
    "description": "one or two sentences",
    "url": "https://...",
    "difficulty": "beginner|intermediate|advanced",
    "key_takeaways": ["...", "..."],
    "relevance": 7,
    "publication_date": "2024-01-31"
  }
]
relevance is an integer from 1 to 10. Generate 5 recommendations.

Transcript:
%s`, transcript)

	raw, err := s.generate(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	return parseGeneratedRecommendations(raw)
}

func parseGeneratedRecommendations(raw string) ([]GeneratedRecommendation, error) {
	var recs []GeneratedRecommendation
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &recs); err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("Failed to parse recommendations JSON from Gemini")
		return nil, apperror.Generation("AI returned malformed recommendation data", err)
	}
	if len(recs) == 0 {
		return nil, apperror.Generation("AI returned no recommendations", nil)
	}
	for i, rec := range recs {
		if rec.Title == "" {
			return nil, apperror.Generation(fmt.Sprintf("recommendation %d is missing a title", i+1), nil)
		}
		if !model.ValidDifficulty(rec.Difficulty) {
			return nil, apperror.Generation(fmt.Sprintf("recommendation %d has invalid difficulty %q", i+1, rec.Difficulty), nil)
		}
		if rec.Relevance < 1 || rec.Relevance > 10 {
			return nil, apperror.Generation(fmt.Sprintf("recommendation %d has relevance outside 1-10", i+1), nil)
		}
	}
	return recs, nil
}

// ParsePublicationDate turns the model's date string into a timestamp,
// accepting a missing or unparseable date as nil.
func ParsePublicationDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func (s *geminiService) Ping(ctx context.Context) error {
	_, err := s.generate(ctx, genai.Text("Reply with the single word: pong"))
	return err
}
