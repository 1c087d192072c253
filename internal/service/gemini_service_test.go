package service

import (
	"testing"

	"github.com/notewyze/backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                        "{\"a\":1}",
		"```json\n{\"a\":1}\n```":          "{\"a\":1}",
		"```\n[1,2]\n```":                  "[1,2]",
		"  \n```json\n{\"a\": \"b\"}\n```": "{\"a\": \"b\"}",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripJSONFences(in))
	}
}

func TestParsePublicationDate(t *testing.T) {
	parsed := ParsePublicationDate("2024-01-31")
	require.NotNil(t, parsed)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 31, parsed.Day())

	assert.Nil(t, ParsePublicationDate(""))
	assert.Nil(t, ParsePublicationDate("January 2024"))
}

func TestParseGeneratedQuiz(t *testing.T) {
	valid := `{"title":"Go","questions":[{"question":"Q?","options":["a","b","c","d"],"correct_answer":"a","explanation":"a it is"}]}`
	quiz, err := parseGeneratedQuiz(valid)
	require.NoError(t, err)
	assert.Equal(t, "Go", quiz.Title)
	require.Len(t, quiz.Questions, 1)

	fenced := "```json\n" + valid + "\n```"
	quiz, err = parseGeneratedQuiz(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Go", quiz.Title)

	cases := map[string]string{
		"not json":             `this is not json`,
		"missing title":        `{"title":"","questions":[{"question":"Q?","options":["a","b","c","d"],"correct_answer":"a"}]}`,
		"no questions":         `{"title":"Go","questions":[]}`,
		"three options":        `{"title":"Go","questions":[{"question":"Q?","options":["a","b","c"],"correct_answer":"a"}]}`,
		"answer not an option": `{"title":"Go","questions":[{"question":"Q?","options":["a","b","c","d"],"correct_answer":"e"}]}`,
	}
	for name, raw := range cases {
		_, err := parseGeneratedQuiz(raw)
		require.Error(t, err, name)
		assert.True(t, apperror.IsKind(err, apperror.KindGeneration), name)
	}
}

func TestParseGeneratedRecommendations(t *testing.T) {
	valid := `[{"title":"Paper","description":"d","url":"https://x","difficulty":"advanced","key_takeaways":["k"],"relevance":7,"publication_date":"2024-01-31"}]`
	recs, err := parseGeneratedRecommendations(valid)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "advanced", recs[0].Difficulty)

	cases := map[string]string{
		"not json":           `oops`,
		"empty array":        `[]`,
		"missing title":      `[{"title":"","difficulty":"beginner","relevance":5}]`,
		"bad difficulty":     `[{"title":"Paper","difficulty":"expert","relevance":5}]`,
		"relevance too high": `[{"title":"Paper","difficulty":"beginner","relevance":11}]`,
		"relevance too low":  `[{"title":"Paper","difficulty":"beginner","relevance":0}]`,
	}
	for name, raw := range cases {
		_, err := parseGeneratedRecommendations(raw)
		require.Error(t, err, name)
		assert.True(t, apperror.IsKind(err, apperror.KindGeneration), name)
	}
}

func TestAnswersMatch(t *testing.T) {
	assert.True(t, answersMatch("  Paris ", "paris"))
	assert.True(t, answersMatch("42", "42"))
	assert.False(t, answersMatch("Lyon", "Paris"))
	assert.False(t, answersMatch("", "Paris"))
}
