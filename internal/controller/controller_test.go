package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, url string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c, w
}

func TestRecordingFilterAbsent(t *testing.T) {
	c, _ := testContext(t, "/quizzes")

	filter, ok := recordingFilter(c)
	assert.True(t, ok)
	assert.Nil(t, filter)
}

func TestRecordingFilterValid(t *testing.T) {
	c, _ := testContext(t, "/quizzes?recording_id=7")

	filter, ok := recordingFilter(c)
	require.True(t, ok)
	require.NotNil(t, filter)
	assert.Equal(t, uint(7), *filter)
}

func TestRecordingFilterMalformed(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "0", "1.5"} {
		c, w := testContext(t, "/quizzes?recording_id="+raw)

		_, ok := recordingFilter(c)
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, raw)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR", raw)
	}
}
