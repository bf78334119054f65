package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/feedcast/internal/feed"
	apperrors "github.com/killallgit/feedcast/pkg/errors"
)

func TestDependencies_EpisodeCount(t *testing.T) {
	var nilDeps *Dependencies
	assert.Zero(t, nilDeps.EpisodeCount())
	assert.Zero(t, (&Dependencies{}).EpisodeCount())

	deps := &Dependencies{Catalog: feed.NewCatalog([]feed.Episode{{Title: "episode #1"}})}
	assert.Equal(t, 1, deps.EpisodeCount())
}

func TestFromFeedEpisode(t *testing.T) {
	withAudio := FromFeedEpisode(3, feed.Episode{
		Title:       "episode #4",
		Description: "desc",
		AudioURL:    mo.Some("http://a.mp3"),
	})
	assert.Equal(t, Episode{ID: 3, Title: "episode #4", Description: "desc", AudioURL: "http://a.mp3", HasAudio: true}, withAudio)

	withoutAudio := FromFeedEpisode(0, feed.Episode{Title: "episode #1"})
	assert.False(t, withoutAudio.HasAudio)
	assert.Empty(t, withoutAudio.AudioURL)

	raw, err := json.Marshal(withoutAudio)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "audioUrl")
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		param      string
		wantID     int
		wantOK     bool
		wantStatus int
	}{
		{name: "zero", param: "0", wantID: 0, wantOK: true, wantStatus: http.StatusOK},
		{name: "positive", param: "12", wantID: 12, wantOK: true, wantStatus: http.StatusOK},
		{name: "negative", param: "-1", wantStatus: http.StatusBadRequest},
		{name: "not a number", param: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			id, ok := ParseIDParam(c, "id")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSendAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendAppError(c, apperrors.NotFound("episode", 9))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "NOT_FOUND", resp.Error)
	assert.NotNil(t, resp.Details)
}
