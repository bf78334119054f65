package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/feedcast/api/types"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		deps         *types.Dependencies
		expectedBody map[string]any
	}{
		{
			name: "build info set",
			deps: &types.Dependencies{Build: types.BuildInfo{Version: "1.2.0", Commit: "abc123", Date: "2026-01-02"}},
			expectedBody: map[string]any{
				"name":    "feedcast",
				"version": "1.2.0",
				"commit":  "abc123",
				"date":    "2026-01-02",
				"status":  "running",
			},
		},
		{
			name: "no build info",
			deps: nil,
			expectedBody: map[string]any{
				"name":    "feedcast",
				"version": "dev",
				"status":  "running",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Get(tt.deps)(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			for key, expectedValue := range tt.expectedBody {
				assert.Equal(t, expectedValue, response[key], "Key: %s", key)
			}
		})
	}
}
