package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"absent", "", 20},
		{"explicit", "?limit=7", 7},
		{"garbage", "?limit=abc", 20},
		{"zero", "?limit=0", 1},
		{"negative", "?limit=-3", 1},
		{"too large", "?limit=9999", MaxRunsLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/v1/runs"+tc.query, nil)
			assert.Equal(t, tc.want, ParseLimit(c, 20))
		})
	}
}
