package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxRunsLimit = 500

// ParseLimit reads ?limit=, falling back to def when absent or unparseable and
// clamping to [1, MaxRunsLimit].
func ParseLimit(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = def
	}

	if limit < 1 {
		limit = 1
	}
	if limit > MaxRunsLimit {
		limit = MaxRunsLimit
	}
	return limit
}
