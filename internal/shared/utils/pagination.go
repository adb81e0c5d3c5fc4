package utils

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
)

// Pagination holds parsed offset pagination parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// ClampLimit bounds limit to [1, max]. A missing limit is resolved to the
// default before clamping, so an explicit 0 becomes 1.
func ClampLimit(limit, max int) int {
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}

// ClampOffset bounds offset to >= 0.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// ParsePagination reads limit/offset from the query string using the ticket
// listing defaults.
func ParsePagination(c *gin.Context) (Pagination, error) {
	return ParsePaginationWithLimits(c, constants.DefaultTicketLimit, constants.MaxTicketLimit)
}

// ParsePaginationWithLimits reads limit/offset with a custom default and max.
// Out-of-range values are clamped; values that are not integers are rejected.
func ParsePaginationWithLimits(c *gin.Context, defaultLimit, maxLimit int) (Pagination, error) {
	limit, err := ParseQueryInt(c, "limit", defaultLimit)
	if err != nil {
		return Pagination{}, err
	}
	offset, err := ParseQueryInt(c, "offset", 0)
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{Limit: ClampLimit(limit, maxLimit), Offset: ClampOffset(offset)}, nil
}

// ParseQueryInt parses an integer query parameter. A missing or blank value
// yields defaultVal. An integer too large for int saturates to the nearest
// bound so callers can clamp it like any other out-of-range value.
func ParseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if stderrors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	if err != nil {
		return 0, errors.NewValidationError("invalid query parameter", key+" must be an integer")
	}
	return n, nil
}
