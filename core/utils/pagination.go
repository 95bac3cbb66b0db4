package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPagination is returned for malformed or out-of-range limit/offset values.
var ErrInvalidPagination = errors.New("invalid pagination")

// ParseLimitOffset parses and validates raw limit/offset query values.
// An empty limit uses defaultLimit and an empty offset uses 0.
// Both must be integers, with 1 <= limit <= maxLimit and offset >= 0.
func ParseLimitOffset(limitStr, offsetStr string, defaultLimit, maxLimit int) (limit, offset int, err error) {
	limit = defaultLimit
	if s := strings.TrimSpace(limitStr); s != "" {
		if limit, err = strconv.Atoi(s); err != nil {
			return 0, 0, fmt.Errorf("%w: limit and offset must be integers", ErrInvalidPagination)
		}
	}

	if s := strings.TrimSpace(offsetStr); s != "" {
		if offset, err = strconv.Atoi(s); err != nil {
			return 0, 0, fmt.Errorf("%w: limit and offset must be integers", ErrInvalidPagination)
		}
	}

	if limit < 1 || limit > maxLimit {
		return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, maxLimit)
	}
	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: offset must be non-negative", ErrInvalidPagination)
	}

	return limit, offset, nil
}
