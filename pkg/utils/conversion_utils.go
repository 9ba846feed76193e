package utils

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("invalid record id")

// ParseRecordID converts a path segment to a record ID.
// Only plain non-negative decimal digits are accepted, so "+5", "-1" and " 5" are rejected.
func ParseRecordID(s string) (int64, error) {
	if s == "" {
		return 0, ErrInvalidID
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidID
		}
	}
	num, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return num, nil
}
