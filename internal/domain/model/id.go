package model

import (
	"strconv"
	"time"
)

// NewID returns a timestamp-derived record id. Millisecond precision is
// enough for practical uniqueness here: ids are minted one at a time by a
// single editor session.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
