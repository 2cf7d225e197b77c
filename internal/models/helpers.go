package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh record identifier: an uppercase UUID string.
// Uniqueness is probabilistic and never checked against existing records.
func NewID() string {
	return strings.ToUpper(uuid.NewString())
}

// Timestamp renders t the way the store writes creation times: the local
// clock in ISO-8601 with microseconds and a literal "Z" suffix. The suffix
// is kept for compatibility with documents already in the wild even though
// the time is not actually UTC.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000000") + "Z"
}
