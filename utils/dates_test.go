package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(base, base.Add(2*time.Hour)))
	assert.Equal(t, 1, DaysBetween(base, base.Add(10*time.Hour))) // crosses midnight
	assert.Equal(t, 7, DaysBetween(base, base.AddDate(0, 0, 7)))
	assert.Equal(t, -1, DaysBetween(base, base.AddDate(0, 0, -1)))
}
