package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfToday(t *testing.T) {
	reference := time.Date(2026, time.August, 30, 17, 45, 12, 999, time.Local)
	start := StartOfToday(reference)

	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, reference.Location(), start.Location())
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(2026, time.February, time.UTC)

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), to, "the end bound is the first instant of the next month")

	from, to = MonthRange(2026, time.December, time.UTC)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), to, "December rolls over into the next year")
	assert.True(t, from.Before(to))
}
