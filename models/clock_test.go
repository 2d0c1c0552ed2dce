package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)

	minutes, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = ParseClock("9:30am")
	assert.Error(t, err)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(9*60+5))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(23*60+59))
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("2026-04-01 14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, dt.Hour())
	assert.Equal(t, 30, dt.Minute())

	_, err = ParseDateTime("2026-04-01")
	assert.Error(t, err)

	_, err = ParseDateTime("01/04/2026 14:30")
	assert.Error(t, err)
}
