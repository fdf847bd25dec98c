package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"9:30:00", "24:00", "12:60", "noon", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", invalid)
	}
}

func TestNewTimeStringTruncatesSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2025, time.March, 3, 14, 5, 59, 999, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestTimeStringAt(t *testing.T) {
	date := time.Date(2025, time.March, 3, 23, 59, 58, 7, time.UTC)
	anchored := TimeString("08:15").At(date)
	assert.Equal(t, time.Date(2025, time.March, 3, 8, 15, 0, 0, time.UTC), anchored)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("11:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:15"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:01"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
}
