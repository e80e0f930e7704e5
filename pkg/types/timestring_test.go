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

	for _, bad := range []string{"", "9:30:00", "25:00", "09:61", "morning"} {
		_, err := NewTimeStringFromString(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 23*60+59, TimeString("23:59").Minutes())
}

func TestTimeString_Ordering(t *testing.T) {
	open := TimeString("09:00")
	close := TimeString("18:00")

	assert.True(t, open.IsBefore(close))
	assert.True(t, close.IsAfter(open))
	assert.False(t, open.IsBefore(open))
	assert.False(t, open.IsAfter(open))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err)
}

func TestTimeString_At(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)

	day := time.Date(2025, time.November, 18, 23, 50, 0, 0, time.UTC)
	got := TimeString("09:30").At(day, loc)

	// 23:50 UTC уже 19 ноября по афинскому времени
	assert.Equal(t, time.Date(2025, time.November, 19, 9, 30, 0, 0, loc), got)
}
