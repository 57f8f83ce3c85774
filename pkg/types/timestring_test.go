package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "09:00", want: "09:00"},
		{name: "valid evening time", input: "21:30", want: "21:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "invalid hour", input: "24:00", wantErr: true},
		{name: "invalid minutes", input: "10:60", wantErr: true},
		{name: "missing leading zero accepted by parser", input: "9:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "add within hour", start: "09:00", minutes: 30, want: "09:30"},
		{name: "add across hour", start: "09:45", minutes: 30, want: "10:15"},
		{name: "add zero", start: "12:00", minutes: 0, want: "12:00"},
		{name: "subtract", start: "10:00", minutes: -60, want: "09:00"},
		{name: "overflow past midnight", start: "23:30", minutes: 60, wantErr: true},
		{name: "underflow before midnight", start: "00:30", minutes: -60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTimeOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
}

func TestTimeString_Sub(t *testing.T) {
	assert.Equal(t, 90, TimeString("10:30").Sub("09:00"))
	assert.Equal(t, -30, TimeString("09:00").Sub("09:30"))
	assert.Equal(t, 0, TimeString("09:00").Sub("09:00"))
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := TimeString("17:45")
	assert.Equal(t, 17, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("postgres time string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:30:00"))
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("21:15:00")))
		assert.Equal(t, TimeString("21:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 14, 5, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:05"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.Equal(t, TimeString(""), ts)
	})

	t.Run("invalid string", func(t *testing.T) {
		var ts TimeString
		require.Error(t, ts.Scan("not-a-time"))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("99:99").Value()
	require.Error(t, err)
}
