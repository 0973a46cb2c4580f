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
		wantErr error
	}{
		{name: "morning", input: "08:00", want: "08:00"},
		{name: "trims spaces", input: " 09:15 ", want: "09:15"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "no leading zero", input: "8:00", wantErr: ErrInvalidTimeString},
		{name: "garbage", input: "ab:cd", wantErr: ErrInvalidTimeString},
		{name: "plus sign in hours", input: "+9:30", wantErr: ErrInvalidTimeString},
		{name: "minus sign in hours", input: "-1:00", wantErr: ErrInvalidTimeString},
		{name: "sign in minutes", input: "09:+5", wantErr: ErrInvalidTimeString},
		{name: "minutes overflow", input: "10:60", wantErr: ErrTimeOutOfRange},
		{name: "past end of day", input: "24:15", wantErr: ErrTimeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_MinutesRejectsSigns(t *testing.T) {
	for _, raw := range []TimeString{"+9:30", "-1:00", "1-:00", "09:-5"} {
		_, err := raw.Minutes()
		assert.ErrorIs(t, err, ErrInvalidTimeString, raw)
		assert.Error(t, raw.Validate(), raw)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:15").IsAfter("10:00"))

	diff, err := TimeString("10:15").DiffMinutes("09:00")
	require.NoError(t, err)
	assert.Equal(t, 75, diff)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("14:30:00")))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan("24:00:00"))
	assert.Equal(t, TimeString("24:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 7, 9, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 6, 7, 17, 0, 0, 0, time.UTC)
	got, err := TimeString("09:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 7, 9, 30, 0, 0, time.UTC), got)
}
