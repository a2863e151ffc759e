package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		wantErr bool
	}{
		{name: "valid morning", value: "08:00"},
		{name: "valid evening", value: "23:59"},
		{name: "empty", value: "", wantErr: true},
		{name: "single digit hour", value: "8:00", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "garbage", value: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("16:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 16*60+30, m)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("08:45").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("16:00"))
	assert.False(t, TimeString("16:00").IsBefore("16:00"))
	assert.True(t, TimeString("16:01").IsAfter("16:00"))
}

func TestNewTimeString(t *testing.T) {
	at := time.Date(2025, 3, 3, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(at))
}
