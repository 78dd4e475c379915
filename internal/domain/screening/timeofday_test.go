package screening

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "midnight", input: "00:00", wantHour: 0, wantMinute: 0},
		{name: "morning", input: "09:00", wantHour: 9, wantMinute: 0},
		{name: "end of day", input: "23:59", wantHour: 23, wantMinute: 59},
		{name: "afternoon", input: "17:30", wantHour: 17, wantMinute: 30},
		{name: "missing zero padding", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "negative", input: "-1:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "trailing text", input: "12:00pm", wantErr: true},
		{name: "whitespace", input: " 12:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, got.Hour())
			assert.Equal(t, tt.wantMinute, got.Minute())
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestNewTimeOfDay(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		got, err := NewTimeOfDay(23, 59)
		require.NoError(t, err)
		assert.Equal(t, "23:59", got.String())
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := NewTimeOfDay(24, 0)
		assert.Error(t, err)
	})

	t.Run("minute out of range", func(t *testing.T) {
		_, err := NewTimeOfDay(12, 60)
		assert.Error(t, err)
	})
}

func TestTimeOfDay_MinutesSinceMidnight(t *testing.T) {
	assert.Equal(t, 0, MustParseTimeOfDay("00:00").MinutesSinceMidnight())
	assert.Equal(t, 540, MustParseTimeOfDay("09:00").MinutesSinceMidnight())
	assert.Equal(t, 1439, MustParseTimeOfDay("23:59").MinutesSinceMidnight())
}

func TestTimeOfDayFrom(t *testing.T) {
	ts := time.Date(2025, 6, 15, 22, 45, 59, 0, time.UTC)
	got := TimeOfDayFrom(ts)
	assert.Equal(t, "22:45", got.String())
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
	original := MustParseTimeOfDay("07:05")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(data))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded))
}

func TestTimeOfDay_UnmarshalRejectsMalformed(t *testing.T) {
	var decoded TimeOfDay
	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`42`), &decoded))
}
