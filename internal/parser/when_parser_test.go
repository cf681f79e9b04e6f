package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampAbsolute(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-12-15 18:30", time.Date(2024, 12, 15, 18, 30, 0, 0, time.Local)},
		{"2024-12-15 18:30:45", time.Date(2024, 12, 15, 18, 30, 45, 0, time.Local)},
		{"15/12/2024 18:30", time.Date(2024, 12, 15, 18, 30, 0, 0, time.Local)},
		{"  2024-01-02 07:05  ", time.Date(2024, 1, 2, 7, 5, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseTimestampRelativeDay(t *testing.T) {
	now := time.Now()

	got, err := ParseTimestamp("today 14:00")
	require.NoError(t, err)
	assert.Equal(t, now.Year(), got.Year())
	assert.Equal(t, now.Day(), got.Day())
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 0, got.Minute())

	got, err = ParseTimestamp("yesterday 09:15")
	require.NoError(t, err)
	yesterday := now.AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Day(), got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 15, got.Minute())

	got, err = ParseTimestamp("9:15")
	require.NoError(t, err)
	assert.Equal(t, now.Day(), got.Day())
	assert.Equal(t, 9, got.Hour())
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "banana", "2024-13-40 99:99", "tomorrow 10:00", "12/15/2024 18:30"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimestamp(input)
			assert.Error(t, err)
		})
	}
}
