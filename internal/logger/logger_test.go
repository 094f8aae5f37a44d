package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input         string
		expected      zapcore.Level
		expectedError bool
	}{
		{input: "debug", expected: zapcore.DebugLevel},
		{input: "INFO", expected: zapcore.InfoLevel},
		{input: "", expected: zapcore.InfoLevel},
		{input: "warning", expected: zapcore.WarnLevel},
		{input: "error", expected: zapcore.ErrorLevel},
		{input: "loud", expected: zapcore.InfoLevel, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lvl, err := parseLevel(tt.input)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, lvl)
		})
	}
}

func TestInit(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	assert.NoError(t, Init("debug"))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, Init("verbose"))
}
