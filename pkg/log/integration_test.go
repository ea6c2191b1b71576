package log

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerInterface tests the Logger interface implementation
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", "operation", "test")
	testLogger.Warn("warning message", "warning_code", "TEST_WARNING")
	testLogger.Error("error message", fmt.Errorf("test error"), ErrorCodeKey, ErrorConvergence)

	require.NotEmpty(t, buffer.String())

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		assert.True(t, testLogger.ContainsMessage(msg), "message %q not captured", msg)
	}

	assert.True(t, testLogger.ContainsField("key1", "value1"))
	// JSON unmarshaling converts numbers to float64
	assert.True(t, testLogger.ContainsField("number", 42.0))
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "test error"))
	assert.True(t, testLogger.ContainsField(ErrorCodeKey, ErrorConvergence))
}

// TestLoggerWith tests the With method for context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ModelNameKey, "GradientDescent",
		ComponentKey, "linear",
	)
	contextLogger.Info("fit started", OperationKey, OperationFit)

	assert.True(t, testLogger.ContainsField(ModelNameKey, "GradientDescent"))
	assert.True(t, testLogger.ContainsField(ComponentKey, "linear"))
	assert.True(t, testLogger.ContainsField(OperationKey, OperationFit))

	// the parent logger is unchanged
	testLogger.Clear()
	testLogger.Info("plain")
	assert.False(t, testLogger.ContainsField(ModelNameKey, "GradientDescent"))
}

// TestLogLevels tests level filtering
func TestLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		debugSeen bool
		infoSeen  bool
		warnSeen  bool
	}{
		{"debug", LevelDebug, true, true, true},
		{"info", LevelInfo, false, true, true},
		{"warn", LevelWarn, false, false, true},
		{"error", LevelError, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLogger, _ := NewTestLogger(tt.level)
			testLogger.Debug("debug")
			testLogger.Info("info")
			testLogger.Warn("warn")
			testLogger.Error("boom")

			assert.Equal(t, tt.debugSeen, testLogger.ContainsMessage(`"debug"`))
			assert.Equal(t, tt.infoSeen, testLogger.ContainsMessage(`"info"`))
			assert.Equal(t, tt.warnSeen, testLogger.ContainsMessage(`"warn"`))
			assert.True(t, testLogger.ContainsMessage("boom"))
		})
	}
}

func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelWarn)
	ctx := context.Background()

	assert.False(t, testLogger.Enabled(ctx, LevelDebug))
	assert.False(t, testLogger.Enabled(ctx, LevelInfo))
	assert.True(t, testLogger.Enabled(ctx, LevelWarn))
	assert.True(t, testLogger.Enabled(ctx, LevelError))
}

// TestFitLoggingPattern exercises the records a gradient-descent fit emits.
func TestFitLoggingPattern(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	modelLogger := testLogger.With(ModelNameKey, "GradientDescent", ComponentKey, "linear")
	modelLogger.Debug("fit started",
		OperationKey, OperationFit,
		SamplesKey, 6,
		LearningRateKey, 0.01,
		TerminationKey, "exact_plateau",
	)
	modelLogger.Debug("fit finished",
		OperationKey, OperationFit,
		IterationKey, 1200,
		CostKey, 0.0,
		InterceptKey, 3.0,
		SlopeKey, 2.0,
		DurationMsKey, 4,
	)

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "fit started", entries[0]["message"])
	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, 6.0, entries[0][SamplesKey])
	assert.Equal(t, "exact_plateau", entries[0][TerminationKey])

	assert.Equal(t, 1200.0, entries[1][IterationKey])
	assert.Equal(t, 3.0, entries[1][InterceptKey])
	assert.Equal(t, "GradientDescent", entries[1][ModelNameKey])
}

func TestTestLoggerProvider(t *testing.T) {
	provider, logger := NewTestLoggerProvider(LevelInfo)

	provider.GetLoggerWithName("metrics").Info("report built")
	assert.True(t, logger.ContainsField(ComponentKey, "metrics"))

	provider.SetLevel(LevelError)
	provider.GetLogger().Info("suppressed")
	assert.False(t, logger.ContainsMessage("suppressed"))
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}
