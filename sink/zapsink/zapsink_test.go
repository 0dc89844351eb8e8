package zapsink

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logger"
)

func TestSink(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	s := New(zap.New(obs))

	s.LogInfo(&core.Source{Name: "org.example.Widget"}, "hello")
	s.LogError(nil, "broken")
	s.LogErr(errors.New("disk full"))
	s.LogErr(nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, "org.example.Widget", entries[0].ContextMap()[SourceKey])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "broken", entries[1].Message)
	assert.NotContains(t, entries[1].ContextMap(), SourceKey)

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "disk full", entries[2].Message)
	assert.Equal(t, "disk full", entries[2].ContextMap()["error"])
}

func TestNew_NilLogger(t *testing.T) {
	t.Parallel()

	s := New(nil)
	assert.NotPanics(t, func() {
		s.LogInfo(nil, "dropped")
		_ = s.Close()
	})
}

func TestSink_ReportsLoggingCall(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	f := logger.NewBuilder().
		WithSink(New(zap.New(obs, zap.AddCaller()))).
		Build()
	l := f.Logger("org.example.Widget")

	var lines []int
	_, _, line, _ := runtime.Caller(0)
	l.Info("plain")
	lines = append(lines, line+1)
	_, _, line, _ = runtime.Caller(0)
	l.Infof("formatted {}", 1)
	lines = append(lines, line+1)
	_, _, line, _ = runtime.Caller(0)
	l.ErrorErr("failed", errors.New("disk full"))
	lines = append(lines, line+1, line+1)
	_, _, line, _ = runtime.Caller(0)
	l.LogErrf(core.WarnLevel, errors.New("timeout"), "retry {}", 2)
	lines = append(lines, line+1, line+1)

	entries := logs.AllUntimed()
	require.Len(t, entries, len(lines))
	for i, e := range entries {
		require.True(t, e.Caller.Defined, e.Message)
		assert.Equal(t, "zapsink_test.go", filepath.Base(e.Caller.File), e.Message)
		assert.Equal(t, lines[i], e.Caller.Line, e.Message)
	}
}
