package slogadapter_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/bridgelog/adapter/slogadapter"
	"github.com/philipp01105/bridgelog/config"
	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logger"
	"github.com/philipp01105/bridgelog/sink/sinktest"
)

func newLogger(t *testing.T, level string) (*slog.Logger, *sinktest.Recorder) {
	t.Helper()

	store := config.Load(
		config.WithSystemLoader(config.DirLoader(nil)),
		config.WithOverrides(config.MapOverrides{
			"bridgelog.level":       level,
			"bridgelog.showLogName": "false",
		}),
	)
	rec := sinktest.New()
	f := logger.NewBuilder().WithStore(store).WithSink(rec).Build()
	return slog.New(slogadapter.New(f.Logger("slog"))), rec
}

func TestHandler_Gate(t *testing.T) {
	t.Parallel()

	log, rec := newLogger(t, "warn")
	ctx := context.Background()

	assert.False(t, log.Enabled(ctx, slog.LevelInfo))
	assert.True(t, log.Enabled(ctx, slog.LevelWarn))

	log.Info("dropped")
	log.Warn("kept")
	log.Error("failed")

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, sinktest.Info, calls[0].Kind)
	assert.Equal(t, "kept", calls[0].Message)
	assert.Equal(t, sinktest.Error, calls[1].Kind)
}

func TestHandler_Attrs(t *testing.T) {
	t.Parallel()

	log, rec := newLogger(t, "info")
	log.With("app", "setup").
		WithGroup("req").
		Info("done",
			"status", 200,
			"ok", true,
			"took", 1500*time.Millisecond,
			slog.Group("user", "name", "ada lovelace"),
			slog.Attr{},
		)

	assert.Equal(t, []string{`done app=setup req.status=200 req.ok=true req.took=1.5s req.user.name="ada lovelace"`}, rec.Messages())
}

func TestHandler_ErrorAttr(t *testing.T) {
	t.Parallel()

	log, rec := newLogger(t, "info")
	boom := errors.New("boom")
	log.Error("upload failed", "file", "a.txt", "err", boom, "again", errors.New("second"))

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "upload failed file=a.txt again=second", calls[0].Message)
	assert.Equal(t, sinktest.Err, calls[1].Kind)
	assert.Same(t, boom, calls[1].Err)
}

func TestHandler_MessageIsNotTemplated(t *testing.T) {
	t.Parallel()

	log, rec := newLogger(t, "info")
	log.Info("literal {}", "n", 1)

	assert.Equal(t, []string{"literal {} n=1"}, rec.Messages())
}

func TestLevelToCore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelInfo + 2, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slogadapter.LevelToCore(tt.in), tt.in.String())
	}
}
