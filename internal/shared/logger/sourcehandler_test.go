package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger(buf *bytes.Buffer, minSource slog.Level) Interface {
	base := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewLoggerWithSlog(slog.New(newSourceHandler(base, minSource)))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestSourceHandler_AttachesSourceAtOrAboveMinLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newCaptureLogger(&buf, slog.LevelWarn)

	log.Infow("ticket created", "ticket_id", 1)
	log.Warnw("mailbox slow", "seconds", 3)
	log.Error("send failed")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 3)

	assert.NotContains(t, recs[0], slog.SourceKey)
	for _, rec := range recs[1:] {
		src, ok := rec[slog.SourceKey].(map[string]any)
		require.True(t, ok, "source missing in %v", rec)
		assert.True(t, strings.HasSuffix(src["file"].(string), "sourcehandler_test.go"),
			"source should point at the caller, got %v", src["file"])
	}
}

func TestSourceHandler_DebugModeAttachesEverywhere(t *testing.T) {
	var buf bytes.Buffer
	log := newCaptureLogger(&buf, slog.LevelDebug)

	log.Debug("classifying")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], slog.SourceKey)
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	sl := slog.New(newSourceHandler(base, slog.LevelError)).With("component", "poller").WithGroup("mail")
	NewLoggerWithSlog(sl).Infow("fetched", "count", 2)

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "poller", recs[0]["component"])
	group, ok := recs[0]["mail"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, group["count"])
}

func TestWith_AddsFields(t *testing.T) {
	var buf bytes.Buffer
	log := newCaptureLogger(&buf, slog.LevelError).With("ticket_id", int64(7))

	log.Info("escalated")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.EqualValues(t, 7, recs[0]["ticket_id"])
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	log := NewNopLogger()
	assert.NotPanics(t, func() {
		log.Errorw("ignored", "k", "v")
		log.With("a", 1).Debug("ignored")
	})
}
