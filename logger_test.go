package mosaic

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	s := newTestSearch(1, 21)
	s.CheckpointInterval = 10
	if _, err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "msg=checkpoint"); n != 3 {
		t.Errorf("%d checkpoint records, want 3:\n%s", n, buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
