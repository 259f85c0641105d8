package drawing

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	a := NewColorAllocator(&seqSource{vals: []int{1, 1, 2}})
	for range 2 {
		if _, err := a.Allocate(); err != nil {
			t.Fatal(err)
		}
	}
	if !strings.Contains(buf.String(), "color collision") {
		t.Errorf("collision not logged, output: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) did not disable logging")
	}
}
