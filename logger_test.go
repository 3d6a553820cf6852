package canvas

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("WithAttrs didn't return a nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("WithGroup didn't return a nopHandler")
	}
}

// captureLogs installs a debug logger writing to the returned buffer for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) didn't restore the silent logger")
	}
}

func TestDiagnosticsLogged(t *testing.T) {
	buf := captureLogs(t)

	DrawDDA(Pt(1, 1), Pt(1, 1), nil)
	DrawBresenham(Pt(0, 0), Pt(4, 4), nil)
	if _, err := Ellipse(Pt(0, 0), 1, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := DiscoverPolygons([]Segment{bottom, right, diagonal}); err != nil {
		t.Fatal(err)
	}
	NewCube(2, 0, 0, 0).VisibleFaces(DefaultViewDirection)

	out := buf.String()
	for _, msg := range []string{
		"refusing to draw degenerate line",
		"delegating aligned line to DDA",
		"skipping tiny ellipse",
		"discovered polygons",
		"culling cube face",
	} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output doesn't contain %q:\n%s", msg, out)
		}
	}
}
