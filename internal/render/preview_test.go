package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"cityforge/internal/city"
)

// TestPreviewFrame checks the frame has one line per cell row, ends with
// the status line and paints a building over the background.
func TestPreviewFrame(t *testing.T) {
	plan := city.Plan{
		Buildings: []city.Building{{X: 0, Y: 0, Width: 400, Height: 300, Category: "residential", Floors: 2, Alpha: 1}},
	}

	frame := Preview(plan, 800, 600, 20, 11, "status")
	if frame == "" {
		t.Fatal("empty frame")
	}
	if !strings.HasSuffix(frame, "status") {
		t.Error("frame does not end with the status line")
	}
	if got := strings.Count(frame, "\r\n"); got != 10 {
		t.Errorf("frame has %d cell rows, want 10", got)
	}
	if !strings.ContainsRune(frame, '#') {
		t.Error("building glyph missing from frame")
	}
}

// TestPreviewStatusTruncated keeps an overlong status inside the terminal
// width without splitting a multi-byte rune.
func TestPreviewStatusTruncated(t *testing.T) {
	frame := Preview(city.Plan{}, 800, 600, 5, 3, "a very long status line")
	if !strings.HasSuffix(frame, "a ver") {
		t.Errorf("status not truncated to width: %q", frame[len(frame)-10:])
	}

	frame = Preview(city.Plan{}, 800, 600, 5, 3, "ws 1 × état détaillé")
	if !utf8.ValidString(frame) {
		t.Error("truncation produced invalid UTF-8")
	}
	if !strings.HasSuffix(frame, "ws 1 ") {
		t.Errorf("status truncated to %q, want first 5 runes", frame[len(frame)-8:])
	}
}

// TestPreviewDegenerateSize returns nothing rather than panicking on a
// terminal too small to draw.
func TestPreviewDegenerateSize(t *testing.T) {
	if got := Preview(city.Plan{}, 800, 600, 0, 1, "s"); got != "" {
		t.Errorf("want empty frame for zero-width terminal, got %d bytes", len(got))
	}
	if got := Preview(city.Plan{}, 800, 600, 10, 1, "s"); got != "" {
		t.Errorf("want empty frame when only the status row fits, got %d bytes", len(got))
	}
}

// TestPreviewTallBuildingGlyph uses the high-rise glyph at 5 floors and up.
func TestPreviewTallBuildingGlyph(t *testing.T) {
	plan := city.Plan{
		Buildings: []city.Building{{X: 0, Y: 0, Width: 800, Height: 600, Category: "commercial", Floors: 6, Alpha: 1}},
	}
	frame := Preview(plan, 800, 600, 10, 5, "")
	if !strings.ContainsRune(frame, 'H') {
		t.Error("high-rise glyph missing")
	}
	if strings.ContainsRune(frame, '#') {
		t.Error("low-rise glyph should not appear for a 6-floor building")
	}
}
