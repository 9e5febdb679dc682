package chess

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteSVGProducesWellFormedDocument(t *testing.T) {
	pos := NewPosition(Orthodox, 1)
	var buf bytes.Buffer
	pos.WriteSVG(&buf)

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("expected an <svg> root element, got: %s", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a closing </svg>, got: %s", out)
	}
	if strings.Count(out, "<rect") != 64 {
		t.Fatalf("expected 64 square rects, got %d", strings.Count(out, "<rect"))
	}
	if strings.Count(out, "<text") != 32 {
		t.Fatalf("expected 32 piece labels on a fresh board, got %d", strings.Count(out, "<text"))
	}
}

func TestWriteSVGEmptyBoardHasNoLabels(t *testing.T) {
	pos := NewPosition(Orthodox, 1)
	for _, p := range allPieces {
		pos.setBB(p, 0)
	}
	var buf bytes.Buffer
	pos.WriteSVG(&buf)

	if strings.Count(buf.String(), "<text") != 0 {
		t.Fatalf("expected no piece labels on an empty board")
	}
}
