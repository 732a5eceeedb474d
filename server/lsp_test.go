package server

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ---------------------------------------------------------------------------
// Text position helpers
// ---------------------------------------------------------------------------

func TestOffsetAt(t *testing.T) {
	text := "1 +\n  ¢foo\nx"
	tests := []struct {
		line, char protocol.UInteger
		want       int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{0, 99, 3},
		{1, 0, 4},
		{1, 3, 8},
		{2, 0, 12},
		{9, 0, len(text)},
	}
	for _, tt := range tests {
		got := offsetAt(text, protocol.Position{Line: tt.line, Character: tt.char})
		if got != tt.want {
			t.Errorf("offsetAt(%d:%d) = %d, want %d", tt.line, tt.char, got, tt.want)
		}
	}
}

func TestExtractPrefix(t *testing.T) {
	tests := []struct {
		text string
		pos  protocol.Position
		want string
	}{
		{"tru", protocol.Position{Line: 0, Character: 3}, "tru"},
		{"1 + nu", protocol.Position{Line: 0, Character: 6}, "nu"},
		{"first\nsecond fa", protocol.Position{Line: 1, Character: 9}, "fa"},
		{"hello", protocol.Position{Line: 0, Character: 0}, ""},
		{"x.ge", protocol.Position{Line: 0, Character: 4}, "ge"},
		{"", protocol.Position{Line: 0, Character: 0}, ""},
	}
	for _, tt := range tests {
		if got := extractPrefix(tt.text, tt.pos); got != tt.want {
			t.Errorf("extractPrefix(%q, %v) = %q, want %q", tt.text, tt.pos, got, tt.want)
		}
	}
}

func TestAfterPeriod(t *testing.T) {
	if !afterPeriod("{}.ge", protocol.Position{Line: 0, Character: 5}) {
		t.Error("afterPeriod({}.ge) = false")
	}
	if afterPeriod("1 + ge", protocol.Position{Line: 0, Character: 6}) {
		t.Error("afterPeriod(1 + ge) = true")
	}
}

// ---------------------------------------------------------------------------
// Language features
// ---------------------------------------------------------------------------

func TestComplete(t *testing.T) {
	items := complete("t", false)
	if len(items) != 1 || items[0].Label != "true" {
		t.Errorf("complete(t) = %+v, want [true]", items)
	}
	if items := complete("", false); len(items) != 0 {
		t.Errorf("complete(\"\") returned %d items", len(items))
	}
	if items := complete("l", false); len(items) != 1 || items[0].Label != "let" {
		t.Errorf("complete(l) = %+v", items)
	}
	if items := complete("g", true); len(items) != 1 || items[0].Label != "get" {
		t.Errorf("complete(g, member) = %+v", items)
	}
	if items := complete("x", true); len(items) != 0 {
		t.Errorf("complete(x, member) = %+v", items)
	}
}

func TestDiagnostics(t *testing.T) {
	s := NewLSP(0)

	if d := s.diagnostics("1 + 2"); len(d) != 0 {
		t.Errorf("diagnostics(valid) = %+v", d)
	}

	d := s.diagnostics("1 +\n  (2")
	if len(d) != 1 {
		t.Fatalf("diagnostics(invalid) = %+v, want one", d)
	}
	if d[0].Range.Start.Line != 1 || d[0].Range.Start.Character != 4 {
		t.Errorf("range start = %+v, want 1:4", d[0].Range.Start)
	}
	if !strings.Contains(d[0].Message, "expected ), got EOF") {
		t.Errorf("message = %q", d[0].Message)
	}
	if *d[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v", *d[0].Severity)
	}
}

func TestDiagnosticsDepth(t *testing.T) {
	s := NewLSP(4)
	if d := s.diagnostics("((((((1))))))"); len(d) != 1 {
		t.Errorf("diagnostics(deep) = %+v, want one", d)
	}
}

func TestHover(t *testing.T) {
	s := NewLSP(0)
	text := "1 + 2 * 3"

	h := s.hover(text, strings.Index(text, "2"))
	if h == nil {
		t.Fatal("hover on literal returned nil")
	}
	value := h.Contents.(protocol.MarkupContent).Value
	if !strings.Contains(value, "= `Ok(2)`") {
		t.Errorf("hover on 2 = %q", value)
	}

	h = s.hover(text, strings.Index(text, "*"))
	value = h.Contents.(protocol.MarkupContent).Value
	if !strings.Contains(value, "(* 2 3)") || !strings.Contains(value, "Ok(6)") || !strings.Contains(value, "MUL") {
		t.Errorf("hover on * = %q", value)
	}
	if h.Range.Start.Character != 4 || h.Range.End.Character != 9 {
		t.Errorf("hover range = %+v", h.Range)
	}

	if h := s.hover("1 +", 0); h != nil {
		t.Errorf("hover on invalid document = %+v", h)
	}
}
