package ui

import (
	"strings"
	"testing"
)

func TestNewEditors(t *testing.T) {
	editors := NewEditors()

	if editors == nil {
		t.Fatal("NewEditors() returned nil")
	}

	if editors.Focused() != PaneHTML {
		t.Errorf("Expected HTML pane focused initially, got %d", editors.Focused())
	}

	if editors.HTML() != "" {
		t.Error("Expected empty HTML buffer initially")
	}

	if editors.CSS() != "" {
		t.Error("Expected empty CSS buffer initially")
	}
}

func TestEditors_SetSize_SplitsWidth(t *testing.T) {
	editors := NewEditors()

	editors.SetSize(101, 30, 50)

	// 101 - 1 divider = 100 usable, split 50/50
	if editors.htmlWidth != 50 {
		t.Errorf("Expected HTML width 50, got %d", editors.htmlWidth)
	}
	if editors.cssWidth != 50 {
		t.Errorf("Expected CSS width 50, got %d", editors.cssWidth)
	}
}

func TestEditors_SetSize_UnevenSplit(t *testing.T) {
	editors := NewEditors()

	editors.SetSize(101, 30, 70)

	if editors.htmlWidth != 70 {
		t.Errorf("Expected HTML width 70, got %d", editors.htmlWidth)
	}
	if editors.cssWidth != 30 {
		t.Errorf("Expected CSS width 30, got %d", editors.cssWidth)
	}
}

func TestEditors_SetSize_TinyWidth(t *testing.T) {
	editors := NewEditors()

	// Must not panic or go non-positive
	editors.SetSize(3, 5, 50)

	if editors.htmlWidth < 1 {
		t.Errorf("Expected HTML width at least 1, got %d", editors.htmlWidth)
	}
	if editors.cssWidth < 1 {
		t.Errorf("Expected CSS width at least 1, got %d", editors.cssWidth)
	}
}

func TestEditors_DividerX(t *testing.T) {
	editors := NewEditors()

	editors.SetSize(101, 30, 50)

	if editors.DividerX() != editors.htmlWidth {
		t.Errorf("Expected divider at %d, got %d", editors.htmlWidth, editors.DividerX())
	}
}

func TestEditors_Focus(t *testing.T) {
	editors := NewEditors()

	editors.Focus(PaneCSS)
	if editors.Focused() != PaneCSS {
		t.Errorf("Expected CSS pane focused, got %d", editors.Focused())
	}

	editors.Focus(PaneHTML)
	if editors.Focused() != PaneHTML {
		t.Errorf("Expected HTML pane focused, got %d", editors.Focused())
	}

	editors.Focus(PaneNone)
	if editors.Focused() != PaneNone {
		t.Errorf("Expected no pane focused, got %d", editors.Focused())
	}
}

func TestEditors_SetAndGetBuffers(t *testing.T) {
	editors := NewEditors()

	editors.SetHTML("<p>hello</p>")
	editors.SetCSS("p { color: red; }")

	if editors.HTML() != "<p>hello</p>" {
		t.Errorf("Expected HTML buffer to round-trip, got %q", editors.HTML())
	}
	if editors.CSS() != "p { color: red; }" {
		t.Errorf("Expected CSS buffer to round-trip, got %q", editors.CSS())
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		value    string
		expected int
	}{
		{"", 0},
		{"one", 1},
		{"one\ntwo", 2},
		{"one\ntwo\n", 3},
	}

	for _, tt := range tests {
		if got := lineCount(tt.value); got != tt.expected {
			t.Errorf("lineCount(%q) = %d, want %d", tt.value, got, tt.expected)
		}
	}
}

func TestEditors_View_ContainsTitles(t *testing.T) {
	editors := NewEditors()
	editors.SetSize(101, 20, 50)
	editors.SetHTML("<p>a</p>")

	view := stripANSI(editors.View(false))

	if !strings.Contains(view, "HTML") {
		t.Error("Expected view to contain the HTML pane title")
	}
	if !strings.Contains(view, "CSS") {
		t.Error("Expected view to contain the CSS pane title")
	}
	if !strings.Contains(view, "1 line") {
		t.Errorf("Expected view to contain the HTML line count, got: %q", view)
	}
	if !strings.Contains(view, "0 lines") {
		t.Errorf("Expected view to contain the CSS line count, got: %q", view)
	}
}

func TestEditors_View_DividerColumn(t *testing.T) {
	editors := NewEditors()
	editors.SetSize(101, 20, 50)

	view := stripANSI(editors.View(false))

	if !strings.Contains(view, "│") {
		t.Error("Expected view to contain the divider column")
	}
}
