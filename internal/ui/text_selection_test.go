package ui

import (
	"testing"
)

// =============================================================================
// StartSelection / EndSelection / SelectionStop / SelectionClear
// =============================================================================

func TestStartSelection(t *testing.T) {
	p := newTestPopup()
	p.StartSelection(5, 10)

	if p.selectionStartCol != 5 || p.selectionStartLine != 10 {
		t.Errorf("start position wrong: got (%d, %d)", p.selectionStartCol, p.selectionStartLine)
	}
	if p.selectionEndCol != 5 || p.selectionEndLine != 10 {
		t.Errorf("end position should match start: got (%d, %d)", p.selectionEndCol, p.selectionEndLine)
	}
	if !p.selectionActive {
		t.Error("expected selectionActive=true after StartSelection")
	}
}

func TestEndSelection(t *testing.T) {
	p := newTestPopup()
	p.StartSelection(5, 10)
	p.EndSelection(20, 12)

	if p.selectionEndCol != 20 || p.selectionEndLine != 12 {
		t.Errorf("end position wrong: got (%d, %d)", p.selectionEndCol, p.selectionEndLine)
	}
	if !p.selectionActive {
		t.Error("expected selectionActive=true during drag")
	}
}

func TestEndSelection_InactiveIsNoop(t *testing.T) {
	p := newTestPopup()
	// Don't start selection
	p.EndSelection(20, 12)

	// Should remain at the cleared values
	if p.selectionEndCol != -1 || p.selectionEndLine != -1 {
		t.Errorf("expected no change when inactive, got (%d, %d)", p.selectionEndCol, p.selectionEndLine)
	}
}

func TestSelectionStop(t *testing.T) {
	p := newTestPopup()
	p.StartSelection(5, 10)
	p.EndSelection(20, 12)
	p.SelectionStop()

	if p.selectionActive {
		t.Error("expected selectionActive=false after SelectionStop")
	}
	// Positions should be preserved
	if p.selectionStartCol != 5 || p.selectionEndCol != 20 {
		t.Error("positions should be preserved after SelectionStop")
	}
}

func TestSelectionClear(t *testing.T) {
	p := newTestPopup()
	p.StartSelection(5, 10)
	p.EndSelection(20, 12)
	p.SelectionClear()

	if p.selectionActive {
		t.Error("expected selectionActive=false after SelectionClear")
	}
	if p.selectionStartCol != -1 || p.selectionStartLine != -1 {
		t.Error("start should be (-1, -1) after clear")
	}
	if p.selectionEndCol != -1 || p.selectionEndLine != -1 {
		t.Error("end should be (-1, -1) after clear")
	}
}

// =============================================================================
// HasTextSelection
// =============================================================================

func TestHasTextSelection(t *testing.T) {
	tests := []struct {
		name                                 string
		startCol, startLine, endCol, endLine int
		want                                 bool
	}{
		{"no selection (default)", -1, -1, -1, -1, false},
		{"same point", 5, 5, 5, 5, false},
		{"different column same line", 5, 5, 10, 5, true},
		{"different line", 5, 5, 5, 6, true},
		{"full range", 0, 0, 20, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPopup()
			p.selectionStartCol = tt.startCol
			p.selectionStartLine = tt.startLine
			p.selectionEndCol = tt.endCol
			p.selectionEndLine = tt.endLine
			got := p.HasTextSelection()
			if got != tt.want {
				t.Errorf("HasTextSelection() = %v, want %v", got, tt.want)
			}
		})
	}
}

// =============================================================================
// selectionArea (normalization)
// =============================================================================

func TestSelectionArea_NormalizesForwardSelection(t *testing.T) {
	p := newTestPopup()
	p.selectionStartCol = 5
	p.selectionStartLine = 2
	p.selectionEndCol = 15
	p.selectionEndLine = 4

	startCol, startLine, endCol, endLine := p.selectionArea()
	if startCol != 5 || startLine != 2 || endCol != 15 || endLine != 4 {
		t.Errorf("forward selection should be unchanged: got (%d,%d)-(%d,%d)",
			startCol, startLine, endCol, endLine)
	}
}

func TestSelectionArea_NormalizesBackwardSelection(t *testing.T) {
	p := newTestPopup()
	// Drag from bottom to top
	p.selectionStartCol = 15
	p.selectionStartLine = 4
	p.selectionEndCol = 5
	p.selectionEndLine = 2

	startCol, startLine, endCol, endLine := p.selectionArea()
	if startCol != 5 || startLine != 2 || endCol != 15 || endLine != 4 {
		t.Errorf("backward selection should be normalized: got (%d,%d)-(%d,%d)",
			startCol, startLine, endCol, endLine)
	}
}

func TestSelectionArea_NormalizesSameLineBackward(t *testing.T) {
	p := newTestPopup()
	p.selectionStartCol = 20
	p.selectionStartLine = 5
	p.selectionEndCol = 3
	p.selectionEndLine = 5

	startCol, startLine, endCol, endLine := p.selectionArea()
	if startCol != 3 || endCol != 20 || startLine != 5 || endLine != 5 {
		t.Errorf("same-line backward should swap columns: got (%d,%d)-(%d,%d)",
			startCol, startLine, endCol, endLine)
	}
}

// =============================================================================
// GetSelectedText
// =============================================================================

func TestGetSelectedText_NoSelection(t *testing.T) {
	p := newTestPopup()
	text := p.GetSelectedText()
	if text != "" {
		t.Errorf("expected empty string, got %q", text)
	}
}

func TestGetSelectedText_SingleLine(t *testing.T) {
	p := newTestPopup()
	p.viewport.SetContent("hello world\nsecond line")

	p.selectionStartCol = 0
	p.selectionStartLine = 0
	p.selectionEndCol = 5
	p.selectionEndLine = 0

	text := p.GetSelectedText()
	if text != "hello" {
		t.Errorf("expected 'hello', got %q", text)
	}
}

// =============================================================================
// handleMouseClick (click counting)
// =============================================================================

func TestHandleMouseClick_SingleClick(t *testing.T) {
	p := newTestPopup()
	p.handleMouseClick(5, 3)

	if p.clickCount != 1 {
		t.Errorf("expected clickCount=1, got %d", p.clickCount)
	}
	if !p.selectionActive {
		t.Error("expected selectionActive=true after single click")
	}
}

func TestHandleMouseClick_ResetOnDistantClick(t *testing.T) {
	p := newTestPopup()
	p.handleMouseClick(5, 3)

	// Click far away - should reset count
	p.handleMouseClick(50, 20)

	if p.clickCount != 1 {
		t.Errorf("expected clickCount=1 after distant click, got %d", p.clickCount)
	}
}

// =============================================================================
// abs helper
// =============================================================================

func TestAbsHelper(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{-1, 1},
		{1, 1},
	}

	for _, tt := range tests {
		got := abs(tt.input)
		if got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// =============================================================================
// SelectWord / SelectParagraph edge cases
// =============================================================================

func TestSelectWord_OutOfBounds(t *testing.T) {
	p := newTestPopup()
	// Selecting word at negative coords should be a no-op
	p.SelectWord(-1, -1)
	if p.selectionActive {
		t.Error("expected no selection on out-of-bounds")
	}
}

func TestSelectParagraph_OutOfBounds(t *testing.T) {
	p := newTestPopup()
	p.SelectParagraph(0, -1)
	// Should be a no-op for out of bounds line
	if p.selectionActive {
		t.Error("expected no selection on out-of-bounds")
	}
}

// =============================================================================
// CopySelectedText with no selection
// =============================================================================

func TestCopySelectedText_NoSelection(t *testing.T) {
	p := newTestPopup()
	cmd := p.CopySelectedText()
	if cmd != nil {
		t.Error("expected nil cmd when no selection")
	}
}

// =============================================================================
// Regression: negative EndLine causing index out of range panic
// =============================================================================

func TestGetSelectedText_NegativeEndLine_NoPanic(t *testing.T) {
	p := newTestPopup()
	// Simulate: valid start position but negative end position
	// This can happen when dragging onto the popup border (mouse Y=0, adjusted to -1)
	p.selectionStartCol = 5
	p.selectionStartLine = 0
	p.selectionEndCol = 0
	p.selectionEndLine = -1

	// HasTextSelection returns true because StartCol >= 0 && StartLine >= 0
	// and (EndCol != StartCol || EndLine != StartLine)
	if !p.HasTextSelection() {
		t.Fatal("expected HasTextSelection=true for this edge case")
	}

	// This should not panic (previously caused: index out of range [-1])
	text := p.GetSelectedText()
	_ = text
}

func TestSelectionView_NegativeEndLine_NoPanic(t *testing.T) {
	p := newTestPopup()
	p.selectionStartCol = 5
	p.selectionStartLine = 0
	p.selectionEndCol = 0
	p.selectionEndLine = -1

	// Should not panic when rendering selection with negative coordinates
	view := p.selectionView("hello\nworld\n")
	_ = view
}
