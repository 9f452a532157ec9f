package app

import (
	"testing"

	"github.com/tagmend/tagmend/internal/keys"
)

func TestMouse_DividerDragResizesEditors(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	dividerX := m.editors.DividerX()
	if dividerX <= 0 {
		t.Fatalf("divider at %d, want a positive column", dividerX)
	}

	m = sendMouse(m, mouseClick(dividerX, 10))
	if !m.resizer.Dragging() {
		t.Fatal("expected a click on the divider to arm the drag")
	}

	m = sendMouse(m, mouseMotion(80, 10))
	want := 80 * 100 / m.editorsWidth()
	if got := m.resizer.Position(); got != want {
		t.Errorf("split = %d after dragging to column 80, want %d", got, want)
	}

	m = sendMouse(m, mouseRelease(80, 10))
	if m.resizer.Dragging() {
		t.Error("expected release to end the drag")
	}
}

func TestMouse_DragClampsToSplitRange(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = sendMouse(m, mouseClick(m.editors.DividerX(), 10))
	m = sendMouse(m, mouseMotion(0, 10))
	if got := m.resizer.Position(); got != 15 {
		t.Errorf("split = %d at the left edge, want the 15 floor", got)
	}

	m = sendMouse(m, mouseMotion(m.editorsWidth()+20, 10))
	if got := m.resizer.Position(); got != 85 {
		t.Errorf("split = %d past the right edge, want the 85 ceiling", got)
	}
}

func TestMouse_ClickOffDividerDoesNotDrag(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = sendMouse(m, mouseClick(5, 10))
	if m.resizer.Dragging() {
		t.Error("a click away from the divider must not arm the drag")
	}
}

func TestMouse_ClickOutsideContentRowsIgnored(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	// The header row and the chat bar rows are not drag targets
	m = sendMouse(m, mouseClick(m.editors.DividerX(), 0))
	if m.resizer.Dragging() {
		t.Error("a click on the header row must not arm the drag")
	}
	m = sendMouse(m, mouseClick(m.editors.DividerX(), 38))
	if m.resizer.Dragging() {
		t.Error("a click on the chat bar must not arm the drag")
	}
}

func TestMouse_HoverExpandsPreviewStrip(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	// Collapsed strips sit at the right edge: preview at 114-116, log at
	// 117-119
	m = sendMouse(m, mouseMotion(115, 10))
	if !m.previewExp.Expanded() {
		t.Fatal("expected hover over the preview strip to expand it")
	}
	if m.logExp.Expanded() {
		t.Error("the log panel must stay collapsed")
	}

	m = sendMouse(m, mouseMotion(50, 10))
	if m.previewExp.Expanded() {
		t.Error("expected the preview to collapse when the pointer leaves")
	}
}

func TestMouse_HoverExpandsLogStrip(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = sendMouse(m, mouseMotion(118, 10))
	if !m.logExp.Expanded() {
		t.Fatal("expected hover over the log strip to expand it")
	}
	if m.previewExp.Expanded() {
		t.Error("the preview panel must stay collapsed")
	}

	m = sendMouse(m, mouseMotion(118, 0))
	if m.logExp.Expanded() {
		t.Error("hover outside the content rows must collapse the log")
	}
}

func TestMouse_PinnedPreviewSurvivesHoverLeave(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = sendKey(m, keys.CtrlP)
	if !m.previewExp.Expanded() {
		t.Fatal("expected the pinned preview to be expanded")
	}

	m = sendMouse(m, mouseMotion(10, 10))
	if !m.previewExp.Expanded() {
		t.Error("a pinned preview must not collapse on hover leave")
	}
}

func TestMouse_DragIgnoresStripHover(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = sendMouse(m, mouseClick(m.editors.DividerX(), 10))
	m = sendMouse(m, mouseMotion(115, 10))

	if m.previewExp.Expanded() {
		t.Error("hover must not expand panels mid-drag")
	}
	if !m.resizer.Dragging() {
		t.Error("the drag must survive crossing the strip region")
	}
}

func TestMouse_PopupOwnsAllMouseEvents(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m = focusChat(m)
	m = typeText(m, "q")
	m = sendKey(m, keys.Enter)

	// A click that would land on the divider must go to the popup instead
	m = sendMouse(m, mouseClick(m.editors.DividerX(), 10))
	if m.resizer.Dragging() {
		t.Error("the popup must own clicks while it is on screen")
	}
	m = sendMouse(m, mouseMotion(115, 10))
	if m.previewExp.Expanded() {
		t.Error("the popup must own hover while it is on screen")
	}
}

func TestMouse_ModalBlocksMouseRouting(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	m = sendKey(m, keys.CtrlH)
	m = sendMouse(m, mouseClick(m.editors.DividerX(), 10))

	if m.resizer.Dragging() {
		t.Error("a modal must block divider clicks underneath")
	}
}

func TestMouse_ReviewModeHasNoDivider(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m = startedCorrectionRequest(m)
	m = resolveCorrections(m, testCorrectionSet(), nil)

	m = sendMouse(m, mouseClick(m.editors.DividerX(), 10))
	if m.resizer.Dragging() {
		t.Error("review mode must not arm the divider drag")
	}
}

func TestPopupOrigin_CentersThePopup(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	x, y := m.popupOrigin()
	// Popup size at 120x40 is 80x26, so the origin is ((120-80)/2, (40-26)/2)
	if x != 20 || y != 7 {
		t.Errorf("popupOrigin() = (%d, %d), want (20, 7)", x, y)
	}
}

func TestRegionHitTesting(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	tests := []struct {
		x         int
		inPreview bool
		inLog     bool
	}{
		{0, false, false},
		{113, false, false},
		{114, true, false},
		{116, true, false},
		{117, false, true},
		{119, false, true},
	}
	for _, tt := range tests {
		if got := m.inPreviewRegion(tt.x); got != tt.inPreview {
			t.Errorf("inPreviewRegion(%d) = %v, want %v", tt.x, got, tt.inPreview)
		}
		if got := m.inLogRegion(tt.x); got != tt.inLog {
			t.Errorf("inLogRegion(%d) = %v, want %v", tt.x, got, tt.inLog)
		}
	}

	if m.inContentRows(0) {
		t.Error("row 0 is the header, not content")
	}
	if !m.inContentRows(1) || !m.inContentRows(34) {
		t.Error("rows 1-34 are content at height 40")
	}
	if m.inContentRows(35) {
		t.Error("row 35 is the chat bar, not content")
	}
}
