package dom

import "testing"

func TestGetElementComputedStyle(t *testing.T) {
	t.Run("default display by tag", func(t *testing.T) {
		div := NewVElement("div")
		if style := GetElementComputedStyle(div); style.Display != "block" {
			t.Errorf("Expected block display for div, got %q", style.Display)
		}

		span := NewVElement("span")
		if style := GetElementComputedStyle(span); style.Display != "inline" {
			t.Errorf("Expected inline display for span, got %q", style.Display)
		}
	})

	t.Run("inline style overrides default", func(t *testing.T) {
		el := NewVElement("div")
		el.SetAttribute("style", "display: flex; cursor: pointer")
		style := GetElementComputedStyle(el)
		if style.Display != "flex" {
			t.Errorf("Expected flex display, got %q", style.Display)
		}
		if style.Cursor != "pointer" {
			t.Errorf("Expected pointer cursor, got %q", style.Cursor)
		}
	})

	t.Run("StyleOverride takes priority", func(t *testing.T) {
		el := NewVElement("div")
		el.SetAttribute("style", "display: flex")
		el.StyleOverride = &ComputedStyle{Display: "none"}
		if style := GetElementComputedStyle(el); style.Display != "none" {
			t.Errorf("Expected override display none, got %q", style.Display)
		}
	})

	if GetElementComputedStyle(nil) != nil {
		t.Errorf("Expected nil for nil element")
	}
}

func TestIsInlineDisplay(t *testing.T) {
	span := NewVElement("span")
	if !IsInlineDisplay(span) {
		t.Errorf("Expected span to be inline")
	}

	br := NewVElement("br")
	if IsInlineDisplay(br) {
		t.Errorf("Expected br to never be treated as inline for spacing purposes")
	}

	div := NewVElement("div")
	if IsInlineDisplay(div) {
		t.Errorf("Expected div to not be inline")
	}
}

func TestGetCSSContent(t *testing.T) {
	el := NewVElement("div")
	el.PseudoBefore = "★"
	el.PseudoAfter = "☆"

	if got := GetCSSContent(el, "before"); got != "★" {
		t.Errorf("got %q", got)
	}
	if got := GetCSSContent(el, "after"); got != "☆" {
		t.Errorf("got %q", got)
	}
	if got := GetCSSContent(el, "bogus"); got != "" {
		t.Errorf("Expected empty for unknown pseudo, got %q", got)
	}
}

func TestGetBox(t *testing.T) {
	plain := NewVElement("div")
	box := GetBox(plain)
	if !box.Visible {
		t.Errorf("Expected default box to be visible")
	}

	hidden := NewVElement("div")
	hidden.SetAttribute("hidden", "")
	if GetBox(hidden).Visible {
		t.Errorf("Expected hidden element's box to be invisible")
	}

	override := NewVElement("div")
	override.BoxOverride = &Box{X: 1, Y: 2, W: 3, H: 4, Visible: true, Cursor: "pointer"}
	if got := GetBox(override); got.W != 3 || got.Cursor != "pointer" {
		t.Errorf("Expected override box to be returned verbatim, got %+v", got)
	}
}

func TestReceivesPointerEvents(t *testing.T) {
	visible := NewVElement("button")
	if !ReceivesPointerEvents(visible) {
		t.Errorf("Expected visible enabled button to receive pointer events")
	}

	hidden := NewVElement("button")
	hidden.SetAttribute("hidden", "")
	if ReceivesPointerEvents(hidden) {
		t.Errorf("Expected hidden element to not receive pointer events")
	}

	disabled := NewVElement("button")
	disabled.SetAttribute("disabled", "")
	if ReceivesPointerEvents(disabled) {
		t.Errorf("Expected disabled element to not receive pointer events")
	}

	noPointer := NewVElement("div")
	noPointer.SetAttribute("style", "pointer-events: none")
	if ReceivesPointerEvents(noPointer) {
		t.Errorf("Expected pointer-events:none element to not receive pointer events")
	}

	overridden := NewVElement("div")
	f := false
	overridden.PointerEventsOverride = &f
	if ReceivesPointerEvents(overridden) {
		t.Errorf("Expected override to take priority")
	}
}
