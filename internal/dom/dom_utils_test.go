package dom

import (
	"testing"
)

func TestIsElementHiddenForAria(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *VElement
		expected bool
	}{
		{
			"Visible element",
			func() *VElement {
				return NewVElement("div")
			},
			false,
		},
		{
			"Hidden with display:none",
			func() *VElement {
				el := NewVElement("div")
				el.SetAttribute("style", "display: none")
				return el
			},
			true,
		},
		{
			"Hidden with visibility:hidden",
			func() *VElement {
				el := NewVElement("div")
				el.SetAttribute("style", "visibility: hidden")
				return el
			},
			true,
		},
		{
			"Hidden with hidden attribute",
			func() *VElement {
				el := NewVElement("div")
				el.SetAttribute("hidden", "")
				return el
			},
			true,
		},
		{
			"Hidden with aria-hidden",
			func() *VElement {
				el := NewVElement("div")
				el.SetAttribute("aria-hidden", "true")
				return el
			},
			true,
		},
		{
			"Visible with aria-hidden=false",
			func() *VElement {
				el := NewVElement("div")
				el.SetAttribute("aria-hidden", "false")
				return el
			},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			element := tc.setup()
			result := IsElementHiddenForAria(element)
			if result != tc.expected {
				t.Errorf("Expected hidden to be %v, got %v", tc.expected, result)
			}
		})
	}

	if !IsElementHiddenForAria(nil) {
		t.Errorf("Expected nil element to be treated as hidden")
	}
}

func TestIsElementVisible(t *testing.T) {
	visible := NewVElement("div")
	if !IsElementVisible(visible) {
		t.Errorf("Expected default element to be visible")
	}

	hidden := NewVElement("div")
	hidden.SetAttribute("aria-hidden", "true")
	if IsElementVisible(hidden) {
		t.Errorf("Expected aria-hidden element to be invisible")
	}

	notPainted := NewVElement("div")
	notPainted.BoxOverride = &Box{Visible: false}
	if IsElementVisible(notPainted) {
		t.Errorf("Expected element with BoxOverride.Visible=false to be invisible")
	}

	painted := NewVElement("div")
	painted.BoxOverride = &Box{Visible: true}
	if !IsElementVisible(painted) {
		t.Errorf("Expected element with BoxOverride.Visible=true to be visible")
	}
}

func TestGetInnerText(t *testing.T) {
	// Create a test document structure
	div := NewVElement("div")

	p1 := NewVElement("p")
	div.AppendChild(p1)
	p1.AppendChild(NewVText("Paragraph 1"))

	p2 := NewVElement("p")
	div.AppendChild(p2)
	p2.AppendChild(NewVText("  Paragraph  2  "))

	span := NewVElement("span")
	p2.AppendChild(span)
	span.AppendChild(NewVText("  Nested  text  "))

	// Empty element
	emptyDiv := NewVElement("div")

	// Text node
	textNode := NewVText("  Direct  text  node  ")

	// Test cases
	tests := []struct {
		name            string
		node            VNode
		normalizeSpaces bool
		expected        string
	}{
		{"Element with simple text", p1, true, "Paragraph 1"},
		{"Element with nested text", p2, true, "Paragraph 2 Nested text"},
		{"Element with nested text (no normalize)", p2, false, "Paragraph  2   Nested  text"},
		{"Parent element with multiple children", div, true, "Paragraph 1 Paragraph 2 Nested text"},
		{"Empty element", emptyDiv, true, ""},
		{"Text node", textNode, true, "Direct text node"},
		{"Text node (no normalize)", textNode, false, "Direct  text  node"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := GetInnerText(tc.node, tc.normalizeSpaces)
			if result != tc.expected {
				t.Errorf("Expected inner text to be %q, got %q", tc.expected, result)
			}
		})
	}
}
