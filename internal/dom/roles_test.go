package dom

import "testing"

func TestGetAriaRole(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *VElement
		expected string
	}{
		{
			"Explicit role wins",
			func() *VElement {
				el := NewVElement("div")
				el.SetAttribute("role", "button")
				return el
			},
			"button",
		},
		{
			"Explicit role takes first token",
			func() *VElement {
				el := NewVElement("div")
				el.SetAttribute("role", "tab presentation")
				return el
			},
			"tab",
		},
		{
			"Anchor with href is a link",
			func() *VElement {
				el := NewVElement("a")
				el.SetAttribute("href", "https://example.com")
				return el
			},
			"link",
		},
		{
			"Anchor without href is generic",
			func() *VElement {
				return NewVElement("a")
			},
			"generic",
		},
		{
			"Input defaults to textbox",
			func() *VElement {
				return NewVElement("input")
			},
			"textbox",
		},
		{
			"Input type checkbox",
			func() *VElement {
				el := NewVElement("input")
				el.SetAttribute("type", "checkbox")
				return el
			},
			"checkbox",
		},
		{
			"Input type radio",
			func() *VElement {
				el := NewVElement("input")
				el.SetAttribute("type", "radio")
				return el
			},
			"radio",
		},
		{
			"Input type submit is a button",
			func() *VElement {
				el := NewVElement("input")
				el.SetAttribute("type", "submit")
				return el
			},
			"button",
		},
		{
			"Heading tags",
			func() *VElement {
				return NewVElement("h2")
			},
			"heading",
		},
		{
			"Unknown tag falls back to generic",
			func() *VElement {
				return NewVElement("my-widget")
			},
			"generic",
		},
		{
			"iframe has its own implicit role",
			func() *VElement {
				return NewVElement("iframe")
			},
			"iframe",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetAriaRole(tc.setup(), true); got != tc.expected {
				t.Errorf("GetAriaRole() = %q, want %q", got, tc.expected)
			}
		})
	}

	if GetAriaRole(nil, true) != "" {
		t.Errorf("Expected GetAriaRole(nil) to be empty")
	}
}

func TestGetAriaRoleGenericDefaultIsGatedByForAI(t *testing.T) {
	unknown := NewVElement("my-widget")
	if got := GetAriaRole(unknown, false); got != "" {
		t.Errorf("Expected non-forAI unknown tag to have no role, got %q", got)
	}
	if got := GetAriaRole(unknown, true); got != "generic" {
		t.Errorf("Expected forAI unknown tag to default to generic, got %q", got)
	}

	anchor := NewVElement("a")
	if got := GetAriaRole(anchor, false); got != "" {
		t.Errorf("Expected non-forAI hrefless anchor to have no role, got %q", got)
	}
	if got := GetAriaRole(anchor, true); got != "generic" {
		t.Errorf("Expected forAI hrefless anchor to default to generic, got %q", got)
	}
}

func TestIsTransparentRole(t *testing.T) {
	if !IsTransparentRole("presentation") {
		t.Errorf("Expected presentation to be transparent")
	}
	if !IsTransparentRole("none") {
		t.Errorf("Expected none to be transparent")
	}
	if IsTransparentRole("button") {
		t.Errorf("Expected button not to be transparent")
	}
}

func TestGetAriaChecked(t *testing.T) {
	checkbox := NewVElement("input")
	checkbox.SetAttribute("type", "checkbox")
	role := GetAriaRole(checkbox, true)

	if got := GetAriaChecked(checkbox, role); got != false {
		t.Errorf("Expected default checked to be false, got %v", got)
	}

	checkbox.SetAttribute("checked", "")
	if got := GetAriaChecked(checkbox, role); got != true {
		t.Errorf("Expected checked attribute to report true, got %v", got)
	}

	checkbox.SetAttribute("aria-checked", "mixed")
	if got := GetAriaChecked(checkbox, role); got != "mixed" {
		t.Errorf("Expected aria-checked=mixed to report mixed, got %v", got)
	}

	button := NewVElement("button")
	if got := GetAriaChecked(button, GetAriaRole(button, true)); got != nil {
		t.Errorf("Expected button role to not admit checked state, got %v", got)
	}
}

func TestGetAriaDisabled(t *testing.T) {
	button := NewVElement("button")
	role := GetAriaRole(button, true)

	if got := GetAriaDisabled(button, role); got == nil || *got != false {
		t.Errorf("Expected default disabled to be false, got %v", got)
	}

	button.SetAttribute("disabled", "")
	if got := GetAriaDisabled(button, role); got == nil || *got != true {
		t.Errorf("Expected disabled attribute to report true, got %v", got)
	}

	heading := NewVElement("h1")
	if got := GetAriaDisabled(heading, GetAriaRole(heading, true)); got != nil {
		t.Errorf("Expected heading role to not admit disabled state, got %v", got)
	}
}

func TestGetAriaExpanded(t *testing.T) {
	button := NewVElement("button")
	button.SetAttribute("aria-expanded", "true")
	role := GetAriaRole(button, true)

	if got := GetAriaExpanded(button, role); got == nil || *got != true {
		t.Errorf("Expected expanded to be true, got %v", got)
	}

	noAttr := NewVElement("button")
	if got := GetAriaExpanded(noAttr, GetAriaRole(noAttr, true)); got != nil {
		t.Errorf("Expected nil when aria-expanded absent, got %v", got)
	}
}

func TestGetAriaLevel(t *testing.T) {
	h3 := NewVElement("h3")
	if got := GetAriaLevel(h3, GetAriaRole(h3, true)); got != 3 {
		t.Errorf("Expected implicit level 3 for h3, got %d", got)
	}

	explicit := NewVElement("div")
	explicit.SetAttribute("role", "heading")
	explicit.SetAttribute("aria-level", "5")
	if got := GetAriaLevel(explicit, GetAriaRole(explicit, true)); got != 5 {
		t.Errorf("Expected explicit aria-level 5, got %d", got)
	}

	nonLevelRole := NewVElement("div")
	if got := GetAriaLevel(nonLevelRole, GetAriaRole(nonLevelRole, true)); got != 0 {
		t.Errorf("Expected 0 for role that doesn't admit level, got %d", got)
	}
}

func TestGetAriaPressed(t *testing.T) {
	button := NewVElement("button")
	button.SetAttribute("aria-pressed", "true")
	if got := GetAriaPressed(button, GetAriaRole(button, true)); got != true {
		t.Errorf("Expected pressed true, got %v", got)
	}

	link := NewVElement("a")
	link.SetAttribute("href", "#")
	if got := GetAriaPressed(link, GetAriaRole(link, true)); got != nil {
		t.Errorf("Expected link role to not admit pressed state, got %v", got)
	}
}

func TestGetAriaSelected(t *testing.T) {
	option := NewVElement("option")
	option.SetAttribute("selected", "")
	if got := GetAriaSelected(option, GetAriaRole(option, true)); got == nil || *got != true {
		t.Errorf("Expected selected attribute to report true, got %v", got)
	}

	unselected := NewVElement("option")
	if got := GetAriaSelected(unselected, GetAriaRole(unselected, true)); got == nil || *got != false {
		t.Errorf("Expected default selected to be false, got %v", got)
	}
}
