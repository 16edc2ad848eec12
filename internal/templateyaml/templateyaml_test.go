package templateyaml

import (
	"testing"

	"github.com/mackee/ariasnap"
)

func TestParseSimpleRoleLeaf(t *testing.T) {
	root, err := Parse(`- heading "title"`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}
	heading := root.Children[0]
	if heading.Role != "heading" {
		t.Errorf("Role = %q, want heading", heading.Role)
	}
	if heading.Name == nil || heading.Name.Literal != "title" {
		t.Errorf("Name = %+v, want literal \"title\"", heading.Name)
	}
}

func TestParseRegexName(t *testing.T) {
	root, err := Parse(`- heading /Issues \d+/`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	heading := root.Children[0]
	if heading.Name == nil || heading.Name.Regex == nil {
		t.Fatalf("expected a regex name, got %+v", heading.Name)
	}
	if !heading.Name.Regex.MatchString("Issues 42") {
		t.Errorf("expected regex to match \"Issues 42\"")
	}
}

func TestParseNestedChildrenAndDirective(t *testing.T) {
	source := `
- list:
    - /children: equal
    - listitem: "One"
    - listitem: "Two"
`
	root, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	list := root.Children[0]
	if list.Role != "list" {
		t.Fatalf("Role = %q, want list", list.Role)
	}
	if list.ContainerMode != ariasnap.ContainerEqual {
		t.Errorf("ContainerMode = %q, want equal", list.ContainerMode)
	}
	if len(list.Children) != 2 {
		t.Fatalf("expected 2 children (directive consumed), got %d", len(list.Children))
	}
	if list.Children[0].Name.Literal != "One" || list.Children[1].Name.Literal != "Two" {
		t.Errorf("unexpected listitem names: %+v", list.Children)
	}
}

func TestParseLinkURLDirective(t *testing.T) {
	source := `
- link:
    - /url: /.*example\.com/
`
	root, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	link := root.Children[0]
	if link.PropsURL == nil || link.PropsURL.Regex == nil {
		t.Fatalf("expected a regex url, got %+v", link.PropsURL)
	}
	if !link.PropsURL.Regex.MatchString("https://example.com/page") {
		t.Errorf("expected url regex to match example.com")
	}
}

func TestParseStateBrackets(t *testing.T) {
	root, err := Parse(`- checkbox [checked=mixed] [disabled]`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	checkbox := root.Children[0]
	if checkbox.Checked == nil || *checkbox.Checked != ariasnap.TriMixed {
		t.Errorf("Checked = %v, want mixed", checkbox.Checked)
	}
	if checkbox.Disabled == nil || !*checkbox.Disabled {
		t.Errorf("Disabled = %v, want true", checkbox.Disabled)
	}
}

func TestParseTextLeaf(t *testing.T) {
	source := `
- listitem:
    - text: "Alpha"
`
	root, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	listitem := root.Children[0]
	if len(listitem.Children) != 1 {
		t.Fatalf("expected 1 text child, got %d", len(listitem.Children))
	}
	text := listitem.Children[0]
	if text.Kind != ariasnap.TemplateText || text.Text.Literal != "Alpha" {
		t.Errorf("unexpected text child: %+v", text)
	}
}

func TestParseInvalidDirective(t *testing.T) {
	if _, err := Parse(`
- list:
    - /children: sideways
`); err == nil {
		t.Error("expected an error for an unknown /children mode")
	}
}
