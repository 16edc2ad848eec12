package ariasnap

import (
	"strings"
	"testing"
)

func TestRenderAriaTreeNilSnapshot(t *testing.T) {
	if got := RenderAriaTree(nil, RenderOptions{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := RenderAriaTree(&AriaSnapshot{}, RenderOptions{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderAriaTreeSimpleHeading(t *testing.T) {
	snap := &AriaSnapshot{Root: &AriaNode{
		Role: RoleFragment,
		Children: []any{
			&AriaNode{Role: "heading", Name: "title", Level: 1},
		},
	}}

	got := RenderAriaTree(snap, RenderOptions{Mode: RenderModeRaw})
	want := `- heading "title" [level=1]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderAriaTreeNestedList(t *testing.T) {
	snap := &AriaSnapshot{Root: &AriaNode{
		Role: RoleFragment,
		Children: []any{
			&AriaNode{Role: "list", Children: []any{
				&AriaNode{Role: "listitem", Name: "One"},
				&AriaNode{Role: "listitem", Name: "Two"},
			}},
		},
	}}

	got := RenderAriaTree(snap, RenderOptions{Mode: RenderModeRaw})
	want := "- list:\n  - listitem \"One\"\n  - listitem \"Two\""
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderKeyLineStateBracketOrder(t *testing.T) {
	disabled := true
	expanded := true
	selected := true
	checked := TriMixed
	pressed := TriTrue
	node := &AriaNode{
		Role: "button", Name: "Menu", Level: 2,
		Checked: &checked, Disabled: &disabled, Expanded: &expanded,
		Pressed: &pressed, Selected: &selected,
	}

	got := renderKeyLine(node, RenderOptions{})
	want := `button "Menu" [checked=mixed] [disabled] [expanded] [level=2] [pressed] [selected]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderNameTokenOmitsEmptyAndOverlongNames(t *testing.T) {
	if got := renderNameToken(""); got != "" {
		t.Errorf("empty name: got %q", got)
	}
	long := strings.Repeat("x", maxNameLength+1)
	if got := renderNameToken(long); got != "" {
		t.Errorf("overlong name should be omitted, got %q", got)
	}
}

func TestRenderNameTokenPassesRegexVerbatim(t *testing.T) {
	if got := renderNameToken(`/Issues \d+/`); got != ` /Issues \d+/` {
		t.Errorf("got %q", got)
	}
}

func TestRenderRefSuffixRequiresForAIAndPointerEvents(t *testing.T) {
	node := &AriaNode{Role: "button", Ref: "e1", ReceivesPointerEvents: true}

	if got := renderRefSuffix(node, RenderOptions{ForAI: false}); got != "" {
		t.Errorf("forAI=false should omit ref, got %q", got)
	}
	if got := renderRefSuffix(node, RenderOptions{ForAI: true}); got != " [ref=e1]" {
		t.Errorf("got %q", got)
	}

	node.Box.Cursor = "pointer"
	if got := renderRefSuffix(node, RenderOptions{ForAI: true}); got != " [ref=e1] [cursor=pointer]" {
		t.Errorf("got %q", got)
	}
}

func TestTextContributesInfoSuppressesNameEchoes(t *testing.T) {
	if textContributesInfo("Save changes", "Save changes") {
		t.Error("text identical to the parent's name contributes nothing new")
	}
	if !textContributesInfo("", "hello") {
		t.Error("with no parent name, text always contributes")
	}
	if !textContributesInfo("Save", "Save the current document to disk") {
		t.Error("text materially longer than the name still contributes")
	}
	if textContributesInfo("anything", "") {
		t.Error("empty text never contributes")
	}
}

func TestConvertToBestGuessRegexLiteralWhenNoDynamicContent(t *testing.T) {
	got := convertToBestGuessRegex("Save changes")
	if got != `"Save changes"` {
		t.Errorf("got %q, want a JSON-quoted literal", got)
	}
}

func TestConvertToBestGuessRegexGeneralizesCounts(t *testing.T) {
	got := convertToBestGuessRegex("Issues 42")
	if !strings.HasPrefix(got, "/") || !strings.HasSuffix(got, "/") {
		t.Errorf("got %q, want a /pattern/", got)
	}
	if !strings.Contains(got, `[\d.:a-zA-Z\s]+`) {
		t.Errorf("got %q, want the dynamic-content placeholder", got)
	}
}

func TestRenderAriaTreeRegexModeGeneralizesHeading(t *testing.T) {
	snap := &AriaSnapshot{Root: &AriaNode{
		Role: RoleFragment,
		Children: []any{
			&AriaNode{Role: "heading", Name: "Issues 42", Level: 1},
		},
	}}

	got := RenderAriaTree(snap, RenderOptions{Mode: RenderModeRegex})
	if !strings.HasPrefix(got, `- heading "Issues 42" [level=1]`) {
		t.Errorf("regex-mode key line should still render the literal name: %q", got)
	}
}

func TestSortedPropNamesIsDeterministic(t *testing.T) {
	props := map[string]string{"url": "https://x", "zeta": "1", "alpha": "2"}
	got := sortedPropNames(props)
	want := []string{"alpha", "url", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestRenderAriaTreeLinkWithURLProp(t *testing.T) {
	snap := &AriaSnapshot{Root: &AriaNode{
		Role: RoleFragment,
		Children: []any{
			&AriaNode{Role: "link", Name: "Example", Props: map[string]string{"url": "https://example.com"}},
		},
	}}

	got := RenderAriaTree(snap, RenderOptions{Mode: RenderModeRaw})
	want := "- link \"Example\":\n  - /url: \"https://example.com\""
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
