package markdown

import "testing"

func TestExtractHeadingsPreservesOrder(t *testing.T) {
	document := `# Title

intro text

## First Section

body

### Nested

## Second Section
`
	headings := ExtractHeadings(document)

	want := []string{"Title", "First Section", "Nested", "Second Section"}
	if len(headings) != len(want) {
		t.Fatalf("Expected %d headings, got %d: %v", len(want), len(headings), headings)
	}
	for i, heading := range want {
		if headings[i] != heading {
			t.Errorf("Heading %d: got %q, want %q", i, headings[i], heading)
		}
	}
}

func TestExtractHeadingsKeepsDuplicates(t *testing.T) {
	document := "# A\ntext\n# B\ntext\n# A\n"
	headings := ExtractHeadings(document)

	want := []string{"A", "B", "A"}
	if len(headings) != len(want) {
		t.Fatalf("Expected %d headings, got %d: %v", len(want), len(headings), headings)
	}
	for i, heading := range want {
		if headings[i] != heading {
			t.Errorf("Heading %d: got %q, want %q", i, headings[i], heading)
		}
	}
}

func TestExtractHeadingsIgnoresNonHeadings(t *testing.T) {
	cases := []string{
		"",
		"plain paragraph text",
		"#nospace",
		"text with # in the middle",
	}
	for _, document := range cases {
		if headings := ExtractHeadings(document); len(headings) != 0 {
			t.Errorf("ExtractHeadings(%q) = %v, want none", document, headings)
		}
	}
}
