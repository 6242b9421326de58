// Package markdown provides utilities for extracting structure from
// generated markdown documents.
package markdown

import (
	"regexp"
	"strings"
)

var headingPattern = regexp.MustCompile(`^#+\s+(.+)$`)

// ExtractHeadings scans a document line by line and returns the text of
// every heading (lines starting with one or more '#' markers followed by
// whitespace), preserving document order. Duplicates are kept.
func ExtractHeadings(document string) []string {
	var headings []string
	for _, line := range strings.Split(document, "\n") {
		if match := headingPattern.FindStringSubmatch(line); match != nil {
			headings = append(headings, match[1])
		}
	}
	return headings
}
