package textutil

import (
	"strings"
	"testing"
)

func TestTruncateIdentityUnderLimit(t *testing.T) {
	text := "short text"
	if got := Truncate(text, 280); got != text {
		t.Errorf("Expected text under the limit to be returned unchanged, got %q", got)
	}
	if got := Truncate(text, len(text)); got != text {
		t.Errorf("Expected text exactly at the limit to be returned unchanged, got %q", got)
	}
}

func TestTruncateLengthBound(t *testing.T) {
	texts := []string{
		strings.Repeat("word ", 200),
		strings.Repeat("x", 1000),
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
	}
	limits := []int{10, 50, 280, 300, 700}

	for _, text := range texts {
		for _, limit := range limits {
			got := Truncate(text, limit)
			if len(got) > limit+len(Ellipsis) {
				t.Errorf("Truncate(len=%d, limit=%d) produced %d bytes, want <= %d", len(text), limit, len(got), limit+len(Ellipsis))
			}
		}
	}
}

func TestTruncateBacktracksToWordBoundary(t *testing.T) {
	// The last space before the cut falls at index 95, inside the last 20%
	// of a 100-byte budget, so the cut backs up to it.
	text := strings.Repeat("a", 95) + " " + strings.Repeat("b", 50)
	got := Truncate(text, 100)

	want := strings.Repeat("a", 95) + Ellipsis
	if got != want {
		t.Errorf("Expected truncation to back up to the word boundary, got %q", got)
	}
}

func TestTruncateHardCutWithoutQualifyingSpace(t *testing.T) {
	// Only space is at index 10, well before the 80% mark, so the cut is
	// hard at the limit.
	text := strings.Repeat("a", 10) + " " + strings.Repeat("b", 200)
	got := Truncate(text, 100)

	if len(got) != 100+len(Ellipsis) {
		t.Errorf("Expected a hard cut at the limit, got %d bytes", len(got))
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("Expected truncated text to end with the ellipsis marker, got %q", got)
	}
}

func TestTruncateIdempotent(t *testing.T) {
	texts := []string{
		strings.Repeat("word ", 100),
		strings.Repeat("z", 500),
		strings.Repeat("a", 95) + " " + strings.Repeat("b", 50),
	}
	for _, text := range texts {
		for _, limit := range []int{50, 100, 280} {
			once := Truncate(text, limit)
			twice := Truncate(once, limit)
			if once != twice {
				t.Errorf("Truncate is not idempotent at limit %d: %q != %q", limit, once, twice)
			}
		}
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  spaced   out\n\twords  ", 3},
		{"line one\nline two", 4},
	}
	for _, test := range tests {
		if got := CountWords(test.text); got != test.want {
			t.Errorf("CountWords(%q) = %d, want %d", test.text, got, test.want)
		}
	}
}

func TestNormalizeTopic(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Benefits of DevOps for Startups", "DevOps Startups"},
		{"DevOps", "DevOps"},
		{"Benefits of Automation", "Automation"},
		{"Remote Work", "Remote Work"},
	}
	for _, test := range tests {
		if got := NormalizeTopic(test.topic); got != test.want {
			t.Errorf("NormalizeTopic(%q) = %q, want %q", test.topic, got, test.want)
		}
	}
}

func TestTopicHashStable(t *testing.T) {
	topics := []string{"DevOps", "Remote Work", "Benefits of AI for Marketers", ""}
	for _, topic := range topics {
		first := TopicHash(topic)
		second := TopicHash(topic)
		if first != second {
			t.Errorf("TopicHash(%q) not stable: %d != %d", topic, first, second)
		}
	}
	if TopicHash("DevOps") == TopicHash("Remote Work") {
		t.Error("Expected different topics to hash differently")
	}
}

func TestPickDeterministic(t *testing.T) {
	pool := []string{"alpha", "beta", "gamma"}
	first := Pick("Remote Work", pool)
	second := Pick("Remote Work", pool)
	if first != second {
		t.Errorf("Pick is not deterministic: %q != %q", first, second)
	}

	found := false
	for _, member := range pool {
		if first == member {
			found = true
		}
	}
	if !found {
		t.Errorf("Pick returned %q, not a pool member", first)
	}
}
