package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"copysmith/internal/core"
	"copysmith/internal/generate"
)

func TestSaveContentWritesAllFiles(t *testing.T) {
	dir := t.TempDir()

	req := core.NewRequest("Benefits of DevOps for Startups", core.TypeArticle, core.AudienceFounders, core.ToneProfessional)
	variations, analysis, err := generate.Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	result, err := SaveContent(req, variations, analysis, dir)
	if err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	if len(result.VariationPaths) != 3 {
		t.Fatalf("Expected 3 variation paths, got %d", len(result.VariationPaths))
	}
	if result.AnalysisPath == "" {
		t.Fatal("Expected an analysis path")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("Expected 4 files in the output directory, got %d", len(entries))
	}

	for i, path := range result.VariationPaths {
		name := filepath.Base(path)
		if !strings.HasPrefix(name, "benefits_of_devops_f") {
			t.Errorf("Variation file %d has unexpected prefix: %s", i, name)
		}
		if !strings.HasSuffix(name, ".txt") {
			t.Errorf("Variation file %d is not a .txt file: %s", i, name)
		}
	}
}

func TestSaveContentVariationRecord(t *testing.T) {
	dir := t.TempDir()

	req := core.NewRequest("Remote Work", core.TypeShortPost, core.AudienceGeneral, core.ToneConversational)
	variations, analysis, err := generate.Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	result, err := SaveContent(req, variations, analysis, dir)
	if err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	data, err := os.ReadFile(result.VariationPaths[0])
	if err != nil {
		t.Fatalf("Failed to read variation file: %v", err)
	}
	record := string(data)

	wantFragments := []string{
		"CONTENT VARIATION 1",
		"Topic: Remote Work",
		"Type: short-post",
		"Audience: general",
		"Tone: conversational",
		"Title: " + variations[0].Title,
		"CONTENT:",
		variations[0].Body,
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(record, fragment) {
			t.Errorf("Variation record is missing %q", fragment)
		}
	}
}

func TestSaveContentAnalysisRecord(t *testing.T) {
	dir := t.TempDir()

	req := core.NewRequest("AI in Marketing", core.TypeDigest, core.AudienceMarketers, core.ToneInformative)
	variations, analysis, err := generate.Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	result, err := SaveContent(req, variations, analysis, dir)
	if err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	data, err := os.ReadFile(result.AnalysisPath)
	if err != nil {
		t.Fatalf("Failed to read analysis file: %v", err)
	}
	record := string(data)

	if !strings.HasPrefix(record, "CONTENT ANALYSIS") {
		t.Error("Analysis record is missing its banner")
	}
	if !strings.Contains(record, analysis) {
		t.Error("Analysis record does not contain the report text")
	}
}

func TestSaveContentCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	req := core.NewRequest("DevOps", core.TypeArticle, core.AudienceGeneral, core.ToneProfessional)
	variations, analysis, err := generate.Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := SaveContent(req, variations, analysis, dir); err != nil {
		t.Fatalf("Expected the output directory to be created, got %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Output directory does not exist: %v", err)
	}
}

func TestFilenamePrefix(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Remote Work", "remote_work"},
		{"Benefits of DevOps for Startups", "benefits_of_devops_f"},
		{"", "content"},
		{"AI", "ai"},
	}
	for _, test := range tests {
		if got := filenamePrefix(test.topic); got != test.want {
			t.Errorf("filenamePrefix(%q) = %q, want %q", test.topic, got, test.want)
		}
	}
}
