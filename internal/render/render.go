// Package render persists generated content to plain-text files. It is a
// collaborator of the engine, not part of it: the engine stays free of I/O
// and render only iterates over its output.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"copysmith/internal/core"
)

// maxPrefixLen bounds the topic-derived filename prefix.
const maxPrefixLen = 20

// SaveResult reports where a generation run was written.
type SaveResult struct {
	VariationPaths []string // One file per variation, in variation order
	AnalysisPath   string   // The analysis report file
}

// SaveContent writes one plain-text record per variation plus the analysis
// report into outputDir, creating it if needed. Filenames combine a
// topic-derived prefix with a timestamp so repeated runs do not collide.
func SaveContent(req core.GenerationRequest, variations []core.ContentVariation, analysis string, outputDir string) (*SaveResult, error) {
	if outputDir == "" {
		outputDir = "generated_content"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	prefix := filenamePrefix(req.Topic)
	stamp := time.Now().Format("20060102_150405")

	result := &SaveResult{}
	for i, variation := range variations {
		filename := fmt.Sprintf("%s_variation_%d_%s.txt", prefix, i+1, stamp)
		path := filepath.Join(outputDir, filename)
		if err := os.WriteFile(path, []byte(variationRecord(req, variation, i+1)), 0644); err != nil {
			return nil, fmt.Errorf("failed to write variation file %s: %w", path, err)
		}
		result.VariationPaths = append(result.VariationPaths, path)
	}

	analysisPath := filepath.Join(outputDir, fmt.Sprintf("%s_analysis_%s.txt", prefix, stamp))
	record := fmt.Sprintf("CONTENT ANALYSIS\n%s\n\n%s", strings.Repeat("=", 50), analysis)
	if err := os.WriteFile(analysisPath, []byte(record), 0644); err != nil {
		return nil, fmt.Errorf("failed to write analysis file %s: %w", analysisPath, err)
	}
	result.AnalysisPath = analysisPath

	return result, nil
}

// variationRecord renders the stable plain-text layout for one variation:
// request parameters, title, word count, CTA, tags, then the full body.
func variationRecord(req core.GenerationRequest, variation core.ContentVariation, number int) string {
	var record strings.Builder

	record.WriteString(fmt.Sprintf("CONTENT VARIATION %d\n", number))
	record.WriteString(strings.Repeat("=", 50) + "\n\n")
	record.WriteString(fmt.Sprintf("Topic: %s\n", req.Topic))
	record.WriteString(fmt.Sprintf("Type: %s\n", req.ContentType))
	record.WriteString(fmt.Sprintf("Audience: %s\n", req.Audience))
	record.WriteString(fmt.Sprintf("Tone: %s\n", req.Tone))
	record.WriteString(fmt.Sprintf("Word Count: %d\n", variation.WordCount))
	record.WriteString(fmt.Sprintf("Title: %s\n\n", variation.Title))

	if variation.CallToAction != "" {
		record.WriteString(fmt.Sprintf("Call-to-Action: %s\n\n", variation.CallToAction))
	}
	if len(variation.Tags) > 0 {
		record.WriteString(fmt.Sprintf("Tags: %s\n\n", strings.Join(variation.Tags, ", ")))
	}

	record.WriteString("CONTENT:\n")
	record.WriteString(strings.Repeat("-", 20) + "\n")
	record.WriteString(variation.Body)
	record.WriteString("\n" + strings.Repeat("=", 50) + "\n")

	return record.String()
}

// filenamePrefix lower-cases the topic, replaces spaces, and trims to a
// bounded length so filenames stay manageable.
func filenamePrefix(topic string) string {
	prefix := strings.ReplaceAll(strings.ToLower(topic), " ", "_")
	if len(prefix) > maxPrefixLen {
		prefix = prefix[:maxPrefixLen]
	}
	if prefix == "" {
		prefix = "content"
	}
	return prefix
}
