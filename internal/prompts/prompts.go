// Package prompts supplies the analyzer prompt text, embedded at compile
// time with optional file-based overrides.
package prompts

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed segmentation.txt
var segmentationPrompt string

// Segmentation returns the prompt sent alongside the uploaded video. When
// overridePath is non-empty the file's contents replace the built-in prompt;
// the text is passed to the analyzer verbatim either way.
func Segmentation(overridePath string) (string, error) {
	if strings.TrimSpace(overridePath) == "" {
		return segmentationPrompt, nil
	}
	data, err := os.ReadFile(overridePath)
	if err != nil {
		return "", fmt.Errorf("read prompt override %s: %w", overridePath, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("prompt override %s is empty", overridePath)
	}
	return text, nil
}
