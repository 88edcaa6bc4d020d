// Package services holds cross-cutting error markers for external collaborators.
package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used to classify run-aborting failures. A run either
// finishes with a complete summary or fails wrapped in exactly one of these.
var (
	ErrInputNotFound  = errors.New("input not found")
	ErrOutputDir      = errors.New("output directory unavailable")
	ErrAnalysisFailed = errors.New("analysis failed")
	ErrNoSegments     = errors.New("no segments detected")
	ErrExternalTool   = errors.New("external tool error")
	ErrConfiguration  = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
