// Package segments extracts event segment tables from model responses.
//
// The analyzer model is asked to answer with a CSV table of
// event_id,start_time,end_time rows, but the response format is not
// guaranteed: the table may arrive inside a ```csv fence, inline between
// prose, or not at all. Extraction degrades gracefully — malformed rows are
// dropped and a response without a table yields an empty result rather than
// an error.
package segments

import (
	"regexp"
	"strings"
)

// HeaderLine is the table header the extractor looks for and the manifest
// writer emits.
const HeaderLine = "event_id,start_time,end_time"

// Segment is one detected event interval. Timecodes are kept verbatim as
// the model emitted them so the manifest reflects the raw analysis output.
type Segment struct {
	EventID   string
	StartTime string
	EndTime   string
}

var fencedCSV = regexp.MustCompile("(?s)```csv\\s*\n(.*?)\n```")

// Extract parses a raw model response into an ordered list of segments.
// It prefers a fenced ```csv block and falls back to scanning for an inline
// table headed by HeaderLine. The result is empty (never nil-checked by
// callers as an error) when no usable table is present.
func Extract(response string) []Segment {
	table := candidateTable(response)
	if table == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSpace(table), "\n")
	if len(lines) < 2 {
		// Header with no data rows.
		return nil
	}

	segments := make([]Segment, 0, len(lines)-1)
	for _, line := range lines[1:] {
		parts := strings.Split(strings.TrimSpace(line), ",")
		if len(parts) < 3 {
			continue
		}
		seg := Segment{
			EventID:   strings.TrimSpace(parts[0]),
			StartTime: strings.TrimSpace(parts[1]),
			EndTime:   strings.TrimSpace(parts[2]),
		}
		if seg.EventID == "" || seg.StartTime == "" || seg.EndTime == "" {
			continue
		}
		segments = append(segments, seg)
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}

// candidateTable returns the region of the response that looks like the
// segment table, or empty when none is found.
func candidateTable(response string) string {
	if match := fencedCSV.FindStringSubmatch(response); match != nil {
		return strings.TrimSpace(match[1])
	}

	var captured []string
	capturing := false
	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(strings.ToLower(line), HeaderLine):
			capturing = true
			captured = append(captured, line)
		case capturing && strings.Contains(line, ",") && len(strings.Split(line, ",")) >= 3:
			captured = append(captured, line)
		case capturing && line == "":
			// Blank lines inside the table are tolerated.
			continue
		case capturing:
			// First trailing prose line ends the table.
			return strings.Join(captured, "\n")
		}
	}
	return strings.Join(captured, "\n")
}
