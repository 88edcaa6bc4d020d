// Package manifest persists the per-run segment table.
package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cleave/internal/segments"
)

// Write stores every detected segment, cut or not, as a CSV file in the
// output directory. The filename embeds the run timestamp so repeated runs
// against the same directory never collide.
func Write(segs []segments.Segment, outputDir string, now time.Time) (string, error) {
	name := fmt.Sprintf("video_segments_%s.csv", now.Format("20060102_150405"))
	path := filepath.Join(outputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create manifest: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"event_id", "start_time", "end_time"}); err != nil {
		return "", fmt.Errorf("write manifest header: %w", err)
	}
	for _, seg := range segs {
		if err := writer.Write([]string{seg.EventID, seg.StartTime, seg.EndTime}); err != nil {
			return "", fmt.Errorf("write manifest row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush manifest: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close manifest: %w", err)
	}
	return path, nil
}
