// Package cutplan turns segment lists into concrete cut instructions.
package cutplan

import (
	"log/slog"
	"path/filepath"
	"time"

	"cleave/internal/logging"
	"cleave/internal/segments"
	"cleave/internal/textutil"
	"cleave/internal/timecode"
)

// Job is one planned clip extraction derived from a segment.
type Job struct {
	Segment         segments.Segment
	StartSeconds    float64
	DurationSeconds float64
	OutputPath      string
}

// Plan converts segments into cut jobs, preserving input order. Segments
// whose interval is inverted or zero-length produce no job; a malformed
// timecode counts as zero seconds. Both conditions are logged and never
// abort planning. All jobs in one plan share the reference date, so two
// segments with the same sanitized event id resolve to the same output path
// and the later cut overwrites the earlier one.
func Plan(segs []segments.Segment, reference time.Time, outputDir, extension string, logger *slog.Logger) []Job {
	if logger == nil {
		logger = logging.NewNop()
	}
	datestamp := reference.Format("20060102")

	jobs := make([]Job, 0, len(segs))
	for _, seg := range segs {
		start, ok := timecode.ParseOrZero(seg.StartTime)
		if !ok {
			logger.Warn("malformed start time, treating as 00:00",
				logging.String("event_id", seg.EventID),
				logging.String("start_time", seg.StartTime))
		}
		end, ok := timecode.ParseOrZero(seg.EndTime)
		if !ok {
			logger.Warn("malformed end time, treating as 00:00",
				logging.String("event_id", seg.EventID),
				logging.String("end_time", seg.EndTime))
		}

		duration := end - start
		if duration <= 0 {
			logger.Warn("segment has non-positive duration, skipping",
				logging.String("event_id", seg.EventID),
				logging.String("start_time", seg.StartTime),
				logging.String("end_time", seg.EndTime))
			continue
		}

		name := textutil.SanitizeEventID(seg.EventID) + "_" + datestamp + "." + extension
		jobs = append(jobs, Job{
			Segment:         seg,
			StartSeconds:    start,
			DurationSeconds: duration,
			OutputPath:      filepath.Join(outputDir, name),
		})
	}
	return jobs
}
