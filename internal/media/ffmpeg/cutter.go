// Package ffmpeg shells out to ffmpeg for lossless stream-copy cuts.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Cutter extracts clip ranges from a source video without re-encoding.
type Cutter struct {
	binary  string
	timeout time.Duration
}

// NewCutter constructs a cutter for the given ffmpeg binary. A zero timeout
// disables the per-cut deadline.
func NewCutter(binary string, timeout time.Duration) *Cutter {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Cutter{binary: binary, timeout: timeout}
}

// Cut extracts durationSeconds of input starting at startSeconds into
// output, copying streams instead of re-encoding. An existing output file is
// overwritten. The combined ffmpeg output is folded into the returned error.
func (c *Cutter) Cut(ctx context.Context, input string, startSeconds, durationSeconds float64, output string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("ffmpeg cut: empty input path")
	}
	if strings.TrimSpace(output) == "" {
		return errors.New("ffmpeg cut: empty output path")
	}
	if durationSeconds <= 0 {
		return fmt.Errorf("ffmpeg cut: non-positive duration %v", durationSeconds)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.binary, c.args(input, startSeconds, durationSeconds, output)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg cut: %w: %s", err, summarizeOutput(out))
	}
	return nil
}

func (c *Cutter) args(input string, startSeconds, durationSeconds float64, output string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", input,
		"-ss", formatSeconds(startSeconds),
		"-t", formatSeconds(durationSeconds),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		"-y",
		output,
	}
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// summarizeOutput reduces ffmpeg stderr to its last non-empty line, which
// carries the actual failure reason.
func summarizeOutput(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return "no output"
}
