package ffmpeg

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestArgsBuildStreamCopyCommand(t *testing.T) {
	cutter := NewCutter("ffmpeg", 0)
	args := cutter.args("/in/match.mp4", 90, 105.5, "/out/ev1_20240715.mp4")
	joined := strings.Join(args, " ")
	want := "-hide_banner -loglevel error -i /in/match.mp4 -ss 90 -t 105.5 -c copy -avoid_negative_ts make_zero -y /out/ev1_20240715.mp4"
	if joined != want {
		t.Fatalf("unexpected args:\n got %s\nwant %s", joined, want)
	}
}

func TestCutRejectsBadArguments(t *testing.T) {
	cutter := NewCutter("", time.Second)
	ctx := context.Background()
	if err := cutter.Cut(ctx, "", 0, 10, "/out/x.mp4"); err == nil {
		t.Fatal("expected error for empty input")
	}
	if err := cutter.Cut(ctx, "/in/x.mp4", 0, 10, ""); err == nil {
		t.Fatal("expected error for empty output")
	}
	if err := cutter.Cut(ctx, "/in/x.mp4", 5, 0, "/out/x.mp4"); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestSummarizeOutput(t *testing.T) {
	out := []byte("frame=  100\n/in/x.mp4: No such file or directory\n\n")
	if got := summarizeOutput(out); got != "/in/x.mp4: No such file or directory" {
		t.Fatalf("unexpected summary: %q", got)
	}
	if got := summarizeOutput(nil); got != "no output" {
		t.Fatalf("unexpected empty summary: %q", got)
	}
}
