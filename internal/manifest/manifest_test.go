package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cleave/internal/segments"
)

func TestWriteProducesTimestampedCSV(t *testing.T) {
	dir := t.TempDir()
	segs := []segments.Segment{
		{EventID: "ev1", StartTime: "00:00", EndTime: "01:30"},
		{EventID: "ev2", StartTime: "01:30", EndTime: "01:10"},
	}
	now := time.Date(2024, 7, 15, 10, 30, 45, 0, time.UTC)

	path, err := Write(segs, dir, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "video_segments_20240715_103045.csv" {
		t.Fatalf("unexpected manifest name: %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	want := "event_id,start_time,end_time\nev1,00:00,01:30\nev2,01:30,01:10\n"
	if string(data) != want {
		t.Fatalf("unexpected manifest content:\n%s", data)
	}
}

func TestWriteFailsOnMissingDirectory(t *testing.T) {
	_, err := Write(nil, filepath.Join(t.TempDir(), "absent"), time.Now())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
