package runlog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		run := Run{
			ID:            uuid.NewString(),
			InputPath:     "/videos/match.mp4",
			OutputDir:     "/out",
			SegmentCount:  3,
			ProducedCount: 2,
			ManifestPath:  "/out/video_segments_20240715_100000.csv",
			StartedAt:     base.Add(time.Duration(i) * time.Hour),
			FinishedAt:    base.Add(time.Duration(i)*time.Hour + time.Minute),
		}
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("record run: %v", err)
		}
	}

	runs, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Fatalf("expected newest first: %v then %v", runs[0].StartedAt, runs[1].StartedAt)
	}
	if runs[0].SegmentCount != 3 || runs[0].ProducedCount != 2 {
		t.Fatalf("unexpected counts: %+v", runs[0])
	}
}

func TestRecordRequiresID(t *testing.T) {
	store := openTestStore(t)
	if err := store.Record(context.Background(), Run{}); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestRecentEmptyStore(t *testing.T) {
	store := openTestStore(t)
	runs, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}
