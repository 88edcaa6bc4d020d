package deps

import "testing"

func TestCheckBinariesMissingCommand(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "FFmpeg", Command: ""}})
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected unavailable status for empty command")
	}
	if statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", statuses[0].Detail)
	}
}

func TestCheckBinariesUnknownBinary(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "FFmpeg", Command: "definitely-not-a-real-binary"}})
	if statuses[0].Available {
		t.Fatal("expected unavailable status for unknown binary")
	}
}

func TestRequiredIncludesFFmpeg(t *testing.T) {
	reqs := Required("ffmpeg")
	if len(reqs) != 1 || reqs[0].Command != "ffmpeg" {
		t.Fatalf("unexpected requirements: %#v", reqs)
	}
}
