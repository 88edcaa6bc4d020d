package timecode

import "testing"

func TestParseTwoFieldForm(t *testing.T) {
	seconds, err := Parse("05:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seconds != 330 {
		t.Fatalf("expected 330 seconds, got %v", seconds)
	}
}

func TestParseThreeFieldForm(t *testing.T) {
	seconds, err := Parse("01:02:03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seconds != 3723 {
		t.Fatalf("expected 3723 seconds, got %v", seconds)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	seconds, err := Parse("  10:00 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seconds != 600 {
		t.Fatalf("expected 600 seconds, got %v", seconds)
	}
}

func TestParseRejectsMalformedValues(t *testing.T) {
	for _, value := range []string{"", "bad", "1:2:3:4", "aa:bb", "01:xx:03", "-1:30", "1.5:00"} {
		if _, err := Parse(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestParseOrZeroFallsBack(t *testing.T) {
	seconds, ok := ParseOrZero("bad")
	if ok {
		t.Fatal("expected parse failure")
	}
	if seconds != 0 {
		t.Fatalf("expected zero fallback, got %v", seconds)
	}

	seconds, ok = ParseOrZero("01:30")
	if !ok {
		t.Fatal("expected parse success")
	}
	if seconds != 90 {
		t.Fatalf("expected 90 seconds, got %v", seconds)
	}
}
