package textutil

import "testing"

func TestSanitizeEventID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A/B C", "A_B_C"},
		{"goal-01", "goal-01"},
		{"half_time.v2", "half_time.v2"},
		{"play #3!", "play__3_"},
		{"  trimmed  ", "trimmed"},
		{"日本語イベント", "日本語イベント"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeEventID(tc.in); got != tc.want {
			t.Fatalf("SanitizeEventID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
