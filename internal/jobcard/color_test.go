package jobcard

import "testing"

func TestColorIndex(t *testing.T) {
	cases := []struct {
		id   string
		want int
	}{
		{"", 0},
		{"00000006", 0},
		{"0000000b", 5},
		{"ffffffff", 3},
		{"FFFFFFFF", 3},
		// only the first eight characters count
		{"00000007zzzz", 1},
		// longest valid hex prefix, like parseInt
		{"1g000000", 1},
		{"0x1f", 1},
		{"-NxYz123", 0},
		{"-0000001", 5},
		{"zzzzzzzz", 0},
	}
	for _, tc := range cases {
		if got := ColorIndex(tc.id); got != tc.want {
			t.Fatalf("ColorIndex(%q) = %d, want %d", tc.id, got, tc.want)
		}
	}
}

func TestColorIndex_StableAndInRange(t *testing.T) {
	ids := []string{"a1b2c3d4e5", "-Nq8Zk1", "64f0c2a9e1", "job-42", "ünicode-id"}
	for _, id := range ids {
		first := ColorIndex(id)
		if first < 0 || first >= len(Palette) {
			t.Fatalf("ColorIndex(%q) = %d out of range", id, first)
		}
		for i := 0; i < 3; i++ {
			if got := ColorIndex(id); got != first {
				t.Fatalf("ColorIndex(%q) not stable: %d vs %d", id, first, got)
			}
		}
		if ColorClass(id) != Palette[first] {
			t.Fatalf("ColorClass(%q) does not match palette entry", id)
		}
	}
}
