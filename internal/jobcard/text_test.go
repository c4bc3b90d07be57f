package jobcard

import (
	"testing"
	"time"
)

func TestCompanyInitial(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acme", "A"},
		{" acme", "A"},
		{"istanbul yazılım", "İ"},
		{"ılık teknoloji", "I"},
		{"şeker a.ş.", "Ş"},
		{"", FallbackInitial},
		{"   ", FallbackInitial},
	}
	for _, tc := range cases {
		if got := CompanyInitial(tc.in); got != tc.want {
			t.Fatalf("CompanyInitial(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "az önce"},
		{5 * time.Minute, "5 dakika önce"},
		{3 * time.Hour, "3 saat önce"},
		{2 * 24 * time.Hour, "2 gün önce"},
		{14 * 24 * time.Hour, "2 hafta önce"},
		{90 * 24 * time.Hour, "3 ay önce"},
		{800 * 24 * time.Hour, "2 yıl önce"},
	}
	for _, tc := range cases {
		if got := TimeAgo(now.Add(-tc.ago), now); got != tc.want {
			t.Fatalf("TimeAgo(-%s) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}
