package seo

import (
	"testing"

	"isbuldum/internal/domain/job"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025'te İş Görüşmelerinde Başarılı Olmanın 10 Yolu", "2025-te-is-gorusmelerinde-basarili-olmanin-10-yolu"},
		{"  Çalışma   Hayatı & Kariyer!  ", "calisma-hayati-kariyer"},
		{"Café résumé tips", "cafe-resume-tips"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateSlug_Deterministic(t *testing.T) {
	title := "Uzaktan Çalışmanın Püf Noktaları"
	first := GenerateSlug(title)
	for i := 0; i < 5; i++ {
		if got := GenerateSlug(title); got != first {
			t.Fatalf("slug changed between calls: %q vs %q", first, got)
		}
	}
}

func TestGenerateJobURL(t *testing.T) {
	l := job.Listing{ID: "abc123", Title: "Kıdemli Go Geliştirici", Company: "Örnek A.Ş."}
	if got, want := GenerateJobURL(l), "/is-ilani/kidemli-go-gelistirici-ornek-a-s-abc123"; got != want {
		t.Fatalf("GenerateJobURL = %q, want %q", got, want)
	}

	if got, want := GenerateJobURL(job.Listing{ID: "x1"}), "/is-ilani/x1"; got != want {
		t.Fatalf("GenerateJobURL without title = %q, want %q", got, want)
	}
}
