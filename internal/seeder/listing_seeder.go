// Package seeder fills an empty store with sample listings for local runs.
package seeder

import (
	"context"
	"fmt"
	"time"

	"isbuldum/internal/domain/job"
	"isbuldum/internal/repository"
)

type ListingSeeder struct {
	Now func() time.Time
}

func (ListingSeeder) Name() string { return "listings" }

// Run inserts the sample listings unless the collection already has data.
// It reports how many records were written.
func (s ListingSeeder) Run(ctx context.Context, docs repository.DocumentRepository) (int, error) {
	existing, err := docs.List(ctx, job.CollectionPath, 1, 0)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now().UTC()
	ms := func(d time.Duration) int64 { return t.Add(-d).UnixMilli() }
	premiumUntil := t.Add(7 * 24 * time.Hour).UnixMilli()
	premiumExpired := t.Add(-24 * time.Hour).UnixMilli()

	items := []job.Listing{
		{
			Title:           "Kıdemli Go Geliştirici",
			Company:         "Anadolu Yazılım",
			Location:        "İstanbul",
			Type:            "Tam Zamanlı",
			ExperienceLevel: "5+ Yıl",
			Salary:          "80.000 - 110.000 TL",
			CreatedAt:       ms(3 * time.Hour),
			IsPremium:       true,
			PremiumEndDate:  &premiumUntil,
		},
		{
			Title:           "Stajyer Veri Analisti",
			Company:         "Ege Analitik",
			Location:        "İzmir",
			Type:            "Staj",
			ExperienceLevel: job.ExperienceNone,
			CreatedAt:       ms(26 * time.Hour),
		},
		{
			Title:           "Ürün Tasarımcısı",
			Company:         "Çınar Teknoloji",
			Location:        "Uzaktan",
			Type:            "Yarı Zamanlı",
			ExperienceLevel: "2-4 Yıl",
			CreatedAt:       ms(4 * 24 * time.Hour),
			IsPremium:       true,
			PremiumEndDate:  &premiumExpired,
		},
		{
			Title:           "Muhasebe Uzmanı",
			Company:         "öztürk holding",
			Location:        "Ankara",
			Type:            "Tam Zamanlı",
			ExperienceLevel: "1-3 Yıl",
			Salary:          "45.000 TL",
			CreatedAt:       ms(12 * time.Minute),
		},
	}

	for i, l := range items {
		if _, err := docs.Create(ctx, job.CollectionPath, l); err != nil {
			return i, fmt.Errorf("seed listing %q: %w", l.Title, err)
		}
	}
	return len(items), nil
}
