package seeder

import (
	"context"
	"testing"

	"isbuldum/internal/repository"
)

func TestListingSeeder_OnlySeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	docs := repository.NewMemoryDocumentRepository()

	n, err := ListingSeeder{}.Run(ctx, docs)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n == 0 {
		t.Fatalf("expected listings to be written")
	}

	again, err := ListingSeeder{}.Run(ctx, docs)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected no writes on a seeded store, got %d", again)
	}

	items, err := repository.NewDocumentListingRepository(docs).List(ctx, 50, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != n {
		t.Fatalf("expected %d listings, got %d", n, len(items))
	}
	for _, l := range items {
		if l.ID == "" {
			t.Fatalf("listed record without id: %+v", l)
		}
	}
}
