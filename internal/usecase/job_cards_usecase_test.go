package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"isbuldum/internal/domain/job"
	"isbuldum/internal/domain/user"
	"isbuldum/internal/favorites"
	"isbuldum/internal/jobcard"
	"isbuldum/internal/repository"

	"github.com/google/uuid"
)

type mockListingRepo struct {
	items []job.Listing
	err   error
	calls int
}

func (m *mockListingRepo) GetByID(_ context.Context, id string) (job.Listing, error) {
	if m.err != nil {
		return job.Listing{}, m.err
	}
	for _, l := range m.items {
		if l.ID == id {
			return l, nil
		}
	}
	return job.Listing{}, repository.ErrListingNotFound
}

func (m *mockListingRepo) List(context.Context, int, int) ([]job.Listing, error) {
	m.calls++
	return m.items, m.err
}

type mapCache struct {
	data map[string][]job.Listing
}

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	*(out.(*[]job.Listing)) = v
	return true, nil
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.data[key] = value.([]job.Listing)
	return nil
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newUsecase(repo *mockListingRepo, cache ListingCache, favs favorites.Store) *JobCards {
	return NewJobCardsUsecase(repo, cache, jobcard.Deps{
		Favorites: favs,
		Now:       func() time.Time { return fixedNow },
	}, nil)
}

func TestJobCards_List_InvalidInput(t *testing.T) {
	uc := newUsecase(&mockListingRepo{}, nil, nil)
	for _, p := range []JobCardsParams{{Limit: -1}, {Limit: 51}, {Offset: -1}} {
		if _, err := uc.List(context.Background(), nil, p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("params %+v: expected ErrInvalidInput, got %v", p, err)
		}
	}
}

func TestJobCards_List_FavoritesAndCache(t *testing.T) {
	ctx := context.Background()
	repo := &mockListingRepo{items: []job.Listing{
		{ID: "a1", Title: "Go Developer", Company: "Acme"},
		{ID: "b2", Title: "Tasarımcı", Company: "Zeta"},
	}}
	cache := &mapCache{data: map[string][]job.Listing{}}
	favs := favorites.NewMemoryStore()
	id := &user.Identity{UserID: uuid.New(), Email: "ali@example.com"}
	if _, err := favs.Toggle(ctx, id.UserID, "b2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	uc := newUsecase(repo, cache, favs)
	views, err := uc.List(ctx, id, JobCardsParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].Favorite || !views[1].Favorite {
		t.Fatalf("unexpected favorite flags %+v", views)
	}
	if views[1].FavoriteLabel != jobcard.LabelRemoveFavorite {
		t.Fatalf("unexpected label %q", views[1].FavoriteLabel)
	}
	if _, ok := cache.data[ListingsCacheKey(20, 0)]; !ok {
		t.Fatalf("expected page to be cached")
	}

	anon, err := uc.List(ctx, nil, JobCardsParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if anon[1].Favorite {
		t.Fatalf("anonymous visitors never see favorites")
	}
	if repo.calls != 1 {
		t.Fatalf("expected second page read from cache, repo calls=%d", repo.calls)
	}
}

func TestJobCards_List_RepoError(t *testing.T) {
	uc := newUsecase(&mockListingRepo{err: errors.New("boom")}, nil, nil)
	if _, err := uc.List(context.Background(), nil, JobCardsParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobCards_Card(t *testing.T) {
	uc := newUsecase(&mockListingRepo{items: []job.Listing{{ID: "a1", Title: "Go", Company: "Acme"}}}, nil, nil)

	c, err := uc.Card(context.Background(), nil, "a1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Listing().ID != "a1" {
		t.Fatalf("unexpected listing %+v", c.Listing())
	}

	if _, err := uc.Card(context.Background(), nil, "zz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobCards_Favorites(t *testing.T) {
	ctx := context.Background()
	favs := favorites.NewMemoryStore()
	uc := newUsecase(&mockListingRepo{items: []job.Listing{{ID: "a1", Title: "Go", Company: "Acme"}}}, nil, favs)

	if _, err := uc.Favorites(ctx, nil); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}

	id := &user.Identity{UserID: uuid.New()}
	_, _ = favs.Toggle(ctx, id.UserID, "a1")
	_, _ = favs.Toggle(ctx, id.UserID, "deleted")

	views, err := uc.Favorites(ctx, id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(views) != 1 || views[0].ID != "a1" || !views[0].Favorite {
		t.Fatalf("unexpected favorites %+v", views)
	}
}
