package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"isbuldum/internal/domain/job"
	"isbuldum/internal/domain/user"
	"isbuldum/internal/jobcard"
	"isbuldum/internal/repository"
	"isbuldum/internal/seo"
)

const (
	defaultListLimit = 20
	maxListLimit     = 50
)

type JobCardsParams struct {
	Limit  int
	Offset int
}

type JobCardsUsecase interface {
	List(ctx context.Context, identity *user.Identity, params JobCardsParams) ([]jobcard.View, error)
	Card(ctx context.Context, identity *user.Identity, jobID string) (*jobcard.Card, error)
	Favorites(ctx context.Context, identity *user.Identity) ([]jobcard.View, error)
}

// JobCards turns stored listings into cards bound to the caller.
type JobCards struct {
	listings repository.ListingRepository
	cache    ListingCache
	deps     jobcard.Deps
	logger   *log.Logger
}

func NewJobCardsUsecase(listings repository.ListingRepository, cache ListingCache, deps jobcard.Deps, logger *log.Logger) *JobCards {
	if deps.Logger == nil {
		deps.Logger = logger
	}
	if deps.JobURL == nil {
		deps.JobURL = seo.GenerateJobURL
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &JobCards{listings: listings, cache: cache, deps: deps, logger: logger}
}

func (u *JobCards) List(ctx context.Context, identity *user.Identity, params JobCardsParams) ([]jobcard.View, error) {
	limit := params.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 0 || limit > maxListLimit || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	items, err := u.page(ctx, limit, params.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]jobcard.View, 0, len(items))
	for _, l := range items {
		out = append(out, jobcard.New(l, identity, u.deps).View(ctx))
	}
	return out, nil
}

func (u *JobCards) page(ctx context.Context, limit, offset int) ([]job.Listing, error) {
	key := ListingsCacheKey(limit, offset)
	if u.cache != nil {
		var cached []job.Listing
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			u.logf("[Jobs] Cache HIT: %s", key)
			return cached, nil
		}
		u.logf("[Jobs] Cache MISS: %s", key)
	}

	items, err := u.listings.List(ctx, limit, offset)
	if err != nil {
		u.logf("[Jobs] list failed limit=%d offset=%d err=%v", limit, offset, err)
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, 0); err == nil {
			u.logf("[Jobs] Cache SET: %s", key)
		}
	}
	return items, nil
}

func (u *JobCards) Card(ctx context.Context, identity *user.Identity, jobID string) (*jobcard.Card, error) {
	l, err := u.listings.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, ErrNotFound
		}
		u.logf("[Jobs] get failed id=%s err=%v", jobID, err)
		return nil, ErrInternal
	}
	return jobcard.New(l, identity, u.deps), nil
}

// Favorites lists the caller's bookmarked listings. Ids whose listing is gone
// are skipped.
func (u *JobCards) Favorites(ctx context.Context, identity *user.Identity) ([]jobcard.View, error) {
	if identity == nil {
		return nil, ErrLoginRequired
	}
	if u.deps.Favorites == nil {
		return []jobcard.View{}, nil
	}

	ids, err := u.deps.Favorites.List(ctx, identity.UserID)
	if err != nil {
		u.logf("[Favorites] list failed user=%s err=%v", identity.UserID, err)
		return nil, ErrInternal
	}

	out := make([]jobcard.View, 0, len(ids))
	for _, id := range ids {
		l, err := u.listings.GetByID(ctx, id)
		if err != nil {
			if !errors.Is(err, repository.ErrListingNotFound) {
				u.logf("[Favorites] listing lookup failed id=%s err=%v", id, err)
			}
			continue
		}
		out = append(out, jobcard.Build(l, true, u.deps.Now(), u.deps.JobURL))
	}
	return out, nil
}

func (u *JobCards) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
