// Package jobcard holds the presentation and interaction rules of a job
// summary card: logo color, premium badge, favorite state, and the click
// hand-off that lets "back" restore the scroll position.
package jobcard

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"isbuldum/internal/domain/job"
	"isbuldum/internal/domain/user"
	"isbuldum/internal/favorites"
	"isbuldum/internal/seo"
	"isbuldum/internal/session"
)

// LoginPath is where anonymous visitors are sent when they try to bookmark.
const LoginPath = "/giris"

var ErrNoFavoritesStore = errors.New("favorites store not configured")

type Deps struct {
	Favorites favorites.Store
	Sessions  session.Store
	JobURL    func(job.Listing) string
	Now       func() time.Time
	Logger    *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.JobURL == nil {
		d.JobURL = seo.GenerateJobURL
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Card binds one listing to the caller's identity. The same Card backs every
// layout.
type Card struct {
	listing  job.Listing
	identity *user.Identity
	deps     Deps

	// OnRemoved lets a parent react to the listing being deleted elsewhere.
	// The card never calls it itself.
	OnRemoved func()
}

func New(listing job.Listing, identity *user.Identity, deps Deps) *Card {
	return &Card{listing: listing, identity: identity, deps: deps.withDefaults()}
}

func (c *Card) Listing() job.Listing {
	return c.listing
}

// IsFavorite reads membership from the store. Anonymous visitors and store
// failures both read as "not a favorite".
func (c *Card) IsFavorite(ctx context.Context) bool {
	if c.identity == nil || c.deps.Favorites == nil {
		return false
	}
	fav, err := c.deps.Favorites.IsFavorite(ctx, c.identity.UserID, c.listing.ID)
	if err != nil {
		c.logf("[JobCard] favorite lookup failed job=%s err=%v", c.listing.ID, err)
		return false
	}
	return fav
}

func (c *Card) View(ctx context.Context) View {
	return Build(c.listing, c.IsFavorite(ctx), c.deps.Now(), c.deps.JobURL)
}

// Open records where the visitor was and returns the detail path to navigate
// to. Session write failures are logged; navigation still happens.
func (c *Card) Open(ctx context.Context, sessionID string, scrollY int, currentPath string) string {
	if c.deps.Sessions != nil && sessionID != "" {
		if err := c.deps.Sessions.Set(ctx, sessionID, session.KeyScrollPosition, strconv.Itoa(scrollY)); err != nil {
			c.logf("[JobCard] scroll hand-off failed sid=%s err=%v", sessionID, err)
		}
		if err := c.deps.Sessions.Set(ctx, sessionID, session.KeyPreviousPath, currentPath); err != nil {
			c.logf("[JobCard] path hand-off failed sid=%s err=%v", sessionID, err)
		}
	}
	return c.deps.JobURL(c.listing)
}

// Outcome is the result of a favorite click. Redirect is set when the visitor
// has to sign in first.
type Outcome struct {
	Redirect string
	Favorite bool
}

// ToggleFavorite asks the store to flip membership and re-reads it. Without
// an identity nothing is sent to the store.
func (c *Card) ToggleFavorite(ctx context.Context) (Outcome, error) {
	if c.identity == nil {
		return Outcome{Redirect: LoginPath}, nil
	}
	if c.deps.Favorites == nil {
		return Outcome{}, ErrNoFavoritesStore
	}
	if _, err := c.deps.Favorites.Toggle(ctx, c.identity.UserID, c.listing.ID); err != nil {
		return Outcome{}, err
	}
	return Outcome{Favorite: c.IsFavorite(ctx)}, nil
}

func (c *Card) logf(format string, args ...any) {
	if c.deps.Logger != nil {
		c.deps.Logger.Printf(format, args...)
	}
}
