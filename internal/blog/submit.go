// Package blog implements the post authoring workflow: the draft form,
// validation, derived fields and persistence of a new post.
package blog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	domainblog "isbuldum/internal/domain/blog"
	"isbuldum/internal/domain/user"
	"isbuldum/internal/notify"
	"isbuldum/internal/seo"
)

const (
	LoginPath     = "/login"
	ListingPath   = "/blog"
	RedirectDelay = time.Second

	excerptLen    = 150
	excerptSuffix = "..."
)

var (
	ErrLoginRequired    = errors.New("login required")
	ErrInvalidPost      = errors.New("invalid post")
	ErrTitleTooShort    = fmt.Errorf("%w: title must be at least %d characters", ErrInvalidPost, MinTitleLen)
	ErrTitleTooLong     = fmt.Errorf("%w: title must be at most %d characters", ErrInvalidPost, MaxTitleLen)
	ErrContentTooShort  = fmt.Errorf("%w: content must be at least %d characters", ErrInvalidPost, MinContentLen)
	ErrExcerptTooLong   = fmt.Errorf("%w: excerpt must be at most %d characters", ErrInvalidPost, MaxExcerptLen)
	ErrInvalidCategory  = fmt.Errorf("%w: %w", ErrInvalidPost, ErrUnknownCategory)
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrPersistFailed    = errors.New("persist failed")
)

const (
	msgLoginRequired   = "Blog yazısı paylaşmak için giriş yapmalısınız"
	msgTitleTooShort   = "Başlık en az 10 karakter olmalıdır"
	msgTitleTooLong    = "Başlık en fazla 100 karakter olabilir"
	msgContentTooShort = "İçerik en az 800 karakter olmalıdır (SEO için uzun içerik önerilir)"
	msgExcerptTooLong  = "Özet en fazla 200 karakter olabilir"
	msgBadCategory     = "Geçersiz kategori"
	msgInProgress      = "Blog yazınız yayınlanıyor, lütfen bekleyin"
	msgPublished       = "Blog yazınız başarıyla yayınlandı!"
	msgPersistGeneric  = "Blog yazısı yayınlanamıyor. Lütfen daha sonra tekrar deneyin."
)

// Gateway persists a record under a collection path and returns its id.
type Gateway interface {
	Create(ctx context.Context, collection string, record any) (string, error)
}

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

type Result struct {
	ID            string
	Post          domainblog.Post
	Redirect      string
	RedirectAfter time.Duration
	Notification  notify.Notification
}

type Submitter struct {
	gateway Gateway
	sink    notify.Sink
	slug    func(string) string
	now     func() time.Time
	logger  *log.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmitter(gateway Gateway, sink notify.Sink, logger *log.Logger) *Submitter {
	return &Submitter{
		gateway:  gateway,
		sink:     sink,
		slug:     seo.GenerateSlug,
		now:      time.Now,
		logger:   logger,
		inFlight: map[string]struct{}{},
	}
}

// State reports whether a submission keyed by key is running.
func (s *Submitter) State(key string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[key]; ok {
		return StateSubmitting
	}
	return StateIdle
}

func (s *Submitter) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[key]; ok {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Submitter) end(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}

// Submit validates the draft, derives the computed fields and persists a new
// post. key identifies the form (one visitor session); while a submission for
// key is running further calls fail with ErrSubmitInProgress. Every outcome
// carries the notification that was sent to the sink.
func (s *Submitter) Submit(ctx context.Context, key string, identity *user.Identity, d Draft) (Result, error) {
	if identity == nil {
		res := Result{Redirect: LoginPath}
		res.Notification = s.notify(ctx, notify.Error(msgLoginRequired))
		return res, ErrLoginRequired
	}

	if !s.begin(key) {
		return Result{Notification: s.notify(ctx, notify.Info(msgInProgress))}, ErrSubmitInProgress
	}
	defer s.end(key)

	if msg, err := validate(d); err != nil {
		return Result{Notification: s.notify(ctx, notify.Error(msg))}, err
	}

	post := s.compose(identity, d)
	s.logf("[Blog] saving post slug=%s author=%s tags=%d", post.Slug, post.Author, len(post.Tags))

	id, err := s.gateway.Create(ctx, domainblog.CollectionPath, post)
	if err != nil {
		s.logf("[Blog] save failed slug=%s err=%v", post.Slug, err)
		msg := msgPersistGeneric
		if m := strings.TrimSpace(err.Error()); m != "" {
			msg = m
		}
		res := Result{Post: post, Notification: s.notify(ctx, notify.Error("Hata: "+msg))}
		return res, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	s.logf("[Blog] post saved id=%s slug=%s", id, post.Slug)
	n := notify.Success(msgPublished).WithIcon("🎉").WithDuration(4 * time.Second)
	return Result{
		ID:            id,
		Post:          post,
		Redirect:      ListingPath,
		RedirectAfter: RedirectDelay,
		Notification:  s.notify(ctx, n),
	}, nil
}

func validate(d Draft) (string, error) {
	titleLen := utf8.RuneCountInString(d.Title)
	switch {
	case titleLen < MinTitleLen:
		return msgTitleTooShort, ErrTitleTooShort
	case titleLen > MaxTitleLen:
		return msgTitleTooLong, ErrTitleTooLong
	case utf8.RuneCountInString(d.Content) < MinContentLen:
		return msgContentTooShort, ErrContentTooShort
	case utf8.RuneCountInString(d.Excerpt) > MaxExcerptLen:
		return msgExcerptTooLong, ErrExcerptTooLong
	case !domainblog.IsCategory(d.Category):
		return msgBadCategory, ErrInvalidCategory
	}
	return "", nil
}

func (s *Submitter) compose(identity *user.Identity, d Draft) domainblog.Post {
	now := s.now().UnixMilli()

	tags := make([]string, len(d.Tags))
	copy(tags, d.Tags)

	return domainblog.Post{
		Title:         d.Title,
		Content:       withPromo(d.Content),
		Excerpt:       Excerpt(d.Excerpt, d.Content),
		Slug:          s.slug(d.Title),
		Category:      d.Category,
		Tags:          tags,
		Author:        identity.AuthorName(),
		CreatedAt:     now,
		UpdatedAt:     now,
		IsAIGenerated: false,
		ReadTime:      ReadTime(d.Content),
		Views:         0,
		Likes:         0,
		Comments:      []domainblog.Comment{},
	}
}

// Excerpt returns the supplied excerpt, or the first 150 characters of the
// content followed by "..." when none was given. Whitespace counts as given.
func Excerpt(supplied, content string) string {
	if supplied != "" {
		return supplied
	}
	r := []rune(content)
	if len(r) > excerptLen {
		r = r[:excerptLen]
	}
	return string(r) + excerptSuffix
}

func (s *Submitter) notify(ctx context.Context, n notify.Notification) notify.Notification {
	if s.sink != nil {
		s.sink.Notify(ctx, n)
	}
	return n
}

func (s *Submitter) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
