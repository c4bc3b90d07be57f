package blog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	domainblog "isbuldum/internal/domain/blog"
	"isbuldum/internal/domain/user"
	"isbuldum/internal/notify"
	"isbuldum/internal/seo"

	"github.com/google/uuid"
)

type fakeGateway struct {
	mu      sync.Mutex
	calls   int
	records []any
	err     error
	id      string

	block   chan struct{}
	entered chan struct{}
}

func (g *fakeGateway) Create(_ context.Context, collection string, record any) (string, error) {
	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.block != nil {
		<-g.block
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if collection != domainblog.CollectionPath {
		return "", errors.New("wrong collection " + collection)
	}
	if g.err != nil {
		return "", g.err
	}
	g.records = append(g.records, record)
	return g.id, nil
}

type captureSink struct {
	items []notify.Notification
}

func (c *captureSink) Notify(_ context.Context, n notify.Notification) {
	c.items = append(c.items, n)
}

func validDraft() Draft {
	d := NewDraft()
	d.Title = "İş Görüşmesinde Başarılı Olmanın 10 Yolu"
	d.Content = strings.Repeat("a", MinContentLen)
	return *d
}

func me() *user.Identity {
	return &user.Identity{UserID: uuid.New(), Email: "ayse.yilmaz@example.com"}
}

func newTestSubmitter(g Gateway, sink notify.Sink) *Submitter {
	s := NewSubmitter(g, sink, nil)
	s.now = func() time.Time { return time.UnixMilli(1_760_000_000_000) }
	return s
}

func TestSubmit_RequiresLogin(t *testing.T) {
	g := &fakeGateway{}
	sink := &captureSink{}
	s := newTestSubmitter(g, sink)

	res, err := s.Submit(context.Background(), "sid", nil, validDraft())
	if !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
	if res.Redirect != LoginPath {
		t.Fatalf("expected redirect to %s, got %q", LoginPath, res.Redirect)
	}
	if g.calls != 0 {
		t.Fatalf("gateway must not be called")
	}
	if len(sink.items) != 1 || sink.items[0].Kind != notify.KindError {
		t.Fatalf("expected one error notification, got %+v", sink.items)
	}
}

func TestSubmit_TitleTooShort(t *testing.T) {
	g := &fakeGateway{}
	s := newTestSubmitter(g, nil)

	d := validDraft()
	d.Title = "123456789"
	_, err := s.Submit(context.Background(), "sid", me(), d)
	if !errors.Is(err, ErrTitleTooShort) || !errors.Is(err, ErrInvalidPost) {
		t.Fatalf("expected ErrTitleTooShort, got %v", err)
	}
	if g.calls != 0 {
		t.Fatalf("gateway must not be called")
	}
	if s.State("sid") != StateIdle {
		t.Fatalf("in-progress flag must be cleared after a rejection")
	}
}

func TestSubmit_ContentBoundary(t *testing.T) {
	g := &fakeGateway{id: "post-1"}
	s := newTestSubmitter(g, nil)

	d := validDraft()
	d.Content = strings.Repeat("a", MinContentLen-1)
	if _, err := s.Submit(context.Background(), "sid", me(), d); !errors.Is(err, ErrContentTooShort) {
		t.Fatalf("expected ErrContentTooShort, got %v", err)
	}
	if g.calls != 0 {
		t.Fatalf("799 characters must not reach the gateway")
	}

	d.Content = strings.Repeat("a", MinContentLen)
	if _, err := s.Submit(context.Background(), "sid", me(), d); err != nil {
		t.Fatalf("800 characters must be accepted, got %v", err)
	}
	if g.calls != 1 {
		t.Fatalf("expected one gateway call, got %d", g.calls)
	}
}

func TestSubmit_ContentCountsCharacters(t *testing.T) {
	g := &fakeGateway{id: "post-1"}
	s := newTestSubmitter(g, nil)

	d := validDraft()
	d.Content = strings.Repeat("ş", MinContentLen)
	if _, err := s.Submit(context.Background(), "sid", me(), d); err != nil {
		t.Fatalf("800 multi-byte characters must be accepted, got %v", err)
	}
}

func TestSubmit_OtherLimits(t *testing.T) {
	s := newTestSubmitter(&fakeGateway{}, nil)

	d := validDraft()
	d.Title = strings.Repeat("b", MaxTitleLen+1)
	if _, err := s.Submit(context.Background(), "sid", me(), d); !errors.Is(err, ErrTitleTooLong) {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}

	d = validDraft()
	d.Excerpt = strings.Repeat("c", MaxExcerptLen+1)
	if _, err := s.Submit(context.Background(), "sid", me(), d); !errors.Is(err, ErrExcerptTooLong) {
		t.Fatalf("expected ErrExcerptTooLong, got %v", err)
	}

	d = validDraft()
	d.Category = "spor"
	if _, err := s.Submit(context.Background(), "sid", me(), d); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestSubmit_PersistsDerivedRecord(t *testing.T) {
	g := &fakeGateway{id: "post-42"}
	sink := &captureSink{}
	s := newTestSubmitter(g, sink)

	d := validDraft()
	d.Content = words(400) + strings.Repeat("x", MinContentLen)
	d.AddTag("mülakat")
	d.AddTag("kariyer")

	res, err := s.Submit(context.Background(), "sid", me(), d)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ID != "post-42" || res.Redirect != ListingPath || res.RedirectAfter != time.Second {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(g.records) != 1 {
		t.Fatalf("expected one record, got %d", len(g.records))
	}

	post, ok := g.records[0].(domainblog.Post)
	if !ok {
		t.Fatalf("unexpected record type %T", g.records[0])
	}
	if post.Slug != seo.GenerateSlug(d.Title) {
		t.Fatalf("slug %q is not derived from the title", post.Slug)
	}
	if post.Excerpt != string([]rune(d.Content)[:150])+"..." {
		t.Fatalf("unexpected excerpt %q", post.Excerpt)
	}
	if !strings.HasSuffix(post.Content, PromoFragment) || !strings.HasPrefix(post.Content, d.Content) {
		t.Fatalf("content must be the body followed by the promo fragment")
	}
	if post.Author != "ayse.yilmaz" {
		t.Fatalf("unexpected author %q", post.Author)
	}
	if post.ReadTime != ReadTime(d.Content) {
		t.Fatalf("read time must come from the original content, got %d", post.ReadTime)
	}
	if post.CreatedAt != post.UpdatedAt || post.CreatedAt != 1_760_000_000_000 {
		t.Fatalf("unexpected timestamps %d/%d", post.CreatedAt, post.UpdatedAt)
	}
	if post.Views != 0 || post.Likes != 0 || post.IsAIGenerated || post.Comments == nil || len(post.Comments) != 0 {
		t.Fatalf("unexpected counters: %+v", post)
	}
	if strings.Join(post.Tags, ",") != "mülakat,kariyer" {
		t.Fatalf("unexpected tags %v", post.Tags)
	}
	if len(sink.items) != 1 || sink.items[0].Kind != notify.KindSuccess || sink.items[0].Icon != "🎉" {
		t.Fatalf("expected success notification, got %+v", sink.items)
	}
}

func TestSubmit_UsesSuppliedExcerpt(t *testing.T) {
	g := &fakeGateway{id: "p"}
	s := newTestSubmitter(g, nil)

	d := validDraft()
	d.Excerpt = "Kısa özet"
	res, err := s.Submit(context.Background(), "sid", me(), d)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Post.Excerpt != "Kısa özet" {
		t.Fatalf("unexpected excerpt %q", res.Post.Excerpt)
	}
}

func TestSubmit_KeepsWhitespaceExcerpt(t *testing.T) {
	g := &fakeGateway{id: "p"}
	s := newTestSubmitter(g, nil)

	d := validDraft()
	d.Excerpt = "   "
	res, err := s.Submit(context.Background(), "sid", me(), d)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Post.Excerpt != "   " {
		t.Fatalf("unexpected excerpt %q", res.Post.Excerpt)
	}
}

func TestSubmit_AuthorFallback(t *testing.T) {
	g := &fakeGateway{id: "p"}
	s := newTestSubmitter(g, nil)

	res, err := s.Submit(context.Background(), "sid", &user.Identity{UserID: uuid.New()}, validDraft())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Post.Author != user.DefaultAuthorName {
		t.Fatalf("unexpected author %q", res.Post.Author)
	}
}

func TestSubmit_PersistFailure(t *testing.T) {
	g := &fakeGateway{err: errors.New("permission denied")}
	sink := &captureSink{}
	s := newTestSubmitter(g, sink)

	res, err := s.Submit(context.Background(), "sid", me(), validDraft())
	if !errors.Is(err, ErrPersistFailed) {
		t.Fatalf("expected ErrPersistFailed, got %v", err)
	}
	if res.Redirect != "" {
		t.Fatalf("failure must not navigate")
	}
	if res.Notification.Message != "Hata: permission denied" {
		t.Fatalf("unexpected message %q", res.Notification.Message)
	}
	if s.State("sid") != StateIdle {
		t.Fatalf("in-progress flag must be cleared after a failure")
	}
	if g.calls != 1 {
		t.Fatalf("persistence must not be retried, got %d calls", g.calls)
	}
}

func TestSubmit_PersistFailureWithoutMessage(t *testing.T) {
	s := newTestSubmitter(&fakeGateway{err: errors.New("")}, nil)

	res, _ := s.Submit(context.Background(), "sid", me(), validDraft())
	if res.Notification.Message != "Hata: "+msgPersistGeneric {
		t.Fatalf("unexpected message %q", res.Notification.Message)
	}
}

func TestSubmit_RejectsDuplicateWhileSubmitting(t *testing.T) {
	g := &fakeGateway{id: "p", block: make(chan struct{}), entered: make(chan struct{}, 1)}
	s := newTestSubmitter(g, nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), "sid", me(), validDraft())
		done <- err
	}()

	<-g.entered
	if s.State("sid") != StateSubmitting {
		t.Fatalf("expected submitting state")
	}
	if _, err := s.Submit(context.Background(), "sid", me(), validDraft()); !errors.Is(err, ErrSubmitInProgress) {
		t.Fatalf("expected ErrSubmitInProgress, got %v", err)
	}

	close(g.block)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if s.State("sid") != StateIdle {
		t.Fatalf("expected idle after completion")
	}
	if g.calls != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", g.calls)
	}
}
