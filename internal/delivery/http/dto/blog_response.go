package dto

import (
	"isbuldum/internal/blog"
	domainblog "isbuldum/internal/domain/blog"
	"isbuldum/internal/notify"
)

type DraftStatsResponse struct {
	TitleLen   int  `json:"title_len"`
	ContentLen int  `json:"content_len"`
	ExcerptLen int  `json:"excerpt_len"`
	ReadTime   int  `json:"read_time"`
	CanSubmit  bool `json:"can_submit"`
	CanAddTag  bool `json:"can_add_tag"`
}

type DraftResponse struct {
	Draft blog.Draft         `json:"draft"`
	Stats DraftStatsResponse `json:"stats"`
	State string             `json:"state"`
}

// NewDraftResponse reports can_submit as false while a submission for the
// session is in flight.
func NewDraftResponse(d *blog.Draft, state blog.State) DraftResponse {
	s := d.Stats()
	return DraftResponse{
		Draft: *d,
		Stats: DraftStatsResponse{
			TitleLen:   s.TitleLen,
			ContentLen: s.ContentLen,
			ExcerptLen: s.ExcerptLen,
			ReadTime:   s.ReadTime,
			CanSubmit:  s.CanSubmit && state != blog.StateSubmitting,
			CanAddTag:  s.CanAddTag,
		},
		State: string(state),
	}
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func NewCategoryResponses(cats []domainblog.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon})
	}
	return out
}

type SubmitResponse struct {
	ID              string              `json:"id"`
	Slug            string              `json:"slug"`
	Excerpt         string              `json:"excerpt"`
	ReadTime        int                 `json:"read_time"`
	Redirect        string              `json:"redirect"`
	RedirectAfterMs int64               `json:"redirect_after_ms"`
	Notification    notify.Notification `json:"notification"`
}

func NewSubmitResponse(r blog.Result) SubmitResponse {
	return SubmitResponse{
		ID:              r.ID,
		Slug:            r.Post.Slug,
		Excerpt:         r.Post.Excerpt,
		ReadTime:        r.Post.ReadTime,
		Redirect:        r.Redirect,
		RedirectAfterMs: r.RedirectAfter.Milliseconds(),
		Notification:    r.Notification,
	}
}

// SubmitErrorData is attached to failed submissions so the client can show
// the same toast and, for anonymous visitors, navigate to sign-in.
type SubmitErrorData struct {
	Redirect     string              `json:"redirect,omitempty"`
	Notification notify.Notification `json:"notification"`
}
