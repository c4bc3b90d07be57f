package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/url"

	"isbuldum/internal/blog"
	"isbuldum/internal/delivery/http/dto"
	"isbuldum/internal/delivery/http/middleware"
	domainblog "isbuldum/internal/domain/blog"
	"isbuldum/internal/pkg/response"
	"isbuldum/internal/session"

	"github.com/gofiber/fiber/v3"
)

type BlogPublisher interface {
	PostPublished(id string, post domainblog.Post)
}

// BlogHandler serves the authoring form. The draft lives in the visitor's
// session so the form survives reloads; /blog/posts accepts a whole form in
// one request instead.
type BlogHandler struct {
	submitter *blog.Submitter
	sessions  session.Store
	publisher BlogPublisher
	logger    *log.Logger
}

type updateDraftRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Excerpt  *string `json:"excerpt"`
	Category *string `json:"category"`
	TagInput *string `json:"tag_input"`
}

type addTagRequest struct {
	Tag *string `json:"tag"`
}

type createPostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Excerpt  string   `json:"excerpt"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func NewBlogHandler(submitter *blog.Submitter, sessions session.Store, publisher BlogPublisher, logger *log.Logger) *BlogHandler {
	return &BlogHandler{submitter: submitter, sessions: sessions, publisher: publisher, logger: logger}
}

func (h *BlogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	g := r.Group("/blog")
	g.Get("/categories", h.HandleListCategories)
	g.Get("/draft", h.HandleGetDraft)
	g.Put("/draft", h.HandleUpdateDraft)
	g.Post("/draft/tags", h.HandleAddTag)
	g.Delete("/draft/tags/:tag", h.HandleRemoveTag)
	g.Post("/draft/submit", h.HandleSubmitDraft)
	g.Post("/posts", h.HandleCreatePost)
}

func (h *BlogHandler) HandleListCategories(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryResponses(domainblog.Categories()))
}

func (h *BlogHandler) HandleGetDraft(c fiber.Ctx) error {
	sid := middleware.SessionID(c)
	d, err := h.loadDraft(c.Context(), sid)
	if err != nil {
		return err
	}
	return h.draftResponse(c, sid, d)
}

func (h *BlogHandler) HandleUpdateDraft(c fiber.Ctx) error {
	var req updateDraftRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	sid := middleware.SessionID(c)
	d, err := h.loadDraft(c.Context(), sid)
	if err != nil {
		return err
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Content != nil {
		d.Content = *req.Content
	}
	if req.Excerpt != nil {
		d.Excerpt = *req.Excerpt
	}
	if req.TagInput != nil {
		d.TagInput = *req.TagInput
	}
	if req.Category != nil {
		if err := d.SetCategory(*req.Category); err != nil {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Geçersiz kategori", nil, err)
		}
	}

	if err := h.saveDraft(c.Context(), sid, d); err != nil {
		return err
	}
	return h.draftResponse(c, sid, d)
}

// HandleAddTag adds the posted tag, or the pending tag input when the body
// carries none. A tag that does not fit is dropped silently, as in the form.
func (h *BlogHandler) HandleAddTag(c fiber.Ctx) error {
	var req addTagRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
	}

	sid := middleware.SessionID(c)
	d, err := h.loadDraft(c.Context(), sid)
	if err != nil {
		return err
	}

	if req.Tag != nil {
		d.AddTag(*req.Tag)
	} else {
		d.CommitTagInput()
	}

	if err := h.saveDraft(c.Context(), sid, d); err != nil {
		return err
	}
	return h.draftResponse(c, sid, d)
}

func (h *BlogHandler) HandleRemoveTag(c fiber.Ctx) error {
	tag, err := url.PathUnescape(c.Params("tag"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sid := middleware.SessionID(c)
	d, err := h.loadDraft(c.Context(), sid)
	if err != nil {
		return err
	}
	d.RemoveTag(tag)

	if err := h.saveDraft(c.Context(), sid, d); err != nil {
		return err
	}
	return h.draftResponse(c, sid, d)
}

func (h *BlogHandler) HandleSubmitDraft(c fiber.Ctx) error {
	sid := middleware.SessionID(c)
	d, err := h.loadDraft(c.Context(), sid)
	if err != nil {
		return err
	}

	res, err := h.submitter.Submit(c.Context(), sid, middleware.IdentityFrom(c), *d)
	if err != nil {
		return mapSubmitError(res, err)
	}

	if err := h.saveDraft(c.Context(), sid, blog.NewDraft()); err != nil && h.logger != nil {
		h.logger.Printf("[Blog] draft reset failed sid=%s err=%v", sid, err)
	}
	h.published(res)
	return response.Success(c, fiber.StatusCreated, "created", dto.NewSubmitResponse(res))
}

func (h *BlogHandler) HandleCreatePost(c fiber.Ctx) error {
	var req createPostRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	d := blog.NewDraft()
	d.Title = req.Title
	d.Content = req.Content
	d.Excerpt = req.Excerpt
	if req.Category != "" {
		d.Category = req.Category
	}
	for _, t := range req.Tags {
		d.AddTag(t)
	}

	res, err := h.submitter.Submit(c.Context(), middleware.SessionID(c), middleware.IdentityFrom(c), *d)
	if err != nil {
		return mapSubmitError(res, err)
	}

	h.published(res)
	return response.Success(c, fiber.StatusCreated, "created", dto.NewSubmitResponse(res))
}

func (h *BlogHandler) published(res blog.Result) {
	if h.publisher != nil {
		h.publisher.PostPublished(res.ID, res.Post)
	}
}

func (h *BlogHandler) draftResponse(c fiber.Ctx, sid string, d *blog.Draft) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDraftResponse(d, h.submitter.State(sid)))
}

func (h *BlogHandler) loadDraft(ctx context.Context, sid string) (*blog.Draft, error) {
	if h.sessions == nil {
		return blog.NewDraft(), nil
	}

	raw, ok, err := h.sessions.Get(ctx, sid, session.KeyBlogDraft)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if !ok || raw == "" {
		return blog.NewDraft(), nil
	}

	d := blog.NewDraft()
	if err := json.Unmarshal([]byte(raw), d); err != nil {
		if h.logger != nil {
			h.logger.Printf("[Blog] discarding unreadable draft sid=%s err=%v", sid, err)
		}
		return blog.NewDraft(), nil
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d, nil
}

func (h *BlogHandler) saveDraft(ctx context.Context, sid string, d *blog.Draft) error {
	if h.sessions == nil {
		return nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if err := h.sessions.Set(ctx, sid, session.KeyBlogDraft, string(b)); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return nil
}

func mapSubmitError(res blog.Result, err error) error {
	data := dto.SubmitErrorData{Redirect: res.Redirect, Notification: res.Notification}
	msg := res.Notification.Message

	switch {
	case errors.Is(err, blog.ErrLoginRequired):
		return middleware.NewAppError(fiber.StatusUnauthorized, msg, data, err)
	case errors.Is(err, blog.ErrInvalidPost):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, msg, data, err)
	case errors.Is(err, blog.ErrSubmitInProgress):
		return middleware.NewAppError(fiber.StatusConflict, msg, data, err)
	case errors.Is(err, blog.ErrPersistFailed):
		return middleware.NewPublicAppError(fiber.StatusBadGateway, msg, data, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
