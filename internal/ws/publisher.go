package ws

import (
	"encoding/json"
	"time"

	domainblog "isbuldum/internal/domain/blog"
)

const EventBlogPostPublished = "blog_post_published"

type BlogPostPublishedEvent struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
}

// Publisher announces new posts to the live feed.
type Publisher struct {
	hub *Hub
	now func() time.Time
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub, now: time.Now}
}

func (p *Publisher) PostPublished(id string, post domainblog.Post) {
	if p == nil || p.hub == nil {
		return
	}

	evt := BlogPostPublishedEvent{
		Type:      EventBlogPostPublished,
		ID:        id,
		Slug:      post.Slug,
		Title:     post.Title,
		Category:  post.Category,
		Author:    post.Author,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	p.hub.Broadcast(b)
}
