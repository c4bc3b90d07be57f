package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	domainblog "isbuldum/internal/domain/blog"
	"isbuldum/internal/domain/job"
)

func TestMemoryDocumentRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryDocumentRepository()

	id, err := r.Create(ctx, domainblog.CollectionPath, domainblog.Post{Title: "Başlık", Tags: []string{}})
	if err != nil || id == "" {
		t.Fatalf("create: id=%q err=%v", id, err)
	}

	var p domainblog.Post
	if err := r.Get(ctx, domainblog.CollectionPath, id, &p); err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Title != "Başlık" {
		t.Fatalf("unexpected post %+v", p)
	}

	if err := r.Get(ctx, domainblog.CollectionPath, "missing", &p); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if _, err := r.Create(ctx, " / ", p); !errors.Is(err, ErrInvalidCollection) {
		t.Fatalf("expected ErrInvalidCollection, got %v", err)
	}
}

func TestMemoryDocumentRepository_ListNewestFirstWithIDs(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryDocumentRepository()
	for _, title := range []string{"a", "b", "c"} {
		if _, err := r.Create(ctx, "notes", map[string]string{"title": title}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	raw, err := r.List(ctx, "notes", 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 records, got %d", len(raw))
	}

	var first map[string]string
	if err := json.Unmarshal(raw[0], &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first["title"] != "c" || first["id"] == "" {
		t.Fatalf("unexpected first record %v", first)
	}

	raw, _ = r.List(ctx, "notes", 2, 2)
	if len(raw) != 1 {
		t.Fatalf("expected 1 record on the second page, got %d", len(raw))
	}
}

func TestDocumentListingRepository(t *testing.T) {
	ctx := context.Background()
	docs := NewMemoryDocumentRepository()
	if err := docs.Put(job.CollectionPath, "a1b2c3d4", job.Listing{Title: "Go Developer", Company: "Acme"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	repo := NewDocumentListingRepository(docs)

	l, err := repo.GetByID(ctx, "a1b2c3d4")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l.ID != "a1b2c3d4" || l.Title != "Go Developer" {
		t.Fatalf("unexpected listing %+v", l)
	}

	if _, err := repo.GetByID(ctx, "nope"); !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}

	items, err := repo.List(ctx, 10, 0)
	if err != nil || len(items) != 1 || items[0].ID != "a1b2c3d4" {
		t.Fatalf("unexpected list %+v err=%v", items, err)
	}
}
