package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"isbuldum/internal/domain/job"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	GetByID(ctx context.Context, id string) (job.Listing, error)
	List(ctx context.Context, limit, offset int) ([]job.Listing, error)
}

// DocumentListingRepository reads listings from the "jobs" collection.
type DocumentListingRepository struct {
	docs DocumentRepository
}

func NewDocumentListingRepository(docs DocumentRepository) *DocumentListingRepository {
	return &DocumentListingRepository{docs: docs}
}

func (r *DocumentListingRepository) GetByID(ctx context.Context, id string) (job.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return job.Listing{}, ErrListingNotFound
	}
	var l job.Listing
	if err := r.docs.Get(ctx, job.CollectionPath, id, &l); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return job.Listing{}, ErrListingNotFound
		}
		return job.Listing{}, err
	}
	if l.ID == "" {
		l.ID = id
	}
	return l, nil
}

func (r *DocumentListingRepository) List(ctx context.Context, limit, offset int) ([]job.Listing, error) {
	raw, err := r.docs.List(ctx, job.CollectionPath, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]job.Listing, 0, len(raw))
	for _, b := range raw {
		var l job.Listing
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
