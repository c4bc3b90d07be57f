package usecase

import (
	"context"
	"fmt"
	"time"
)

type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

func ListingsCacheKey(limit, offset int) string {
	return fmt.Sprintf("jobs:list:%d:%d", limit, offset)
}
