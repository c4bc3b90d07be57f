package favorites

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// toggleScript flips membership in one round trip so concurrent toggles from
// the same user never both add.
var toggleScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
	redis.call('SREM', KEYS[1], ARGV[1])
	return 0
end
redis.call('SADD', KEYS[1], ARGV[1])
return 1
`)

type RedisStore struct {
	client redis.UniversalClient
	logger *log.Logger
}

func NewRedisStore(client redis.UniversalClient, logger *log.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func Key(userID uuid.UUID) string {
	return "favorites:" + userID.String()
}

func (s *RedisStore) IsFavorite(ctx context.Context, userID uuid.UUID, jobID string) (bool, error) {
	jobID, err := normalizeJobID(jobID)
	if err != nil {
		return false, err
	}
	return s.client.SIsMember(ctx, Key(userID), jobID).Result()
}

func (s *RedisStore) Toggle(ctx context.Context, userID uuid.UUID, jobID string) (bool, error) {
	jobID, err := normalizeJobID(jobID)
	if err != nil {
		return false, err
	}
	n, err := toggleScript.Run(ctx, s.client, []string{Key(userID)}, jobID).Int()
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Favorites] toggle failed user=%s job=%s err=%v", userID, jobID, err)
		}
		return false, err
	}
	return n == 1, nil
}

func (s *RedisStore) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	ids, err := s.client.SMembers(ctx, Key(userID)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}
