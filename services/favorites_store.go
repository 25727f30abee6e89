package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/redis/go-redis/v9"
)

// FavoritesStore keeps one favorites set per visitor session.
type FavoritesStore interface {
	// Toggle flips membership of itemID and reports whether it is now a
	// favorite.
	Toggle(ctx context.Context, sessionID, itemID string) (bool, error)
	// List returns the visitor's favorite IDs, sorted.
	List(ctx context.Context, sessionID string) ([]string, error)
}

// ════════════════════════════════════════════════════════════
// In-memory store
// ════════════════════════════════════════════════════════════

type MemoryFavoritesStore struct {
	mu   sync.Mutex
	sets map[string]*catalog.FavoriteSet
}

func NewMemoryFavoritesStore() *MemoryFavoritesStore {
	return &MemoryFavoritesStore{sets: make(map[string]*catalog.FavoriteSet)}
}

func (s *MemoryFavoritesStore) Toggle(_ context.Context, sessionID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[sessionID]
	if !ok {
		set = catalog.NewFavoriteSet()
		s.sets[sessionID] = set
	}
	return set.Toggle(itemID), nil
}

func (s *MemoryFavoritesStore) List(_ context.Context, sessionID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[sessionID]
	if !ok {
		return make([]string, 0), nil
	}
	return set.IDs(), nil
}

// ════════════════════════════════════════════════════════════
// Redis store
// ════════════════════════════════════════════════════════════

const favoritesKeyPrefix = "favorites:"

// toggleScript flips set membership atomically and refreshes the TTL.
// Returns 1 when the member was added, 0 when removed.
var toggleScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	redis.call("SREM", KEYS[1], ARGV[1])
	redis.call("EXPIRE", KEYS[1], ARGV[2])
	return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
redis.call("EXPIRE", KEYS[1], ARGV[2])
return 1
`)

type RedisFavoritesStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisFavoritesStore keeps each session's set for ttl after its last
// toggle.
func NewRedisFavoritesStore(client redis.Cmdable, ttl time.Duration) *RedisFavoritesStore {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisFavoritesStore{client: client, ttl: ttl}
}

func (s *RedisFavoritesStore) Toggle(ctx context.Context, sessionID, itemID string) (bool, error) {
	added, err := toggleScript.Run(ctx, s.client,
		[]string{favoritesKeyPrefix + sessionID},
		itemID, int64(s.ttl/time.Second),
	).Int()
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return added == 1, nil
}

func (s *RedisFavoritesStore) List(ctx context.Context, sessionID string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, favoritesKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	slices.Sort(ids)
	return ids, nil
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var (
	favoritesStore     FavoritesStore
	favoritesStoreOnce sync.Once
)

func InitFavoritesStore(s FavoritesStore) {
	favoritesStore = s
	favoritesStoreOnce = sync.Once{}
}

func GetFavoritesStore() FavoritesStore {
	favoritesStoreOnce.Do(func() {
		if favoritesStore == nil {
			favoritesStore = NewMemoryFavoritesStore()
		}
	})
	return favoritesStore
}
