package payment

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-redis/redis/v8"
)

var ErrSessionNotFound = errors.New("payment session not found")

type SessionStore interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, orderID string) (*Session, error)
}

// NewRedisClient builds a client from a redis:// URL or a bare host:port.
func NewRedisClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}
	return redis.NewClient(opts)
}

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(orderID string) string {
	return "payment_session:" + orderID
}

func (r *RedisSessionStore) Save(ctx context.Context, s *Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshal payment session")
	}
	if err := r.client.Set(ctx, sessionKey(s.OrderID), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "save payment session")
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, orderID string) (*Session, error) {
	val, err := r.client.Get(ctx, sessionKey(orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get payment session")
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, errors.Wrap(err, "unmarshal payment session")
	}
	return &s, nil
}

// MemorySessionStore keeps sessions in process memory for single-node setups.
type MemorySessionStore struct {
	mu       sync.Mutex
	now      func() time.Time
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, s *Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var exp time.Time
	if ttl > 0 {
		exp = m.now().Add(ttl)
	}
	m.sessions[s.OrderID] = memoryEntry{session: *s, expiresAt: exp}
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, orderID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[orderID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.sessions, orderID)
		return nil, ErrSessionNotFound
	}
	s := e.session
	return &s, nil
}
