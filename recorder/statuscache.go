package recorder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Nandu8821/Attendance-Project/constants"
	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/services"
)

// StatusRepository is the injected store for cached daily statuses and the
// single active-email marker. Entries age out after the freshness window;
// the server query stays the source of truth.
type StatusRepository interface {
	GetStatus(ctx context.Context, email, day string) (*dto.DailyStatus, error)
	SetStatus(ctx context.Context, email, day string, status dto.DailyStatus) error
	ClearStatus(ctx context.Context, email, day string) error
	ActiveEmail(ctx context.Context) (string, error)
	SetActiveEmail(ctx context.Context, email string) error
}

func statusKey(email, day string) string {
	return fmt.Sprintf("attendance:%s:%s", email, day)
}

const activeEmailKey = "attendance:activeEmail"

// RedisStatusRepository keeps statuses in Redis with the freshness window
// enforced by key TTLs.
type RedisStatusRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStatusRepository creates a RedisStatusRepository with the default
// 24h window.
func NewRedisStatusRepository(rdb *redis.Client) *RedisStatusRepository {
	return &RedisStatusRepository{rdb: rdb, ttl: constants.StatusTTL}
}

func (r *RedisStatusRepository) GetStatus(ctx context.Context, email, day string) (*dto.DailyStatus, error) {
	var status dto.DailyStatus
	found, err := services.GetFromRedis(ctx, r.rdb, statusKey(email, day), &status)
	if err != nil || !found {
		return nil, err
	}
	return &status, nil
}

func (r *RedisStatusRepository) SetStatus(ctx context.Context, email, day string, status dto.DailyStatus) error {
	return services.SetToRedis(ctx, r.rdb, statusKey(email, day), status, r.ttl)
}

func (r *RedisStatusRepository) ClearStatus(ctx context.Context, email, day string) error {
	return services.DeleteFromRedis(ctx, r.rdb, statusKey(email, day))
}

func (r *RedisStatusRepository) ActiveEmail(ctx context.Context) (string, error) {
	var email string
	found, err := services.GetFromRedis(ctx, r.rdb, activeEmailKey, &email)
	if err != nil || !found {
		return "", err
	}
	return email, nil
}

func (r *RedisStatusRepository) SetActiveEmail(ctx context.Context, email string) error {
	return services.SetToRedis(ctx, r.rdb, activeEmailKey, email, r.ttl)
}

// MemoryStatusRepository is the in-process fallback used in tests and when
// Redis is unreachable.
type MemoryStatusRepository struct {
	mu          sync.Mutex
	statuses    map[string]dto.DailyStatus
	activeEmail string
	activeSince time.Time
	ttl         time.Duration
	now         func() time.Time
}

// NewMemoryStatusRepository creates an empty MemoryStatusRepository with
// the default 24h window.
func NewMemoryStatusRepository() *MemoryStatusRepository {
	return &MemoryStatusRepository{
		statuses: make(map[string]dto.DailyStatus),
		ttl:      constants.StatusTTL,
		now:      time.Now,
	}
}

// WithClock overrides the repository clock, for tests.
func (m *MemoryStatusRepository) WithClock(now func() time.Time) *MemoryStatusRepository {
	m.now = now
	return m
}

func (m *MemoryStatusRepository) GetStatus(ctx context.Context, email, day string) (*dto.DailyStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status, ok := m.statuses[statusKey(email, day)]
	if !ok {
		return nil, nil
	}
	if !status.Fresh(m.now(), m.ttl) {
		delete(m.statuses, statusKey(email, day))
		return nil, nil
	}
	return &status, nil
}

func (m *MemoryStatusRepository) SetStatus(ctx context.Context, email, day string, status dto.DailyStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[statusKey(email, day)] = status
	return nil
}

func (m *MemoryStatusRepository) ClearStatus(ctx context.Context, email, day string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.statuses, statusKey(email, day))
	return nil
}

func (m *MemoryStatusRepository) ActiveEmail(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeEmail != "" && m.now().Sub(m.activeSince) >= m.ttl {
		m.activeEmail = ""
	}
	return m.activeEmail, nil
}

func (m *MemoryStatusRepository) SetActiveEmail(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeEmail = email
	m.activeSince = m.now()
	return nil
}

// Sweep removes every entry older than the freshness window and returns
// how many were dropped. The midnight cron calls this.
func (m *MemoryStatusRepository) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for key, status := range m.statuses {
		if !status.Fresh(now, m.ttl) {
			delete(m.statuses, key)
			n++
		}
	}
	if m.activeEmail != "" && now.Sub(m.activeSince) >= m.ttl {
		m.activeEmail = ""
		n++
	}
	return n
}
