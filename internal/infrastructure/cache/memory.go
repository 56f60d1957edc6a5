package cache

import (
	"context"
	"sync"
	"time"

	"github.com/NotSleepp/possbien/internal/application/ports"
)

var (
	_ ports.PermissionCache = (*MemoryPermissionCache)(nil)
	_ ports.TokenBlacklist  = (*MemoryTokenBlacklist)(nil)
)

type entry struct {
	codes   []string
	expires time.Time
}

// MemoryPermissionCache caché por proceso; válida con una sola instancia de la API.
type MemoryPermissionCache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryPermissionCache(ttl time.Duration) *MemoryPermissionCache {
	if ttl <= 0 {
		ttl = PermissionTTL
	}
	return &MemoryPermissionCache{items: make(map[string]entry), ttl: ttl, now: time.Now}
}

func (c *MemoryPermissionCache) Get(_ context.Context, roleID string) ([]string, bool, error) {
	c.mu.RLock()
	e, ok := c.items[roleID]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.expires) {
		return nil, false, nil
	}
	return append([]string{}, e.codes...), true, nil
}

func (c *MemoryPermissionCache) Set(_ context.Context, roleID string, codes []string) error {
	c.mu.Lock()
	c.items[roleID] = entry{codes: append([]string{}, codes...), expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryPermissionCache) Invalidate(_ context.Context, roleID string) error {
	c.mu.Lock()
	delete(c.items, roleID)
	c.mu.Unlock()
	return nil
}

// MemoryTokenBlacklist lista negra por proceso. Las entradas vencidas se purgan al escribir.
type MemoryTokenBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	users   map[string]userMark
	now     func() time.Time
}

type userMark struct {
	at      int64
	expires time.Time
}

func NewMemoryTokenBlacklist() *MemoryTokenBlacklist {
	return &MemoryTokenBlacklist{revoked: make(map[string]time.Time), users: make(map[string]userMark), now: time.Now}
}

func (b *MemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	for k, exp := range b.revoked {
		if !now.Before(exp) {
			delete(b.revoked, k)
		}
	}
	b.revoked[jti] = now.Add(ttl)
	return nil
}

func (b *MemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.revoked[jti]
	return ok && b.now().Before(exp), nil
}

func (b *MemoryTokenBlacklist) RevokeUser(_ context.Context, userID string, at time.Time, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	for k, m := range b.users {
		if !now.Before(m.expires) {
			delete(b.users, k)
		}
	}
	mark := userMark{at: at.Unix(), expires: now.Add(ttl)}
	if prev, ok := b.users[userID]; ok && prev.at > mark.at {
		mark.at = prev.at
	}
	b.users[userID] = mark
	return nil
}

func (b *MemoryTokenBlacklist) IsUserRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.users[userID]
	if !ok || !b.now().Before(m.expires) {
		return false, nil
	}
	return issuedAt.Unix() <= m.at, nil
}
