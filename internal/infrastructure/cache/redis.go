// Package cache implementa la caché de permisos y la lista negra de tokens,
// sobre Redis o en memoria cuando no hay Redis configurado.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/pkg/config"
)

// PermissionTTL vigencia de los códigos de permiso cacheados por rol.
const PermissionTTL = 10 * time.Minute

const (
	permissionPrefix = "pos:permisos:rol:"
	blacklistPrefix  = "pos:token:blacklist:"
	userRevokePrefix = "pos:token:usuario:"
)

var (
	_ ports.PermissionCache = (*RedisPermissionCache)(nil)
	_ ports.TokenBlacklist  = (*RedisTokenBlacklist)(nil)
)

// NewRedisClient crea el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisPermissionCache guarda los códigos de cada rol como JSON con TTL.
type RedisPermissionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPermissionCache(client *redis.Client, ttl time.Duration) *RedisPermissionCache {
	if ttl <= 0 {
		ttl = PermissionTTL
	}
	return &RedisPermissionCache{client: client, ttl: ttl}
}

func (c *RedisPermissionCache) Get(ctx context.Context, roleID string) ([]string, bool, error) {
	val, err := c.client.Get(ctx, permissionPrefix+roleID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("permission cache get: %w", err)
	}
	codes, err := decodeCodes(val)
	if err != nil {
		return nil, false, err
	}
	return codes, true, nil
}

func (c *RedisPermissionCache) Set(ctx context.Context, roleID string, codes []string) error {
	data, err := encodeCodes(codes)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, permissionPrefix+roleID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("permission cache set: %w", err)
	}
	return nil
}

func (c *RedisPermissionCache) Invalidate(ctx context.Context, roleID string) error {
	if err := c.client.Del(ctx, permissionPrefix+roleID).Err(); err != nil {
		return fmt.Errorf("permission cache invalidate: %w", err)
	}
	return nil
}

// encodeCodes nil se guarda como [] para distinguir "rol sin permisos" de un fallo de caché.
func encodeCodes(codes []string) (string, error) {
	if codes == nil {
		codes = []string{}
	}
	data, err := json.Marshal(codes)
	if err != nil {
		return "", fmt.Errorf("encode permission codes: %w", err)
	}
	return string(data), nil
}

func decodeCodes(val string) ([]string, error) {
	codes := []string{}
	if err := json.Unmarshal([]byte(val), &codes); err != nil {
		return nil, fmt.Errorf("decode permission codes: %w", err)
	}
	return codes, nil
}

// RedisTokenBlacklist JTIs revocados por logout; cada llave expira con el token.
type RedisTokenBlacklist struct {
	client *redis.Client
}

func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client}
}

func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}

// RevokeUser guarda el instante (segundos unix) hasta el que se invalidan los tokens del usuario.
// Una marca posterior reemplaza a la anterior.
func (b *RedisTokenBlacklist) RevokeUser(ctx context.Context, userID string, at time.Time, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, userRevokePrefix+userID, strconv.FormatInt(at.Unix(), 10), ttl).Err(); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}

func (b *RedisTokenBlacklist) IsUserRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	at, err := b.client.Get(ctx, userRevokePrefix+userID).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user revocation: %w", err)
	}
	return issuedAt.Unix() <= at, nil
}
