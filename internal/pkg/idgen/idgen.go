// Package idgen allocates short numeric identifiers for hotels, packages and users.
package idgen

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"tourism-service/config"
	"tourism-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// ExistsFunc reports whether id is already taken in the store.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// Reserver claims a candidate id for a short time so concurrent creators never pick the same one.
type Reserver interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type Generator interface {
	Next(ctx context.Context, namespace string, exists ExistsFunc) (string, error)
}

type generator struct {
	reserver       Reserver
	length         int
	maxLength      int
	attemptsPerLen int
	ttl            time.Duration
	digits         func(n int) (string, error)
}

func New(cfg *config.IDGenConfig, reserver Reserver) Generator {
	return &generator{
		reserver:       reserver,
		length:         cfg.Length,
		maxLength:      cfg.MaxLength,
		attemptsPerLen: cfg.AttemptsPerLen,
		ttl:            cfg.ReservationTTL,
		digits:         randomDigits,
	}
}

// Next tries attemptsPerLen candidates at each length from length up to maxLength.
func (g *generator) Next(ctx context.Context, namespace string, exists ExistsFunc) (string, error) {
	for length := g.length; length <= g.maxLength; length++ {
		for attempt := 0; attempt < g.attemptsPerLen; attempt++ {
			id, err := g.digits(length)
			if err != nil {
				return "", errors.InternalServerError("error generate id")
			}

			if g.reserver != nil {
				ok, err := g.reserver.Reserve(ctx, fmt.Sprintf("idgen:%s:%s", namespace, id), g.ttl)
				if err != nil {
					return "", errors.InternalServerError("error reserve id")
				}
				if !ok {
					continue
				}
			}

			taken, err := exists(ctx, id)
			if err != nil {
				return "", err
			}
			if !taken {
				return id, nil
			}
		}
	}

	return "", errors.InternalServerError("error generate id: identifier space exhausted")
}

func randomDigits(n int) (string, error) {
	buf := make([]byte, n)
	ten := big.NewInt(10)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf), nil
}

type redisReserver struct {
	client *redis.Client
}

func NewRedisReserver(client *redis.Client) Reserver {
	return &redisReserver{client: client}
}

func (r *redisReserver) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, 1, ttl).Result()
}
