package roulette

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// rouletteCache holds recently served roulettes (with prizes) for kiosk
// display reads. Stock shown from cache may lag a draw by up to the TTL;
// the draw path itself always reads inside its own transaction.
type rouletteCache struct {
	lru *expirable.LRU[uuid.UUID, *domain.Roulette]
}

func newRouletteCache(size int, ttl time.Duration) *rouletteCache {
	return &rouletteCache{
		lru: expirable.NewLRU[uuid.UUID, *domain.Roulette](size, nil, ttl),
	}
}

func (c *rouletteCache) Get(id uuid.UUID) (*domain.Roulette, bool) {
	return c.lru.Get(id)
}

func (c *rouletteCache) Set(id uuid.UUID, roulette *domain.Roulette) {
	c.lru.Add(id, roulette)
}

func (c *rouletteCache) Invalidate(id uuid.UUID) {
	c.lru.Remove(id)
}
