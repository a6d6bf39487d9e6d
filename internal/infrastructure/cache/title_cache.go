// Package cache holds in-process caches for hot reference data.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
)

const titlesKey = "risk_titles"

// TitleCache fronts the risk title catalog with a short in-memory cache.
// The catalog changes rarely but is read on every risk form load.
type TitleCache struct {
	repo  repository.RiskCatalogRepository
	store *gocache.Cache
}

// NewTitleCache wraps the catalog repository with a TTL cache.
func NewTitleCache(repo repository.RiskCatalogRepository, ttl time.Duration) *TitleCache {
	return &TitleCache{
		repo:  repo,
		store: gocache.New(ttl, 2*ttl),
	}
}

// ListTitles returns the cached title list, loading it on a miss.
func (c *TitleCache) ListTitles(ctx context.Context) ([]*models.RiskTitle, error) {
	if cached, found := c.store.Get(titlesKey); found {
		if titles, ok := cached.([]*models.RiskTitle); ok {
			return titles, nil
		}
	}

	titles, err := c.repo.ListTitles(ctx)
	if err != nil {
		return nil, err
	}
	c.store.Set(titlesKey, titles, gocache.DefaultExpiration)
	return titles, nil
}

// Invalidate drops the cached list after a catalog mutation.
func (c *TitleCache) Invalidate() {
	c.store.Delete(titlesKey)
}
