package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/diyahomestylist/poppyandteal/data"
	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/models"
)

const (
	productCacheKey    = "products_list_all"
	productCachePrefix = "products_list_*"
	backendFetchLimit  = 100
)

type ProductSource interface {
	Products(ctx context.Context, f models.ProductFilter) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// CatalogService serves products from the shop backend when one is configured and from the
// embedded seed catalog otherwise, or whenever the backend fails.
type CatalogService struct {
	source   ProductSource
	seed     []models.Product
	cache    *redis.Client
	cacheTTL time.Duration
	log      *logger.Logger
}

func NewCatalogService(source ProductSource, cache *redis.Client, cacheTTL time.Duration, log *logger.Logger) (*CatalogService, error) {
	seed, err := data.Catalog()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &CatalogService{
		source:   source,
		seed:     seed,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.With("service", "catalog"),
	}, nil
}

func (s *CatalogService) List(ctx context.Context, f models.ProductFilter) []models.Product {
	if f.Limit < 1 {
		f.Limit = 50
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Skip < 0 {
		f.Skip = 0
	}

	matched := []models.Product{}
	for _, p := range s.all(ctx) {
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		matched = append(matched, p)
	}
	return page(matched, f.Skip, f.Limit)
}

func (s *CatalogService) Featured(ctx context.Context, limit int) []models.Product {
	if limit < 1 {
		limit = 6
	}
	if limit > 20 {
		limit = 20
	}
	featured := []models.Product{}
	for _, p := range s.all(ctx) {
		if p.Featured && p.InStock {
			featured = append(featured, p)
		}
	}
	return page(featured, 0, limit)
}

func (s *CatalogService) Get(ctx context.Context, id models.ProductID) (*models.Product, error) {
	for _, p := range s.all(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Categories returns "All" followed by every category in first-seen order.
func (s *CatalogService) Categories(ctx context.Context) []string {
	var names []string
	if s.source != nil {
		fetched, err := s.source.Categories(ctx)
		if err != nil {
			s.log.Warn("failed to fetch categories, deriving from products", "error", err)
		} else {
			names = fetched
		}
	}
	if names == nil {
		for _, p := range s.all(ctx) {
			names = append(names, p.Category)
		}
	}

	seen := map[string]bool{"All": true}
	categories := []string{"All"}
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		categories = append(categories, name)
	}
	return categories
}

// Search is a case-insensitive substring match over name, category and description. An
// empty query matches nothing.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []models.Product{}
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	results := []models.Product{}
	for _, p := range s.all(ctx) {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			results = append(results, p)
		}
		if len(results) == limit {
			break
		}
	}
	return results
}

func (s *CatalogService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, productCachePrefix, 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warn("failed to invalidate product cache", "error", err)
	}
}

func (s *CatalogService) all(ctx context.Context) []models.Product {
	if s.source == nil {
		return s.seed
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productCacheKey).Result()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products
			}
		}
	}

	products, err := s.source.Products(ctx, models.ProductFilter{Limit: backendFetchLimit})
	if err != nil {
		s.log.Warn("failed to fetch products, serving seed catalog", "error", err)
		return s.seed
	}

	if s.cache != nil {
		if raw, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, productCacheKey, string(raw), s.cacheTTL)
		}
	}
	return products
}

func page(products []models.Product, skip, limit int) []models.Product {
	if skip >= len(products) {
		return []models.Product{}
	}
	end := skip + limit
	if end > len(products) {
		end = len(products)
	}
	return products[skip:end]
}
