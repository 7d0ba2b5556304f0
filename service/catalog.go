package service

import (
	"Storefront/apperr"
	"Storefront/models"
	"context"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

type ProductInput struct {
	Name        string
	Description string
	Price       uint
	Category    string
	Image       string
}

type ProductPage struct {
	Products   []models.ProductResponse
	TotalCount int64
}

type CatalogService struct {
	products ProductStore
	cache    ProductCache
	logger   zerolog.Logger
}

// NewCatalogService accepts a nil cache.
func NewCatalogService(products ProductStore, cache ProductCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		cache:    cache,
		logger:   logger,
	}
}

func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return offset, limit
}

// List reads from the cache when it is warm. A cold cache is refilled
// from the database; cache failures only cost a database read.
func (s *CatalogService) List(ctx context.Context, offset, limit int) (ProductPage, error) {
	offset, limit = normalizePage(offset, limit)
	logger := loggerFrom(ctx, &s.logger)

	if s.cache != nil {
		products, total, err := s.cache.Range(ctx, offset, limit)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("product cache read failed")
		case total > 0:
			return ProductPage{Products: products, TotalCount: total}, nil
		default:
			return s.refill(ctx, offset, limit)
		}
	}

	products, total, err := s.products.List(ctx, offset, limit)
	if err != nil {
		return ProductPage{}, err
	}
	return ProductPage{Products: toProductResponses(products), TotalCount: total}, nil
}

func (s *CatalogService) refill(ctx context.Context, offset, limit int) (ProductPage, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return ProductPage{}, err
	}
	all := toProductResponses(products)

	if err := s.cache.Rebuild(ctx, all); err != nil {
		loggerFrom(ctx, &s.logger).Warn().Err(err).Msg("product cache rebuild failed")
	}

	page := []models.ProductResponse{}
	if offset < len(all) {
		page = all[offset:min(offset+limit, len(all))]
	}
	return ProductPage{Products: page, TotalCount: int64(len(all))}, nil
}

func (s *CatalogService) Get(ctx context.Context, id uint) (models.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return models.ProductResponse{}, err
	}
	return product.ToResponse(), nil
}

// ListBySeller always reads the database; the cache only holds the
// global listing.
func (s *CatalogService) ListBySeller(ctx context.Context, sellerID uint) ([]models.ProductResponse, error) {
	products, err := s.products.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Create stores a product sold by sellerID and writes it through to the
// cache.
func (s *CatalogService) Create(ctx context.Context, sellerID uint, input ProductInput) (models.ProductResponse, error) {
	product := models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		Image:       strings.TrimSpace(input.Image),
		UserID:      &sellerID,
	}
	if product.Name == "" || product.Description == "" || product.Category == "" || product.Image == "" {
		return models.ProductResponse{}, apperr.Validation("Name, description, category and image are required")
	}

	if err := s.products.Create(ctx, &product); err != nil {
		return models.ProductResponse{}, err
	}

	created, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return models.ProductResponse{}, err
	}
	resp := created.ToResponse()

	if s.cache != nil {
		if err := s.cache.Put(ctx, resp); err != nil {
			loggerFrom(ctx, &s.logger).Warn().Err(err).Uint("product_id", resp.ID).Msg("product cache write failed")
		}
	}
	return resp, nil
}

func toProductResponses(products []models.Product) []models.ProductResponse {
	resp := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, products[i].ToResponse())
	}
	return resp
}
