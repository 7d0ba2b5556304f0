// Package cache keeps the product catalog in a Redis sorted set. The score
// of each member is the product ID, so ZRANGE returns products in ID order
// and an offset/limit page maps directly onto a rank range.
package cache

import (
	"Storefront/models"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	productsKey = "products"
	DefaultTTL  = 10 * time.Minute
)

type ProductCache struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// NewProductCache expires the set ttl after each rebuild, so writes that
// raced a rebuild are picked up by the next one.
func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProductCache{rdb: rdb, key: productsKey, ttl: ttl}
}

// Range returns one page and the number of cached products. A zero total
// means the cache is cold.
func (pc *ProductCache) Range(ctx context.Context, offset, limit int) ([]models.ProductResponse, int64, error) {
	total, err := pc.rdb.ZCard(ctx, pc.key).Result()
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || limit <= 0 || int64(offset) >= total {
		return []models.ProductResponse{}, total, nil
	}

	members, err := pc.rdb.ZRange(ctx, pc.key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, err
	}

	products := make([]models.ProductResponse, 0, len(members))
	for _, member := range members {
		var product models.ProductResponse
		if err := json.Unmarshal([]byte(member), &product); err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}
	return products, total, nil
}

// Put adds product, replacing any member already stored under its ID. A
// cold cache is left cold so a partial set never passes for the catalog.
func (pc *ProductCache) Put(ctx context.Context, product models.ProductResponse) error {
	exists, err := pc.rdb.Exists(ctx, pc.key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return nil
	}

	productJSON, err := json.Marshal(product)
	if err != nil {
		return err
	}

	score := strconv.FormatUint(uint64(product.ID), 10)
	_, err = pc.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, pc.key, score, score)
		pipe.ZAdd(ctx, pc.key, redis.Z{
			Score:  float64(product.ID),
			Member: productJSON,
		})
		return nil
	})
	return err
}

// Rebuild replaces the whole set with products.
func (pc *ProductCache) Rebuild(ctx context.Context, products []models.ProductResponse) error {
	members := make([]redis.Z, 0, len(products))
	for _, product := range products {
		productJSON, err := json.Marshal(product)
		if err != nil {
			return err
		}
		members = append(members, redis.Z{
			Score:  float64(product.ID),
			Member: productJSON,
		})
	}

	_, err := pc.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, pc.key)
		if len(members) > 0 {
			pipe.ZAdd(ctx, pc.key, members...)
			pipe.Expire(ctx, pc.key, pc.ttl)
		}
		return nil
	})
	return err
}

func (pc *ProductCache) Clear(ctx context.Context) error {
	return pc.rdb.Del(ctx, pc.key).Err()
}
