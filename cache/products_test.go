package cache

import (
	"Storefront/models"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func sampleProducts() []models.ProductResponse {
	return []models.ProductResponse{
		{ID: 3, Name: "oraimo Watch ES 2", Price: 4500, Category: "Watch"},
		{ID: 1, Name: "BoomPop 2", Price: 4000, Category: "Headphones"},
		{ID: 2, Name: "ZL02 Smart Watch", Price: 2690, Category: "Watch"},
	}
}

func TestRangeOnColdCache(t *testing.T) {
	_, client := setupTestRedis(t)
	pc := NewProductCache(client, time.Minute)

	products, total, err := pc.Range(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, products)
}

func TestRebuildOrdersByID(t *testing.T) {
	_, client := setupTestRedis(t)
	pc := NewProductCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, pc.Rebuild(ctx, sampleProducts()))

	products, total, err := pc.Range(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, products, 3)
	require.Equal(t, []uint{1, 2, 3}, []uint{products[0].ID, products[1].ID, products[2].ID})

	page, total, err := pc.Range(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	require.Equal(t, "ZL02 Smart Watch", page[0].Name)

	page, _, err = pc.Range(ctx, 5, 10)
	require.NoError(t, err)
	require.Empty(t, page)
}

func TestRebuildDropsStaleMembers(t *testing.T) {
	mr, client := setupTestRedis(t)
	pc := NewProductCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, pc.Rebuild(ctx, sampleProducts()))
	require.NoError(t, pc.Rebuild(ctx, sampleProducts()[:1]))

	members, err := mr.ZMembers(productsKey)
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestPutReplacesSameID(t *testing.T) {
	_, client := setupTestRedis(t)
	pc := NewProductCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, pc.Rebuild(ctx, sampleProducts()))
	require.NoError(t, pc.Put(ctx, models.ProductResponse{ID: 2, Name: "ZL02 Smart Watch", Price: 2500}))
	require.NoError(t, pc.Put(ctx, models.ProductResponse{ID: 4, Name: "Necklace", Price: 1900}))

	products, total, err := pc.Range(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
	require.Equal(t, uint(2500), products[1].Price)
	require.Equal(t, "Necklace", products[3].Name)
}

func TestRangeSurfacesRedisErrors(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	pc := NewProductCache(client, time.Minute)

	mr.Close()
	_, _, err = pc.Range(context.Background(), 0, 10)
	require.Error(t, err)
}

func TestClear(t *testing.T) {
	mr, client := setupTestRedis(t)
	pc := NewProductCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, pc.Rebuild(ctx, sampleProducts()))
	require.NoError(t, pc.Clear(ctx))
	require.False(t, mr.Exists(productsKey))
}

func TestPutLeavesColdCacheCold(t *testing.T) {
	mr, client := setupTestRedis(t)
	pc := NewProductCache(client, time.Minute)

	require.NoError(t, pc.Put(context.Background(), models.ProductResponse{ID: 1, Name: "BoomPop 2"}))
	require.False(t, mr.Exists(productsKey))
}

func TestRebuildSetsExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	pc := NewProductCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, pc.Rebuild(ctx, sampleProducts()))
	require.Equal(t, time.Minute, mr.TTL(productsKey))

	// Put does not extend the expiry
	require.NoError(t, pc.Put(ctx, models.ProductResponse{ID: 4, Name: "Necklace"}))
	mr.FastForward(2 * time.Minute)
	require.False(t, mr.Exists(productsKey))

	_, total, err := pc.Range(ctx, 0, 10)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestNewProductCacheDefaultTTL(t *testing.T) {
	_, client := setupTestRedis(t)
	require.Equal(t, DefaultTTL, NewProductCache(client, 0).ttl)
}
