package service

import (
	"Storefront/apperr"
	"Storefront/cache"
	"Storefront/models"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCatalogListWithoutCache(t *testing.T) {
	store, _ := newTestStore(t)
	for _, name := range []string{"Necklace", "BoomPop 2", "Watch"} {
		seedProduct(t, store, name, 1000)
	}
	catalog := NewCatalogService(store.Products, nil, zerolog.Nop())

	page, err := catalog.List(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), page.TotalCount)
	require.Len(t, page.Products, 2)
	require.Equal(t, "BoomPop 2", page.Products[0].Name)
}

func TestCatalogListClampsLimit(t *testing.T) {
	offset, limit := normalizePage(-3, 500)
	require.Equal(t, 0, offset)
	require.Equal(t, MaxPageLimit, limit)

	_, limit = normalizePage(0, 0)
	require.Equal(t, DefaultPageLimit, limit)
}

func TestCatalogListFillsCacheThenReadsIt(t *testing.T) {
	store, db := newTestStore(t)
	seedProduct(t, store, "Necklace", 1900)
	seedProduct(t, store, "BoomPop 2", 4000)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	catalog := NewCatalogService(store.Products, cache.NewProductCache(rdb, time.Minute), zerolog.Nop())
	ctx := context.Background()

	page, err := catalog.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), page.TotalCount)
	require.True(t, mr.Exists("products"))

	// rows deleted behind the cache's back are still served from redis
	require.NoError(t, db.Exec("DELETE FROM products").Error)

	page, err = catalog.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), page.TotalCount)
	require.Equal(t, "Necklace", page.Products[0].Name)
}

func TestCatalogListFallsBackWhenRedisIsDown(t *testing.T) {
	store, _ := newTestStore(t)
	seedProduct(t, store, "Necklace", 1900)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	mr.Close()

	catalog := NewCatalogService(store.Products, cache.NewProductCache(rdb, time.Minute), zerolog.Nop())
	page, err := catalog.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalCount)
}

func TestCatalogCreateWritesThrough(t *testing.T) {
	store, _ := newTestStore(t)
	seller := seedUser(t, store, "seller@x.com")
	seedProduct(t, store, "Necklace", 1900)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	catalog := NewCatalogService(store.Products, cache.NewProductCache(rdb, time.Minute), zerolog.Nop())
	ctx := context.Background()

	_, err := catalog.List(ctx, 0, 10)
	require.NoError(t, err)

	created, err := catalog.Create(ctx, seller.ID, ProductInput{
		Name:        "Itel Smart Watch",
		Description: "Bluetooth calling",
		Price:       1999,
		Category:    "Watch",
		Image:       "https://example.com/watch.png",
	})
	require.NoError(t, err)
	require.Equal(t, &seller.ID, created.SellerID)
	require.NotNil(t, created.Seller)
	require.Equal(t, "Seed", created.Seller.Name)

	page, err := catalog.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), page.TotalCount)
	require.Equal(t, created.ID, page.Products[1].ID)
}

func TestCatalogCreateValidates(t *testing.T) {
	store, _ := newTestStore(t)
	catalog := NewCatalogService(store.Products, nil, zerolog.Nop())

	_, err := catalog.Create(context.Background(), 1, ProductInput{Name: "No image", Description: "d", Category: "c"})
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCatalogGet(t *testing.T) {
	store, _ := newTestStore(t)
	product := seedProduct(t, store, "Necklace", 1900)
	catalog := NewCatalogService(store.Products, nil, zerolog.Nop())

	got, err := catalog.Get(context.Background(), product.ID)
	require.NoError(t, err)
	require.Equal(t, uint(1900), got.Price)

	_, err = catalog.Get(context.Background(), product.ID+1)
	require.ErrorIs(t, err, apperr.ErrProductNotFound)
}

func TestCatalogListBySeller(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	seller := seedUser(t, store, "seller@x.com")
	seedProduct(t, store, "Orphan", 50)
	catalog := NewCatalogService(store.Products, nil, zerolog.Nop())

	created, err := catalog.Create(ctx, seller.ID, ProductInput{
		Name:        "Watch",
		Description: "Steel",
		Price:       3000,
		Category:    "Accessories",
		Image:       "https://example.com/watch.png",
	})
	require.NoError(t, err)

	sold, err := catalog.ListBySeller(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, sold, 1)
	require.Equal(t, created.ID, sold[0].ID)
	require.Equal(t, seller.ID, sold[0].Seller.ID)

	sold, err = catalog.ListBySeller(ctx, seller.ID+100)
	require.NoError(t, err)
	require.Empty(t, sold)
}

func TestCatalogCacheHealsAfterExpiry(t *testing.T) {
	store, _ := newTestStore(t)
	seller := seedUser(t, store, "seller@x.com")
	seedProduct(t, store, "Necklace", 1900)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	catalog := NewCatalogService(store.Products, cache.NewProductCache(rdb, time.Minute), zerolog.Nop())
	ctx := context.Background()

	// a product committed while the cache is cold is not written through
	_, err := catalog.Create(ctx, seller.ID, ProductInput{
		Name:        "BoomPop 2",
		Description: "Speaker",
		Price:       4000,
		Category:    "Audio",
		Image:       "https://example.com/boompop.png",
	})
	require.NoError(t, err)
	require.False(t, mr.Exists("products"))

	// a rebuild that read the catalog before that commit
	stale, err := store.Products.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, cache.NewProductCache(rdb, time.Minute).Rebuild(ctx, []models.ProductResponse{stale.ToResponse()}))

	page, err := catalog.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalCount)

	mr.FastForward(2 * time.Minute)

	page, err = catalog.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), page.TotalCount)
}
