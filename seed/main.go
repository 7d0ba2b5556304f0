// Command seed wipes the storefront tables and loads sample users,
// products and orders.
package main

import (
	"Storefront/cache"
	"Storefront/config"
	"Storefront/password"
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config file")
	adminPassword := flag.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "password of the seeded admin user; empty skips it")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Str("path", *configPath).Msg("cannot load config")
	}
	logger := config.NewLogger(cfg.Log)

	db, err := config.OpenDatabase(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	s := &seeder{
		db:            db,
		hasher:        password.NewBcrypt(cfg.BcryptCost),
		adminPassword: *adminPassword,
		logger:        logger,
	}

	rdb, err := config.SetupRedisConnection(cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("cannot connect to redis")
	}
	if rdb != nil {
		defer rdb.Close()
		s.cache = cache.NewProductCache(rdb, cfg.Redis.CacheTTL)
	}

	counts, err := s.run(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}

	logger.Info().
		Int("users", counts.Users).
		Int("products", counts.Products).
		Int("orders", counts.Orders).
		Msg("seed complete")
}
