package main

import (
	"Storefront/cache"
	"Storefront/config"
	"Storefront/jwt"
	"Storefront/password"
	"Storefront/repository"
	"Storefront/routers"
	"Storefront/service"
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Str("path", *configPath).Msg("cannot load config")
	}
	logger := config.NewLogger(cfg.Log)
	gin.SetMode(cfg.Server.Mode)

	db, err := config.OpenDatabase(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("cannot connect to database")
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	var productCache service.ProductCache
	rdb, err := config.SetupRedisConnection(cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("cannot connect to redis")
	}
	if rdb != nil {
		defer rdb.Close()
		productCache = cache.NewProductCache(rdb, cfg.Redis.CacheTTL)
	} else {
		logger.Info().Msg("redis disabled, catalog reads go to the database")
	}

	issuer, err := newIssuer(cfg.JWT, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load token keys")
	}

	store := repository.NewStore(db)
	hasher := password.NewBcrypt(cfg.BcryptCost)

	router := routers.SetupRouters(routers.Services{
		Account: service.NewAccountService(store.Users, hasher, issuer, logger),
		Catalog: service.NewCatalogService(store.Products, productCache, logger),
		Carts:   service.NewCartService(store, logger),
		Orders:  service.NewOrderService(store, logger),
		Tokens:  issuer,
		Logger:  logger,
	})

	logger.Info().Str("addr", cfg.Server.Addr).Msg("storefront listening")
	if err := router.Run(cfg.Server.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// newIssuer falls back to an in-memory key pair when no key files are
// configured; tokens then stop validating after a restart.
func newIssuer(cfg config.JWTConfig, logger zerolog.Logger) (*jwt.Issuer, error) {
	if cfg.PrivateKeyPath == "" || cfg.PublicKeyPath == "" {
		logger.Warn().Msg("jwt key paths not set, generating an ephemeral key pair")
		return jwt.GenerateIssuer(cfg.TTL)
	}
	return jwt.LoadIssuer(cfg.PrivateKeyPath, cfg.PublicKeyPath, cfg.TTL)
}
