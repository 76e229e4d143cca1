// Package app assembles the storefront from configuration: cart storage, the optional
// shop backend, Redis and Postgres clients, services and the gin router.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/config"
	"github.com/diyahomestylist/poppyandteal/controllers"
	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/middleware"
	"github.com/diyahomestylist/poppyandteal/routes"
	"github.com/diyahomestylist/poppyandteal/services"
	"github.com/diyahomestylist/poppyandteal/storage"
)

type App struct {
	Router   *gin.Engine
	Storage  storage.Backend
	Sync     *cartstore.Sync
	Carts    *services.CartService
	Catalog  *services.CatalogService
	Sessions *services.SessionStore

	cfg   *config.Config
	log   *logger.Logger
	redis *redis.Client
	pool  *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, log: log}

	if cfg.RedisConfigured() {
		rdb, err := config.ConnectRedis(ctx, cfg)
		if err != nil {
			if cfg.CartStorage == storage.DriverRedis {
				return nil, err
			}
			log.Warn("redis unavailable, continuing without product cache", "error", err)
		} else {
			a.redis = rdb
		}
	}

	store, err := a.openStorage(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Storage = store
	a.Sync = cartstore.NewSync(store, log)

	var client *backend.Client
	var orders services.OrderSubmitter
	var source services.ProductSource
	if cfg.BackendURL != "" {
		client = backend.New(cfg.BackendURL, cfg.BackendTimeout, backend.WithLogger(log))
		orders = client
		source = client
	} else {
		log.Warn("BACKEND_URL not set, serving the seed catalog and demo checkout")
	}

	var email *services.EmailService
	if cfg.SMTPHost != "" {
		email, err = services.NewEmailService(cfg)
		if err != nil {
			log.Warn("contact emails disabled", "error", err)
		}
	}

	a.Catalog, err = services.NewCatalogService(source, a.redis, cfg.CatalogCacheTTL, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Sessions = services.NewSessionStore(store, log)
	a.Carts = services.NewCartService(store, a.Sync, a.Catalog, a.Sessions, orders, log)
	contacts := services.NewContactService(client, email, a.Catalog, cfg.WhatsAppOrderPhone, cfg.WhatsAppContactPhone, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORSMiddleware(cfg))

	routes.SetupRoutes(router, cfg, a.Sessions, routes.Controllers{
		Auth:    &controllers.AuthController{Auth: services.NewAuthService(client, a.Sessions, a.Carts, log)},
		Product: &controllers.ProductController{Catalog: a.Catalog, Contacts: contacts},
		Cart:    &controllers.CartController{Carts: a.Carts},
		Order:   &controllers.OrderController{Orders: services.NewOrderService(client, a.Sessions)},
		Contact: &controllers.ContactController{Contacts: contacts},
		Admin:   &controllers.AdminController{Admin: services.NewAdminService(client, a.Sessions, a.Catalog, log)},
	})
	a.Router = router

	log.Info("storefront ready", "cart_storage", cfg.CartStorage, "backend", cfg.BackendURL != "", "redis", a.redis != nil)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (storage.Backend, error) {
	switch a.cfg.CartStorage {
	case storage.DriverMemory:
		return storage.NewMemory(), nil
	case storage.DriverBolt:
		return storage.OpenBolt(a.cfg.BoltPath)
	case storage.DriverRedis:
		if a.redis == nil {
			return nil, fmt.Errorf("CART_STORAGE=redis requires REDIS_URL or REDIS_ADDR")
		}
		return storage.NewRedis(a.redis, a.cfg.RedisChannel, a.log), nil
	case storage.DriverPostgres:
		pool, err := config.ConnectDB(ctx, a.cfg)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		return storage.NewPostgres(pool, a.log), nil
	default:
		return nil, fmt.Errorf("unknown CART_STORAGE %q", a.cfg.CartStorage)
	}
}

// Run relays cart changes from storage to attached stores until ctx is done.
func (a *App) Run(ctx context.Context) error {
	return a.Sync.Run(ctx)
}

func (a *App) Close() {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.log.Warn("failed to close cart storage", "error", err)
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
