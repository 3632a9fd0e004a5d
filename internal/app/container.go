package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/MBahyeldin/online-shoping/domain"
	"github.com/MBahyeldin/online-shoping/internal/api"
	"github.com/MBahyeldin/online-shoping/internal/config"
	"github.com/MBahyeldin/online-shoping/internal/flow"
	httpx "github.com/MBahyeldin/online-shoping/internal/http"
	"github.com/MBahyeldin/online-shoping/internal/http/handlers"
	"github.com/MBahyeldin/online-shoping/internal/services"
	"github.com/MBahyeldin/online-shoping/internal/storage"
	"github.com/MBahyeldin/online-shoping/internal/store"
)

// Container wires the whole storefront: credential store, API client, stores,
// services, flows and the gin surface.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Creds    domain.CredentialStore
	Client   *api.Client
	Sessions *store.SessionStore
	Cart     *store.CartStore
	AuthSvc  domain.AuthService
	Products domain.ProductService
	CartSvc  domain.CartService
	Orders   domain.OrderService
	OTPFlow  *flow.OTPFlow
	Checkout *flow.CheckoutFlow
	Router   *gin.Engine
}

// NewContainer builds the object graph. The API client's 401 hook is wired to
// the session store so any authorization failure tears the session down
// exactly once, persisted state included.
func NewContainer(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	creds, err := openCredentialStore(cfg)
	if err != nil {
		return nil, err
	}

	var sessions *store.SessionStore
	client, err := api.NewClient(cfg.BackendBaseURL, creds, logger,
		api.WithHTTPClient(&http.Client{Timeout: cfg.BackendTimeout}),
		api.WithUnauthorizedHook(func(ctx context.Context) {
			if sessions != nil {
				if err := sessions.ClearAuth(ctx); err != nil {
					logger.WithError(err).Warn("session teardown failed")
				}
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	sessions = store.NewSessionStore(ctx, creds, logger)

	authSvc := services.NewAuthService(client)
	productSvc := services.NewProductService(client)
	cartSvc := services.NewCartService(client)
	orderSvc := services.NewOrderService(client)

	cart := store.NewCartStore(cartSvc, sessions, logger)
	otpFlow := flow.NewOTPFlow(authSvc, sessions, cfg.ResendCooldown, logger)
	checkout := flow.NewCheckoutFlow(orderSvc, cart, logger)

	authH := handlers.NewAuthHandlers(authSvc, otpFlow, sessions)
	catalogH := handlers.NewCatalogHandlers(productSvc)
	cartH := handlers.NewCartHandlers(cart, sessions, productSvc)
	orderH := handlers.NewOrderHandlers(checkout, orderSvc, sessions)

	router := httpx.BuildRouter(authH, catalogH, cartH, orderH, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Creds:    creds,
		Client:   client,
		Sessions: sessions,
		Cart:     cart,
		AuthSvc:  authSvc,
		Products: productSvc,
		CartSvc:  cartSvc,
		Orders:   orderSvc,
		OTPFlow:  otpFlow,
		Checkout: checkout,
		Router:   router,
	}, nil
}

func openCredentialStore(cfg *config.Config) (domain.CredentialStore, error) {
	if cfg.StorageDriver == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return storage.NewRedisStore(client), nil
	}
	return storage.OpenSQLite(cfg.SQLitePath)
}
