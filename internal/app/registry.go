package app

import (
	"fmt"

	"github.com/CodeWithFin/platypus-website/internal/cart"
	"github.com/CodeWithFin/platypus-website/internal/catalog"
	"github.com/CodeWithFin/platypus-website/internal/checkout"
	"github.com/CodeWithFin/platypus-website/internal/config"
	"github.com/CodeWithFin/platypus-website/internal/httpclient"
	"github.com/CodeWithFin/platypus-website/internal/metrics"
	"github.com/CodeWithFin/platypus-website/internal/middleware"
	"github.com/CodeWithFin/platypus-website/internal/notify"
	"github.com/CodeWithFin/platypus-website/internal/order"
	"github.com/CodeWithFin/platypus-website/internal/payment"
	"github.com/CodeWithFin/platypus-website/internal/promotion"
	"github.com/CodeWithFin/platypus-website/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg config.Config, in infra, logger *zap.Logger) error {
	// --- Ambient ---
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	router.Use(middleware.RequestID(), middleware.Session(cfg.JWTSecret))

	toggle := config.NewToggle(cfg.UseMock)

	// --- Backend clients ---
	clients := map[string]*httpclient.Client{}
	for _, name := range []string{"catalog", "orders", "payments", "promotions"} {
		c, err := httpclient.New(httpclient.Options{
			Name:    name,
			BaseURL: cfg.APIBaseURL,
			Timeout: cfg.APITimeout,
			Logger:  logger,
		})
		if err != nil {
			return err
		}
		clients[name] = c
	}

	promos := promotion.DefaultPromotions()
	if cfg.PromoCodes != "" {
		parsed, err := promotion.ParsePromoCodes(cfg.PromoCodes)
		if err != nil {
			return fmt.Errorf("PROMO_CODES: %w", err)
		}
		promos = parsed
	}

	// --- Services ---
	offlineCatalog := catalog.NewMock()
	catalogSvc := catalog.NewSwitch(toggle, offlineCatalog,
		catalog.WithOfflineFallback(catalog.NewRemote(clients["catalog"]), offlineCatalog, logger))
	orderSvc := order.NewSwitch(toggle, order.NewMock(in.storage), order.NewRemote(clients["orders"]))
	paymentSvc := payment.NewSwitch(toggle, payment.NewMock(), payment.NewRemote(clients["payments"]))
	promotionSvc := promotion.NewSwitch(toggle, promotion.NewStatic(promos...), promotion.NewRemote(clients["promotions"]))

	carts := cart.NewRegistry()
	notifier := notify.NewRecorder(logger)
	handoff := order.NewHandoff(in.storage, logger)

	wishlistSvc := wishlist.NewService(wishlist.Deps{
		Storage: in.storage,
		Catalog: catalogSvc,
		Cart:    cart.Adder{Registry: carts, Catalog: catalogSvc},
		Logger:  logger,
	})

	checkoutMgr := checkout.NewManager(checkout.Deps{
		Carts:              carts,
		Orders:             orderSvc,
		Payments:           paymentSvc,
		Promotions:         promotionSvc,
		Handoff:            handoff,
		Notifier:           notifier,
		Events:             in.events,
		Metrics:            m,
		Threshold:          cfg.FreeDeliveryThreshold,
		SubmitTimeout:      cfg.SubmitTimeout,
		PaymentStatusDelay: cfg.PaymentStatusDelay,
		Logger:             logger,
	})

	// --- Handlers ---
	configHandler := config.NewHandler(toggle, logger)
	catalogHandler := catalog.NewHandler(catalogSvc, notifier, logger)
	cartHandler := cart.NewHandler(cart.Deps{
		Registry:   carts,
		Catalog:    catalogSvc,
		Promotions: promotionSvc,
		Threshold:  cfg.FreeDeliveryThreshold,
		Metrics:    m,
		Logger:     logger,
	})
	wishlistHandler := wishlist.NewHandler(wishlistSvc)
	orderHandler := order.NewHandler(orderSvc, handoff, logger)
	checkoutHandler := checkout.NewHandler(checkoutMgr, m, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		config.RegisterRoutes(api, configHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
		order.RegisterRoutes(api, orderHandler)
		notify.RegisterRoutes(api, notifier)
	}
	return nil
}
