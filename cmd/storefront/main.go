package main

import (
	"context"
	stdlog "log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront-service/internal/app/storefront/bus"
	"github.com/shopeasy/storefront-service/internal/app/storefront/cart"
	"github.com/shopeasy/storefront-service/internal/app/storefront/catalog"
	"github.com/shopeasy/storefront-service/internal/app/storefront/contracts"
	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
	"github.com/shopeasy/storefront-service/internal/app/storefront/repo"
	"github.com/shopeasy/storefront-service/internal/pkg/clock"
	"github.com/shopeasy/storefront-service/internal/pkg/format"
	"github.com/shopeasy/storefront-service/internal/pkg/logx"
)

// AppConfig defines all configurable parameters for the storefront,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `default:"development"`

	// CatalogSource is an HTTP(S) URL or a local file path holding the
	// product catalog JSON.
	CatalogSource string `split_words:"true" default:"data/products.json"`

	// CartFile backs the cart when no Redis URL is configured.
	CartFile string `split_words:"true" default:"cart.json"`
	CartKey  string `split_words:"true" default:"cart"`

	Redis repo.RedisConfig
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		stdlog.Printf("no .env file loaded: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		stdlog.Fatalf("process environment config: %v", err)
	}

	logger := logx.New(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Durable cart storage: Redis when configured, a local JSON file
	// otherwise.
	var storage contracts.CartStorage
	if cfg.Redis.URL != "" {
		client, err := cfg.Redis.New()
		if err != nil {
			logger.Fatal().Err(err).Msg("initialise redis client")
		}
		defer client.Close()
		storage = repo.NewRedisCartRepo(client, cfg.CartKey)
		logger.Info().Str("key", cfg.CartKey).Msg("cart storage: redis")
	} else {
		storage = repo.NewFileCartRepo(cfg.CartFile)
		logger.Info().Str("file", cfg.CartFile).Msg("cart storage: file")
	}

	clk := clock.RealClock{}
	events := bus.New()
	cat := catalog.New()
	loader := catalog.NewLoader(cfg.CatalogSource, cat, events, clk, logger)

	// Demo "views": a catalog listener and a cart badge counter wired
	// the way browser pages would subscribe.
	events.Subscribe(domain.EventCatalogLoaded, func(ev domain.Event) {
		e := ev.(*domain.CatalogLoadedEvent)
		logger.Info().
			Int("products", len(e.Products)).
			Bool("fallback", e.FromFallback).
			Msg("catalog loaded")
	})
	events.Subscribe(domain.EventCartChanged, func(ev domain.Event) {
		e := ev.(*domain.CartChangedEvent)
		logger.Info().Int("badge", e.ItemCount).Msg("cart changed")
	})

	loader.Load(ctx)

	store := cart.NewStore(ctx, cat, storage, events, clk, logger)
	checkout := cart.NewCheckout(store, cat, clk, logger)

	runSession(ctx, logger, cat, store, checkout)
}

// runSession drives a scripted storefront session through the public
// APIs: listing with filters, a detail view, cart mutations and a
// mocked checkout.
func runSession(ctx context.Context, logger zerolog.Logger, cat *catalog.Catalog, store *cart.Store, checkout *cart.Checkout) {
	criteria := catalog.Criteria{
		Category: "electronics",
		MaxPrice: decimal.NewFromInt(800),
		SortBy:   catalog.SortByRating,
	}
	for _, p := range catalog.Apply(cat.Products(), criteria) {
		logger.Info().
			Str("name", p.Name).
			Str("price", format.Price(p.Price)).
			Str("rating", format.Stars(p.Rating)).
			Str("stock", p.StockLabel()).
			Msg("listing")
	}

	if p, ok := cat.ByID(1); ok {
		logger.Info().
			Str("name", p.Name).
			Int("discount_percent", p.DiscountPercent()).
			Msg("detail view")
		for _, rel := range cat.Related(p.ID, 4) {
			logger.Info().Str("name", rel.Name).Msg("related product")
		}
	}

	for _, add := range []struct{ id, qty int }{{1, 1}, {1, 1}, {2, 1}, {7, 1}} {
		if err := store.AddItem(ctx, add.id, add.qty); err != nil {
			logger.Warn().Err(err).Int("product_id", add.id).Msg("add to cart rejected")
		}
	}
	if err := store.UpdateQuantity(ctx, 2, 3); err != nil {
		logger.Warn().Err(err).Msg("quantity update rejected")
	}
	store.RemoveItem(ctx, 2)

	summary := checkout.Summary()
	logger.Info().
		Str("subtotal", format.Price(summary.Subtotal)).
		Str("shipping", format.Price(summary.Shipping)).
		Str("tax", format.Price(summary.Tax)).
		Str("total", format.Price(summary.Total)).
		Str("savings", format.Price(summary.Savings)).
		Msg("order summary")

	order, err := checkout.PlaceOrder(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("checkout failed")
		return
	}
	logger.Info().
		Str("order_id", order.ID).
		Time("delivery_estimate", order.DeliveryEstimate).
		Int("badge", store.ItemCount()).
		Msg("session complete")
}
