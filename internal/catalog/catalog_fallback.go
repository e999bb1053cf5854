package catalog

import (
	"context"
	"sync/atomic"

	"github.com/CodeWithFin/platypus-website/internal/httpclient"

	"go.uber.org/zap"
)

type offlineKey struct{}

// TrackOffline returns a context under which a fallback catalog records
// that it served offline data. served reports whether that happened.
func TrackOffline(ctx context.Context) (_ context.Context, served func() bool) {
	flag := new(atomic.Bool)
	return context.WithValue(ctx, offlineKey{}, flag), flag.Load
}

func markOffline(ctx context.Context) {
	if flag, ok := ctx.Value(offlineKey{}).(*atomic.Bool); ok {
		flag.Store(true)
	}
}

type fallback struct {
	primary Catalog
	offline Catalog
	logger  *zap.Logger
}

// WithOfflineFallback answers from offline whenever primary cannot be
// reached. Errors carrying a backend reply, such as a 404, pass through.
func WithOfflineFallback(primary, offline Catalog, logger *zap.Logger) Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fallback{primary: primary, offline: offline, logger: logger.Named("catalog.fallback")}
}

func (f *fallback) List(ctx context.Context, params ListParams) ([]Product, error) {
	products, err := f.primary.List(ctx, params)
	if err == nil || !httpclient.IsConnectionError(err) {
		return products, err
	}
	f.logger.Warn("catalog unreachable, serving offline products", zap.Error(err))
	markOffline(ctx)
	return f.offline.List(ctx, params)
}

func (f *fallback) Get(ctx context.Context, id string) (Product, error) {
	p, err := f.primary.Get(ctx, id)
	if err == nil || !httpclient.IsConnectionError(err) {
		return p, err
	}
	f.logger.Warn("catalog unreachable, serving offline product",
		zap.String("product_id", id),
		zap.Error(err),
	)
	markOffline(ctx)
	return f.offline.Get(ctx, id)
}
