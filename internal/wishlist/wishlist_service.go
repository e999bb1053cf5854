package wishlist

import (
	"context"
	"strings"
	"sync"

	"github.com/CodeWithFin/platypus-website/internal/catalog"
	"github.com/CodeWithFin/platypus-website/internal/storage"

	"go.uber.org/zap"
)

// CartAdder puts one unit of a product into the owner's cart.
type CartAdder interface {
	AddToCart(ctx context.Context, owner, productID string) error
}

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, owner string, q ListQuery) (WishlistResponse, error)
	Stats(ctx context.Context, owner string) (Stats, error)
	Get(ctx context.Context, owner, productID string) (Entry, error)
	Add(ctx context.Context, owner, productID string) (Entry, error)
	Remove(ctx context.Context, owner, productID string) (Entry, error)
	Clear(ctx context.Context, owner string) error
	MoveToCart(ctx context.Context, owner, productID string) (Entry, error)
}

type service struct {
	storage storage.Storage
	catalog catalog.Catalog
	cart    CartAdder
	logger  *zap.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

type Deps struct {
	Storage storage.Storage
	Catalog catalog.Catalog
	Cart    CartAdder
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Storage == nil {
		panic("storage cannot be nil")
	}
	if deps.Catalog == nil {
		panic("catalog cannot be nil")
	}
	if deps.Cart == nil {
		panic("cart adder cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		storage: deps.Storage,
		catalog: deps.Catalog,
		cart:    deps.Cart,
		logger:  deps.Logger.Named("wishlist"),
		stores:  make(map[string]*Store),
	}
}

// store loads the owner's wishlist once and keeps it for later requests.
func (s *service) store(ctx context.Context, owner string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[owner]
	if !ok {
		st = Load(ctx, s.storage, owner, s.logger)
		s.stores[owner] = st
	}
	return st
}

func (s *service) List(ctx context.Context, owner string, q ListQuery) (WishlistResponse, error) {
	f, err := q.toFilter()
	if err != nil {
		return WishlistResponse{}, err
	}

	st := s.store(ctx, owner)
	if q.SortBy != "" {
		if err := st.Sort(ctx, q.SortBy, q.Order); err != nil {
			return WishlistResponse{}, err
		}
	}

	items := st.Filter(f)
	return WishlistResponse{Items: items, ItemCount: len(items)}, nil
}

func (s *service) Stats(ctx context.Context, owner string) (Stats, error) {
	return s.store(ctx, owner).Stats(), nil
}

func (s *service) Get(ctx context.Context, owner, productID string) (Entry, error) {
	e, ok := s.store(ctx, owner).Get(productID)
	if !ok {
		return Entry{}, ErrItemNotFound
	}
	return e, nil
}

func (s *service) Add(ctx context.Context, owner, productID string) (Entry, error) {
	if strings.TrimSpace(productID) == "" {
		return Entry{}, ErrInvalidProductID
	}

	st := s.store(ctx, owner)
	if st.Contains(productID) {
		return Entry{}, ErrItemAlreadyExists
	}

	p, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return Entry{}, err
	}
	return st.Add(ctx, p)
}

func (s *service) Remove(ctx context.Context, owner, productID string) (Entry, error) {
	e, removed, err := s.store(ctx, owner).Remove(ctx, productID)
	if err != nil {
		return Entry{}, err
	}
	if !removed {
		return Entry{}, ErrItemNotFound
	}
	return e, nil
}

func (s *service) Clear(ctx context.Context, owner string) error {
	return s.store(ctx, owner).Clear(ctx)
}

func (s *service) MoveToCart(ctx context.Context, owner, productID string) (Entry, error) {
	logger := s.logger.With(zap.String("owner", owner), zap.String("product_id", productID))

	e, err := s.store(ctx, owner).MoveToCart(ctx, productID, func(ctx context.Context, e Entry) error {
		return s.cart.AddToCart(ctx, owner, e.ProductID)
	})
	if err != nil {
		logger.Warn("move to cart failed", zap.Error(err))
		return Entry{}, err
	}

	logger.Info("moved to cart")
	return e, nil
}
