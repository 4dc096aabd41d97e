package cart

import (
	"sync"

	appcatalog "github.com/shopfront/backend/internal/application/catalog"
	domaincart "github.com/shopfront/backend/internal/domain/cart"
	domaincatalog "github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// CartService manages the single demo cart. The cart lives in memory for
// the lifetime of the process; product details are hydrated from the
// catalog on every snapshot so the view always reflects current catalog
// data, while unit prices stay fixed at the value captured when the item
// was added.
type CartService struct {
	catalog *domaincatalog.Catalog
	logger  *zap.Logger

	mu   sync.Mutex
	cart *domaincart.Cart
}

// NewCartService creates a cart service backed by an empty cart
func NewCartService(cat *domaincatalog.Catalog, logger *zap.Logger) *CartService {
	return &CartService{
		catalog: cat,
		logger:  logger,
		cart:    domaincart.New(),
	}
}

// AddToCart adds one unit of the given product to the cart. The product
// must exist in the catalog; out-of-stock products can still be added,
// matching the storefront behavior of leaving stock enforcement to the
// product listing.
func (s *CartService) AddToCart(productID string) (*CartResponse, error) {
	p, err := s.catalog.FindByID(productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(p.ID, p.Price)
	s.logger.Debug("item added to cart",
		zap.String("product_id", p.ID),
		zap.Int("total_items", s.cart.TotalItems()))
	return s.snapshotLocked(), nil
}

// UpdateQuantity sets the quantity for a cart line. Zero or negative
// removes the line; an unknown product id leaves the cart unchanged.
func (s *CartService) UpdateQuantity(productID string, quantity int) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, quantity)
	return s.snapshotLocked()
}

// RemoveFromCart removes a cart line. An unknown product id is a no-op.
func (s *CartService) RemoveFromCart(productID string) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
	return s.snapshotLocked()
}

// ClearCart empties the cart unconditionally
func (s *CartService) ClearCart() *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	return s.snapshotLocked()
}

// Snapshot returns the current cart with product details hydrated from
// the catalog.
func (s *CartService) Snapshot() *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TakeItems returns the current cart items and empties the cart in one
// step, for handing the selection off to checkout. Returns an error when
// the cart is empty.
func (s *CartService) TakeItems() ([]domaincart.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot check out with an empty cart")
	}
	items := s.cart.Items()
	s.cart.Clear()
	return items, nil
}

func (s *CartService) snapshotLocked() *CartResponse {
	items := s.cart.Items()
	resp := &CartResponse{
		Items:             make([]ItemResponse, 0, len(items)),
		TotalItems:        s.cart.TotalItems(),
		TotalPrice:        s.cart.TotalPrice(),
		DisplayTotalPrice: valueobject.NewMoneyUSD(s.cart.TotalPrice()).Display(),
	}
	for _, item := range items {
		line := ItemResponse{
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			UnitPrice:        item.Price,
			DisplayUnitPrice: valueobject.NewMoneyUSD(item.Price).Display(),
			LineTotal:        item.Price * int64(item.Quantity),
		}
		line.DisplayLineTotal = valueobject.NewMoneyUSD(line.LineTotal).Display()
		if p, err := s.catalog.FindByID(item.ProductID); err == nil {
			pr := appcatalog.ToProductResponse(p)
			line.Product = &pr
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}
