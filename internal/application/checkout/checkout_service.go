package checkout

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	appcart "github.com/shopfront/backend/internal/application/cart"
	domaincart "github.com/shopfront/backend/internal/domain/cart"
	domaincatalog "github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// Order statuses as shown in the order history
const (
	StatusProcessing = "Processing"
	StatusInTransit  = "In Transit"
	StatusDelivered  = "Delivered"
)

// Order is a completed checkout. Orders are held in memory only; this is
// a demo flow, not an order management system.
type Order struct {
	ID         string            `json:"id"`
	Number     string            `json:"number"`
	Status     string            `json:"status"`
	Items      []domaincart.Item `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
	PlacedAt   time.Time         `json:"placed_at"`
}

// CheckoutService turns the cart into orders. Placing an order empties
// the cart; the order history starts with a few seeded past orders so
// the storefront has something to show before the first checkout.
type CheckoutService struct {
	cart    *appcart.CartService
	catalog *domaincatalog.Catalog
	logger  *zap.Logger
	now     func() time.Time

	mu     sync.Mutex
	orders []Order // newest first
	seq    int
}

// NewCheckoutService creates a checkout service seeded with demo orders
func NewCheckoutService(cartSvc *appcart.CartService, cat *domaincatalog.Catalog, logger *zap.Logger) *CheckoutService {
	s := &CheckoutService{
		cart:    cartSvc,
		catalog: cat,
		logger:  logger,
		now:     time.Now,
	}
	s.seedOrders()
	return s
}

// PlaceOrder completes checkout for the current cart contents. The form
// is already validated by the transport layer; the only domain rule here
// is that the cart must not be empty. On success the cart is emptied and
// the new order appears at the head of the history.
func (s *CheckoutService) PlaceOrder(form *CheckoutForm) (*OrderResponse, error) {
	items, err := s.cart.TakeItems()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	order := Order{
		ID:       uuid.NewString(),
		Number:   fmt.Sprintf("ORD-%d-%03d", s.now().Year(), s.seq),
		Status:   StatusProcessing,
		Items:    items,
		PlacedAt: s.now(),
	}
	for _, item := range items {
		order.TotalItems += item.Quantity
		order.TotalPrice += item.Price * int64(item.Quantity)
	}
	s.orders = append([]Order{order}, s.orders...)

	s.logger.Info("order placed",
		zap.String("order_number", order.Number),
		zap.Int("items", order.TotalItems),
		zap.Int64("total", order.TotalPrice),
		zap.String("city", form.City))

	resp := s.toResponse(&order)
	return &resp, nil
}

// ListOrders returns the order history, newest first
func (s *CheckoutService) ListOrders() []OrderResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]OrderResponse, len(s.orders))
	for i := range s.orders {
		out[i] = s.toResponse(&s.orders[i])
	}
	return out
}

// GetOrder returns one order by its public order number
func (s *CheckoutService) GetOrder(number string) (*OrderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].Number == number {
			resp := s.toResponse(&s.orders[i])
			return &resp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *CheckoutService) toResponse(o *Order) OrderResponse {
	resp := OrderResponse{
		ID:                o.ID,
		Number:            o.Number,
		Status:            o.Status,
		Items:             make([]OrderItemResponse, 0, len(o.Items)),
		TotalItems:        o.TotalItems,
		TotalPrice:        o.TotalPrice,
		DisplayTotalPrice: valueobject.NewMoneyUSD(o.TotalPrice).Display(),
		PlacedAt:          o.PlacedAt,
	}
	for _, item := range o.Items {
		line := OrderItemResponse{
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			UnitPrice:        item.Price,
			DisplayUnitPrice: valueobject.NewMoneyUSD(item.Price).Display(),
		}
		if p, err := s.catalog.FindByID(item.ProductID); err == nil {
			line.Title = p.Title
			line.Image = p.Image
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}

// seedOrders fills the history with past demo orders so the orders page
// is populated before any checkout happens.
func (s *CheckoutService) seedOrders() {
	year := s.now().Year()
	seeds := []struct {
		status string
		age    time.Duration
		items  []domaincart.Item
	}{
		{StatusDelivered, 21 * 24 * time.Hour, []domaincart.Item{{ProductID: "5", Price: 1499, Quantity: 1}, {ProductID: "11", Price: 2499, Quantity: 2}}},
		{StatusInTransit, 5 * 24 * time.Hour, []domaincart.Item{{ProductID: "9", Price: 9999, Quantity: 1}}},
		{StatusProcessing, 24 * time.Hour, []domaincart.Item{{ProductID: "3", Price: 29990, Quantity: 1}}},
	}

	// oldest first so the newest-first ordering holds after prepending
	for _, seed := range seeds {
		s.seq++
		order := Order{
			ID:       uuid.NewString(),
			Number:   fmt.Sprintf("ORD-%d-%03d", year, s.seq),
			Status:   seed.status,
			Items:    seed.items,
			PlacedAt: s.now().Add(-seed.age),
		}
		for _, item := range seed.items {
			order.TotalItems += item.Quantity
			order.TotalPrice += item.Price * int64(item.Quantity)
		}
		s.orders = append([]Order{order}, s.orders...)
	}
}
