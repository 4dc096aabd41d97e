package cart

// Item is a quantity-annotated reference to a catalog product. An item
// only exists while its quantity is at least 1; reducing the quantity to
// zero removes the item from the cart entirely.
type Item struct {
	ProductID string `json:"product_id"`
	Price     int64  `json:"price"` // unit price in minor units, captured at add time
	Quantity  int    `json:"quantity"`
}

// Cart holds the user's in-progress selection as an insertion-ordered
// sequence of items, at most one per product id. Totals are always
// derived from the item sequence; the cart keeps no counters that could
// drift out of sync.
type Cart struct {
	items []Item
}

// New returns an empty cart
func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the given product. If an item for the product
// already exists its quantity is incremented, otherwise a new item is
// appended. AddItem always succeeds.
func (c *Cart) AddItem(productID string, price int64) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{ProductID: productID, Price: price, Quantity: 1})
}

// UpdateQuantity sets the quantity for the item with the given product id.
// A quantity of zero or less removes the item, same as RemoveItem. An
// unknown product id is a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes the item with the given product id if present.
// An unknown product id is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the item sequence in insertion order
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty returns true when the cart holds no items
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalItems returns the sum of quantities over all items, recomputed
// from the item sequence.
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.items {
		total += c.items[i].Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all items in
// minor units, recomputed from the item sequence.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for i := range c.items {
		total += c.items[i].Price * int64(c.items[i].Quantity)
	}
	return total
}
