package checkout

import "time"

// CheckoutForm carries the shipping and payment details entered at
// checkout. The demo validates shape only; nothing here is charged or
// shipped anywhere.
type CheckoutForm struct {
	FullName   string `json:"full_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	CardNumber string `json:"card_number" binding:"required,len=16,numeric"`
	CardExpiry string `json:"card_expiry" binding:"required,expiry"`
	CardCVV    string `json:"card_cvv" binding:"required,min=3,max=4,numeric"`
}

// OrderItemResponse is one line of a placed order
type OrderItemResponse struct {
	ProductID        string `json:"product_id"`
	Title            string `json:"title,omitempty"`
	Image            string `json:"image,omitempty"`
	Quantity         int    `json:"quantity"`
	UnitPrice        int64  `json:"unit_price"`
	DisplayUnitPrice string `json:"display_unit_price"`
}

// OrderResponse is the order view returned to the client
type OrderResponse struct {
	ID                string              `json:"id"`
	Number            string              `json:"number"`
	Status            string              `json:"status"`
	Items             []OrderItemResponse `json:"items"`
	TotalItems        int                 `json:"total_items"`
	TotalPrice        int64               `json:"total_price"`
	DisplayTotalPrice string              `json:"display_total_price"`
	PlacedAt          time.Time           `json:"placed_at"`
}
