package handler

import (
	"net/http"
	"testing"

	appcart "github.com/shopfront/backend/internal/application/cart"
	appcheckout "github.com/shopfront/backend/internal/application/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutForm() map[string]any {
	return map[string]any{
		"full_name":   "Jane Doe",
		"address":     "1 Main St",
		"city":        "Springfield",
		"postal_code": "12345",
		"country":     "US",
		"card_number": "4111111111111111",
		"card_expiry": "12/27",
		"card_cvv":    "123",
	}
}

func TestCheckoutHandler_PlaceOrder(t *testing.T) {
	t.Run("empty cart returns 422", func(t *testing.T) {
		srv := newTestServer(t)

		w := srv.do(t, http.MethodPost, "/api/v1/checkout", checkoutForm())
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, "ERR_EMPTY_CART", resp.Error.Code)
	})

	t.Run("invalid card number returns 400", func(t *testing.T) {
		srv := newTestServer(t)
		srv.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "1"})

		form := checkoutForm()
		form["card_number"] = "1234"
		w := srv.do(t, http.MethodPost, "/api/v1/checkout", form)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed card expiry returns 400", func(t *testing.T) {
		srv := newTestServer(t)
		srv.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "1"})

		form := checkoutForm()
		form["card_expiry"] = "13/27"
		w := srv.do(t, http.MethodPost, "/api/v1/checkout", form)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("successful checkout creates order and empties cart", func(t *testing.T) {
		srv := newTestServer(t)
		srv.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "1"})
		srv.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "1"})

		w := srv.do(t, http.MethodPost, "/api/v1/checkout", checkoutForm())
		require.Equal(t, http.StatusCreated, w.Code)

		var order appcheckout.OrderResponse
		decodeData(t, w, &order)
		assert.Equal(t, appcheckout.StatusProcessing, order.Status)
		assert.Equal(t, 2, order.TotalItems)
		assert.Equal(t, int64(49980), order.TotalPrice)
		assert.Contains(t, order.Number, "ORD-")

		cartW := srv.do(t, http.MethodGet, "/api/v1/cart", nil)
		var cart appcart.CartResponse
		decodeData(t, cartW, &cart)
		assert.Empty(t, cart.Items)
	})
}

func TestCheckoutHandler_Orders(t *testing.T) {
	srv := newTestServer(t)

	t.Run("history starts with seeded orders", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/orders", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []appcheckout.OrderResponse
		decodeData(t, w, &orders)
		require.Len(t, orders, 3)
		assert.Equal(t, appcheckout.StatusProcessing, orders[0].Status)
		assert.Equal(t, appcheckout.StatusDelivered, orders[2].Status)
	})

	t.Run("order lookup by number", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/orders", nil)
		var orders []appcheckout.OrderResponse
		decodeData(t, w, &orders)

		w = srv.do(t, http.MethodGet, "/api/v1/orders/"+orders[0].Number, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var order appcheckout.OrderResponse
		decodeData(t, w, &order)
		assert.Equal(t, orders[0].ID, order.ID)
	})

	t.Run("unknown order number returns 404", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/orders/ORD-1999-999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
