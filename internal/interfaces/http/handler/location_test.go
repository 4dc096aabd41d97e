package handler

import (
	"net/http"
	"testing"

	appidentity "github.com/shopfront/backend/internal/application/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationHandler(t *testing.T) {
	srv := newTestServer(t)

	t.Run("default location before any update", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/delivery-location", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var loc LocationResponse
		decodeData(t, w, &loc)
		assert.Equal(t, appidentity.DefaultDeliveryLocation, loc.Location)
	})

	t.Run("set then get round trips", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, "/api/v1/delivery-location", map[string]any{"location": "Seattle 98101"})
		require.Equal(t, http.StatusOK, w.Code)

		w = srv.do(t, http.MethodGet, "/api/v1/delivery-location", nil)
		var loc LocationResponse
		decodeData(t, w, &loc)
		assert.Equal(t, "Seattle 98101", loc.Location)
	})

	t.Run("missing location returns 400", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, "/api/v1/delivery-location", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("clear restores the default", func(t *testing.T) {
		w := srv.do(t, http.MethodDelete, "/api/v1/delivery-location", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var loc LocationResponse
		decodeData(t, w, &loc)
		assert.Equal(t, appidentity.DefaultDeliveryLocation, loc.Location)
	})
}

func TestSystemHandler(t *testing.T) {
	srv := newTestServer(t)

	t.Run("ping", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/system/ping", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var ping PingResponse
		decodeData(t, w, &ping)
		assert.Equal(t, "pong", ping.Message)
		assert.NotEmpty(t, ping.Timestamp)
	})

	t.Run("info", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/system/info", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var info SystemInfoResponse
		decodeData(t, w, &info)
		assert.Equal(t, "Shopfront Backend API", info.Name)
		assert.NotEmpty(t, info.GoVersion)
	})
}
