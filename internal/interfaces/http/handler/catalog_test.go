package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListProducts(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list ProductListResponse
	decodeData(t, w, &list)
	assert.Equal(t, catalogSize(t), list.Total)
	assert.Len(t, list.Products, list.Total)
	assert.Equal(t, "All", list.Criteria.Category)
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	srv := newTestServer(t)

	t.Run("known product", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/products/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var product struct {
			Title        string `json:"title"`
			DisplayPrice string `json:"display_price"`
		}
		decodeData(t, w, &product)
		assert.Contains(t, product.Title, "AirPods")
		assert.Equal(t, "$249.90", product.DisplayPrice)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/api/v1/products/unknown", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "ERR_NOT_FOUND", resp.Error.Code)
	})
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []string
	decodeData(t, w, &categories)
	assert.Equal(t, "All", categories[0])
	assert.Contains(t, categories, "Sports & Outdoors")
}

func TestCatalogHandler_UpdateFilters(t *testing.T) {
	t.Run("category filter narrows the list", func(t *testing.T) {
		srv := newTestServer(t)

		w := srv.do(t, http.MethodPatch, "/api/v1/filters", map[string]any{"category": "Books"})
		require.Equal(t, http.StatusOK, w.Code)

		var list ProductListResponse
		decodeData(t, w, &list)
		require.NotZero(t, list.Total)
		for _, p := range list.Products {
			assert.Equal(t, "Books", p.Category)
		}
	})

	t.Run("search query matches case-insensitively", func(t *testing.T) {
		srv := newTestServer(t)

		w := srv.do(t, http.MethodPatch, "/api/v1/filters", map[string]any{"search_query": "KINDLE"})
		require.Equal(t, http.StatusOK, w.Code)

		var list ProductListResponse
		decodeData(t, w, &list)
		require.Equal(t, 1, list.Total)
		assert.Contains(t, list.Products[0].Title, "Kindle")
	})

	t.Run("filters accumulate across requests", func(t *testing.T) {
		srv := newTestServer(t)

		srv.do(t, http.MethodPatch, "/api/v1/filters", map[string]any{"category": "Electronics"})
		w := srv.do(t, http.MethodPatch, "/api/v1/filters", map[string]any{"in_stock_only": true})
		require.Equal(t, http.StatusOK, w.Code)

		var list ProductListResponse
		decodeData(t, w, &list)
		for _, p := range list.Products {
			assert.Equal(t, "Electronics", p.Category)
			assert.True(t, p.InStock)
		}
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		srv := newTestServer(t)

		w := srv.do(t, http.MethodPatch, "/api/v1/filters", map[string]any{"category": "Groceries"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, "ERR_INVALID_INPUT", resp.Error.Code)
	})

	t.Run("rejected update applies none of its fields", func(t *testing.T) {
		srv := newTestServer(t)

		w := srv.do(t, http.MethodPatch, "/api/v1/filters", map[string]any{
			"search_query": "kindle",
			"category":     "Groceries",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = srv.do(t, http.MethodGet, "/api/v1/filters", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var criteria struct {
			SearchQuery string `json:"search_query"`
			Category    string `json:"category"`
		}
		decodeData(t, w, &criteria)
		assert.Empty(t, criteria.SearchQuery)
		assert.Equal(t, "All", criteria.Category)
	})

	t.Run("price range applies inclusively", func(t *testing.T) {
		srv := newTestServer(t)

		w := srv.do(t, http.MethodPatch, "/api/v1/filters", map[string]any{"min_price": 1499, "max_price": 1499})
		require.Equal(t, http.StatusOK, w.Code)

		var list ProductListResponse
		decodeData(t, w, &list)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, int64(1499), list.Products[0].Price)
	})
}

func TestCatalogHandler_ClearFilters(t *testing.T) {
	srv := newTestServer(t)

	srv.do(t, http.MethodPatch, "/api/v1/filters", map[string]any{"category": "Books", "prime_only": true})
	w := srv.do(t, http.MethodDelete, "/api/v1/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list ProductListResponse
	decodeData(t, w, &list)
	assert.Equal(t, catalogSize(t), list.Total)
	assert.Equal(t, "All", list.Criteria.Category)
	assert.False(t, list.Criteria.PrimeOnly)
}
