package catalog

import (
	"testing"

	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Run("builds catalog from valid products", func(t *testing.T) {
		c, err := NewCatalog(testProducts())
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("rejects duplicate product ids", func(t *testing.T) {
		products := testProducts()
		products[1].ID = products[0].ID
		_, err := NewCatalog(products)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Duplicate product ID")
	})

	t.Run("rejects invalid product", func(t *testing.T) {
		products := testProducts()
		products[0].Rating = 6.5
		_, err := NewCatalog(products)
		require.Error(t, err)
	})

	t.Run("empty catalog is valid", func(t *testing.T) {
		c, err := NewCatalog(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.Products())
	})
}

func TestCatalogFindByID(t *testing.T) {
	c, err := NewCatalog(testProducts())
	require.NoError(t, err)

	t.Run("finds existing product", func(t *testing.T) {
		p, err := c.FindByID("b")
		require.NoError(t, err)
		assert.Equal(t, "Mystery Novel", p.Title)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := c.FindByID("missing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returned product is a copy", func(t *testing.T) {
		p, err := c.FindByID("a")
		require.NoError(t, err)
		p.Title = "mutated"

		again, err := c.FindByID("a")
		require.NoError(t, err)
		assert.Equal(t, "Wireless Earbuds", again.Title)
	})
}

func TestCatalogProductsReturnsCopy(t *testing.T) {
	c, err := NewCatalog(testProducts())
	require.NoError(t, err)

	products := c.Products()
	products[0].Title = "mutated"

	assert.Equal(t, "Wireless Earbuds", c.Products()[0].Title)
}

func TestProductValidate(t *testing.T) {
	valid := testProducts()[0]

	t.Run("accepts valid product", func(t *testing.T) {
		p := valid
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects empty id", func(t *testing.T) {
		p := valid
		p.ID = ""
		assert.Error(t, p.Validate())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		p := valid
		p.Category = "Groceries"
		assert.Error(t, p.Validate())
	})

	t.Run("rejects All as product category", func(t *testing.T) {
		p := valid
		p.Category = CategoryAll
		assert.Error(t, p.Validate())
	})

	t.Run("rejects original price below current price", func(t *testing.T) {
		p := valid
		lower := p.Price - 1
		p.OriginalPrice = &lower
		assert.Error(t, p.Validate())
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		p := valid
		p.Rating = -0.1
		assert.Error(t, p.Validate())
	})
}

func TestProductDiscount(t *testing.T) {
	products := testProducts()

	t.Run("product without original price has no discount", func(t *testing.T) {
		assert.False(t, products[0].HasDiscount())
		assert.Equal(t, 0, products[0].DiscountPercent())
	})

	t.Run("discounted product reports percent off", func(t *testing.T) {
		// 500 from 1500 is 66% off (integer truncation)
		assert.True(t, products[1].HasDiscount())
		assert.Equal(t, 66, products[1].DiscountPercent())
	})

	t.Run("price money uses minor units", func(t *testing.T) {
		assert.Equal(t, "$10.00", products[0].PriceMoney().Display())
		assert.Equal(t, "$15.00", products[1].OriginalPriceMoney().Display())
	})
}
