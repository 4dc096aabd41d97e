// Package catalogdata supplies the static product catalog. The product
// list is fixed at build time and loaded read-only; the rest of the
// system never mutates it.
package catalogdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shopfront/backend/internal/domain/catalog"
)

//go:embed products.json
var productsJSON []byte

// Load parses and validates the embedded product list into a catalog
func Load() (*catalog.Catalog, error) {
	var products []catalog.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("parsing embedded product data: %w", err)
	}

	c, err := catalog.NewCatalog(products)
	if err != nil {
		return nil, fmt.Errorf("validating embedded product data: %w", err)
	}
	return c, nil
}
