package catalog

import (
	"github.com/shopfront/backend/internal/domain/shared"
)

// Catalog is the static, read-only ordered set of products supplied at
// startup. It is never mutated after construction; all accessors return
// copies of the backing slice so callers cannot disturb the original
// ordering.
type Catalog struct {
	products []Product
	byID     map[string]*Product
}

// NewCatalog builds a catalog from an ordered product list. Every product
// must validate and ids must be unique.
func NewCatalog(products []Product) (*Catalog, error) {
	byID := make(map[string]*Product, len(products))
	owned := make([]Product, len(products))
	copy(owned, products)

	for i := range owned {
		p := &owned[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byID[p.ID]; exists {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Duplicate product ID: "+p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: owned, byID: byID}, nil
}

// Products returns all products in their original catalog order
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID returns the product with the given id
func (c *Catalog) FindByID(id string) (*Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}
