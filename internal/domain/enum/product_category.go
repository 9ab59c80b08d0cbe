package enum

// ProductCategory classifies a product on the menu
type ProductCategory string

const (
	CategoryBebidas ProductCategory = "bebidas"
	CategoryComidas ProductCategory = "comidas"
	CategoryOutros  ProductCategory = "outros"
)

// Valid reports whether the value is a known product category
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryBebidas, CategoryComidas, CategoryOutros:
		return true
	}
	return false
}
