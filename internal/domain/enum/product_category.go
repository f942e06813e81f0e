package enum

import "fmt"

// ProductCategory groups the catalog into menu tabs
type ProductCategory string

const (
	ProductCategoryBeer     ProductCategory = "beverage-beer"
	ProductCategoryCocktail ProductCategory = "cocktail"
	ProductCategorySnack    ProductCategory = "snack"
)

// ProductCategories lists every category in menu order
var ProductCategories = []ProductCategory{
	ProductCategoryBeer,
	ProductCategoryCocktail,
	ProductCategorySnack,
}

func (c ProductCategory) IsValid() bool {
	switch c {
	case ProductCategoryBeer, ProductCategoryCocktail, ProductCategorySnack:
		return true
	}
	return false
}

// ParseProductCategory validates a category name
func ParseProductCategory(s string) (ProductCategory, error) {
	c := ProductCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown product category %q", s)
	}
	return c, nil
}
