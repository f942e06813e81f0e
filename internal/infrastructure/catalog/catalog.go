// Package catalog serves the product menu. The catalog is read once at
// startup and never changes while the process runs.
package catalog

import (
	"context"
	"fmt"

	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/enum"
	domainRepo "github.com/goapub/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Catalog is an in-memory ProductRepository
type Catalog struct {
	products []entity.Product
	byID     map[string]entity.Product
}

var _ domainRepo.ProductRepository = (*Catalog)(nil)

type productRecord struct {
	ID       string `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	Price    string `mapstructure:"price"`
	Category string `mapstructure:"category"`
}

var defaultRecords = []productRecord{
	{"b1", "EFES PİLSEN", "45", "beverage-beer"},
	{"b2", "BOMONTİ", "50", "beverage-beer"},
	{"b3", "TUBORG", "45", "beverage-beer"},
	{"b4", "CORONA", "65", "beverage-beer"},
	{"b5", "HEINEKEN", "60", "beverage-beer"},
	{"b6", "CARLSBERG", "55", "beverage-beer"},
	{"b7", "AMSTERDAM", "70", "beverage-beer"},
	{"b8", "MILLER", "58", "beverage-beer"},
	{"b9", "BECKs", "62", "beverage-beer"},
	{"c1", "MOJİTO", "85", "cocktail"},
	{"c2", "MARGARİTA", "90", "cocktail"},
	{"c3", "COSMOPOLİTAN", "95", "cocktail"},
	{"c4", "LONG ISLAND", "110", "cocktail"},
	{"c5", "PIÑA COLADA", "100", "cocktail"},
	{"c6", "OLD FASHIONED", "105", "cocktail"},
	{"c7", "NEGRONI", "98", "cocktail"},
	{"c8", "APEROL SPRITZ", "88", "cocktail"},
	{"c9", "WHISKEY SOUR", "92", "cocktail"},
	{"f1", "ÇITIR TAVUK KANAT", "75", "snack"},
	{"f2", "NACHOS SUPREME", "65", "snack"},
	{"f3", "BBQ KABURGA", "120", "snack"},
	{"f4", "SEZAR SALATA", "55", "snack"},
	{"f5", "MARGHERİTA PİZZA", "95", "snack"},
	{"f6", "DANA BURGER", "85", "snack"},
	{"f7", "PATATES KIZARTMASI", "40", "snack"},
	{"f8", "SOĞAN HALKASI", "45", "snack"},
	{"f9", "MEZE TABAĞI", "70", "snack"},
}

// Default returns the built-in bar menu
func Default() *Catalog {
	c, err := build(defaultRecords)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog from a YAML or JSON file with a top-level
// "products" list. An empty path returns the built-in menu.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var records []productRecord
	if err := v.UnmarshalKey("products", &records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog %s has no products", path)
	}
	return build(records)
}

func build(records []productRecord) (*Catalog, error) {
	c := &Catalog{
		products: make([]entity.Product, 0, len(records)),
		byID:     make(map[string]entity.Product, len(records)),
	}
	for _, rec := range records {
		if rec.ID == "" || rec.Name == "" {
			return nil, fmt.Errorf("product needs an id and a name: %+v", rec)
		}
		if _, dup := c.byID[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", rec.ID)
		}
		category, err := enum.ParseProductCategory(rec.Category)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", rec.ID, err)
		}
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s: invalid price %q: %w", rec.ID, rec.Price, err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("product %s: price must be positive, got %s", rec.ID, price)
		}

		p := entity.Product{ID: rec.ID, Name: rec.Name, Price: price, Category: category}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c, nil
}

func (c *Catalog) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *Catalog) GetByIDs(ctx context.Context, ids []string) (map[string]entity.Product, error) {
	found := make(map[string]entity.Product, len(ids))
	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}

func (c *Catalog) List(ctx context.Context, category *enum.ProductCategory) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(c.products))
	for _, p := range c.products {
		if category != nil && p.Category != *category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Len returns the number of products on the menu
func (c *Catalog) Len() int {
	return len(c.products)
}
