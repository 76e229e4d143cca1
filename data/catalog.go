package data

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/diyahomestylist/poppyandteal/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Categories lists the shop's categories in display order, "All" first.
var Categories = []string{
	"All",
	"Wall Art",
	"Plant Hangers",
	"Home Decor",
	"Special Occasions",
	"Lighting",
}

type seedProduct struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
	InStock     bool   `yaml:"in_stock"`
	Featured    bool   `yaml:"featured"`
}

// Catalog decodes the embedded seed catalog.
func Catalog() ([]models.Product, error) {
	return parseCatalog(catalogYAML)
}

func parseCatalog(raw []byte) ([]models.Product, error) {
	var doc struct {
		Products []seedProduct `yaml:"products"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]models.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %s: bad price %q: %w", p.ID, p.Price, err)
		}
		products = append(products, models.Product{
			ID:          models.ProductID(p.ID),
			Name:        p.Name,
			Description: p.Description,
			Price:       price,
			Category:    p.Category,
			Image:       p.Image,
			InStock:     p.InStock,
			Featured:    p.Featured,
		})
	}
	return products, nil
}
