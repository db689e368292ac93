package catalog

import "context"

// Product is a single catalog entry. The catalog is loaded once at
// startup and never mutated afterwards.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int64  `json:"price"`
}

// Store is read-only at request time. List returns products in catalog
// order, the order of the static seed.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, bool, error)
	Ping(ctx context.Context) error
}

// Seed is the fixed Resona Cat Shop catalog.
func Seed() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Premium Cat Tower",
			Brand:       "Resona Cat",
			Description: "Three-tier cat tower with a padded hammock and sisal scratching posts.",
			ImageURL:    "https://images.pexels.com/photos/1276553/pexels-photo-1276553.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       129000,
		},
		{
			ID:          2,
			Name:        "Tunnel Play Tent",
			Brand:       "PlayLand",
			Description: "Collapsible tunnel tent for endless hide-and-seek sessions.",
			ImageURL:    "https://images.pexels.com/photos/1170986/pexels-photo-1170986.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       39000,
		},
		{
			ID:          3,
			Name:        "Ceramic Water Fountain",
			Brand:       "PurrHydro",
			Description: "Quiet ceramic fountain that keeps water fresh and circulating.",
			ImageURL:    "https://images.pexels.com/photos/2061057/pexels-photo-2061057.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       59000,
		},
		{
			ID:          4,
			Name:        "Salmon Treat Sampler",
			Brand:       "Resona Kitchen",
			Description: "Freeze-dried salmon treats with a single ingredient and no additives.",
			ImageURL:    "https://images.pexels.com/photos/2558605/pexels-photo-2558605.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       18000,
		},
		{
			ID:          5,
			Name:        "Window Perch Hammock",
			Brand:       "SunnySpot",
			Description: "Suction-mounted window perch rated for long afternoon naps.",
			ImageURL:    "https://images.pexels.com/photos/1056251/pexels-photo-1056251.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       45000,
		},
		{
			ID:          6,
			Name:        "Feather Wand Set",
			Brand:       "PlayLand",
			Description: "Feather wand with three replaceable teasers for daily play.",
			ImageURL:    "https://images.pexels.com/photos/1741205/pexels-photo-1741205.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       12000,
		},
	}
}
