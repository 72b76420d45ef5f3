// internal/infrastructure/database/postgres/seed.go
package postgres

import (
	"github.com/shopspring/decimal"
	"github.com/weirdbites/storefront/internal/domain/product"
)

// catalogSeed is the starter catalog of exotic snacks
func catalogSeed() []product.Product {
	return []product.Product{
		{
			Name:        "Durian Chips",
			Description: "Crispy chips made from the king of fruits. Love it or hate it!",
			Price:       decimal.RequireFromString("12.99"),
			ImageURL:    "/images/products/durian-chips.jpg",
			Category:    "Snacks",
			Origin:      "Thailand",
			Stock:       50,
		},
		{
			Name:        "Black Garlic Chocolate",
			Description: "Rich dark chocolate infused with aged black garlic. Surprisingly sweet and savory.",
			Price:       decimal.RequireFromString("15.50"),
			ImageURL:    "/images/products/black-garlic-chocolate.jpg",
			Category:    "Chocolate",
			Origin:      "Japan",
			Stock:       30,
		},
		{
			Name:        "Sriracha Popcorn",
			Description: "Spicy and addictive popcorn with authentic Sriracha seasoning.",
			Price:       decimal.RequireFromString("8.99"),
			ImageURL:    "/images/products/sriracha-popcorn.jpg",
			Category:    "Snacks",
			Origin:      "USA",
			Stock:       100,
		},
		{
			Name:        "Wasabi Peas",
			Description: "Crunchy roasted peas coated with real wasabi. A fiery treat!",
			Price:       decimal.RequireFromString("6.50"),
			ImageURL:    "/images/products/wasabi-peas.jpg",
			Category:    "Snacks",
			Origin:      "Japan",
			Stock:       75,
		},
		{
			Name:        "Salted Egg Yolk Chips",
			Description: "Crispy potato chips with rich salted egg yolk flavor. Umami bomb!",
			Price:       decimal.RequireFromString("9.99"),
			ImageURL:    "/images/products/salted-egg-chips.jpg",
			Category:    "Snacks",
			Origin:      "Singapore",
			Stock:       60,
		},
		{
			Name:        "Matcha Kit Kat",
			Description: "Japanese exclusive Kit Kat with premium matcha green tea flavor.",
			Price:       decimal.RequireFromString("18.00"),
			ImageURL:    "/images/products/matcha-kitkat.jpg",
			Category:    "Chocolate",
			Origin:      "Japan",
			Stock:       40,
		},
		{
			Name:        "Chili Mango Gummies",
			Description: "Sweet and spicy gummies with real mango and chili powder.",
			Price:       decimal.RequireFromString("7.25"),
			ImageURL:    "/images/products/chili-mango-gummies.jpg",
			Category:    "Candy",
			Origin:      "Mexico",
			Stock:       80,
		},
		{
			Name:        "Seaweed Crisps",
			Description: "Paper-thin roasted seaweed sheets. Light, crispy, and full of ocean flavor.",
			Price:       decimal.RequireFromString("5.50"),
			ImageURL:    "/images/products/seaweed-crisps.jpg",
			Category:    "Snacks",
			Origin:      "South Korea",
			Stock:       90,
		},
		{
			Name:        "Yuzu Gummies",
			Description: "Tangy Japanese citrus gummies. Refreshing and uniquely flavored.",
			Price:       decimal.RequireFromString("10.50"),
			ImageURL:    "/images/products/yuzu-gummies.jpg",
			Category:    "Candy",
			Origin:      "Japan",
			Stock:       45,
		},
		{
			Name:        "Tamarind Candy",
			Description: "Sweet, sour, and spicy tamarind candy. A tropical delight!",
			Price:       decimal.RequireFromString("6.99"),
			ImageURL:    "/images/products/tamarind-candy.jpg",
			Category:    "Candy",
			Origin:      "Thailand",
			Stock:       70,
		},
		{
			Name:        "Pocky Matcha",
			Description: "Classic Japanese biscuit sticks coated with matcha chocolate.",
			Price:       decimal.RequireFromString("4.50"),
			ImageURL:    "/images/products/pocky-matcha.jpg",
			Category:    "Snacks",
			Origin:      "Japan",
			Stock:       120,
		},
		{
			Name:        "Dragon Fruit Chips",
			Description: "Freeze-dried dragon fruit chips. Colorful, crunchy, and naturally sweet.",
			Price:       decimal.RequireFromString("11.99"),
			ImageURL:    "/images/products/dragon-fruit-chips.jpg",
			Category:    "Snacks",
			Origin:      "Vietnam",
			Stock:       35,
		},
		{
			Name:        "Lychee Jelly",
			Description: "Delicate lychee-flavored jelly cups. Refreshing dessert.",
			Price:       decimal.RequireFromString("8.50"),
			ImageURL:    "/images/products/lychee-jelly.jpg",
			Category:    "Candy",
			Origin:      "Taiwan",
			Stock:       55,
		},
		{
			Name:        "Kimchi Crackers",
			Description: "Savory crackers with authentic kimchi flavor. Tangy and addictive.",
			Price:       decimal.RequireFromString("7.99"),
			ImageURL:    "/images/products/kimchi-crackers.jpg",
			Category:    "Snacks",
			Origin:      "South Korea",
			Stock:       65,
		},
		{
			Name:        "Mochi Ice Cream Mix",
			Description: "Assorted mochi ice cream balls. Chewy rice cake meets creamy ice cream.",
			Price:       decimal.RequireFromString("19.99"),
			ImageURL:    "/images/products/mochi-ice-cream.jpg",
			Category:    "Dessert",
			Origin:      "Japan",
			Stock:       25,
		},
	}
}
