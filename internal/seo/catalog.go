// Package seo holds the static landing-page catalog and sitemap generation.
package seo

// Category is one product-category landing page.
type Category struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Keywords      []string `json:"keywords"`
	SearchVolume  string   `json:"searchVolume"`
	Subcategories []string `json:"subcategories"`
}

// Brand is one brand landing page.
type Brand struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Popular  []string `json:"popular"`
}

// Categories are the product categories with dedicated landing pages.
var Categories = []Category{
	{
		Slug:          "electronics",
		Name:          "Electronics",
		Description:   "Check eBay prices for smartphones, laptops, cameras, and electronics",
		Keywords:      []string{"iPhone", "Samsung", "laptop", "camera", "headphones", "gaming console"},
		SearchVolume:  "high",
		Subcategories: []string{"phones", "laptops", "cameras", "gaming", "audio"},
	},
	{
		Slug:          "collectibles",
		Name:          "Collectibles",
		Description:   "Find market values for trading cards, coins, stamps, and collectibles",
		Keywords:      []string{"Pokemon cards", "sports cards", "coins", "vintage toys", "comics"},
		SearchVolume:  "high",
		Subcategories: []string{"trading-cards", "coins", "toys", "memorabilia"},
	},
	{
		Slug:          "fashion",
		Name:          "Fashion",
		Description:   "Check sold prices for designer clothes, shoes, handbags, and accessories",
		Keywords:      []string{"Nike", "Adidas", "Louis Vuitton", "Gucci", "Jordan", "Yeezy"},
		SearchVolume:  "high",
		Subcategories: []string{"sneakers", "handbags", "watches", "clothing"},
	},
	{
		Slug:          "home-garden",
		Name:          "Home & Garden",
		Description:   "Compare prices for furniture, appliances, tools, and home decor",
		Keywords:      []string{"furniture", "appliances", "tools", "kitchen", "outdoor"},
		SearchVolume:  "medium",
		Subcategories: []string{"furniture", "appliances", "tools", "decor"},
	},
	{
		Slug:          "sports",
		Name:          "Sporting Goods",
		Description:   "Check market values for exercise equipment, bikes, and sports gear",
		Keywords:      []string{"golf clubs", "bicycle", "treadmill", "kayak", "fishing"},
		SearchVolume:  "medium",
		Subcategories: []string{"exercise", "outdoor", "golf", "cycling"},
	},
	{
		Slug:          "jewelry",
		Name:          "Jewelry & Watches",
		Description:   "Find eBay prices for gold, silver, diamonds, and luxury watches",
		Keywords:      []string{"Rolex", "gold chain", "diamond ring", "silver", "Omega"},
		SearchVolume:  "high",
		Subcategories: []string{"watches", "gold", "silver", "diamonds"},
	},
	{
		Slug:          "automotive",
		Name:          "Automotive",
		Description:   "Check prices for car parts, accessories, and tools",
		Keywords:      []string{"car parts", "tires", "wheels", "tools", "GPS"},
		SearchVolume:  "medium",
		Subcategories: []string{"parts", "accessories", "tools", "electronics"},
	},
	{
		Slug:          "musical-instruments",
		Name:          "Musical Instruments",
		Description:   "Find market values for guitars, keyboards, drums, and pro audio",
		Keywords:      []string{"guitar", "Fender", "Gibson", "piano", "drums", "microphone"},
		SearchVolume:  "medium",
		Subcategories: []string{"guitars", "keyboards", "drums", "audio"},
	},
}

// Brands are the brand landing pages.
var Brands = []Brand{
	{Slug: "apple", Name: "Apple", Category: "electronics", Popular: []string{"iPhone", "iPad", "MacBook", "AirPods", "Apple Watch"}},
	{Slug: "samsung", Name: "Samsung", Category: "electronics", Popular: []string{"Galaxy", "TV", "monitor", "tablet"}},
	{Slug: "sony", Name: "Sony", Category: "electronics", Popular: []string{"PlayStation", "headphones", "camera", "TV"}},
	{Slug: "nike", Name: "Nike", Category: "fashion", Popular: []string{"Air Jordan", "Air Max", "Dunk", "hoodie", "tech fleece"}},
	{Slug: "adidas", Name: "Adidas", Category: "fashion", Popular: []string{"Yeezy", "Ultraboost", "NMD", "tracksuit"}},
	{Slug: "louis-vuitton", Name: "Louis Vuitton", Category: "fashion", Popular: []string{"bag", "wallet", "belt", "shoes"}},
	{Slug: "gucci", Name: "Gucci", Category: "fashion", Popular: []string{"bag", "belt", "shoes", "wallet"}},
	{Slug: "rolex", Name: "Rolex", Category: "jewelry", Popular: []string{"Submariner", "Daytona", "Datejust", "GMT"}},
	{Slug: "nintendo", Name: "Nintendo", Category: "electronics", Popular: []string{"Switch", "games", "Game Boy", "retro"}},
	{Slug: "lego", Name: "LEGO", Category: "collectibles", Popular: []string{"Star Wars", "Technic", "Modular", "retired"}},
	{Slug: "fender", Name: "Fender", Category: "musical-instruments", Popular: []string{"Stratocaster", "Telecaster", "amp"}},
	{Slug: "gibson", Name: "Gibson", Category: "musical-instruments", Popular: []string{"Les Paul", "SG", "acoustic"}},
	{Slug: "pokemon", Name: "Pokemon", Category: "collectibles", Popular: []string{"cards", "sealed", "vintage", "booster"}},
	{Slug: "yamaha", Name: "Yamaha", Category: "musical-instruments", Popular: []string{"piano", "keyboard", "guitar", "motorcycle"}},
	{Slug: "canon", Name: "Canon", Category: "electronics", Popular: []string{"camera", "lens", "printer", "EOS"}},
}

// CategoryBySlug returns the category with the given slug, if any.
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// BrandBySlug returns the brand with the given slug, if any.
func BrandBySlug(slug string) (Brand, bool) {
	for _, b := range Brands {
		if b.Slug == slug {
			return b, true
		}
	}
	return Brand{}, false
}
