package domain

// seedCatalog is the factory catalog served whenever the store holds no
// usable collection. Ids are caller-assigned and stable; they appear in
// routes and saved browser bookmarks, so do not renumber existing entries.
var seedCatalog = []Product{
	{
		ID:   1,
		Name: "Custom Tarpaulins",
		Description: "Professional-grade custom tarpaulins tailored to your specific requirements. " +
			"Our high-frequency sealing machines create custom-fit tarpaulins for various applications.",
		Image: "/images/products/tarpaulins/main.jpg",
		Images: []string{
			"/images/products/tarpaulins/main.jpg",
			"/images/products/tarpaulins/1.jpg",
			"https://images.unsplash.com/photo-1518889735218-3e3a03fd3128?w=800&q=80",
			"https://images.unsplash.com/photo-1531913223931-b0d3198229ee?w=800&q=80",
		},
		Category:      "Tarpaulins",
		Subcategories: []string{"Custom Tarpaulins"},
		Weight:        "Medium",
		Seasonality:   "All-Season",
	},
	{
		ID:   2,
		Name: "Bakkie Covers",
		Description: "Premium bakkie covers designed to protect your pickup truck from weather elements " +
			"and UV damage. Our custom-designed covers are durable and provide excellent protection.",
		Image: "/images/products/vehicle-covers/main.jpg",
		Images: []string{
			"/images/products/vehicle-covers/main.jpg",
			"/images/products/vehicle-covers/1.jpg",
			"https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=800&q=80",
		},
		Category:      "Vehicle Covers",
		Subcategories: []string{"Bakkie Covers"},
		Weight:        "Medium",
		Seasonality:   "All-Season",
	},
	{
		ID:   3,
		Name: "Vehicle Covers",
		Description: "High-quality vehicle covers for cars and trucks. Protect your vehicle from dust, " +
			"sun damage, and environmental elements with our durable and custom-fitted covers.",
		Image: "/images/products/vehicle-covers/2.jpg",
		Images: []string{
			"/images/products/vehicle-covers/2.jpg",
			"/images/products/vehicle-covers/3.jpg",
			"https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=800&q=80",
		},
		Category:      "Vehicle Covers",
		Subcategories: []string{"Vehicle Covers"},
		Weight:        "Medium",
		Seasonality:   "All-Season",
	},
	{
		ID:   4,
		Name: "Txopela Door Covers",
		Description: "Specialized door covers for Txopela vehicles. Our products are designed to enhance " +
			"functionality and provide protection for your Txopela doors.",
		Image: "https://images.unsplash.com/photo-1581291518633-83b4ebd1d83e?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1581291518633-83b4ebd1d83e?w=800&q=80",
			"https://images.unsplash.com/photo-1494976388531-d1058494cdd8?w=800&q=80",
		},
		Category:      "Txopela Accessories",
		Subcategories: []string{"Txopela Door Covers"},
		Weight:        "Medium",
		Seasonality:   "All-Season",
	},
	{
		ID:   5,
		Name: "Awnings",
		Description: "Durable and stylish awnings for residential and commercial applications. Provide " +
			"shade and protection from the elements with our custom-designed awnings.",
		Image: "/images/products/awnings/main.jpg",
		Images: []string{
			"/images/products/awnings/main.jpg",
			"/images/products/awnings/1.jpg",
			"https://images.unsplash.com/photo-1523712999610-f77fbcfc3843?w=800&q=80",
		},
		Category:      "Awnings",
		Subcategories: []string{"Awnings"},
		Weight:        "Medium to Heavy",
		Seasonality:   "All-Season",
	},
	{
		ID:   6,
		Name: "Drop Blinds",
		Description: "Custom drop blinds for patios, verandas, and outdoor spaces. Control light, " +
			"privacy, and temperature with our high-quality drop blinds.",
		Image: "https://images.unsplash.com/photo-1470753323753-3f8091bb0232?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1470753323753-3f8091bb0232?w=800&q=80",
			"https://images.unsplash.com/photo-1533603208986-24fd819e718a?w=800&q=80",
		},
		Category:      "Blinds",
		Subcategories: []string{"Drop Blinds"},
		Weight:        "Light to Medium",
		Seasonality:   "All-Season",
	},
	{
		ID:   7,
		Name: "2.5m x 2.5m 4-Man Dome Tent",
		Description: "Compact 2.5m x 2.5m dome tent perfect for small groups or families. Comfortably " +
			"fits 4 people with easy setup and takedown.",
		Image: "/images/products/tents/main.jpg",
		Images: []string{
			"/images/products/tents/main.jpg",
			"/images/products/tents/1.jpg",
			"https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=800&q=80",
		},
		Category:      "Tents",
		Subcategories: []string{"2.5m x 2.5m 4-Man Dome Tent"},
		Capacity:      "4 People",
		Weight:        "Medium",
		Seasonality:   "All-Season",
	},
	{
		ID:   8,
		Name: "3m x 3m 6-Man Dome Tent",
		Description: "Spacious 3m x 3m dome tent ideal for larger groups. Comfortably accommodates " +
			"6 people with durable materials and weather-resistant design.",
		Image: "https://images.unsplash.com/photo-1478131143081-80f7f84ca84d?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1478131143081-80f7f84ca84d?w=800&q=80",
			"https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=800&q=80",
		},
		Category:      "Tents",
		Subcategories: []string{"3m x 3m 6-Man Dome Tent"},
		Capacity:      "6 People",
		Weight:        "Medium to Heavy",
		Seasonality:   "All-Season",
	},
	{
		ID:   9,
		Name: "Seat Covers",
		Description: "Premium seat covers for vehicles of all types. Protect your car's interior with " +
			"our durable and stylish seat covers that are easy to install and clean.",
		Image: "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800&q=80",
		Images: []string{
			"https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800&q=80",
			"https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=800&q=80",
		},
		Category:      "Vehicle Covers",
		Subcategories: []string{"Seat Covers"},
		Weight:        "Light",
		Seasonality:   "All-Season",
	},
	{
		ID:   10,
		Name: "All Custom Work",
		Description: "Bespoke PVC and canvas solutions tailored to your specific requirements. Our team " +
			"of experts can design and manufacture custom products to meet your unique needs and specifications.",
		Image: "/images/products/custom-work/main.jpg",
		Images: []string{
			"/images/products/custom-work/main.jpg",
			"/images/products/custom-work/1.jpg",
			"/images/products/custom-work/2.jpg",
			"https://images.unsplash.com/photo-1581093458791-9d15482442f5?w=800&q=80",
		},
		Category:      "Custom Work",
		Subcategories: []string{"All Custom Work"},
		Weight:        "Varies",
		Seasonality:   "All-Season",
	},
}

// DefaultCatalog returns a fresh copy of the factory catalog.
func DefaultCatalog() []Product {
	return CloneCatalog(seedCatalog)
}

// DefaultCatalogSize reports how many records the factory catalog holds.
func DefaultCatalogSize() int {
	return len(seedCatalog)
}
