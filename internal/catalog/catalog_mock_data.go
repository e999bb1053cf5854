package catalog

import "github.com/shopspring/decimal"

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func pricePtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// seedProducts is the catalogue served when the live API is switched off.
func seedProducts() []Product {
	return []Product{
		{
			ID: "gin-beefeater", Name: "Beefeater London Dry Gin", Category: "gin", Brand: "Beefeater",
			Price: price(1850), OriginalPrice: pricePtr(2100), Image: "/images/products/beefeater-gin.jpg",
			Description:    "A classic London Dry Gin with a crisp, clean taste and distinctive juniper flavor.",
			AlcoholContent: "40%", Size: "750ml", Origin: "United Kingdom",
			InStock: true, StockCount: 24, Featured: true, SKU: "GIN-BEE-750",
		},
		{
			ID: "gin-gordons", Name: "Gordon's London Dry Gin", Category: "gin", Brand: "Gordon's",
			Price: price(1650), OriginalPrice: pricePtr(1850), Image: "/images/products/gordons-gin.jpg",
			Description:    "The world's best-selling London Dry Gin with a perfect balance of juniper and citrus.",
			AlcoholContent: "37.5%", Size: "750ml", Origin: "United Kingdom",
			InStock: true, StockCount: 18, SKU: "GIN-GOR-750",
		},
		{
			ID: "gin-tanqueray", Name: "Tanqueray London Dry Gin", Category: "gin", Brand: "Tanqueray",
			Price: price(2150), OriginalPrice: pricePtr(2400), Image: "/images/products/tanqueray-gin.jpg",
			Description:    "A perfectly balanced gin with four botanicals for a smooth, crisp taste.",
			AlcoholContent: "43.1%", Size: "750ml", Origin: "United Kingdom",
			InStock: true, StockCount: 31, Featured: true, SKU: "GIN-TAN-750",
		},
		{
			ID: "whisky-jameson", Name: "Jameson Irish Whiskey", Category: "whisky", Brand: "Jameson",
			Price: price(2850), OriginalPrice: pricePtr(3200), Image: "/images/products/jameson-whiskey.jpg",
			Description:    "Triple-distilled Irish whiskey with a smooth, balanced taste.",
			AlcoholContent: "40%", Size: "750ml", Origin: "Ireland",
			InStock: true, StockCount: 22, Featured: true, SKU: "WHY-JAM-750",
		},
		{
			ID: "whisky-johnnie-walker-red", Name: "Johnnie Walker Red Label", Category: "whisky", Brand: "Johnnie Walker",
			Price: price(2450), OriginalPrice: pricePtr(2750), Image: "/images/products/johnnie-walker-red.jpg",
			Description:    "The world's best-selling Scotch whisky, with a bold and characterful taste.",
			AlcoholContent: "40%", Size: "750ml", Origin: "Scotland",
			InStock: true, StockCount: 35, SKU: "WHY-JWR-750",
		},
		{
			ID: "whisky-johnnie-walker-black", Name: "Johnnie Walker Black Label", Category: "whisky", Brand: "Johnnie Walker",
			Price: price(3850), OriginalPrice: pricePtr(4200), Image: "/images/products/johnnie-walker-black.jpg",
			AlcoholContent: "40%", Size: "750ml", Origin: "Scotland",
			InStock: true, StockCount: 19, Featured: true, SKU: "WHY-JWB-750",
		},
		{
			ID: "wine-kiwara-red", Name: "Kiwara Red Wine", Category: "wine", Brand: "Kiwara",
			Price: price(1250), OriginalPrice: pricePtr(1450), Image: "/images/products/kiwara-red.jpg",
			AlcoholContent: "12.5%", Size: "750ml", Origin: "South Africa",
			InStock: true, StockCount: 28, SKU: "WIN-KIW-750",
		},
		{
			ID: "wine-nederburg-cabernet", Name: "Nederburg Cabernet Sauvignon", Category: "wine", Brand: "Nederburg",
			Price: price(1850), OriginalPrice: pricePtr(2100), Image: "/images/products/nederburg-cabernet.jpg",
			AlcoholContent: "14%", Size: "750ml", Origin: "South Africa",
			InStock: true, StockCount: 16, SKU: "WIN-NED-750",
		},
		{
			ID: "vodka-smirnoff", Name: "Smirnoff Vodka", Category: "spirits", Brand: "Smirnoff",
			Price: price(1950), OriginalPrice: pricePtr(2200), Image: "/images/products/smirnoff-vodka.jpg",
			AlcoholContent: "40%", Size: "750ml", Origin: "Russia",
			InStock: true, StockCount: 32, SKU: "VOD-SMI-750",
		},
		{
			ID: "rum-captain-morgan", Name: "Captain Morgan Spiced Rum", Category: "spirits", Brand: "Captain Morgan",
			Price: price(2150), OriginalPrice: pricePtr(2450), Image: "/images/products/captain-morgan.jpg",
			AlcoholContent: "35%", Size: "750ml", Origin: "Jamaica",
			InStock: true, StockCount: 21, SKU: "RUM-CAP-750",
		},
	}
}
