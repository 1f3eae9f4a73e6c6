package catalog

import "fruitshop/internal/models"

// fallbackData is the built-in catalog used whenever the data source is
// unreachable or malformed. Prices are in THB, matching the shop defaults.
func fallbackData() sourceData {
	return sourceData{
		Products: []models.Product{
			{
				ID:            1,
				Name:          "Premium Red Apples",
				Description:   "Sweet and crisp red apples imported from New Zealand",
				Price:         120,
				OriginalPrice: 150,
				Emoji:         "🍎",
				Category:      "fresh",
				Stock:         25,
				Badge:         "bestseller",
			},
			{
				ID:            2,
				Name:          "Shogun Oranges",
				Description:   "Juicy shogun oranges with a rich, intense flavor",
				Price:         80,
				OriginalPrice: 100,
				Emoji:         "🍊",
				Category:      "fresh",
				Stock:         30,
				Badge:         "sale",
			},
			{
				ID:            3,
				Name:          "Golden Bananas",
				Description:   "Perfectly ripened bananas, naturally sweet and fragrant",
				Price:         45,
				OriginalPrice: 60,
				Emoji:         "🍌",
				Category:      "fresh",
				Stock:         20,
				Badge:         "new",
			},
			{
				ID:            4,
				Name:          "Seedless Green Grapes",
				Description:   "Sweet and crunchy seedless green grapes, pre-washed",
				Price:         200,
				OriginalPrice: 250,
				Emoji:         "🍇",
				Category:      "fresh",
				Stock:         15,
				Badge:         "premium",
			},
			{
				ID:            5,
				Name:          "Dried Mango",
				Description:   "Intensely sweet dried mango with no preservatives",
				Price:         90,
				OriginalPrice: 120,
				Emoji:         "🥭",
				Category:      "dried",
				Stock:         50,
				Badge:         "natural",
			},
			{
				ID:            6,
				Name:          "Mixed Fruit Juice",
				Description:   "Fresh mixed fruit juice, squeezed daily",
				Price:         65,
				OriginalPrice: 80,
				Emoji:         "🥤",
				Category:      "processed",
				Stock:         40,
				Badge:         "fresh",
			},
		},
		Categories: []models.Category{
			{
				ID:          "fresh",
				Name:        "Fresh Fruit",
				Description: "Fresh fruit, harvested daily",
				Icon:        "🍎",
				Color:       "#ff6b35",
			},
			{
				ID:          "dried",
				Name:        "Dried Fruit",
				Description: "Quality dried fruit with no preservatives",
				Icon:        "🥭",
				Color:       "#ffa726",
			},
			{
				ID:          "processed",
				Name:        "Processed Fruit",
				Description: "Juices, jams and other fruit products",
				Icon:        "🥤",
				Color:       "#4ecdc4",
			},
		},
		Promotions: []models.Promotion{
			{
				ID:          1,
				Title:       "20% off for new customers",
				Description: "Sign up today for an instant discount",
				Code:        "WELCOME20",
				Discount:    20,
				Type:        models.PromoPercentage,
				MinOrder:    200,
				Active:      true,
			},
		},
		Settings: models.Settings{
			Currency:             "THB",
			CurrencySymbol:       "฿",
			ShippingFee:          50,
			FreeShippingMinOrder: 500,
			Contact: models.Contact{
				Phone:   "02-123-4567",
				Email:   "info@fruitshop.com",
				Address: "123 Fruit Road, Bang Rak, Bangkok 10500",
			},
		},
	}
}
