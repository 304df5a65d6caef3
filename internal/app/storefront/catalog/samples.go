package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SampleProducts returns the fixed fallback catalog used when the
// static resource cannot be fetched.
func SampleProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:            1,
			Name:          "Smartphone Pro",
			Description:   "Latest smartphone with advanced features and excellent camera quality.",
			Price:         dec("699.99"),
			OriginalPrice: decPtr("799.99"),
			Category:      "electronics",
			Image:         "📱",
			Rating:        4.5,
			Reviews:       128,
			InStock:       true,
			Quantity:      25,
			Specifications: map[string]string{
				"Display": "6.1-inch OLED",
				"Storage": "128GB",
				"Camera":  "48MP Triple Camera",
				"Battery": "4000mAh",
				"OS":      "Latest Mobile OS",
			},
			Featured: true,
		},
		{
			ID:            2,
			Name:          "Wireless Headphones",
			Description:   "Premium noise-cancelling wireless headphones with superior sound quality.",
			Price:         dec("199.99"),
			OriginalPrice: decPtr("249.99"),
			Category:      "electronics",
			Image:         "🎧",
			Rating:        4.7,
			Reviews:       89,
			InStock:       true,
			Quantity:      15,
			Specifications: map[string]string{
				"Type":               "Over-ear",
				"Connectivity":       "Bluetooth 5.0",
				"Battery Life":       "30 hours",
				"Noise Cancellation": "Active",
				"Driver":             "40mm Dynamic",
			},
			Featured: true,
		},
		{
			ID:            3,
			Name:          "Classic T-Shirt",
			Description:   "Comfortable cotton t-shirt perfect for everyday wear.",
			Price:         dec("29.99"),
			OriginalPrice: decPtr("39.99"),
			Category:      "clothing",
			Image:         "👕",
			Rating:        4.2,
			Reviews:       45,
			InStock:       true,
			Quantity:      50,
			Specifications: map[string]string{
				"Material": "100% Cotton",
				"Fit":      "Regular",
				"Care":     "Machine washable",
				"Sizes":    "S, M, L, XL",
				"Colors":   "Multiple colors available",
			},
			Featured: false,
		},
		{
			ID:            4,
			Name:          "Coffee Maker",
			Description:   "Automatic drip coffee maker with programmable features.",
			Price:         dec("89.99"),
			OriginalPrice: decPtr("119.99"),
			Category:      "home",
			Image:         "☕",
			Rating:        4.4,
			Reviews:       67,
			InStock:       true,
			Quantity:      8,
			Specifications: map[string]string{
				"Capacity": "12 cups",
				"Type":     "Drip coffee maker",
				"Features": "Programmable, Auto shut-off",
				"Material": "Stainless steel",
				"Warranty": "2 years",
			},
			Featured: false,
		},
		{
			ID:            5,
			Name:          "JavaScript Guide",
			Description:   "Comprehensive guide to modern JavaScript programming.",
			Price:         dec("49.99"),
			OriginalPrice: decPtr("59.99"),
			Category:      "books",
			Image:         "📚",
			Rating:        4.8,
			Reviews:       156,
			InStock:       true,
			Quantity:      30,
			Specifications: map[string]string{
				"Pages":     "500",
				"Language":  "English",
				"Format":    "Paperback",
				"Publisher": "Tech Books",
				"Edition":   "Latest Edition",
			},
			Featured: true,
		},
		{
			ID:            6,
			Name:          "Gaming Laptop",
			Description:   "High-performance gaming laptop with dedicated graphics card.",
			Price:         dec("1299.99"),
			OriginalPrice: decPtr("1499.99"),
			Category:      "electronics",
			Image:         "💻",
			Rating:        4.6,
			Reviews:       92,
			InStock:       true,
			Quantity:      5,
			Specifications: map[string]string{
				"Processor": "Intel i7",
				"RAM":       "16GB DDR4",
				"Storage":   "512GB SSD",
				"Graphics":  "NVIDIA RTX",
				"Display":   "15.6-inch Full HD",
			},
			Featured: false,
		},
		{
			ID:            7,
			Name:          "Designer Jeans",
			Description:   "Premium denim jeans with modern fit and style.",
			Price:         dec("89.99"),
			OriginalPrice: decPtr("120.00"),
			Category:      "clothing",
			Image:         "👖",
			Rating:        4.3,
			Reviews:       73,
			InStock:       false,
			Quantity:      0,
			Specifications: map[string]string{
				"Material": "98% Cotton, 2% Elastane",
				"Fit":      "Slim fit",
				"Care":     "Machine wash cold",
				"Sizes":    "28-38 waist",
				"Style":    "Contemporary",
			},
			Featured: false,
		},
		{
			ID:            8,
			Name:          "Smart Watch",
			Description:   "Feature-rich smartwatch with health monitoring and fitness tracking.",
			Price:         dec("249.99"),
			OriginalPrice: decPtr("299.99"),
			Category:      "electronics",
			Image:         "⌚",
			Rating:        4.4,
			Reviews:       134,
			InStock:       true,
			Quantity:      20,
			Specifications: map[string]string{
				"Display":          "1.4-inch AMOLED",
				"Battery":          "7 days",
				"Water Resistance": "5ATM",
				"Features":         "GPS, Heart rate, Sleep tracking",
				"Compatibility":    "iOS and Android",
			},
			Featured: true,
		},
	}
}
