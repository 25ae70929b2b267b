package service

import (
	"github.com/google/uuid"

	"github.com/xomerch/storefront/internal/models"
)

// seedProducts is the launch catalog: two album drops, four items each.
func seedProducts() []models.Product {

	products := []models.Product{
		{
			Name:        "Hurry Up Tomorrow Tee",
			Description: "Black cotton tee with logo from Hurry Up Tomorrow",
			Price:       25,
			ImageURL:    "https://res.cloudinary.com/deqe0oqer/image/upload/v1751479344/Hurry_Up_Tommorow_-_T-Shirt_stidqf.webp",
			Category:    models.CategoryApparel,
			Album:       "Hurry Up Tomorrow",
			Apparel: &models.ApparelDetails{
				Fabric: "100% Cotton",
				Fit:    "Regular Fit",
				Care:   "Machine wash cold, tumble dry low",
			},
		},
		{
			Name:        "Hurry Up Tomorrow Vinyl Record",
			Description: "Limited edition vinyl of Hurry Up Tomorrow album",
			Price:       30,
			ImageURL:    "https://res.cloudinary.com/deqe0oqer/image/upload/v1751478032/f3yksbepitviuodhjfu2.webp",
			Category:    models.CategoryMusic,
			Album:       "Hurry Up Tomorrow",
			Music: &models.MusicDetails{
				Format:      "12-inch Vinyl LP",
				ReleaseYear: 2024,
				Tracks:      12,
			},
		},
		{
			Name:        "Hurry Up Tomorrow Hoodie",
			Description: "Comfortable black hoodie from Hurry Up Tomorrow collection",
			Price:       45,
			ImageURL:    "https://res.cloudinary.com/deqe0oqer/image/upload/v1751479343/Hurry_Up_Tommorow_-_Hoddie_ijzwae.webp",
			Category:    models.CategoryApparel,
			Album:       "Hurry Up Tomorrow",
			Apparel: &models.ApparelDetails{
				Fabric: "80% Cotton, 20% Polyester",
				Fit:    "Oversized Fit",
				Care:   "Machine wash cold, tumble dry low",
			},
		},
		{
			Name:        "Hurry Up Tomorrow Cassette Disk",
			Description: "Cassette disk of the Hurry Up Tomorrow album",
			Price:       15,
			ImageURL:    "https://res.cloudinary.com/deqe0oqer/image/upload/v1751478031/swpvpl3ywauqxdojmsag.webp",
			Category:    models.CategoryMusic,
			Album:       "Hurry Up Tomorrow",
			Music: &models.MusicDetails{
				Format:      "Cassette Disk",
				ReleaseYear: 2024,
				Tracks:      12,
			},
		},
		{
			Name:        "After Hours Tee",
			Description: "Red and black tee from After Hours album",
			Price:       28,
			ImageURL:    "https://res.cloudinary.com/deqe0oqer/image/upload/v1751483860/After_Hours_-_T-Shirt_vdlh6p.jpg",
			Category:    models.CategoryApparel,
			Album:       "After Hours",
			Apparel: &models.ApparelDetails{
				Fabric: "100% Cotton",
				Fit:    "Slim Fit",
				Care:   "Machine wash cold, tumble dry low",
			},
		},
		{
			Name:        "After Hours Vinyl Record",
			Description: "Limited edition vinyl of After Hours album",
			Price:       35,
			ImageURL:    "https://res.cloudinary.com/deqe0oqer/image/upload/v1751483864/After_Hours_-_Vinyl_lsd8ve.webp",
			Category:    models.CategoryMusic,
			Album:       "After Hours",
			Music: &models.MusicDetails{
				Format:      "12-inch Vinyl LP",
				ReleaseYear: 2020,
				Tracks:      14,
			},
		},
		{
			Name:        "After Hours Hoodie",
			Description: "Comfortable black hoodie from After Hours collection",
			Price:       45,
			ImageURL:    "https://res.cloudinary.com/deqe0oqer/image/upload/v1751483859/After_Hours_-_Hoddie_uko4kh.jpg",
			Category:    models.CategoryApparel,
			Album:       "After Hours",
			Apparel: &models.ApparelDetails{
				Fabric: "80% Cotton, 20% Polyester",
				Fit:    "Oversized Fit",
				Care:   "Machine wash cold, tumble dry low",
			},
		},
		{
			Name:        "After Hours Cassette Disk",
			Description: "Cassette disk of the After Hours album",
			Price:       15,
			ImageURL:    "https://res.cloudinary.com/deqe0oqer/image/upload/v1751483860/After_Hours_-_Cassette_Disk_jn9ubc.webp",
			Category:    models.CategoryMusic,
			Album:       "After Hours",
			Music: &models.MusicDetails{
				Format:      "Cassette Disk",
				ReleaseYear: 2020,
				Tracks:      14,
			},
		},
	}

	for i := range products {
		products[i].ID = uuid.NewString()
	}

	return products
}
