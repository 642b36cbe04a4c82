package storage

import (
	"context"
	"fmt"

	"github.com/neexbeast/neon-voyager/internal/travel"
)

// Seed inserts the demo data set: three destinations plus hotels, a
// restaurant, attractions and a weather reading for Neo Tokyo. It is a no-op
// when destinations already exist.
func (r *Repository) Seed(ctx context.Context) error {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&count); err != nil {
		return fmt.Errorf("counting destinations: %w", err)
	}
	if count > 0 {
		return nil
	}

	destinations := []travel.InsertDestination{
		{
			Name:        "Neo Tokyo",
			Description: "Experience the perfect blend of ancient traditions and cyberpunk innovation in this neon-lit metropolis.",
			Price:       1299,
			Rating:      4.9,
			ImageURL:    "https://images.unsplash.com/photo-1518837695005-2083093ee35b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Location:    travel.Location{Lat: 35.6762, Lng: 139.6503},
			Category:    "Cyberpunk",
		},
		{
			Name:        "Cyber Singapore",
			Description: "A garden city transformed into a digital paradise with AI-integrated smart systems and vertical farms.",
			Price:       999,
			Rating:      4.7,
			ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Location:    travel.Location{Lat: 1.3521, Lng: 103.8198},
			Category:    "Smart City",
		},
		{
			Name:        "Digital Dubai",
			Description: "Where luxury meets technology in the world's most advanced smart city with holographic entertainment.",
			Price:       1599,
			Rating:      4.8,
			ImageURL:    "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Location:    travel.Location{Lat: 25.2048, Lng: 55.2708},
			Category:    "Luxury Tech",
		},
	}

	var neoTokyoID string
	for i, in := range destinations {
		d, err := r.CreateDestination(ctx, in)
		if err != nil {
			return fmt.Errorf("seeding destination %s: %w", in.Name, err)
		}
		if i == 0 {
			neoTokyoID = d.ID
		}
	}

	hotels := []travel.InsertHotel{
		{
			DestinationID: neoTokyoID,
			Name:          "Cyber Grand Hotel",
			Description:   "Experience luxury in the heart of Neo Tokyo with holographic concierge services and quantum wifi.",
			Price:         299,
			Rating:        4.9,
			ReviewCount:   2847,
			ImageURL:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Amenities:     []string{"AI Butler", "Sky Pool", "Quantum Spa"},
		},
		{
			DestinationID: neoTokyoID,
			Name:          "Neon Boutique Suites",
			Description:   "Intimate boutique experience with AR room customization and personalized AI recommendations.",
			Price:         189,
			Rating:        4.7,
			ReviewCount:   1923,
			ImageURL:      "https://images.unsplash.com/photo-1571896349842-33c89424de2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Amenities:     []string{"AR Rooms", "VR Lounge"},
		},
	}
	for _, in := range hotels {
		if _, err := r.CreateHotel(ctx, in); err != nil {
			return fmt.Errorf("seeding hotel %s: %w", in.Name, err)
		}
	}

	restaurant := travel.InsertRestaurant{
		DestinationID: neoTokyoID,
		Name:          "Cyber Ramen Experience",
		Description:   "Traditional ramen elevated with molecular gastronomy and holographic ambiance.",
		CuisineType:   "Fusion Japanese",
		PriceRange:    "$$$",
		Rating:        4.8,
		ImageURL:      "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
	}
	if _, err := r.CreateRestaurant(ctx, restaurant); err != nil {
		return fmt.Errorf("seeding restaurant %s: %w", restaurant.Name, err)
	}

	attractions := []travel.InsertAttraction{
		{
			DestinationID: neoTokyoID,
			Name:          "Digital Shrine Visit",
			Description:   "Experience ancient spirituality enhanced with augmented reality offerings and digital prayers.",
			Category:      "Cultural",
			Duration:      "2 hours",
			ImageURL:      "https://images.unsplash.com/photo-1528164344705-47542687000d?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100",
			Location:      travel.Location{Lat: 35.6762, Lng: 139.6503},
		},
		{
			DestinationID: neoTokyoID,
			Name:          "Holographic Shopping",
			Description:   "Shop in virtual reality stores with haptic feedback and instant delivery to your hotel.",
			Category:      "Shopping",
			Duration:      "3 hours",
			ImageURL:      "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100",
			Location:      travel.Location{Lat: 35.6762, Lng: 139.6503},
		},
		{
			DestinationID: neoTokyoID,
			Name:          "Maglev City Tour",
			Description:   "High-speed magnetic levitation tour through the city's most iconic futuristic landmarks.",
			Category:      "Sightseeing",
			Duration:      "4 hours",
			ImageURL:      "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100",
			Location:      travel.Location{Lat: 35.6762, Lng: 139.6503},
		},
	}
	for _, in := range attractions {
		if _, err := r.CreateAttraction(ctx, in); err != nil {
			return fmt.Errorf("seeding attraction %s: %w", in.Name, err)
		}
	}

	weather := travel.InsertWeather{
		DestinationID: neoTokyoID,
		Temperature:   23,
		Condition:     "Neon Rain",
		Humidity:      72,
		WindSpeed:     15,
		Icon:          "neon-rain",
	}
	if _, err := r.UpsertWeather(ctx, weather); err != nil {
		return fmt.Errorf("seeding weather: %w", err)
	}

	return nil
}
