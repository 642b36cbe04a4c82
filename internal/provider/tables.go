package provider

import "github.com/neexbeast/neon-voyager/internal/travel"

// Simulated listings keyed by exact destination name. In production these
// would come from APIs like Booking.com, TripAdvisor or Google Places.

var hotelTable = map[string][]travel.ExternalHotel{
	"Neo Tokyo": {
		{
			Name:        "Cyber Grand Hotel",
			Description: "Experience luxury in the heart of Neo Tokyo with holographic concierge services and quantum wifi.",
			Price:       299,
			Rating:      4.9,
			ReviewCount: 2847,
			ImageURL:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Amenities:   []string{"AI Butler", "Sky Pool", "Quantum Spa"},
			BookingURL:  "https://booking.example.com/cyber-grand",
		},
		{
			Name:        "Neon Boutique Suites",
			Description: "Intimate boutique experience with AR room customization and personalized AI recommendations.",
			Price:       189,
			Rating:      4.7,
			ReviewCount: 1923,
			ImageURL:    "https://images.unsplash.com/photo-1571896349842-33c89424de2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Amenities:   []string{"AR Rooms", "VR Lounge"},
			BookingURL:  "https://booking.example.com/neon-boutique",
		},
		{
			Name:        "Digital Zen Lodge",
			Description: "Modern minimalist hotel with meditation pods and biometric wellness tracking.",
			Price:       249,
			Rating:      4.6,
			ReviewCount: 1567,
			ImageURL:    "https://images.unsplash.com/photo-1578774204375-826dc5d996e0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Amenities:   []string{"Meditation Pods", "Wellness Tracking", "Smart Rooms"},
			BookingURL:  "https://booking.example.com/digital-zen",
		},
	},
	"Cyber Singapore": {
		{
			Name:        "Marina Bay Cyber Resort",
			Description: "Luxury resort with infinity pool overlooking the digital skyline and AI concierge.",
			Price:       350,
			Rating:      4.8,
			ReviewCount: 3421,
			ImageURL:    "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Amenities:   []string{"Infinity Pool", "AI Concierge", "Sky Garden"},
			BookingURL:  "https://booking.example.com/marina-cyber",
		},
	},
	"Digital Dubai": {
		{
			Name:        "Burj Digital Palace",
			Description: "Ultra-luxury tower hotel with holographic entertainment and personal AI assistants.",
			Price:       599,
			Rating:      4.9,
			ReviewCount: 2156,
			ImageURL:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Amenities:   []string{"Holographic Entertainment", "Personal AI", "Luxury Spa"},
			BookingURL:  "https://booking.example.com/burj-digital",
		},
	},
}

var restaurantTable = map[string][]travel.ExternalRestaurant{
	"Neo Tokyo": {
		{
			Name:           "Cyber Ramen Experience",
			Description:    "Traditional ramen elevated with molecular gastronomy and holographic ambiance.",
			CuisineType:    "Fusion Japanese",
			PriceRange:     "$$$",
			Rating:         4.8,
			ImageURL:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ReservationURL: "https://reservations.example.com/cyber-ramen",
		},
		{
			Name:           "Neon Sushi Lab",
			Description:    "Interactive sushi bar where robots and chefs collaborate to create edible art.",
			CuisineType:    "Modern Japanese",
			PriceRange:     "$$$$",
			Rating:         4.9,
			ImageURL:       "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ReservationURL: "https://reservations.example.com/neon-sushi",
		},
	},
}

var attractionTable = map[string][]travel.ExternalAttraction{
	"Neo Tokyo": {
		{
			Name:        "Digital Shrine Visit",
			Description: "Experience ancient spirituality enhanced with augmented reality offerings and digital prayers.",
			Category:    "Cultural",
			Duration:    "2 hours",
			ImageURL:    "https://images.unsplash.com/photo-1528164344705-47542687000d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Location:    travel.Location{Lat: 35.6762, Lng: 139.6503},
			TicketURL:   "https://tickets.example.com/digital-shrine",
		},
		{
			Name:        "Holographic Shopping District",
			Description: "Shop in virtual reality stores with haptic feedback and instant delivery to your hotel.",
			Category:    "Shopping",
			Duration:    "3 hours",
			ImageURL:    "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Location:    travel.Location{Lat: 35.6762, Lng: 139.6503},
			TicketURL:   "https://tickets.example.com/holo-shopping",
		},
		{
			Name:        "Maglev City Tour",
			Description: "High-speed magnetic levitation tour through the city's most iconic futuristic landmarks.",
			Category:    "Sightseeing",
			Duration:    "4 hours",
			ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Location:    travel.Location{Lat: 35.6762, Lng: 139.6503},
			TicketURL:   "https://tickets.example.com/maglev-tour",
		},
	},
}
