// Package seed holds the built-in room catalog and home-page content.
package seed

import (
	"github.com/utsavdotdev/basobas/internal/models"
)

// Rooms returns a fresh copy of the seed catalog. Callers get their own
// slice so downstream pipelines can never corrupt the seed data.
func Rooms() []models.Room {
	rooms := make([]models.Room, len(seedRooms))
	copy(rooms, seedRooms)
	return rooms
}

// Features returns the marketing highlights for the home surface.
func Features() []models.Feature {
	features := make([]models.Feature, len(seedFeatures))
	copy(features, seedFeatures)
	return features
}

var seedRooms = []models.Room{
	{
		ID:          "1",
		Title:       "Modern Forest Cabin",
		Description: "A stunning modern cabin nestled in a serene forest setting. Floor-to-ceiling windows provide breathtaking views of nature. Perfect for those seeking tranquility and modern comfort.",
		Price:       1200,
		Location:    "Portland, Oregon",
		Images: []string{
			"https://images.unsplash.com/photo-1518780664697-55e3ad937233?w=800&q=80",
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&q=80",
		},
		Type: models.RoomTypeStudio,
		Facilities: models.Facilities{
			Bathroom:    true,
			Kitchen:     true,
			Wifi:        true,
			WaterSupply: true,
			Parking:     true,
			Furnished:   true,
		},
		Landlord: models.Landlord{
			ID:       "l1",
			Name:     "Sarah Johnson",
			Email:    "sarah@example.com",
			Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&q=80",
			Verified: true,
		},
		CreatedAt: "2024-01-15",
	},
	{
		ID:          "2",
		Title:       "Downtown Luxury Apartment",
		Description: "Spacious downtown apartment with modern amenities. Walking distance to shops, restaurants, and public transit. High ceilings and natural lighting throughout.",
		Price:       2500,
		Location:    "Seattle, Washington",
		Images: []string{
			"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&q=80",
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&q=80",
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
		},
		Type: models.RoomTypeApartment,
		Facilities: models.Facilities{
			Bathroom:    true,
			Kitchen:     true,
			Wifi:        true,
			WaterSupply: true,
			Parking:     true,
			Furnished:   true,
		},
		Landlord: models.Landlord{
			ID:       "l2",
			Name:     "Michael Chen",
			Email:    "michael@example.com",
			Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&q=80",
			Verified: true,
		},
		CreatedAt: "2024-01-20",
	},
	{
		ID:          "3",
		Title:       "Cozy Single Room",
		Description: "Affordable single room in a shared house. Great for students or young professionals. Quiet neighborhood with easy access to public transportation.",
		Price:       650,
		Location:    "Austin, Texas",
		Images: []string{
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&q=80",
		},
		Type: models.RoomTypeSingle,
		Facilities: models.Facilities{
			Wifi:        true,
			WaterSupply: true,
			Furnished:   true,
		},
		Landlord: models.Landlord{
			ID:     "l3",
			Name:   "Emily Davis",
			Email:  "emily@example.com",
			Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&q=80",
		},
		CreatedAt: "2024-02-01",
	},
	{
		ID:          "4",
		Title:       "Beachfront Double Room",
		Description: "Wake up to ocean views in this beautiful double room. Just steps from the beach with a private balcony. Perfect for couples or remote workers.",
		Price:       1800,
		Location:    "San Diego, California",
		Images: []string{
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
			"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&q=80",
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&q=80",
		},
		Type: models.RoomTypeDouble,
		Facilities: models.Facilities{
			Bathroom:    true,
			Kitchen:     true,
			Wifi:        true,
			WaterSupply: true,
			Parking:     true,
			Furnished:   true,
		},
		Landlord: models.Landlord{
			ID:       "l1",
			Name:     "Sarah Johnson",
			Email:    "sarah@example.com",
			Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&q=80",
			Verified: true,
		},
		CreatedAt: "2024-02-10",
	},
	{
		ID:          "5",
		Title:       "Mountain View Studio",
		Description: "Charming studio with panoramic mountain views. Recently renovated with modern kitchen and bathroom. Ideal for nature lovers and outdoor enthusiasts.",
		Price:       950,
		Location:    "Denver, Colorado",
		Images: []string{
			"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&q=80",
			"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
		},
		Type: models.RoomTypeStudio,
		Facilities: models.Facilities{
			Bathroom:    true,
			Kitchen:     true,
			Wifi:        true,
			WaterSupply: true,
			Parking:     true,
		},
		Landlord: models.Landlord{
			ID:       "l4",
			Name:     "James Wilson",
			Email:    "james@example.com",
			Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&q=80",
			Verified: true,
		},
		CreatedAt: "2024-02-15",
	},
	{
		ID:          "6",
		Title:       "Urban Loft Apartment",
		Description: "Industrial-style loft in a converted warehouse. Exposed brick walls, high ceilings, and open floor plan. Located in the heart of the arts district.",
		Price:       2200,
		Location:    "Chicago, Illinois",
		Images: []string{
			"https://images.unsplash.com/photo-1493809842364-78817add7ffb?w=800&q=80",
			"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&q=80",
		},
		Type: models.RoomTypeApartment,
		Facilities: models.Facilities{
			Bathroom:    true,
			Kitchen:     true,
			Wifi:        true,
			WaterSupply: true,
			Furnished:   true,
		},
		Landlord: models.Landlord{
			ID:       "l2",
			Name:     "Michael Chen",
			Email:    "michael@example.com",
			Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&q=80",
			Verified: true,
		},
		CreatedAt: "2024-02-20",
	},
}

var seedFeatures = []models.Feature{
	{
		Title:       "Verified Listings",
		Description: "All our listings are verified to ensure you get what you see. No hidden surprises.",
		Icon:        "shield",
	},
	{
		Title:       "Direct Communication",
		Description: "Connect directly with landlords without any middlemen or hidden fees.",
		Icon:        "message",
	},
	{
		Title:       "Flexible Bookings",
		Description: "Book for short or long term stays with flexible cancellation policies.",
		Icon:        "calendar",
	},
	{
		Title:       "Secure Payments",
		Description: "Your payments are protected with our secure transaction system.",
		Icon:        "lock",
	},
}
