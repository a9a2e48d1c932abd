package models

// RoomType defines the closed set of room categories.
type RoomType string

const (
	RoomTypeSingle    RoomType = "single"
	RoomTypeDouble    RoomType = "double"
	RoomTypeStudio    RoomType = "studio"
	RoomTypeApartment RoomType = "apartment"
)

// Valid reports whether t is one of the known room types.
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeStudio, RoomTypeApartment:
		return true
	}
	return false
}

// Facilities holds the six independent amenity flags of a room.
type Facilities struct {
	Bathroom    bool `json:"bathroom"`
	Kitchen     bool `json:"kitchen"`
	Wifi        bool `json:"wifi"`
	WaterSupply bool `json:"waterSupply"`
	Parking     bool `json:"parking"`
	Furnished   bool `json:"furnished"`
}

// Landlord is the owner reference embedded in a room.
type Landlord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}

// Room represents a rentable room or unit. Rooms are immutable once created;
// there is no partial update path.
type Room struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Location    string     `json:"location"`
	Images      []string   `json:"images"`
	Type        RoomType   `json:"type"`
	Facilities  Facilities `json:"facilities"`
	Landlord    Landlord   `json:"landlord"`
	CreatedAt   string     `json:"createdAt"` // ISO date or RFC3339 timestamp
}
