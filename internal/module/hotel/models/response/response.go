package response

import "time"

type Hotel struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Pincode        string    `json:"pincode"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	PricePerNight  float64   `json:"pricePerNight"`
	TotalRooms     int       `json:"totalRooms"`
	AvailableRooms int       `json:"availableRooms"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	Amenities      []string  `json:"amenities"`
	Images         []string  `json:"images"`
	Rating         float64   `json:"rating"`
	ReviewCount    int       `json:"reviewCount"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	DefaultOpen    bool      `json:"defaultOpen"`
	IsActive       bool      `json:"isActive"`
	CreatedByID    string    `json:"createdById"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type HotelList struct {
	Hotels []Hotel `json:"hotels"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

type Schedule struct {
	ID             int64    `json:"id"`
	HotelID        string   `json:"hotelId"`
	Date           string   `json:"date"`
	AvailableRooms int      `json:"availableRooms"`
	BookedRooms    int      `json:"bookedRooms"`
	SpecialPrice   *float64 `json:"specialPrice,omitempty"`
	Status         string   `json:"status"`
	Notes          string   `json:"notes,omitempty"`
	IsActive       bool     `json:"isActive"`
	CreatedByID    string   `json:"createdById"`
}

// Availability answers the date-exact hotel lookup. FromSchedule is false when the
// hotel's default_open flag decided the answer.
type Availability struct {
	HotelID        string `json:"hotelId"`
	Date           string `json:"date"`
	AvailableRooms int    `json:"availableRooms"`
	IsOpen         bool   `json:"isOpen"`
	FromSchedule   bool   `json:"fromSchedule"`
}
