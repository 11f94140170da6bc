package request

type CreateHotel struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Description    string   `json:"description" validate:"required"`
	Address        string   `json:"address" validate:"required,max=255"`
	City           string   `json:"city" validate:"required,max=50"`
	State          string   `json:"state" validate:"required,max=50"`
	Pincode        string   `json:"pincode" validate:"required,max=10"`
	Phone          string   `json:"phone" validate:"omitempty,max=15"`
	Email          string   `json:"email" validate:"omitempty,email,max=100"`
	PricePerNight  float64  `json:"pricePerNight" validate:"gte=0"`
	TotalRooms     int      `json:"totalRooms" validate:"required,gte=1"`
	AvailableRooms int      `json:"availableRooms" validate:"gte=0"`
	Type           string   `json:"type" validate:"required,oneof=luxury budget premium resort"`
	Status         string   `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
	Amenities      []string `json:"amenities"`
	Images         []string `json:"images"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount    int      `json:"reviewCount" validate:"gte=0"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,longitude"`
	DefaultOpen    *bool    `json:"defaultOpen"`
}

// UpdateHotel is a partial update, nil fields are left untouched.
type UpdateHotel struct {
	Name           *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Description    *string   `json:"description" validate:"omitempty,min=1"`
	Address        *string   `json:"address" validate:"omitempty,min=1,max=255"`
	City           *string   `json:"city" validate:"omitempty,min=1,max=50"`
	State          *string   `json:"state" validate:"omitempty,min=1,max=50"`
	Pincode        *string   `json:"pincode" validate:"omitempty,min=1,max=10"`
	Phone          *string   `json:"phone" validate:"omitempty,max=15"`
	Email          *string   `json:"email" validate:"omitempty,email,max=100"`
	PricePerNight  *float64  `json:"pricePerNight" validate:"omitempty,gte=0"`
	TotalRooms     *int      `json:"totalRooms" validate:"omitempty,gte=1"`
	AvailableRooms *int      `json:"availableRooms" validate:"omitempty,gte=0"`
	Type           *string   `json:"type" validate:"omitempty,oneof=luxury budget premium resort"`
	Status         *string   `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
	Amenities      *[]string `json:"amenities"`
	Images         *[]string `json:"images"`
	Rating         *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount    *int      `json:"reviewCount" validate:"omitempty,gte=0"`
	Latitude       *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64  `json:"longitude" validate:"omitempty,longitude"`
	DefaultOpen    *bool     `json:"defaultOpen"`
}

type CreateSchedule struct {
	HotelID        string   `json:"hotelId" validate:"required"`
	Date           string   `json:"date" validate:"required"`
	AvailableRooms *int     `json:"availableRooms" validate:"required,gte=0"`
	BookedRooms    int      `json:"bookedRooms" validate:"gte=0"`
	SpecialPrice   *float64 `json:"specialPrice" validate:"omitempty,gte=0"`
	Status         string   `json:"status" validate:"omitempty,oneof=available booked blocked maintenance"`
	Notes          string   `json:"notes"`
}

type UpdateSchedule struct {
	Date           *string  `json:"date"`
	AvailableRooms *int     `json:"availableRooms" validate:"omitempty,gte=0"`
	BookedRooms    *int     `json:"bookedRooms" validate:"omitempty,gte=0"`
	SpecialPrice   *float64 `json:"specialPrice" validate:"omitempty,gte=0"`
	Status         *string  `json:"status" validate:"omitempty,oneof=available booked blocked maintenance"`
	Notes          *string  `json:"notes"`
}

type ListHotels struct {
	Page            int
	Limit           int
	City            string
	Type            string
	MinPrice        *float64
	MaxPrice        *float64
	Rating          *float64
	IncludeInactive bool
}

type ListSchedules struct {
	HotelID   string
	StartDate string
	EndDate   string
}
