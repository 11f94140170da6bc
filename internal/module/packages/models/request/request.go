package request

type Schedule struct {
	StartDate      string   `json:"startDate" validate:"required"`
	EndDate        string   `json:"endDate" validate:"required"`
	AvailableSlots int      `json:"availableSlots" validate:"required,gte=1"`
	BookedSlots    int      `json:"bookedSlots" validate:"gte=0"`
	SpecialPrice   *float64 `json:"specialPrice" validate:"omitempty,gte=0"`
	Status         string   `json:"status" validate:"omitempty,oneof=available booked cancelled completed"`
	Notes          string   `json:"notes"`
	PickupLocation string   `json:"pickupLocation"`
	PickupTime     string   `json:"pickupTime" validate:"omitempty,max=8"`
}

type CreatePackage struct {
	Name               string     `json:"name" validate:"required,max=100"`
	Description        string     `json:"description" validate:"required"`
	Highlights         string     `json:"highlights" validate:"required"`
	Itinerary          string     `json:"itinerary" validate:"required"`
	Duration           int        `json:"duration" validate:"required,gte=1"`
	Nights             int        `json:"nights" validate:"gte=0"`
	Price              float64    `json:"price" validate:"gte=0"`
	OriginalPrice      *float64   `json:"originalPrice" validate:"omitempty,gte=0"`
	MaxGroupSize       int        `json:"maxGroupSize" validate:"required,gte=1"`
	MinGroupSize       int        `json:"minGroupSize" validate:"omitempty,gte=1"`
	Type               string     `json:"type" validate:"required,oneof=adventure family romantic budget luxury religious"`
	Status             string     `json:"status" validate:"omitempty,oneof=active inactive coming_soon"`
	Inclusions         []string   `json:"inclusions"`
	Exclusions         []string   `json:"exclusions"`
	Images             []string   `json:"images"`
	Destinations       []string   `json:"destinations"`
	Rating             float64    `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount        int        `json:"reviewCount" validate:"gte=0"`
	Terms              string     `json:"terms"`
	CancellationPolicy string     `json:"cancellationPolicy"`
	Schedules          []Schedule `json:"schedules" validate:"omitempty,dive"`
}

type UpdatePackage struct {
	Name               *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Description        *string   `json:"description" validate:"omitempty,min=1"`
	Highlights         *string   `json:"highlights" validate:"omitempty,min=1"`
	Itinerary          *string   `json:"itinerary" validate:"omitempty,min=1"`
	Duration           *int      `json:"duration" validate:"omitempty,gte=1"`
	Nights             *int      `json:"nights" validate:"omitempty,gte=0"`
	Price              *float64  `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice      *float64  `json:"originalPrice" validate:"omitempty,gte=0"`
	MaxGroupSize       *int      `json:"maxGroupSize" validate:"omitempty,gte=1"`
	MinGroupSize       *int      `json:"minGroupSize" validate:"omitempty,gte=1"`
	Type               *string   `json:"type" validate:"omitempty,oneof=adventure family romantic budget luxury religious"`
	Status             *string   `json:"status" validate:"omitempty,oneof=active inactive coming_soon"`
	Inclusions         *[]string `json:"inclusions"`
	Exclusions         *[]string `json:"exclusions"`
	Images             *[]string `json:"images"`
	Destinations       *[]string `json:"destinations"`
	Rating             *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount        *int      `json:"reviewCount" validate:"omitempty,gte=0"`
	Terms              *string   `json:"terms"`
	CancellationPolicy *string   `json:"cancellationPolicy"`
}

type CreateSchedule struct {
	PackageID string `json:"packageId" validate:"required"`
	Schedule
}

type UpdateSchedule struct {
	StartDate      *string  `json:"startDate"`
	EndDate        *string  `json:"endDate"`
	AvailableSlots *int     `json:"availableSlots" validate:"omitempty,gte=1"`
	BookedSlots    *int     `json:"bookedSlots" validate:"omitempty,gte=0"`
	SpecialPrice   *float64 `json:"specialPrice" validate:"omitempty,gte=0"`
	Status         *string  `json:"status" validate:"omitempty,oneof=available booked cancelled completed"`
	Notes          *string  `json:"notes"`
	PickupLocation *string  `json:"pickupLocation"`
	PickupTime     *string  `json:"pickupTime" validate:"omitempty,max=8"`
}

type ListPackages struct {
	Page        int
	Limit       int
	Type        string
	MinPrice    *float64
	MaxPrice    *float64
	Duration    *int
	Destination string
	Rating      *float64
	IsActive    *bool
}

type ListSchedules struct {
	PackageID string
	StartDate string
	EndDate   string
}
