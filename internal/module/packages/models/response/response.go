package response

import "time"

type Package struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Highlights         string     `json:"highlights"`
	Itinerary          string     `json:"itinerary"`
	Duration           int        `json:"duration"`
	Nights             int        `json:"nights"`
	Price              float64    `json:"price"`
	OriginalPrice      *float64   `json:"originalPrice,omitempty"`
	MaxGroupSize       int        `json:"maxGroupSize"`
	MinGroupSize       int        `json:"minGroupSize"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	Inclusions         []string   `json:"inclusions"`
	Exclusions         []string   `json:"exclusions"`
	Images             []string   `json:"images"`
	Destinations       []string   `json:"destinations"`
	Rating             float64    `json:"rating"`
	ReviewCount        int        `json:"reviewCount"`
	Terms              string     `json:"terms,omitempty"`
	CancellationPolicy string     `json:"cancellationPolicy,omitempty"`
	IsActive           bool       `json:"isActive"`
	CreatedByID        string     `json:"createdById"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	Schedules          []Schedule `json:"schedules,omitempty"`
}

type PackageList struct {
	Packages []Package `json:"packages"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

type Schedule struct {
	ID             int64    `json:"id"`
	PackageID      string   `json:"packageId"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	AvailableSlots int      `json:"availableSlots"`
	BookedSlots    int      `json:"bookedSlots"`
	SpecialPrice   *float64 `json:"specialPrice,omitempty"`
	Status         string   `json:"status"`
	Notes          string   `json:"notes,omitempty"`
	PickupLocation string   `json:"pickupLocation,omitempty"`
	PickupTime     string   `json:"pickupTime,omitempty"`
	IsActive       bool     `json:"isActive"`
}

type Availability struct {
	AvailableSlots int `json:"availableSlots"`
	TotalSlots     int `json:"totalSlots"`
}
