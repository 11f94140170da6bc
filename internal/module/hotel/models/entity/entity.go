package entity

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

const (
	TypeLuxury  = "luxury"
	TypeBudget  = "budget"
	TypePremium = "premium"
	TypeResort  = "resort"

	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusMaintenance = "maintenance"
)

const (
	ScheduleAvailable   = "available"
	ScheduleBooked      = "booked"
	ScheduleBlocked     = "blocked"
	ScheduleMaintenance = "maintenance"
)

type Hotel struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	Address        string          `db:"address"`
	City           string          `db:"city"`
	State          string          `db:"state"`
	Pincode        string          `db:"pincode"`
	Phone          sql.NullString  `db:"phone"`
	Email          sql.NullString  `db:"email"`
	PricePerNight  float64         `db:"price_per_night"`
	TotalRooms     int             `db:"total_rooms"`
	AvailableRooms int             `db:"available_rooms"`
	Type           string          `db:"type"`
	Status         string          `db:"status"`
	Amenities      pq.StringArray  `db:"amenities"`
	Images         pq.StringArray  `db:"images"`
	Rating         float64         `db:"rating"`
	ReviewCount    int             `db:"review_count"`
	Latitude       sql.NullFloat64 `db:"latitude"`
	Longitude      sql.NullFloat64 `db:"longitude"`
	DefaultOpen    bool            `db:"default_open"`
	IsActive       bool            `db:"is_active"`
	CreatedByID    string          `db:"created_by_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type Schedule struct {
	ID             int64           `db:"id"`
	HotelID        string          `db:"hotel_id"`
	Date           time.Time       `db:"date"`
	AvailableRooms int             `db:"available_rooms"`
	BookedRooms    int             `db:"booked_rooms"`
	SpecialPrice   sql.NullFloat64 `db:"special_price"`
	Status         string          `db:"status"`
	Notes          sql.NullString  `db:"notes"`
	IsActive       bool            `db:"is_active"`
	CreatedByID    string          `db:"created_by_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// Remaining is the number of rooms still bookable on the schedule date.
func (s Schedule) Remaining() int {
	if s.Status != ScheduleAvailable || s.BookedRooms >= s.AvailableRooms {
		return 0
	}
	return s.AvailableRooms - s.BookedRooms
}

type HotelFilter struct {
	Page            int
	Limit           int
	City            string
	Type            string
	MinPrice        *float64
	MaxPrice        *float64
	Rating          *float64
	IncludeInactive bool
}

// ScheduleFilter selects active schedules; an empty HotelID means every hotel.
type ScheduleFilter struct {
	HotelID   string
	StartDate *time.Time
	EndDate   *time.Time
}
