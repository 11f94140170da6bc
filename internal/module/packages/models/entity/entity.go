package entity

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

const (
	TypeAdventure = "adventure"
	TypeFamily    = "family"
	TypeRomantic  = "romantic"
	TypeBudget    = "budget"
	TypeLuxury    = "luxury"
	TypeReligious = "religious"

	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusComingSoon = "coming_soon"
)

const (
	ScheduleAvailable = "available"
	ScheduleBooked    = "booked"
	ScheduleCancelled = "cancelled"
	ScheduleCompleted = "completed"
)

type Package struct {
	ID                 string          `db:"id"`
	Name               string          `db:"name"`
	Description        string          `db:"description"`
	Highlights         string          `db:"highlights"`
	Itinerary          string          `db:"itinerary"`
	Duration           int             `db:"duration"`
	Nights             int             `db:"nights"`
	Price              float64         `db:"price"`
	OriginalPrice      sql.NullFloat64 `db:"original_price"`
	MaxGroupSize       int             `db:"max_group_size"`
	MinGroupSize       int             `db:"min_group_size"`
	Type               string          `db:"type"`
	Status             string          `db:"status"`
	Inclusions         pq.StringArray  `db:"inclusions"`
	Exclusions         pq.StringArray  `db:"exclusions"`
	Images             pq.StringArray  `db:"images"`
	Destinations       pq.StringArray  `db:"destinations"`
	Rating             float64         `db:"rating"`
	ReviewCount        int             `db:"review_count"`
	Terms              sql.NullString  `db:"terms"`
	CancellationPolicy sql.NullString  `db:"cancellation_policy"`
	IsActive           bool            `db:"is_active"`
	CreatedByID        string          `db:"created_by_id"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

type Schedule struct {
	ID             int64           `db:"id"`
	PackageID      string          `db:"package_id"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	AvailableSlots int             `db:"available_slots"`
	BookedSlots    int             `db:"booked_slots"`
	SpecialPrice   sql.NullFloat64 `db:"special_price"`
	Status         string          `db:"status"`
	Notes          sql.NullString  `db:"notes"`
	PickupLocation sql.NullString  `db:"pickup_location"`
	PickupTime     sql.NullString  `db:"pickup_time"`
	IsActive       bool            `db:"is_active"`
	CreatedByID    sql.NullString  `db:"created_by_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// Remaining never goes below zero.
func (s Schedule) Remaining() int {
	if s.BookedSlots >= s.AvailableSlots {
		return 0
	}
	return s.AvailableSlots - s.BookedSlots
}

// Overlaps reports whether the closed ranges [aStart, aEnd] and [bStart, bEnd] share a day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// SchedulePatch carries the columns an update touches; nil means unchanged.
type SchedulePatch struct {
	StartDate      *time.Time
	EndDate        *time.Time
	AvailableSlots *int
	BookedSlots    *int
	SpecialPrice   *float64
	Status         *string
	Notes          *string
	PickupLocation *string
	PickupTime     *string
}

type PackageFilter struct {
	Page        int
	Limit       int
	Type        string
	MinPrice    *float64
	MaxPrice    *float64
	Duration    *int
	Destination string
	Rating      *float64
	IsActive    bool
}

// ScheduleFilter selects active schedules overlapping [StartDate, EndDate], or ending on
// or after StartDate when EndDate is nil.
type ScheduleFilter struct {
	PackageID string
	StartDate *time.Time
	EndDate   *time.Time
}
