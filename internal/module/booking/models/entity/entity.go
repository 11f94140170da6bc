package entity

import (
	"database/sql"
	"time"
)

type Booking struct {
	ID             int64          `db:"id"`
	PackageID      string         `db:"package_id"`
	ScheduleID     int64          `db:"schedule_id"`
	StartDate      time.Time      `db:"start_date"`
	EndDate        time.Time      `db:"end_date"`
	Name           string         `db:"name"`
	NumberOfPeople int            `db:"number_of_people"`
	Mobile         string         `db:"mobile"`
	Email          string         `db:"email"`
	UserID         sql.NullString `db:"user_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// BookingDetail is a booking joined with its package and, when present, its user.
type BookingDetail struct {
	Booking
	PackageName string         `db:"package_name"`
	UserName    sql.NullString `db:"user_name"`
}

// LockedSchedule is the part of a package schedule read under FOR UPDATE during a purchase.
type LockedSchedule struct {
	ID             int64 `db:"id"`
	AvailableSlots int   `db:"available_slots"`
	BookedSlots    int   `db:"booked_slots"`
}

func (s LockedSchedule) Remaining() int {
	return s.AvailableSlots - s.BookedSlots
}
