package repositories

import (
	"context"
	"fmt"

	"tourism-service/internal/module/booking/models/entity"
	"tourism-service/internal/pkg/database"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

const (
	bookingColumns = `b.id, b.package_id, b.schedule_id, b.start_date, b.end_date, b.name, b.number_of_people,
		b.mobile, b.email, b.user_id, b.created_at, b.updated_at`

	lockSchedule = `SELECT id, available_slots, booked_slots FROM package_schedules
		WHERE package_id = $1 AND is_active AND status NOT IN ('cancelled', 'completed')
		AND start_date <= $2 AND end_date >= $3
		AND available_slots - booked_slots >= $4
		ORDER BY start_date LIMIT 1 FOR UPDATE`

	incrementBooked = `UPDATE package_schedules
		SET booked_slots = booked_slots + $2,
			status = CASE WHEN available_slots - booked_slots - $2 = 0 THEN 'booked' ELSE status END,
			updated_at = NOW()
		WHERE id = $1 AND available_slots - booked_slots >= $2`

	insertBooking = `INSERT INTO package_bookings (package_id, schedule_id, start_date, end_date, name,
			number_of_people, mobile, email, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, package_id, schedule_id, start_date, end_date, name, number_of_people, mobile, email,
			user_id, created_at, updated_at`
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	ActivePackageExists(ctx context.Context, packageID string) (bool, error)
	Purchase(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID string) ([]entity.BookingDetail, error)
	FindAllBookings(ctx context.Context) ([]entity.BookingDetail, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// ActivePackageExists implements Repositories.
func (r *repositories) ActivePackageExists(ctx context.Context, packageID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM packages WHERE id = $1 AND is_active)`
	if err := r.db.GetContext(ctx, &exists, query, packageID); err != nil {
		r.log.Error(ctx, "error check package", err)
		return false, errors.InternalServerError("error check package")
	}
	return exists, nil
}

// Purchase implements Repositories. The covering schedule is locked, its booked counter
// raised by the party size with a guarded update and the booking inserted, all in one
// transaction. booking.ScheduleID is filled from the locked schedule.
func (r *repositories) Purchase(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}
	defer database.Rollback(tx)

	// lock the schedule row for update
	var schedules []entity.LockedSchedule
	err = tx.SelectContext(ctx, &schedules, lockSchedule,
		booking.PackageID, booking.StartDate, booking.EndDate, booking.NumberOfPeople)
	if err != nil {
		r.log.Error(ctx, "error locking schedule", err)
		return entity.Booking{}, errors.InternalServerError("error locking schedule")
	}
	if len(schedules) == 0 {
		return entity.Booking{}, errors.Conflict("No available slots for the selected dates and number of people")
	}

	schedule := schedules[0]
	if remaining := schedule.Remaining(); remaining < booking.NumberOfPeople {
		return entity.Booking{}, errors.Conflict(fmt.Sprintf("Only %d slots available, but %d requested", remaining, booking.NumberOfPeople))
	}

	res, err := tx.ExecContext(ctx, incrementBooked, schedule.ID, booking.NumberOfPeople)
	if err != nil {
		r.log.Error(ctx, "error increment booked slots", err)
		return entity.Booking{}, errors.InternalServerError("error update schedule slots")
	}
	if n, err := res.RowsAffected(); err != nil || n != 1 {
		return entity.Booking{}, errors.Conflict("No available slots for the selected dates and number of people")
	}

	var created entity.Booking
	err = tx.GetContext(ctx, &created, insertBooking,
		booking.PackageID, schedule.ID, booking.StartDate, booking.EndDate, booking.Name,
		booking.NumberOfPeople, booking.Mobile, booking.Email, booking.UserID)
	if err != nil {
		r.log.Error(ctx, "error insert booking", err)
		return entity.Booking{}, errors.InternalServerError("error create booking")
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return created, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID string) ([]entity.BookingDetail, error) {
	query := `SELECT ` + bookingColumns + `, p.name AS package_name, u.name AS user_name
		FROM package_bookings b
		JOIN packages p ON p.id = b.package_id
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	bookings := []entity.BookingDetail{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		r.log.Error(ctx, "error find bookings by user id", err)
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// FindAllBookings implements Repositories.
func (r *repositories) FindAllBookings(ctx context.Context) ([]entity.BookingDetail, error) {
	query := `SELECT ` + bookingColumns + `, p.name AS package_name, u.name AS user_name
		FROM package_bookings b
		JOIN packages p ON p.id = b.package_id
		LEFT JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC`

	bookings := []entity.BookingDetail{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		r.log.Error(ctx, "error find all bookings", err)
		return nil, errors.InternalServerError("error find all bookings")
	}
	return bookings, nil
}
