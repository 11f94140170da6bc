package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"tourism-service/internal/module/hotel/models/entity"
	"tourism-service/internal/module/hotel/models/request"
	"tourism-service/internal/pkg/database"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	hotelColumns = `id, name, description, address, city, state, pincode, phone, email, price_per_night,
		total_rooms, available_rooms, type, status, amenities, images, rating, review_count, latitude,
		longitude, default_open, is_active, created_by_id, created_at, updated_at`
	scheduleColumns = `id, hotel_id, date, available_rooms, booked_rooms, special_price, status, notes,
		is_active, created_by_id, created_at, updated_at`
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// hotels
	HotelIDExists(ctx context.Context, id string) (bool, error)
	CreateHotel(ctx context.Context, hotel entity.Hotel) (entity.Hotel, error)
	FindHotelByID(ctx context.Context, id string, includeInactive bool) (entity.Hotel, error)
	FindHotels(ctx context.Context, filter entity.HotelFilter) ([]entity.Hotel, int, error)
	UpdateHotel(ctx context.Context, id string, payload request.UpdateHotel) (entity.Hotel, error)
	SetHotelActive(ctx context.Context, id string, active bool) error
	FindAvailableHotels(ctx context.Context, checkIn, checkOut time.Time) ([]entity.Hotel, error)
	// schedules
	CreateSchedule(ctx context.Context, schedule entity.Schedule) (entity.Schedule, error)
	FindScheduleByID(ctx context.Context, id int64) (entity.Schedule, error)
	FindScheduleByDate(ctx context.Context, hotelID string, date time.Time) (entity.Schedule, error)
	FindSchedules(ctx context.Context, filter entity.ScheduleFilter) ([]entity.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule entity.Schedule) (entity.Schedule, error)
	DeactivateSchedule(ctx context.Context, id int64) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// HotelIDExists implements Repositories.
func (r *repositories) HotelIDExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM hotels WHERE id = $1)`, id); err != nil {
		return false, errors.InternalServerError("error check hotel id")
	}
	return exists, nil
}

// CreateHotel implements Repositories.
func (r *repositories) CreateHotel(ctx context.Context, hotel entity.Hotel) (entity.Hotel, error) {
	query := `INSERT INTO hotels (id, name, description, address, city, state, pincode, phone, email,
			price_per_night, total_rooms, available_rooms, type, status, amenities, images, rating,
			review_count, latitude, longitude, default_open, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + hotelColumns

	var created entity.Hotel
	err := r.db.GetContext(ctx, &created, query,
		hotel.ID, hotel.Name, hotel.Description, hotel.Address, hotel.City, hotel.State, hotel.Pincode,
		hotel.Phone, hotel.Email, hotel.PricePerNight, hotel.TotalRooms, hotel.AvailableRooms, hotel.Type,
		hotel.Status, hotel.Amenities, hotel.Images, hotel.Rating, hotel.ReviewCount, hotel.Latitude,
		hotel.Longitude, hotel.DefaultOpen, hotel.CreatedByID)
	if database.IsUniqueViolation(err) {
		return entity.Hotel{}, errors.Conflict("hotel id already taken")
	}
	if err != nil {
		r.log.Error(ctx, "error create hotel", err)
		return entity.Hotel{}, errors.InternalServerError("error create hotel")
	}
	return created, nil
}

// FindHotelByID implements Repositories.
func (r *repositories) FindHotelByID(ctx context.Context, id string, includeInactive bool) (entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1 AND ($2 OR is_active)`

	var hotel entity.Hotel
	err := r.db.GetContext(ctx, &hotel, query, id, includeInactive)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Hotel{}, errors.NotFound("hotel not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find hotel", err)
		return entity.Hotel{}, errors.InternalServerError("error find hotel by id")
	}
	return hotel, nil
}

// FindHotels implements Repositories.
func (r *repositories) FindHotels(ctx context.Context, filter entity.HotelFilter) ([]entity.Hotel, int, error) {
	var cond database.Conditions
	if !filter.IncludeInactive {
		cond.Add("is_active")
	}
	if filter.City != "" {
		cond.Add("city ILIKE " + cond.Arg("%"+filter.City+"%"))
	}
	if filter.Type != "" {
		cond.Add("type = " + cond.Arg(filter.Type))
	}
	if filter.MinPrice != nil {
		cond.Add("price_per_night >= " + cond.Arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		cond.Add("price_per_night <= " + cond.Arg(*filter.MaxPrice))
	}
	if filter.Rating != nil {
		cond.Add("rating >= " + cond.Arg(*filter.Rating))
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM hotels`+cond.Where(), cond.Args()...); err != nil {
		r.log.Error(ctx, "error count hotels", err)
		return nil, 0, errors.InternalServerError("error count hotels")
	}

	args := append(cond.Args(), filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`SELECT %s FROM hotels%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		hotelColumns, cond.Where(), len(args)-1, len(args))

	hotels := []entity.Hotel{}
	if err := r.db.SelectContext(ctx, &hotels, query, args...); err != nil {
		r.log.Error(ctx, "error find hotels", err)
		return nil, 0, errors.InternalServerError("error find hotels")
	}
	return hotels, total, nil
}

// UpdateHotel implements Repositories.
func (r *repositories) UpdateHotel(ctx context.Context, id string, payload request.UpdateHotel) (entity.Hotel, error) {
	var set database.Assignments
	setString := func(col string, v *string) {
		if v != nil {
			set.Set(col, *v)
		}
	}
	setString("name", payload.Name)
	setString("description", payload.Description)
	setString("address", payload.Address)
	setString("city", payload.City)
	setString("state", payload.State)
	setString("pincode", payload.Pincode)
	setString("phone", payload.Phone)
	setString("email", payload.Email)
	setString("type", payload.Type)
	setString("status", payload.Status)
	if payload.PricePerNight != nil {
		set.Set("price_per_night", *payload.PricePerNight)
	}
	if payload.TotalRooms != nil {
		set.Set("total_rooms", *payload.TotalRooms)
	}
	if payload.AvailableRooms != nil {
		set.Set("available_rooms", *payload.AvailableRooms)
	}
	if payload.Amenities != nil {
		set.Set("amenities", pq.StringArray(*payload.Amenities))
	}
	if payload.Images != nil {
		set.Set("images", pq.StringArray(*payload.Images))
	}
	if payload.Rating != nil {
		set.Set("rating", *payload.Rating)
	}
	if payload.ReviewCount != nil {
		set.Set("review_count", *payload.ReviewCount)
	}
	if payload.Latitude != nil {
		set.Set("latitude", *payload.Latitude)
	}
	if payload.Longitude != nil {
		set.Set("longitude", *payload.Longitude)
	}
	if payload.DefaultOpen != nil {
		set.Set("default_open", *payload.DefaultOpen)
	}

	if set.Len() == 0 {
		return r.FindHotelByID(ctx, id, true)
	}

	query, args := set.Update("hotels", "id", id, hotelColumns)
	var hotel entity.Hotel
	err := r.db.GetContext(ctx, &hotel, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Hotel{}, errors.NotFound("hotel not found")
	}
	if err != nil {
		r.log.Error(ctx, "error update hotel", err)
		return entity.Hotel{}, errors.InternalServerError("error update hotel")
	}
	return hotel, nil
}

// SetHotelActive implements Repositories.
func (r *repositories) SetHotelActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE hotels SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		r.log.Error(ctx, "error set hotel active", err)
		return errors.InternalServerError("error update hotel status")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("hotel not found")
	}
	return nil
}

// FindAvailableHotels implements Repositories. A hotel qualifies when no active schedule in
// [checkIn, checkOut) is closed or full, and nights without a schedule row are only accepted
// for default_open hotels.
func (r *repositories) FindAvailableHotels(ctx context.Context, checkIn, checkOut time.Time) ([]entity.Hotel, error) {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	query := `SELECT ` + hotelColumns + ` FROM hotels h
		WHERE h.is_active AND h.status = 'active'
		AND NOT EXISTS (
			SELECT 1 FROM hotel_schedules s
			WHERE s.hotel_id = h.id AND s.is_active AND s.date >= $1 AND s.date < $2
			AND (s.status <> 'available' OR s.available_rooms - s.booked_rooms <= 0)
		)
		AND (h.default_open OR (
			SELECT COUNT(*) FROM hotel_schedules s
			WHERE s.hotel_id = h.id AND s.is_active AND s.date >= $1 AND s.date < $2
		) = $3)
		ORDER BY h.rating DESC, h.created_at DESC`

	hotels := []entity.Hotel{}
	if err := r.db.SelectContext(ctx, &hotels, query, checkIn, checkOut, nights); err != nil {
		r.log.Error(ctx, "error find available hotels", err)
		return nil, errors.InternalServerError("error find available hotels")
	}
	return hotels, nil
}

// CreateSchedule implements Repositories.
func (r *repositories) CreateSchedule(ctx context.Context, schedule entity.Schedule) (entity.Schedule, error) {
	query := `INSERT INTO hotel_schedules (hotel_id, date, available_rooms, booked_rooms, special_price, status, notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + scheduleColumns

	var created entity.Schedule
	err := r.db.GetContext(ctx, &created, query,
		schedule.HotelID, schedule.Date, schedule.AvailableRooms, schedule.BookedRooms,
		schedule.SpecialPrice, schedule.Status, schedule.Notes, schedule.CreatedByID)
	if database.IsUniqueViolation(err) {
		return entity.Schedule{}, errors.Conflict("schedule already exists for this date")
	}
	if database.IsCheckViolation(err) {
		return entity.Schedule{}, errors.BadRequest("booked rooms cannot exceed available rooms")
	}
	if err != nil {
		r.log.Error(ctx, "error create hotel schedule", err)
		return entity.Schedule{}, errors.InternalServerError("error create hotel schedule")
	}
	return created, nil
}

// FindScheduleByID implements Repositories.
func (r *repositories) FindScheduleByID(ctx context.Context, id int64) (entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM hotel_schedules WHERE id = $1 AND is_active`

	var schedule entity.Schedule
	err := r.db.GetContext(ctx, &schedule, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find hotel schedule", err)
		return entity.Schedule{}, errors.InternalServerError("error find hotel schedule")
	}
	return schedule, nil
}

// FindScheduleByDate implements Repositories.
func (r *repositories) FindScheduleByDate(ctx context.Context, hotelID string, date time.Time) (entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM hotel_schedules WHERE hotel_id = $1 AND date = $2 AND is_active`

	var schedule entity.Schedule
	err := r.db.GetContext(ctx, &schedule, query, hotelID, date)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find hotel schedule by date", err)
		return entity.Schedule{}, errors.InternalServerError("error find hotel schedule by date")
	}
	return schedule, nil
}

// FindSchedules implements Repositories.
func (r *repositories) FindSchedules(ctx context.Context, filter entity.ScheduleFilter) ([]entity.Schedule, error) {
	var cond database.Conditions
	cond.Add("is_active")
	if filter.HotelID != "" {
		cond.Add("hotel_id = " + cond.Arg(filter.HotelID))
	}
	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		cond.Add(fmt.Sprintf("date BETWEEN %s AND %s", cond.Arg(*filter.StartDate), cond.Arg(*filter.EndDate)))
	case filter.StartDate != nil:
		cond.Add("date >= " + cond.Arg(*filter.StartDate))
	}

	query := `SELECT ` + scheduleColumns + ` FROM hotel_schedules` + cond.Where() + ` ORDER BY date ASC`

	schedules := []entity.Schedule{}
	if err := r.db.SelectContext(ctx, &schedules, query, cond.Args()...); err != nil {
		r.log.Error(ctx, "error find hotel schedules", err)
		return nil, errors.InternalServerError("error find hotel schedules")
	}
	return schedules, nil
}

// UpdateSchedule implements Repositories.
func (r *repositories) UpdateSchedule(ctx context.Context, schedule entity.Schedule) (entity.Schedule, error) {
	query := `UPDATE hotel_schedules
		SET date = $2, available_rooms = $3, booked_rooms = $4, special_price = $5, status = $6, notes = $7, updated_at = NOW()
		WHERE id = $1 AND is_active
		RETURNING ` + scheduleColumns

	var updated entity.Schedule
	err := r.db.GetContext(ctx, &updated, query,
		schedule.ID, schedule.Date, schedule.AvailableRooms, schedule.BookedRooms,
		schedule.SpecialPrice, schedule.Status, schedule.Notes)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}
	if database.IsUniqueViolation(err) {
		return entity.Schedule{}, errors.Conflict("schedule already exists for this date")
	}
	if database.IsCheckViolation(err) {
		return entity.Schedule{}, errors.BadRequest("booked rooms cannot exceed available rooms")
	}
	if err != nil {
		r.log.Error(ctx, "error update hotel schedule", err)
		return entity.Schedule{}, errors.InternalServerError("error update hotel schedule")
	}
	return updated, nil
}

// DeactivateSchedule implements Repositories.
func (r *repositories) DeactivateSchedule(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE hotel_schedules SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`, id)
	if err != nil {
		r.log.Error(ctx, "error deactivate hotel schedule", err)
		return errors.InternalServerError("error delete hotel schedule")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("schedule not found")
	}
	return nil
}
