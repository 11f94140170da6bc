package usecases

import (
	"context"
	"database/sql"
	"net/http"

	"tourism-service/internal/module/hotel/models/entity"
	"tourism-service/internal/module/hotel/models/request"
	"tourism-service/internal/module/hotel/models/response"
	"tourism-service/internal/module/hotel/repositories"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	"tourism-service/internal/pkg/idgen"
	"tourism-service/internal/pkg/lock"
	"tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/policy"

	"github.com/lib/pq"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type usecase struct {
	repo   repositories.Repositories
	log    log.Logger
	ids    idgen.Generator
	locker lock.Locker
}

type Usecase interface {
	CreateHotel(ctx context.Context, actor policy.Actor, payload *request.CreateHotel) (response.Hotel, error)
	ListHotels(ctx context.Context, query request.ListHotels) (response.HotelList, error)
	GetHotel(ctx context.Context, id string, includeInactive bool) (response.Hotel, error)
	UpdateHotel(ctx context.Context, actor policy.Actor, id string, payload *request.UpdateHotel) (response.Hotel, error)
	DeleteHotel(ctx context.Context, actor policy.Actor, id string) error
	ReactivateHotel(ctx context.Context, actor policy.Actor, id string) (response.Hotel, error)
	Availability(ctx context.Context, hotelID, date string) (response.Availability, error)
	SearchAvailable(ctx context.Context, checkIn, checkOut string) ([]response.Hotel, error)

	CreateSchedule(ctx context.Context, actor policy.Actor, payload *request.CreateSchedule) (response.Schedule, error)
	ListSchedules(ctx context.Context, query request.ListSchedules) ([]response.Schedule, error)
	GetSchedule(ctx context.Context, id int64) (response.Schedule, error)
	UpdateSchedule(ctx context.Context, actor policy.Actor, hotelID string, id int64, payload *request.UpdateSchedule) (response.Schedule, error)
	DeleteSchedule(ctx context.Context, actor policy.Actor, hotelID string, id int64) error
}

func New(repo repositories.Repositories, log log.Logger, ids idgen.Generator, locker lock.Locker) Usecase {
	return &usecase{
		repo:   repo,
		log:    log,
		ids:    ids,
		locker: locker,
	}
}

func ownership(hotel entity.Hotel) policy.Resource {
	return policy.Resource{Kind: "hotels", OwnerID: hotel.CreatedByID}
}

func (u *usecase) CreateHotel(ctx context.Context, actor policy.Actor, payload *request.CreateHotel) (response.Hotel, error) {
	if err := policy.RequireAdmin(actor, "create hotels"); err != nil {
		return response.Hotel{}, err
	}

	id, err := u.ids.Next(ctx, "hotels", u.repo.HotelIDExists)
	if err != nil {
		return response.Hotel{}, err
	}

	hotel := entity.Hotel{
		ID:             id,
		Name:           payload.Name,
		Description:    payload.Description,
		Address:        payload.Address,
		City:           payload.City,
		State:          payload.State,
		Pincode:        payload.Pincode,
		Phone:          sql.NullString{String: payload.Phone, Valid: payload.Phone != ""},
		Email:          sql.NullString{String: payload.Email, Valid: payload.Email != ""},
		PricePerNight:  payload.PricePerNight,
		TotalRooms:     payload.TotalRooms,
		AvailableRooms: payload.AvailableRooms,
		Type:           payload.Type,
		Status:         payload.Status,
		Amenities:      pq.StringArray(nonNil(payload.Amenities)),
		Images:         pq.StringArray(nonNil(payload.Images)),
		Rating:         payload.Rating,
		ReviewCount:    payload.ReviewCount,
		Latitude:       nullFloat(payload.Latitude),
		Longitude:      nullFloat(payload.Longitude),
		DefaultOpen:    payload.DefaultOpen == nil || *payload.DefaultOpen,
		CreatedByID:    actor.ID,
	}
	if hotel.Status == "" {
		hotel.Status = entity.StatusActive
	}

	created, err := u.repo.CreateHotel(ctx, hotel)
	if err != nil {
		return response.Hotel{}, err
	}

	u.log.Info(ctx, "hotel created", created.ID)
	return toHotel(created), nil
}

func (u *usecase) ListHotels(ctx context.Context, query request.ListHotels) (response.HotelList, error) {
	page, limit := paginate(query.Page, query.Limit)

	hotels, total, err := u.repo.FindHotels(ctx, entity.HotelFilter{
		Page:            page,
		Limit:           limit,
		City:            query.City,
		Type:            query.Type,
		MinPrice:        query.MinPrice,
		MaxPrice:        query.MaxPrice,
		Rating:          query.Rating,
		IncludeInactive: query.IncludeInactive,
	})
	if err != nil {
		return response.HotelList{}, err
	}

	return response.HotelList{Hotels: toHotels(hotels), Total: total, Page: page, Limit: limit}, nil
}

func (u *usecase) GetHotel(ctx context.Context, id string, includeInactive bool) (response.Hotel, error) {
	hotel, err := u.repo.FindHotelByID(ctx, id, includeInactive)
	if err != nil {
		return response.Hotel{}, err
	}
	return toHotel(hotel), nil
}

func (u *usecase) UpdateHotel(ctx context.Context, actor policy.Actor, id string, payload *request.UpdateHotel) (response.Hotel, error) {
	hotel, err := u.repo.FindHotelByID(ctx, id, true)
	if err != nil {
		return response.Hotel{}, err
	}
	if err := policy.Authorize(actor, ownership(hotel)); err != nil {
		return response.Hotel{}, err
	}

	updated, err := u.repo.UpdateHotel(ctx, id, *payload)
	if err != nil {
		return response.Hotel{}, err
	}
	return toHotel(updated), nil
}

func (u *usecase) DeleteHotel(ctx context.Context, actor policy.Actor, id string) error {
	hotel, err := u.repo.FindHotelByID(ctx, id, false)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, ownership(hotel)); err != nil {
		return err
	}

	if err := u.repo.SetHotelActive(ctx, id, false); err != nil {
		return err
	}
	u.log.Info(ctx, "hotel deactivated", id)
	return nil
}

func (u *usecase) ReactivateHotel(ctx context.Context, actor policy.Actor, id string) (response.Hotel, error) {
	hotel, err := u.repo.FindHotelByID(ctx, id, true)
	if err != nil {
		return response.Hotel{}, err
	}
	if err := policy.Authorize(actor, ownership(hotel)); err != nil {
		return response.Hotel{}, err
	}

	if err := u.repo.SetHotelActive(ctx, id, true); err != nil {
		return response.Hotel{}, err
	}
	hotel.IsActive = true
	return toHotel(hotel), nil
}

// Availability reports the rooms left on one date. Without a schedule row the hotel's
// default_open flag decides.
func (u *usecase) Availability(ctx context.Context, hotelID, date string) (response.Availability, error) {
	day, err := helpers.ParseDate(date)
	if err != nil {
		return response.Availability{}, err
	}

	hotel, err := u.repo.FindHotelByID(ctx, hotelID, false)
	if err != nil {
		return response.Availability{}, err
	}

	result := response.Availability{HotelID: hotel.ID, Date: helpers.FormatDate(day)}

	schedule, err := u.repo.FindScheduleByDate(ctx, hotelID, day)
	switch {
	case err == nil:
		result.FromSchedule = true
		result.AvailableRooms = schedule.Remaining()
	case errors.Is(err, http.StatusNotFound):
		if hotel.DefaultOpen {
			result.AvailableRooms = hotel.AvailableRooms
		}
	default:
		return response.Availability{}, err
	}

	if hotel.Status != entity.StatusActive {
		result.AvailableRooms = 0
	}
	result.IsOpen = result.AvailableRooms > 0
	return result, nil
}

func (u *usecase) SearchAvailable(ctx context.Context, checkIn, checkOut string) ([]response.Hotel, error) {
	from, err := helpers.ParseDate(checkIn)
	if err != nil {
		return nil, err
	}
	to, err := helpers.ParseDate(checkOut)
	if err != nil {
		return nil, err
	}
	if !to.After(from) {
		return nil, errors.BadRequest("checkOut must be after checkIn")
	}

	hotels, err := u.repo.FindAvailableHotels(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toHotels(hotels), nil
}

func (u *usecase) CreateSchedule(ctx context.Context, actor policy.Actor, payload *request.CreateSchedule) (response.Schedule, error) {
	date, err := helpers.ParseDate(payload.Date)
	if err != nil {
		return response.Schedule{}, err
	}
	if payload.BookedRooms > *payload.AvailableRooms {
		return response.Schedule{}, errors.BadRequest("booked rooms cannot exceed available rooms")
	}

	hotel, err := u.repo.FindHotelByID(ctx, payload.HotelID, false)
	if err != nil {
		return response.Schedule{}, err
	}
	if err := policy.Authorize(actor, ownership(hotel)); err != nil {
		return response.Schedule{}, err
	}

	unlock, err := u.locker.Lock(ctx, "hotel-schedules:"+hotel.ID)
	if err != nil {
		return response.Schedule{}, err
	}
	defer unlock()

	_, err = u.repo.FindScheduleByDate(ctx, hotel.ID, date)
	if err == nil {
		return response.Schedule{}, errors.Conflict("schedule already exists for this date")
	}
	if !errors.Is(err, http.StatusNotFound) {
		return response.Schedule{}, err
	}

	status := payload.Status
	if status == "" {
		status = entity.ScheduleAvailable
	}

	created, err := u.repo.CreateSchedule(ctx, entity.Schedule{
		HotelID:        hotel.ID,
		Date:           date,
		AvailableRooms: *payload.AvailableRooms,
		BookedRooms:    payload.BookedRooms,
		SpecialPrice:   nullFloat(payload.SpecialPrice),
		Status:         status,
		Notes:          sql.NullString{String: payload.Notes, Valid: payload.Notes != ""},
		CreatedByID:    actor.ID,
	})
	if err != nil {
		return response.Schedule{}, err
	}
	return toSchedule(created), nil
}

func (u *usecase) ListSchedules(ctx context.Context, query request.ListSchedules) ([]response.Schedule, error) {
	start, err := helpers.ParseOptionalDate(query.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := helpers.ParseOptionalDate(query.EndDate)
	if err != nil {
		return nil, err
	}

	if query.HotelID != "" {
		if _, err := u.repo.FindHotelByID(ctx, query.HotelID, false); err != nil {
			return nil, err
		}
	}

	schedules, err := u.repo.FindSchedules(ctx, entity.ScheduleFilter{HotelID: query.HotelID, StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}

	result := make([]response.Schedule, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, toSchedule(s))
	}
	return result, nil
}

func (u *usecase) GetSchedule(ctx context.Context, id int64) (response.Schedule, error) {
	schedule, err := u.repo.FindScheduleByID(ctx, id)
	if err != nil {
		return response.Schedule{}, err
	}
	return toSchedule(schedule), nil
}

// authorizeSchedule loads the schedule and checks the actor against the parent hotel owner.
// A non-empty hotelID must match the schedule's hotel.
func (u *usecase) authorizeSchedule(ctx context.Context, actor policy.Actor, hotelID string, id int64) (entity.Schedule, error) {
	schedule, err := u.repo.FindScheduleByID(ctx, id)
	if err != nil {
		return entity.Schedule{}, err
	}
	if hotelID != "" && schedule.HotelID != hotelID {
		return entity.Schedule{}, errors.NotFound("schedule not found")
	}

	hotel, err := u.repo.FindHotelByID(ctx, schedule.HotelID, true)
	if err != nil {
		return entity.Schedule{}, err
	}
	if err := policy.Authorize(actor, ownership(hotel)); err != nil {
		return entity.Schedule{}, err
	}
	return schedule, nil
}

func (u *usecase) UpdateSchedule(ctx context.Context, actor policy.Actor, hotelID string, id int64, payload *request.UpdateSchedule) (response.Schedule, error) {
	schedule, err := u.authorizeSchedule(ctx, actor, hotelID, id)
	if err != nil {
		return response.Schedule{}, err
	}

	if payload.Date != nil {
		date, err := helpers.ParseDate(*payload.Date)
		if err != nil {
			return response.Schedule{}, err
		}
		schedule.Date = date
	}
	if payload.AvailableRooms != nil {
		schedule.AvailableRooms = *payload.AvailableRooms
	}
	if payload.BookedRooms != nil {
		schedule.BookedRooms = *payload.BookedRooms
	}
	if payload.SpecialPrice != nil {
		schedule.SpecialPrice = nullFloat(payload.SpecialPrice)
	}
	if payload.Status != nil {
		schedule.Status = *payload.Status
	}
	if payload.Notes != nil {
		schedule.Notes = sql.NullString{String: *payload.Notes, Valid: *payload.Notes != ""}
	}
	if schedule.BookedRooms > schedule.AvailableRooms {
		return response.Schedule{}, errors.BadRequest("booked rooms cannot exceed available rooms")
	}

	updated, err := u.repo.UpdateSchedule(ctx, schedule)
	if err != nil {
		return response.Schedule{}, err
	}
	return toSchedule(updated), nil
}

func (u *usecase) DeleteSchedule(ctx context.Context, actor policy.Actor, hotelID string, id int64) error {
	if _, err := u.authorizeSchedule(ctx, actor, hotelID, id); err != nil {
		return err
	}
	return u.repo.DeactivateSchedule(ctx, id)
}

func paginate(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func toHotel(h entity.Hotel) response.Hotel {
	return response.Hotel{
		ID:             h.ID,
		Name:           h.Name,
		Description:    h.Description,
		Address:        h.Address,
		City:           h.City,
		State:          h.State,
		Pincode:        h.Pincode,
		Phone:          h.Phone.String,
		Email:          h.Email.String,
		PricePerNight:  h.PricePerNight,
		TotalRooms:     h.TotalRooms,
		AvailableRooms: h.AvailableRooms,
		Type:           h.Type,
		Status:         h.Status,
		Amenities:      nonNil(h.Amenities),
		Images:         nonNil(h.Images),
		Rating:         h.Rating,
		ReviewCount:    h.ReviewCount,
		Latitude:       floatPtr(h.Latitude),
		Longitude:      floatPtr(h.Longitude),
		DefaultOpen:    h.DefaultOpen,
		IsActive:       h.IsActive,
		CreatedByID:    h.CreatedByID,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

func toHotels(hotels []entity.Hotel) []response.Hotel {
	result := make([]response.Hotel, 0, len(hotels))
	for _, h := range hotels {
		result = append(result, toHotel(h))
	}
	return result
}

func toSchedule(s entity.Schedule) response.Schedule {
	return response.Schedule{
		ID:             s.ID,
		HotelID:        s.HotelID,
		Date:           helpers.FormatDate(s.Date),
		AvailableRooms: s.AvailableRooms,
		BookedRooms:    s.BookedRooms,
		SpecialPrice:   floatPtr(s.SpecialPrice),
		Status:         s.Status,
		Notes:          s.Notes.String,
		IsActive:       s.IsActive,
		CreatedByID:    s.CreatedByID,
	}
}
