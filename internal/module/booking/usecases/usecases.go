package usecases

import (
	"context"
	"database/sql"

	"tourism-service/internal/module/booking/models/entity"
	"tourism-service/internal/module/booking/models/request"
	"tourism-service/internal/module/booking/models/response"
	"tourism-service/internal/module/booking/repositories"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	"tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/policy"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	Purchase(ctx context.Context, actor policy.Actor, payload *request.PurchasePackage) (response.Booking, error)
	MyBookings(ctx context.Context, actor policy.Actor, userID string) ([]response.Booking, error)
	AllBookings(ctx context.Context, actor policy.Actor) ([]response.Booking, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// Purchase books numberOfPeople slots on the single active schedule of the package that
// fully covers [startDate, endDate]. Adjacent schedules are never combined.
func (u *usecase) Purchase(ctx context.Context, actor policy.Actor, payload *request.PurchasePackage) (response.Booking, error) {
	start, err := helpers.ParseDate(payload.StartDate)
	if err != nil {
		return response.Booking{}, err
	}
	end, err := helpers.ParseDate(payload.EndDate)
	if err != nil {
		return response.Booking{}, err
	}
	if end.Before(start) {
		return response.Booking{}, errors.BadRequest("end date must not be before start date")
	}
	if payload.NumberOfPeople < 1 {
		return response.Booking{}, errors.BadRequest("number of people must be at least 1")
	}

	exists, err := u.repo.ActivePackageExists(ctx, payload.PackageID)
	if err != nil {
		return response.Booking{}, err
	}
	if !exists {
		return response.Booking{}, errors.NotFound("package not found")
	}

	booking, err := u.repo.Purchase(ctx, entity.Booking{
		PackageID:      payload.PackageID,
		StartDate:      start,
		EndDate:        end,
		Name:           payload.Name,
		NumberOfPeople: payload.NumberOfPeople,
		Mobile:         payload.Mobile,
		Email:          payload.Email,
		UserID:         sql.NullString{String: actor.ID, Valid: !actor.IsAnonymous()},
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.log.Info(ctx, "package purchased", booking.ID, booking.ScheduleID)
	return toBooking(entity.BookingDetail{Booking: booking}), nil
}

func (u *usecase) MyBookings(ctx context.Context, actor policy.Actor, userID string) ([]response.Booking, error) {
	if userID == "" {
		userID = actor.ID
	}
	if err := policy.CanReadUser(actor, userID); err != nil {
		return nil, err
	}

	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toBookings(bookings), nil
}

func (u *usecase) AllBookings(ctx context.Context, actor policy.Actor) ([]response.Booking, error) {
	if err := policy.RequireAdmin(actor, "list all bookings"); err != nil {
		return nil, err
	}

	bookings, err := u.repo.FindAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	return toBookings(bookings), nil
}

func toBooking(b entity.BookingDetail) response.Booking {
	resp := response.Booking{
		ID:             b.ID,
		PackageID:      b.PackageID,
		PackageName:    b.PackageName,
		ScheduleID:     b.ScheduleID,
		StartDate:      helpers.FormatDate(b.StartDate),
		EndDate:        helpers.FormatDate(b.EndDate),
		Name:           b.Name,
		NumberOfPeople: b.NumberOfPeople,
		Mobile:         b.Mobile,
		Email:          b.Email,
		UserName:       b.UserName.String,
		CreatedAt:      b.CreatedAt,
	}
	if b.UserID.Valid {
		id := b.UserID.String
		resp.UserID = &id
	}
	return resp
}

func toBookings(bookings []entity.BookingDetail) []response.Booking {
	result := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, toBooking(b))
	}
	return result
}
