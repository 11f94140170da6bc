package handler

import (
	"fmt"
	"strconv"

	"tourism-service/internal/module/hotel/models/request"
	"tourism-service/internal/module/hotel/usecases"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type HotelHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *HotelHandler) CreateHotel(ctx *fiber.Ctx) error {
	var req request.CreateHotel
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateHotel(ctx.UserContext(), helpers.Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create hotel: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "hotel successfully created")
}

func (h *HotelHandler) ListHotels(ctx *fiber.Ctx) error {
	query := request.ListHotels{
		Page:            helpers.QueryInt(ctx.Query("page"), 1),
		Limit:           helpers.QueryInt(ctx.Query("limit"), 10),
		City:            ctx.Query("city"),
		Type:            ctx.Query("type"),
		MinPrice:        helpers.QueryFloat(ctx.Query("minPrice")),
		MaxPrice:        helpers.QueryFloat(ctx.Query("maxPrice")),
		Rating:          helpers.QueryFloat(ctx.Query("rating")),
		IncludeInactive: ctx.QueryBool("includeInactive"),
	}

	resp, err := h.Usecase.ListHotels(ctx.UserContext(), query)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list hotels: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get hotels")
}

func (h *HotelHandler) GetHotel(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetHotel(ctx.UserContext(), ctx.Params("id"), ctx.QueryBool("includeInactive"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get hotel: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get hotel")
}

func (h *HotelHandler) UpdateHotel(ctx *fiber.Ctx) error {
	var req request.UpdateHotel
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdateHotel(ctx.UserContext(), helpers.Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update hotel: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "hotel successfully updated")
}

func (h *HotelHandler) DeleteHotel(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeleteHotel(ctx.UserContext(), helpers.Actor(ctx), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete hotel: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "hotel successfully deleted")
}

func (h *HotelHandler) ReactivateHotel(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ReactivateHotel(ctx.UserContext(), helpers.Actor(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reactivate hotel: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "hotel successfully reactivated")
}

func (h *HotelHandler) Availability(ctx *fiber.Ctx) error {
	date := ctx.Query("date")
	if date == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("date is required"))
	}

	resp, err := h.Usecase.Availability(ctx.UserContext(), ctx.Params("id"), date)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error check hotel availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success check hotel availability")
}

func (h *HotelHandler) SearchAvailable(ctx *fiber.Ctx) error {
	checkIn, checkOut := ctx.Query("checkIn"), ctx.Query("checkOut")
	if checkIn == "" || checkOut == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("checkIn and checkOut are required"))
	}

	resp, err := h.Usecase.SearchAvailable(ctx.UserContext(), checkIn, checkOut)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error search available hotels: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success search available hotels")
}

// CreateSchedule serves both /hotels/:id/schedules and /hotel-schedules, where the hotel
// id comes from the body.
func (h *HotelHandler) CreateSchedule(ctx *fiber.Ctx) error {
	var req request.CreateSchedule
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}
	if id := ctx.Params("id"); id != "" {
		req.HotelID = id
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateSchedule(ctx.UserContext(), helpers.Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create hotel schedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "schedule successfully created")
}

func (h *HotelHandler) ListSchedules(ctx *fiber.Ctx) error {
	hotelID := ctx.Params("id")
	if hotelID == "" {
		hotelID = ctx.Query("hotelId")
	}

	resp, err := h.Usecase.ListSchedules(ctx.UserContext(), request.ListSchedules{
		HotelID:   hotelID,
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list hotel schedules: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get hotel schedules")
}

func (h *HotelHandler) GetSchedule(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid schedule id"))
	}

	resp, err := h.Usecase.GetSchedule(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get hotel schedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get hotel schedule")
}

func (h *HotelHandler) UpdateSchedule(ctx *fiber.Ctx) error {
	hotelID, id, err := scheduleParams(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateSchedule
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdateSchedule(ctx.UserContext(), helpers.Actor(ctx), hotelID, id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update hotel schedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "schedule successfully updated")
}

func (h *HotelHandler) DeleteSchedule(ctx *fiber.Ctx) error {
	hotelID, id, err := scheduleParams(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteSchedule(ctx.UserContext(), helpers.Actor(ctx), hotelID, id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete hotel schedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "schedule successfully deleted")
}

// scheduleParams reads /hotels/:id/schedules/:scheduleId or /hotel-schedules/:id.
func scheduleParams(ctx *fiber.Ctx) (string, int64, error) {
	hotelID, raw := "", ctx.Params("scheduleId")
	if raw != "" {
		hotelID = ctx.Params("id")
	} else {
		raw = ctx.Params("id")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", 0, errors.BadRequest("invalid schedule id")
	}
	return hotelID, id, nil
}
