package handler

import (
	"fmt"

	"tourism-service/internal/module/booking/models/request"
	"tourism-service/internal/module/booking/models/response"
	"tourism-service/internal/module/booking/usecases"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	"tourism-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) PurchasePackage(ctx *fiber.Ctx) error {
	var req request.PurchasePackage
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.Purchase(ctx.UserContext(), helpers.Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error purchase package: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	// publish failures are only logged
	if err := messagestream.Publish(h.Publish, messagestream.TopicPackageBooked, bookedEvent(resp)); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error publish package booked: %v", err))
	}

	return helpers.RespCreated(ctx, h.Log, resp, "package successfully booked")
}

func (h *BookingHandler) MyBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.MyBookings(ctx.UserContext(), helpers.Actor(ctx), ctx.Params("userId"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show my bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get bookings")
}

func (h *BookingHandler) AllBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.AllBookings(ctx.UserContext(), helpers.Actor(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show all bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get all bookings")
}

func bookedEvent(b response.Booking) request.PackageBooked {
	event := request.PackageBooked{
		BookingID:      b.ID,
		PackageID:      b.PackageID,
		ScheduleID:     b.ScheduleID,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		NumberOfPeople: b.NumberOfPeople,
		Email:          b.Email,
	}
	if b.UserID != nil {
		event.UserID = *b.UserID
	}
	return event
}
