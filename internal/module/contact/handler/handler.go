package handler

import (
	"fmt"

	"tourism-service/internal/module/contact/models/request"
	"tourism-service/internal/module/contact/usecases"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	"tourism-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ContactHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

// SendMessage queues the message for the webhook consumer and answers 202.
func (h *ContactHandler) SendMessage(ctx *fiber.Ctx) error {
	var req request.ContactMessage
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := messagestream.Publish(h.Publish, messagestream.TopicContactMessage, req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error publish contact message: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InternalServerError("error send contact message"))
	}

	return helpers.RespAccepted(ctx, h.Log, nil, "message received, we will get back to you soon")
}

// ConsumeContactMessage returns errors to the router so they are retried and then moved to
// the poison topic.
func (h *ContactHandler) ConsumeContactMessage(msg *message.Message) error {
	var req request.ContactMessage
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		return err
	}

	if err := h.Usecase.Forward(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error forward contact message: %v", err))
		return err
	}

	return nil
}
