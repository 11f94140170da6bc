package handler

import (
	"context"
	"fmt"
	"strconv"

	"tourism-service/internal/module/packages/models/request"
	"tourism-service/internal/module/packages/usecases"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PackageHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PackageHandler) CreatePackage(ctx *fiber.Ctx) error {
	var req request.CreatePackage
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreatePackage(ctx.UserContext(), helpers.Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create package: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "package successfully created")
}

func (h *PackageHandler) ListPackages(ctx *fiber.Ctx) error {
	query := request.ListPackages{
		Page:        helpers.QueryInt(ctx.Query("page"), 1),
		Limit:       helpers.QueryInt(ctx.Query("limit"), 10),
		Type:        ctx.Query("type"),
		MinPrice:    helpers.QueryFloat(ctx.Query("minPrice")),
		MaxPrice:    helpers.QueryFloat(ctx.Query("maxPrice")),
		Destination: ctx.Query("destination"),
		Rating:      helpers.QueryFloat(ctx.Query("rating")),
		IsActive:    helpers.QueryBool(ctx.Query("isActive")),
	}
	if d, err := strconv.Atoi(ctx.Query("duration")); err == nil {
		query.Duration = &d
	}

	resp, err := h.Usecase.ListPackages(ctx.UserContext(), query)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list packages: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get packages")
}

func (h *PackageHandler) FeaturedPackages(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.FeaturedPackages(ctx.UserContext(), helpers.QueryInt(ctx.Query("limit"), 0))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get featured packages: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get featured packages")
}

func (h *PackageHandler) GetPackage(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetPackage(ctx.UserContext(), ctx.Params("id"), ctx.QueryBool("includeInactive"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get package: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get package")
}

func (h *PackageHandler) UpdatePackage(ctx *fiber.Ctx) error {
	var req request.UpdatePackage
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UpdatePackage(ctx.UserContext(), helpers.Actor(ctx), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update package: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "package successfully updated")
}

func (h *PackageHandler) DeletePackage(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeletePackage(ctx.UserContext(), helpers.Actor(ctx), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete package: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "package successfully deleted")
}

func (h *PackageHandler) ReactivatePackage(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ReactivatePackage(ctx.UserContext(), helpers.Actor(ctx), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reactivate package: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "package successfully reactivated")
}

func (h *PackageHandler) SearchAvailable(ctx *fiber.Ctx) error {
	startDate := ctx.Query("startDate")
	if startDate == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("startDate is required"))
	}

	resp, err := h.Usecase.SearchAvailable(ctx.UserContext(), startDate, ctx.Query("endDate"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error search available packages: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success search available packages")
}

func (h *PackageHandler) Availability(ctx *fiber.Ctx) error {
	startDate, endDate := ctx.Query("startDate"), ctx.Query("endDate")
	if startDate == "" || endDate == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("startDate and endDate are required"))
	}

	resp, err := h.Usecase.Availability(ctx.UserContext(), ctx.Params("id"), startDate, endDate)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error check package availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success check package availability")
}

// CreateSchedule serves both /packages/:id/schedules and /package-schedules, where the
// package id comes from the body.
func (h *PackageHandler) CreateSchedule(ctx *fiber.Ctx) error {
	var req request.CreateSchedule
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}
	if id := ctx.Params("id"); id != "" {
		req.PackageID = id
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CreateSchedule(ctx.UserContext(), helpers.Actor(ctx), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create package schedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "schedule successfully created")
}

func (h *PackageHandler) ListSchedules(ctx *fiber.Ctx) error {
	packageID := ctx.Params("id")
	if packageID == "" {
		packageID = ctx.Query("packageId")
	}

	resp, err := h.Usecase.ListSchedules(ctx.UserContext(), request.ListSchedules{
		PackageID: packageID,
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list package schedules: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get package schedules")
}

func (h *PackageHandler) GetSchedule(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid schedule id"))
	}

	resp, err := h.Usecase.GetSchedule(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get package schedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get package schedule")
}

func (h *PackageHandler) UpdateSchedule(ctx *fiber.Ctx) error {
	packageID, id, err := scheduleParams(ctx)
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

	resp, err := h.Usecase.UpdateSchedule(ctx.UserContext(), helpers.Actor(ctx), packageID, id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update package schedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "schedule successfully updated")
}

func (h *PackageHandler) DeleteSchedule(ctx *fiber.Ctx) error {
	packageID, id, err := scheduleParams(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteSchedule(ctx.UserContext(), helpers.Actor(ctx), packageID, id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete package schedule: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "schedule successfully deleted")
}

// CompleteElapsedSchedules is the periodic task marking finished schedules completed.
func (h *PackageHandler) CompleteElapsedSchedules(ctx context.Context, t *asynq.Task) error {
	n, err := h.Usecase.CompleteElapsedSchedules(ctx)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error complete elapsed schedules: %v", err))
		return err
	}

	h.Log.Ctx(ctx).Info(fmt.Sprintf("completed %d elapsed package schedules", n))
	return nil
}

// scheduleParams reads /packages/:id/schedules/:scheduleId or /package-schedules/:id.
func scheduleParams(ctx *fiber.Ctx) (string, int64, error) {
	packageID, raw := "", ctx.Params("scheduleId")
	if raw != "" {
		packageID = ctx.Params("id")
	} else {
		raw = ctx.Params("id")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", 0, errors.BadRequest("invalid schedule id")
	}
	return packageID, id, nil
}
