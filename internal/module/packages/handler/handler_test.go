package handler_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"tourism-service/internal/module/packages/handler"
	"tourism-service/internal/module/packages/mocks"
	"tourism-service/internal/module/packages/models/request"
	"tourism-service/internal/module/packages/models/response"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	log_internal "tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/policy"
	"tourism-service/internal/pkg/scheduler"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

var (
	h     *handler.PackageHandler
	ucm   *mocks.Usecase
	app   *fiber.App
	actor = policy.Actor{ID: "10001", Role: policy.RoleAdmin}
)

func setup(t *testing.T) {
	ucm = mocks.NewUsecase(t)
	h = &handler.PackageHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helpers.LocalActor, actor)
		return c.Next()
	})
	app.Post("/packages", h.CreatePackage)
	app.Get("/packages", h.ListPackages)
	app.Get("/packages/available/search", h.SearchAvailable)
	app.Get("/packages/:id/availability", h.Availability)
	app.Post("/packages/:id/schedules", h.CreateSchedule)
	app.Patch("/packages/:id/schedules/:scheduleId", h.UpdateSchedule)
	app.Delete("/package-schedules/:id", h.DeleteSchedule)
}

func send(t *testing.T, method, path string, payload interface{}) int {
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreatePackage(t *testing.T) {
	valid := map[string]interface{}{
		"name": "Himalayan Trek", "description": "d", "highlights": "h", "itinerary": "i",
		"duration": 5, "nights": 4, "price": 25000, "maxGroupSize": 12, "type": "adventure",
		"schedules": []map[string]interface{}{
			{"startDate": "2025-07-01", "endDate": "2025-07-05", "availableSlots": 20},
		},
	}

	t.Run("success", func(t *testing.T) {
		setup(t)
		ucm.On("CreatePackage", mock.Anything, actor, mock.MatchedBy(func(r *request.CreatePackage) bool {
			return len(r.Schedules) == 1 && r.Schedules[0].AvailableSlots == 20
		})).Return(response.Package{ID: "30001"}, nil)

		assert.Equal(t, fiber.StatusCreated, send(t, "POST", "/packages", valid))
	})

	t.Run("inline schedule without slots", func(t *testing.T) {
		setup(t)
		payload := map[string]interface{}{}
		for k, v := range valid {
			payload[k] = v
		}
		payload["schedules"] = []map[string]interface{}{{"startDate": "2025-07-01", "endDate": "2025-07-05"}}

		assert.Equal(t, fiber.StatusBadRequest, send(t, "POST", "/packages", payload))
	})

	t.Run("overlap conflict", func(t *testing.T) {
		setup(t)
		ucm.On("CreatePackage", mock.Anything, actor, mock.Anything).
			Return(response.Package{}, errors.Conflict("schedule 1 overlaps with schedule 2"))

		assert.Equal(t, fiber.StatusConflict, send(t, "POST", "/packages", valid))
	})
}

func TestListPackagesQuery(t *testing.T) {
	setup(t)
	ucm.On("ListPackages", mock.Anything, mock.MatchedBy(func(q request.ListPackages) bool {
		return q.Page == 2 && q.Duration != nil && *q.Duration == 5 && q.IsActive != nil && !*q.IsActive &&
			q.Destination == "Manali"
	})).Return(response.PackageList{}, nil)

	assert.Equal(t, fiber.StatusOK, send(t, "GET", "/packages?page=2&duration=5&isActive=false&destination=Manali", nil))
}

func TestSearchAvailable(t *testing.T) {
	t.Run("start date required", func(t *testing.T) {
		setup(t)
		assert.Equal(t, fiber.StatusBadRequest, send(t, "GET", "/packages/available/search", nil))
	})

	t.Run("end date optional", func(t *testing.T) {
		setup(t)
		ucm.On("SearchAvailable", mock.Anything, "2025-07-03", "").Return([]response.Package{}, nil)
		assert.Equal(t, fiber.StatusOK, send(t, "GET", "/packages/available/search?startDate=2025-07-03", nil))
	})
}

func TestAvailability(t *testing.T) {
	setup(t)
	ucm.On("Availability", mock.Anything, "30001", "2025-07-02", "2025-07-04").
		Return(response.Availability{AvailableSlots: 2, TotalSlots: 20}, nil)

	assert.Equal(t, fiber.StatusOK, send(t, "GET", "/packages/30001/availability?startDate=2025-07-02&endDate=2025-07-04", nil))
	assert.Equal(t, fiber.StatusBadRequest, send(t, "GET", "/packages/30001/availability?startDate=2025-07-02", nil))
}

func TestCreateScheduleUsesPathPackage(t *testing.T) {
	setup(t)
	ucm.On("CreateSchedule", mock.Anything, actor, mock.MatchedBy(func(r *request.CreateSchedule) bool {
		return r.PackageID == "30001" && r.StartDate == "2025-07-06"
	})).Return(response.Schedule{ID: 8}, nil)

	code := send(t, "POST", "/packages/30001/schedules", map[string]interface{}{
		"startDate": "2025-07-06", "endDate": "2025-07-10", "availableSlots": 10,
	})
	assert.Equal(t, fiber.StatusCreated, code)
}

func TestUpdateSchedule(t *testing.T) {
	t.Run("nested route", func(t *testing.T) {
		setup(t)
		ucm.On("UpdateSchedule", mock.Anything, actor, "30001", int64(7), mock.Anything).
			Return(response.Schedule{ID: 7}, nil)

		assert.Equal(t, fiber.StatusOK, send(t, "PATCH", "/packages/30001/schedules/7", map[string]interface{}{"availableSlots": 25}))
	})

	t.Run("invalid id", func(t *testing.T) {
		setup(t)
		assert.Equal(t, fiber.StatusBadRequest, send(t, "PATCH", "/packages/30001/schedules/abc", map[string]interface{}{}))
	})
}

func TestDeleteSchedule(t *testing.T) {
	setup(t)
	ucm.On("DeleteSchedule", mock.Anything, actor, "", int64(7)).Return(errors.NotFound("schedule not found"))

	assert.Equal(t, fiber.StatusNotFound, send(t, "DELETE", "/package-schedules/7", nil))
}

func TestFeaturedPackages(t *testing.T) {
	setup(t)
	ucm.On("FeaturedPackages", mock.Anything, 3).Return([]response.Package{{ID: "30001"}}, nil)

	fctx := &fasthttp.RequestCtx{}
	fctx.Request.SetRequestURI("/packages/featured?limit=3")
	c := app.AcquireCtx(fctx)
	defer app.ReleaseCtx(c)

	require.NoError(t, h.FeaturedPackages(c))
	assert.Equal(t, fiber.StatusOK, c.Response().StatusCode())
}

func TestCompleteElapsedSchedulesTask(t *testing.T) {
	task := asynq.NewTask(scheduler.TypeCompleteElapsedSchedules, nil)

	t.Run("success", func(t *testing.T) {
		setup(t)
		ucm.On("CompleteElapsedSchedules", mock.Anything).Return(int64(2), nil)
		assert.NoError(t, h.CompleteElapsedSchedules(context.Background(), task))
	})

	t.Run("failure is returned for retry", func(t *testing.T) {
		setup(t)
		ucm.On("CompleteElapsedSchedules", mock.Anything).Return(int64(0), errors.InternalServerError("error complete elapsed schedules"))
		assert.Error(t, h.CompleteElapsedSchedules(context.Background(), task))
	})
}
