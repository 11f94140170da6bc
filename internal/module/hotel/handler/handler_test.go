package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"tourism-service/internal/module/hotel/handler"
	"tourism-service/internal/module/hotel/mocks"
	"tourism-service/internal/module/hotel/models/request"
	"tourism-service/internal/module/hotel/models/response"
	"tourism-service/internal/pkg/errors"
	"tourism-service/internal/pkg/helpers"
	log_internal "tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/policy"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h     *handler.HotelHandler
	ucm   *mocks.Usecase
	app   *fiber.App
	actor = policy.Actor{ID: "10001", Role: policy.RoleAdmin}
)

func setup(t *testing.T) {
	ucm = mocks.NewUsecase(t)
	h = &handler.HotelHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helpers.LocalActor, actor)
		return c.Next()
	})
	app.Post("/hotels", h.CreateHotel)
	app.Get("/hotels", h.ListHotels)
	app.Get("/hotels/available/search", h.SearchAvailable)
	app.Get("/hotels/:id/availability", h.Availability)
	app.Post("/hotels/:id/schedules", h.CreateSchedule)
	app.Patch("/hotels/:id/schedules/:scheduleId", h.UpdateSchedule)
	app.Post("/hotel-schedules", h.CreateSchedule)
	app.Delete("/hotel-schedules/:id", h.DeleteSchedule)
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

func TestCreateHotel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup(t)
		ucm.On("CreateHotel", mock.Anything, actor, mock.AnythingOfType("*request.CreateHotel")).
			Return(response.Hotel{ID: "20001"}, nil)

		code := send(t, "POST", "/hotels", map[string]interface{}{
			"name": "Snow Peak", "description": "d", "address": "a", "city": "Manali", "state": "HP",
			"pincode": "175131", "pricePerNight": 5000, "totalRooms": 50, "availableRooms": 45, "type": "luxury",
		})
		assert.Equal(t, fiber.StatusCreated, code)
	})

	t.Run("invalid type", func(t *testing.T) {
		setup(t)
		code := send(t, "POST", "/hotels", map[string]interface{}{
			"name": "Snow Peak", "description": "d", "address": "a", "city": "Manali", "state": "HP",
			"pincode": "175131", "totalRooms": 50, "type": "castle",
		})
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestListHotelsQuery(t *testing.T) {
	setup(t)
	minPrice := 1000.0
	ucm.On("ListHotels", mock.Anything, request.ListHotels{
		Page: 2, Limit: 5, City: "Manali", MinPrice: &minPrice, IncludeInactive: true,
	}).Return(response.HotelList{}, nil)

	code := send(t, "GET", "/hotels?page=2&limit=5&city=Manali&minPrice=1000&includeInactive=true", nil)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestAvailability(t *testing.T) {
	t.Run("date required", func(t *testing.T) {
		setup(t)
		assert.Equal(t, fiber.StatusBadRequest, send(t, "GET", "/hotels/20001/availability", nil))
	})

	t.Run("success", func(t *testing.T) {
		setup(t)
		ucm.On("Availability", mock.Anything, "20001", "2025-12-25").Return(response.Availability{AvailableRooms: 3}, nil)
		assert.Equal(t, fiber.StatusOK, send(t, "GET", "/hotels/20001/availability?date=2025-12-25", nil))
	})
}

func TestSearchAvailable(t *testing.T) {
	setup(t)
	ucm.On("SearchAvailable", mock.Anything, "2025-01-15", "2025-01-17").Return([]response.Hotel{}, nil)
	assert.Equal(t, fiber.StatusOK, send(t, "GET", "/hotels/available/search?checkIn=2025-01-15&checkOut=2025-01-17", nil))
}

func TestCreateScheduleRoutes(t *testing.T) {
	t.Run("nested takes hotel id from path", func(t *testing.T) {
		setup(t)
		ucm.On("CreateSchedule", mock.Anything, actor, mock.MatchedBy(func(r *request.CreateSchedule) bool {
			return r.HotelID == "20001" && *r.AvailableRooms == 10
		})).Return(response.Schedule{ID: 1}, nil)

		code := send(t, "POST", "/hotels/20001/schedules", map[string]interface{}{"date": "2025-12-25", "availableRooms": 10})
		assert.Equal(t, fiber.StatusCreated, code)
	})

	t.Run("standalone requires hotel id", func(t *testing.T) {
		setup(t)
		code := send(t, "POST", "/hotel-schedules", map[string]interface{}{"date": "2025-12-25", "availableRooms": 10})
		assert.Equal(t, fiber.StatusBadRequest, code)
	})

	t.Run("conflict", func(t *testing.T) {
		setup(t)
		ucm.On("CreateSchedule", mock.Anything, actor, mock.Anything).
			Return(response.Schedule{}, errors.Conflict("schedule already exists for this date"))

		code := send(t, "POST", "/hotel-schedules", map[string]interface{}{"hotelId": "20001", "date": "2025-12-25", "availableRooms": 10})
		assert.Equal(t, fiber.StatusConflict, code)
	})
}

func TestScheduleParams(t *testing.T) {
	t.Run("nested", func(t *testing.T) {
		setup(t)
		ucm.On("UpdateSchedule", mock.Anything, actor, "20001", int64(7), mock.Anything).Return(response.Schedule{ID: 7}, nil)
		assert.Equal(t, fiber.StatusOK, send(t, "PATCH", "/hotels/20001/schedules/7", map[string]interface{}{"notes": "x"}))
	})

	t.Run("standalone", func(t *testing.T) {
		setup(t)
		ucm.On("DeleteSchedule", mock.Anything, actor, "", int64(7)).Return(nil)
		assert.Equal(t, fiber.StatusOK, send(t, "DELETE", "/hotel-schedules/7", nil))
	})

	t.Run("bad id", func(t *testing.T) {
		setup(t)
		assert.Equal(t, fiber.StatusBadRequest, send(t, "DELETE", "/hotel-schedules/abc", nil))
	})
}
