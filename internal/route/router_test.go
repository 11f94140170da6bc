package router_test

import (
	"context"
	"net/http/httptest"
	"testing"

	authhandler "tourism-service/internal/module/auth/handler"
	authmocks "tourism-service/internal/module/auth/mocks"
	bookinghandler "tourism-service/internal/module/booking/handler"
	bookingmocks "tourism-service/internal/module/booking/mocks"
	bookingresponse "tourism-service/internal/module/booking/models/response"
	contacthandler "tourism-service/internal/module/contact/handler"
	contactmocks "tourism-service/internal/module/contact/mocks"
	hotelhandler "tourism-service/internal/module/hotel/handler"
	hotelmocks "tourism-service/internal/module/hotel/mocks"
	packagehandler "tourism-service/internal/module/packages/handler"
	packagemocks "tourism-service/internal/module/packages/mocks"
	packageresponse "tourism-service/internal/module/packages/models/response"
	"tourism-service/internal/pkg/errors"
	log_internal "tourism-service/internal/pkg/log"
	"tourism-service/internal/pkg/middleware"
	"tourism-service/internal/pkg/policy"
	"tourism-service/internal/pkg/ratelimit"
	router "tourism-service/internal/route"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct{}

func (fakeValidator) ValidateToken(ctx context.Context, token string) (policy.Actor, error) {
	switch token {
	case "admin":
		return policy.Actor{ID: "10001", Role: policy.RoleAdmin}, nil
	case "user":
		return policy.Actor{ID: "10002", Role: policy.RoleUser}, nil
	}
	return policy.Actor{}, errors.UnauthorizedError("invalid token")
}

var (
	app         *fiber.App
	packageMock *packagemocks.Usecase
	bookingMock *bookingmocks.Usecase
)

func setup(t *testing.T) {
	logger := log_internal.Setup()
	v := validator.New()
	packageMock = packagemocks.NewUsecase(t)
	bookingMock = bookingmocks.NewUsecase(t)

	handlers := router.Handlers{
		Auth:    &authhandler.AuthHandler{Log: logger, Validator: v, Usecase: authmocks.NewUsecase(t)},
		Hotel:   &hotelhandler.HotelHandler{Log: logger, Validator: v, Usecase: hotelmocks.NewUsecase(t)},
		Package: &packagehandler.PackageHandler{Log: logger, Validator: v, Usecase: packageMock},
		Booking: &bookinghandler.BookingHandler{Log: logger, Validator: v, Usecase: bookingMock},
		Contact: &contacthandler.ContactHandler{Log: logger, Validator: v, Usecase: contactmocks.NewUsecase(t)},
	}
	m := &middleware.Middleware{Log: logger, Validator: fakeValidator{}}
	app = router.Initialize(fiber.New(), handlers, m, ratelimit.NewRateLimiter(1, 1))
}

func call(t *testing.T, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	setup(t)
	assert.Equal(t, fiber.StatusOK, call(t, "GET", "/health", ""))
}

func TestStaticSegmentsBeforeID(t *testing.T) {
	setup(t)
	packageMock.On("FeaturedPackages", mock.Anything, 0).Return([]packageresponse.Package{}, nil)
	packageMock.On("SearchAvailable", mock.Anything, "2025-07-01", "").Return([]packageresponse.Package{}, nil)

	assert.Equal(t, fiber.StatusOK, call(t, "GET", "/packages/featured", ""))
	assert.Equal(t, fiber.StatusOK, call(t, "GET", "/packages/available/search?startDate=2025-07-01", ""))
}

func TestAdminRoutes(t *testing.T) {
	setup(t)
	bookingMock.On("AllBookings", mock.Anything, policy.Actor{ID: "10001", Role: policy.RoleAdmin}).
		Return([]bookingresponse.Booking{}, nil)

	assert.Equal(t, fiber.StatusUnauthorized, call(t, "GET", "/packages-booking/all-bookings", ""))
	assert.Equal(t, fiber.StatusForbidden, call(t, "GET", "/packages-booking/all-bookings", "user"))
	assert.Equal(t, fiber.StatusOK, call(t, "GET", "/packages-booking/all-bookings", "admin"))
	assert.Equal(t, fiber.StatusForbidden, call(t, "POST", "/packages", "user"))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, "DELETE", "/hotels/20001", ""))
}

func TestAuthRateLimited(t *testing.T) {
	setup(t)
	assert.Equal(t, fiber.StatusUnauthorized, call(t, "GET", "/auth/profile", ""))
	assert.Equal(t, fiber.StatusTooManyRequests, call(t, "GET", "/auth/profile", ""))
}
