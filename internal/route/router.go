package router

import (
	auth "tourism-service/internal/module/auth/handler"
	booking "tourism-service/internal/module/booking/handler"
	contact "tourism-service/internal/module/contact/handler"
	hotel "tourism-service/internal/module/hotel/handler"
	packages "tourism-service/internal/module/packages/handler"
	"tourism-service/internal/pkg/middleware"
	"tourism-service/internal/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth    *auth.AuthHandler
	Hotel   *hotel.HotelHandler
	Package *packages.PackageHandler
	Booking *booking.BookingHandler
	Contact *contact.ContactHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware, limiter *ratelimit.RateLimiter) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	authRoutes := app.Group("/auth", limiter.Limit)
	authRoutes.Post("/register", h.Auth.Register)
	authRoutes.Post("/login", h.Auth.Login)
	authRoutes.Get("/google", h.Auth.GoogleAuth)
	authRoutes.Get("/google/callback", h.Auth.GoogleCallback)
	authRoutes.Get("/profile", m.ValidateToken, h.Auth.Profile)

	// static segments go before /:id
	hotels := app.Group("/hotels")
	hotels.Post("/", m.ValidateToken, m.RequireAdmin, h.Hotel.CreateHotel)
	hotels.Get("/", h.Hotel.ListHotels)
	hotels.Get("/available/search", h.Hotel.SearchAvailable)
	hotels.Get("/:id", h.Hotel.GetHotel)
	hotels.Patch("/:id", m.ValidateToken, h.Hotel.UpdateHotel)
	hotels.Delete("/:id", m.ValidateToken, h.Hotel.DeleteHotel)
	hotels.Patch("/:id/reactivate", m.ValidateToken, h.Hotel.ReactivateHotel)
	hotels.Get("/:id/availability", h.Hotel.Availability)
	hotels.Post("/:id/schedules", m.ValidateToken, h.Hotel.CreateSchedule)
	hotels.Get("/:id/schedules", h.Hotel.ListSchedules)
	hotels.Patch("/:id/schedules/:scheduleId", m.ValidateToken, h.Hotel.UpdateSchedule)
	hotels.Delete("/:id/schedules/:scheduleId", m.ValidateToken, h.Hotel.DeleteSchedule)

	hotelSchedules := app.Group("/hotel-schedules")
	hotelSchedules.Post("/", m.ValidateToken, h.Hotel.CreateSchedule)
	hotelSchedules.Get("/", h.Hotel.ListSchedules)
	hotelSchedules.Get("/:id", h.Hotel.GetSchedule)
	hotelSchedules.Patch("/:id", m.ValidateToken, h.Hotel.UpdateSchedule)
	hotelSchedules.Delete("/:id", m.ValidateToken, h.Hotel.DeleteSchedule)

	pkgs := app.Group("/packages")
	pkgs.Post("/", m.ValidateToken, m.RequireAdmin, h.Package.CreatePackage)
	pkgs.Get("/", h.Package.ListPackages)
	pkgs.Get("/featured", h.Package.FeaturedPackages)
	pkgs.Get("/available/search", h.Package.SearchAvailable)
	pkgs.Get("/:id", h.Package.GetPackage)
	pkgs.Patch("/:id", m.ValidateToken, h.Package.UpdatePackage)
	pkgs.Delete("/:id", m.ValidateToken, h.Package.DeletePackage)
	pkgs.Patch("/:id/reactivate", m.ValidateToken, h.Package.ReactivatePackage)
	pkgs.Get("/:id/availability", h.Package.Availability)
	pkgs.Post("/:id/schedules", m.ValidateToken, h.Package.CreateSchedule)
	pkgs.Get("/:id/schedules", h.Package.ListSchedules)
	pkgs.Patch("/:id/schedules/:scheduleId", m.ValidateToken, h.Package.UpdateSchedule)
	pkgs.Delete("/:id/schedules/:scheduleId", m.ValidateToken, h.Package.DeleteSchedule)

	packageSchedules := app.Group("/package-schedules")
	packageSchedules.Post("/", m.ValidateToken, h.Package.CreateSchedule)
	packageSchedules.Get("/", h.Package.ListSchedules)
	packageSchedules.Get("/:id", h.Package.GetSchedule)
	packageSchedules.Patch("/:id", m.ValidateToken, h.Package.UpdateSchedule)
	packageSchedules.Delete("/:id", m.ValidateToken, h.Package.DeleteSchedule)

	bookings := app.Group("/packages-booking")
	bookings.Post("/purchase-package", m.OptionalToken, h.Booking.PurchasePackage)
	bookings.Get("/my-bookings/:userId", m.ValidateToken, h.Booking.MyBookings)
	bookings.Get("/all-bookings", m.ValidateToken, m.RequireAdmin, h.Booking.AllBookings)

	app.Post("/contact", h.Contact.SendMessage)

	return app

}
