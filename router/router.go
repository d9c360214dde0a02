package router

import (
	"github.com/Jackcomputers-app/flyhightide/handlers"
	"github.com/Jackcomputers-app/flyhightide/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.RequestId(), logger.New())

	//Catalog
	locations := api.Group("/locations")
	locations.Get("/", handlers.GetLocations)
	locations.Get("/:id", handlers.GetLocation)

	tours := api.Group("/tours")
	tours.Get("/", handlers.GetTours)
	tours.Get("/:id", handlers.GetTour)

	//Booking
	bookings := api.Group("/bookings")
	bookings.Get("/", handlers.GetBookings)
	bookings.Get("/email/:email", handlers.GetBookingsByEmail)
	bookings.Post("/", handlers.CreateBooking)

	//Contact
	contacts := api.Group("/contacts")
	contacts.Get("/", handlers.GetContacts)
	contacts.Post("/", handlers.CreateContact)
}
