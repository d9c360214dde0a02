package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jackcomputers-app/flyhightide/catalog"
	"github.com/Jackcomputers-app/flyhightide/errors"
)

// The catalog is immutable reference data, so these handlers are plain reads
// with no store behind them.

func GetLocations(c *fiber.Ctx) error {
	return c.JSON(catalog.Locations)
}

func GetLocation(c *fiber.Ctx) error {
	location, ok := catalog.LocationById(c.Params("id"))
	if !ok {
		return errors.RaiseNotFoundError(c, "Location not found")
	}
	return c.JSON(location)
}

func GetTours(c *fiber.Ctx) error {
	if locationId := c.Query("location"); locationId != "" {
		return c.JSON(catalog.ToursByLocation(locationId))
	}
	return c.JSON(catalog.Tours)
}

func GetTour(c *fiber.Ctx) error {
	tour, ok := catalog.TourById(c.Params("id"))
	if !ok {
		return errors.RaiseNotFoundError(c, "Tour not found")
	}
	return c.JSON(tour)
}
