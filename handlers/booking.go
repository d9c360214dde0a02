package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Jackcomputers-app/flyhightide/catalog"
	"github.com/Jackcomputers-app/flyhightide/database"
	"github.com/Jackcomputers-app/flyhightide/errors"
	"github.com/Jackcomputers-app/flyhightide/model"
	"github.com/Jackcomputers-app/flyhightide/utils"
	"github.com/Jackcomputers-app/flyhightide/wizard"
)

func CreateBooking(c *fiber.Ctx) error {
	newBooking := new(model.BookingRequest)

	if err := c.BodyParser(newBooking); err != nil {
		utils.GetLogger().Warn("unparseable booking payload", zap.Error(err))
		return errors.RaiseBadRequestError(c, "Failed to create booking")
	}
	newBooking.LeadPassengerName = strings.TrimSpace(newBooking.LeadPassengerName)

	tour, validationErr := bookingRequestValidation(newBooking)
	if validationErr != nil {
		utils.GetLogger().Warn("rejected booking request",
			zap.String("tour", newBooking.TourId),
			zap.Error(validationErr))
		return errors.RaiseBadRequestError(c, "Failed to create booking")
	}

	// Never trust the client's figures: resolve the tour name and recompute
	// the price, stored with two decimals.
	newBooking.TourName = tour.Name
	newBooking.TotalPrice = fmt.Sprintf("%.2f", float64(wizard.TotalPrice(&tour, newBooking.Passengers)))
	if newBooking.Status == "" {
		newBooking.Status = model.StatusConfirmed
	}

	booking, dberr := database.DB.CreateBooking(c.Context(), *newBooking)
	if dberr != nil {
		utils.GetLogger().Error("cannot store booking", zap.Error(dberr))
		return errors.RaiseInternalServerError(c, "Failed to create booking")
	}

	database.Cache.Invalidate(c.Context())

	return c.JSON(booking)
}

func GetBookings(c *fiber.Ctx) error {
	if bookings, ok := database.Cache.Get(c.Context()); ok {
		return c.JSON(bookings)
	}

	bookings, dberr := database.DB.GetBookings(c.Context())
	if dberr != nil {
		utils.GetLogger().Error("cannot read bookings", zap.Error(dberr))
		return errors.RaiseInternalServerError(c, "Failed to fetch bookings")
	}

	database.Cache.Set(c.Context(), bookings)

	return c.JSON(bookings)
}

func GetBookingsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if unescaped, err := url.PathUnescape(email); err == nil {
		email = unescaped
	}

	bookings, dberr := database.DB.GetBookingsByEmail(c.Context(), email)
	if dberr != nil {
		utils.GetLogger().Error("cannot read bookings by email", zap.Error(dberr))
		return errors.RaiseInternalServerError(c, "Failed to fetch bookings")
	}

	return c.JSON(bookings)
}

func bookingRequestValidation(request *model.BookingRequest) (model.Tour, error) {
	tour, ok := catalog.TourById(request.TourId)
	if !ok {
		return model.Tour{}, fmt.Errorf("unknown tour %v", request.TourId)
	}
	if tour.Location != request.Location {
		return model.Tour{}, fmt.Errorf("tour %v does not depart from %v", request.TourId, request.Location)
	}
	if err := wizard.PassengersValidation(tour, request.Passengers); err != nil {
		return model.Tour{}, err
	}
	if err := wizard.TotalWeightValidation(tour, request.TotalWeight); err != nil {
		return model.Tour{}, err
	}
	if err := wizard.ContactInfoValidation(request.LeadPassengerName, request.ContactEmail, request.ContactPhone); err != nil {
		return model.Tour{}, err
	}
	if request.Status != "" && request.Status != model.StatusConfirmed {
		return model.Tour{}, fmt.Errorf("unsupported booking status %v", request.Status)
	}

	// The submitted price may be "250" or "250.00"; both must agree with the
	// recomputed total.
	claimed, err := strconv.ParseFloat(request.TotalPrice, 64)
	if err != nil {
		return model.Tour{}, fmt.Errorf("unparseable total price %q", request.TotalPrice)
	}
	expected := float64(wizard.TotalPrice(&tour, request.Passengers))
	if math.Abs(claimed-expected) >= 0.005 {
		return model.Tour{}, fmt.Errorf("total price mismatch: got %v, expected %v", request.TotalPrice, expected)
	}

	return tour, nil
}
