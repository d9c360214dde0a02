package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Jackcomputers-app/flyhightide/model"
)

// Validation and pricing rules shared by the wizard guards and the server-side
// booking handler. Bounds are per-tour and inclusive.

func PassengersValidation(tour model.Tour, passengers int) error {
	if passengers < tour.MinPassengers || passengers > tour.MaxPassengers {
		return fmt.Errorf("tour %v takes %v to %v passengers, got %v",
			tour.Id, tour.MinPassengers, tour.MaxPassengers, passengers)
	}
	return nil
}

func TotalWeightValidation(tour model.Tour, totalWeight int) error {
	if totalWeight <= 0 {
		return errors.New("total passenger weight is required")
	}
	if totalWeight > tour.MaxWeight {
		return fmt.Errorf("tour %v carries at most %v lbs, got %v",
			tour.Id, tour.MaxWeight, totalWeight)
	}
	return nil
}

func ContactInfoValidation(name string, email string, phone string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("lead passenger name is required")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("contact email is required")
	}
	if strings.TrimSpace(phone) == "" {
		return errors.New("contact phone is required")
	}
	return nil
}

// TotalPrice is unitPrice times passengerCount, no discounts or taxes.
func TotalPrice(tour *model.Tour, passengers int) int {
	if tour == nil {
		return 0
	}
	return tour.Price * passengers
}
