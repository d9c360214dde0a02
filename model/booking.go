package model

import "time"

// Booking is the durable record of a completed booking. Id and CreatedAt are
// assigned by the store; everything else comes from the submitted request.
type Booking struct {
	Id                int64     `json:"id" bson:"_id"`
	Location          string    `json:"location" bson:"location"`
	TourId            string    `json:"tourId" bson:"tour_id"`
	TourName          string    `json:"tourName" bson:"tour_name"`
	Passengers        int       `json:"passengers" bson:"passengers"`
	TotalWeight       int       `json:"totalWeight" bson:"total_weight"`
	LeadPassengerName string    `json:"leadPassengerName" bson:"lead_passenger_name"`
	ContactEmail      string    `json:"contactEmail" bson:"contact_email"`
	ContactPhone      string    `json:"contactPhone" bson:"contact_phone"`
	PreferredDate     *string   `json:"preferredDate" bson:"preferred_date"`
	SpecialRequests   *string   `json:"specialRequests" bson:"special_requests"`
	TotalPrice        string    `json:"totalPrice" bson:"total_price"`
	Status            string    `json:"status" bson:"status"`
	CreatedAt         time.Time `json:"createdAt" bson:"created_at"`
}

// BookingRequest is a Booking minus the store-assigned fields.
type BookingRequest struct {
	Location          string  `json:"location"`
	TourId            string  `json:"tourId"`
	TourName          string  `json:"tourName"`
	Passengers        int     `json:"passengers"`
	TotalWeight       int     `json:"totalWeight"`
	LeadPassengerName string  `json:"leadPassengerName"`
	ContactEmail      string  `json:"contactEmail"`
	ContactPhone      string  `json:"contactPhone"`
	PreferredDate     *string `json:"preferredDate"`
	SpecialRequests   *string `json:"specialRequests"`
	TotalPrice        string  `json:"totalPrice"`
	Status            string  `json:"status"`
}

const StatusConfirmed = "confirmed"
