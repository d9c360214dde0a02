package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jackcomputers-app/flyhightide/model"
)

func bookingRequest(email string) model.BookingRequest {
	return model.BookingRequest{
		Location:          "southport",
		TourId:            "southport-oak-island",
		TourName:          "Oak Island",
		Passengers:        2,
		TotalWeight:       300,
		LeadPassengerName: "Jamie Rivers",
		ContactEmail:      email,
		ContactPhone:      "555-0142",
		TotalPrice:        "250.00",
		Status:            model.StatusConfirmed,
	}
}

func TestCreateBookingAssignsIdentity(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.CreateBooking(ctx, bookingRequest("a@example.com"))
	assert.NoError(t, err)
	second, err := store.CreateBooking(ctx, bookingRequest("b@example.com"))
	assert.NoError(t, err)

	assert.Equal(t, int64(1), first.Id)
	assert.Equal(t, int64(2), second.Id)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, "250.00", first.TotalPrice)
}

func TestGetBookingsKeepsInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := store.CreateBooking(ctx, bookingRequest(email))
		assert.NoError(t, err)
	}

	bookings, err := store.GetBookings(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 3)
	for i, booking := range bookings {
		assert.Equal(t, int64(i+1), booking.Id)
	}
}

// Email lookup is exact, byte-for-byte. A differently cased address finds
// nothing; this documents the current behavior rather than endorsing it.
func TestGetBookingsByEmailCaseSensitive(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateBooking(ctx, bookingRequest("foo@bar.com"))
	assert.NoError(t, err)

	matches, err := store.GetBookingsByEmail(ctx, "Foo@Bar.com")
	assert.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = store.GetBookingsByEmail(ctx, "foo@bar.com")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestCreateContactAssignsIdentity(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	phone := "555-0100"
	contact, err := store.CreateContact(ctx, model.ContactRequest{
		Name:    "Sam Doyle",
		Email:   "sam@example.com",
		Phone:   &phone,
		Subject: "weather",
		Message: "Do tours fly in light rain?",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), contact.Id)
	assert.False(t, contact.CreatedAt.IsZero())

	contacts, err := store.GetContacts(ctx)
	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, "weather", contacts[0].Subject)
}
