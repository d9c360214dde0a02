package database

import (
	"context"
	"sync"
	"time"

	"github.com/Jackcomputers-app/flyhightide/model"
)

// MemoryStore implements Store with in-memory slices. Used by tests and local
// development in place of Mongo.
type MemoryStore struct {
	mu            sync.RWMutex
	bookings      []model.Booking
	contacts      []model.Contact
	nextBookingId int64
	nextContactId int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextBookingId: 1, nextContactId: 1}
}

func (s *MemoryStore) CreateBooking(ctx context.Context, request model.BookingRequest) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := model.Booking{
		Id:                s.nextBookingId,
		Location:          request.Location,
		TourId:            request.TourId,
		TourName:          request.TourName,
		Passengers:        request.Passengers,
		TotalWeight:       request.TotalWeight,
		LeadPassengerName: request.LeadPassengerName,
		ContactEmail:      request.ContactEmail,
		ContactPhone:      request.ContactPhone,
		PreferredDate:     request.PreferredDate,
		SpecialRequests:   request.SpecialRequests,
		TotalPrice:        request.TotalPrice,
		Status:            request.Status,
		CreatedAt:         time.Now().UTC(),
	}
	s.nextBookingId++
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

func (s *MemoryStore) GetBookings(ctx context.Context) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]model.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return bookings, nil
}

// GetBookingsByEmail matches the contact email byte-for-byte, same as the
// Mongo store.
func (s *MemoryStore) GetBookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []model.Booking{}
	for _, booking := range s.bookings {
		if booking.ContactEmail == email {
			matches = append(matches, booking)
		}
	}
	return matches, nil
}

func (s *MemoryStore) CreateContact(ctx context.Context, request model.ContactRequest) (model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact := model.Contact{
		Id:        s.nextContactId,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Subject:   request.Subject,
		Message:   request.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.nextContactId++
	s.contacts = append(s.contacts, contact)
	return contact, nil
}

func (s *MemoryStore) GetContacts(ctx context.Context) ([]model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := make([]model.Contact, len(s.contacts))
	copy(contacts, s.contacts)
	return contacts, nil
}
