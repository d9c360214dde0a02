package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jackcomputers-app/flyhightide/model"
)

// MongoStore keeps bookings and contacts in Mongo collections. Ids come from a
// counter document updated with an atomic $inc, so they stay unique and
// monotonically increasing across concurrent creates.
type MongoStore struct {
	bookings *mongo.Collection
	contacts *mongo.Collection
	counters *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		bookings: db.Collection("bookings"),
		contacts: db.Collection("contacts"),
		counters: db.Collection("counters"),
	}
}

func (s *MongoStore) nextId(ctx context.Context, sequence string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: sequence}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("cannot advance %v sequence: %v", sequence, err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) CreateBooking(ctx context.Context, request model.BookingRequest) (model.Booking, error) {
	id, err := s.nextId(ctx, "bookings")
	if err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		Id:                id,
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

	if _, err := s.bookings.InsertOne(ctx, booking); err != nil {
		return model.Booking{}, fmt.Errorf("cannot store booking: %v", err)
	}
	return booking, nil
}

func (s *MongoStore) GetBookings(ctx context.Context) ([]model.Booking, error) {
	return s.findBookings(ctx, bson.D{})
}

// GetBookingsByEmail matches the contact email byte-for-byte; "Foo@Bar.com"
// and "foo@bar.com" are different addresses to this query.
func (s *MongoStore) GetBookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return s.findBookings(ctx, bson.D{{Key: "contact_email", Value: email}})
}

func (s *MongoStore) findBookings(ctx context.Context, filter bson.D) ([]model.Booking, error) {
	// Ascending id keeps insertion order.
	cur, err := s.bookings.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("cannot read bookings: %v", err)
	}
	defer cur.Close(ctx)

	bookings := []model.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("cannot decode bookings: %v", err)
	}
	return bookings, nil
}

func (s *MongoStore) CreateContact(ctx context.Context, request model.ContactRequest) (model.Contact, error) {
	id, err := s.nextId(ctx, "contacts")
	if err != nil {
		return model.Contact{}, err
	}

	contact := model.Contact{
		Id:        id,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Subject:   request.Subject,
		Message:   request.Message,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.contacts.InsertOne(ctx, contact); err != nil {
		return model.Contact{}, fmt.Errorf("cannot store contact: %v", err)
	}
	return contact, nil
}

func (s *MongoStore) GetContacts(ctx context.Context) ([]model.Contact, error) {
	cur, err := s.contacts.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("cannot read contacts: %v", err)
	}
	defer cur.Close(ctx)

	contacts := []model.Contact{}
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("cannot decode contacts: %v", err)
	}
	return contacts, nil
}
