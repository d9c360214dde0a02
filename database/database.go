package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jackcomputers-app/flyhightide/config"
	"github.com/Jackcomputers-app/flyhightide/model"
)

// Store is the persistence service behind the booking and contact endpoints.
// Records are append-only: no update or delete operations exist.
type Store interface {
	CreateBooking(ctx context.Context, request model.BookingRequest) (model.Booking, error)
	GetBookings(ctx context.Context) ([]model.Booking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]model.Booking, error)
	CreateContact(ctx context.Context, request model.ContactRequest) (model.Contact, error)
	GetContacts(ctx context.Context) ([]model.Contact, error)
}

// DB is the store every handler goes through. main wires the Mongo store;
// tests swap in the memory store.
var DB Store

// DBInit connects to Mongo and returns the service database.
func DBInit() (*mongo.Database, error) {
	connString := config.AppConfig.MongoConnString
	if connString == "" {
		return nil, fmt.Errorf("cannot find connection string for DB in the configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database("flyhightide"), nil
}
