package model

// TourType distinguishes the two aircraft kinds offered.
type TourType string

const (
	TourTypeHelicopter TourType = "helicopter"
	TourTypeAirplane   TourType = "airplane"
)

type Tour struct {
	Id            string   `json:"id" bson:"_id"`
	Name          string   `json:"name" bson:"name"`
	Duration      string   `json:"duration" bson:"duration"`
	Price         int      `json:"price" bson:"price"`
	MinPassengers int      `json:"minPassengers" bson:"min_passengers"`
	MaxPassengers int      `json:"maxPassengers" bson:"max_passengers"`
	MaxWeight     int      `json:"maxWeight" bson:"max_weight"`
	Type          TourType `json:"type" bson:"type"`
	Description   string   `json:"description" bson:"description"`
	Location      string   `json:"location" bson:"location"`
	Features      []string `json:"features" bson:"features"`
	Image         string   `json:"image" bson:"image"`
}

type Location struct {
	Id          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Note        string `json:"note" bson:"note"`
	Image       string `json:"image" bson:"image"`
	Tours       []Tour `json:"tours" bson:"tours"`
}
