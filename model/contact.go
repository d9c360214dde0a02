package model

import "time"

type Contact struct {
	Id        int64     `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     *string   `json:"phone" bson:"phone"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

// ContactSubjects are the categories the contact form offers.
var ContactSubjects = []string{
	"general",
	"booking",
	"pricing",
	"safety",
	"weather",
	"group",
	"gift",
	"other",
}

func IsContactSubject(subject string) bool {
	for _, s := range ContactSubjects {
		if s == subject {
			return true
		}
	}
	return false
}
