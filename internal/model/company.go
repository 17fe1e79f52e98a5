package model

import "time"

// Company is an account that purchases test credits and registers candidates
type Company struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	PasswordHash  string    `json:"-" bson:"passwordHash"`
	Credits       int       `json:"credits" bson:"credits"`
	DemoActivated bool      `json:"demoActivated" bson:"demoActivated"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
