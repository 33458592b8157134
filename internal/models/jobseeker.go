package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobSeeker struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	PhoneNo string             `bson:"phone_no" json:"phone_no"`
	Address string             `bson:"address" json:"address"`
	Resume  string             `bson:"resume,omitempty" json:"resume,omitempty"` // stored resume URL

	Password string `bson:"password,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
