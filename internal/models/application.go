package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application links a job seeker to a job. The applicant fields are a
// snapshot taken at apply time; later profile edits must not rewrite
// historical applications.
type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ApplicantID primitive.ObjectID `bson:"applicant_id" json:"applicant_id"`
	JobID       primitive.ObjectID `bson:"job_id" json:"job_id"`

	ApplicantName string `bson:"applicant_name" json:"applicant_name"`
	PhoneNo       string `bson:"phone_no" json:"phone_no"`
	Email         string `bson:"email" json:"email"`
	Resume        string `bson:"resume,omitempty" json:"resume,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
