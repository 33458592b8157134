package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the unique indexes the stores rely on:
// account email/phone uniqueness for both actor types, and the compound
// (applicant_id, job_id) index that makes the one-application-per-job
// invariant hold under concurrent applies.
func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := Database()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	accountIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "phone_no", Value: 1}},
			Options: options.Index().SetName("uniq_phone_no").SetUnique(true),
		},
	}

	if _, err := db.Collection("employers").Indexes().CreateMany(ctx, accountIndexes); err != nil {
		return err
	}
	if _, err := db.Collection("job_seekers").Indexes().CreateMany(ctx, accountIndexes); err != nil {
		return err
	}

	jobs := db.Collection("jobs")
	if _, err := jobs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employer_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("by_employer_created"),
	}); err != nil {
		return err
	}

	applications := db.Collection("applications")
	_, err := applications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "applicant_id", Value: 1}, {Key: "job_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_applicant_job").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_job_created"),
		},
	})
	return err
}
