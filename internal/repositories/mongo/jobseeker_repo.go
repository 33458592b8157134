package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hiredeck/hiredeck/internal/models"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type JobSeekerRepository interface {
	Create(ctx context.Context, s *models.JobSeeker) error
	ExistsByEmailOrPhone(ctx context.Context, email, phoneNo string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.JobSeeker, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.JobSeeker, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) error
	SetResume(ctx context.Context, id primitive.ObjectID, resumeURL string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type jobSeekerRepo struct {
	col *mongo.Collection
}

func NewJobSeekerRepo(db *mongo.Database) JobSeekerRepository {
	return &jobSeekerRepo{col: db.Collection("job_seekers")}
}

func (r *jobSeekerRepo) Create(ctx context.Context, s *models.JobSeeker) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, s)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

func (r *jobSeekerRepo) ExistsByEmailOrPhone(ctx context.Context, email, phoneNo string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"$or": bson.A{
			bson.M{"email": email},
			bson.M{"phone_no": phoneNo},
		},
	})
	return n > 0, err
}

func (r *jobSeekerRepo) GetByEmail(ctx context.Context, email string) (*models.JobSeeker, error) {
	var s models.JobSeeker
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *jobSeekerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.JobSeeker, error) {
	var s models.JobSeeker
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	err := r.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *jobSeekerRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobSeekerRepo) SetResume(ctx context.Context, id primitive.ObjectID, resumeURL string) error {
	return r.UpdateFields(ctx, id, bson.M{"resume": resumeURL})
}

func (r *jobSeekerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
