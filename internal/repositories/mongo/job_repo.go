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

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type jobRepo struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepository {
	return &jobRepo{col: db.Collection("jobs")}
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	now := time.Now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		j.ID = oid
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var j models.Job
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) List(ctx context.Context) ([]models.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	jobs := []models.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
