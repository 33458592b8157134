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

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.Application) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	ExistsByApplicantAndJob(ctx context.Context, applicantID, jobID primitive.ObjectID) (bool, error)
	List(ctx context.Context) ([]models.Application, error)
	ListByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.Application, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type applicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) ApplicationRepository {
	return &applicationRepo{col: db.Collection("applications")}
}

// Create relies on the uniq_applicant_job index: a concurrent duplicate
// apply loses the insert race and surfaces as ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var a models.Application
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) ExistsByApplicantAndJob(ctx context.Context, applicantID, jobID primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"applicant_id": applicantID,
		"job_id":       jobID,
	})
	return n > 0, err
}

func (r *applicationRepo) List(ctx context.Context) ([]models.Application, error) {
	return r.list(ctx, bson.M{})
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]models.Application, error) {
	return r.list(ctx, bson.M{"applicant_id": applicantID})
}

func (r *applicationRepo) list(ctx context.Context, filter bson.M) ([]models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	apps := []models.Application{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
