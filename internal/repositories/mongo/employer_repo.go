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

type EmployerRepository interface {
	Create(ctx context.Context, e *models.Employer) error
	ExistsByEmailOrPhone(ctx context.Context, email, phoneNo string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.Employer, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employer, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type employerRepo struct {
	col *mongo.Collection
}

func NewEmployerRepo(db *mongo.Database) EmployerRepository {
	return &employerRepo{col: db.Collection("employers")}
}

func (r *employerRepo) Create(ctx context.Context, e *models.Employer) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, e)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

func (r *employerRepo) ExistsByEmailOrPhone(ctx context.Context, email, phoneNo string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"$or": bson.A{
			bson.M{"email": email},
			bson.M{"phone_no": phoneNo},
		},
	})
	return n > 0, err
}

// GetByEmail returns the full document including the password hash; it is
// the login path's credential lookup.
func (r *employerRepo) GetByEmail(ctx context.Context, email string) (*models.Employer, error) {
	var e models.Employer
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

// GetByID projects the password out; every read path after login is sanitized.
func (r *employerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employer, error) {
	var e models.Employer
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	err := r.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *employerRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) error {
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

func (r *employerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
