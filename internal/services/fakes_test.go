package services

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hiredeck/hiredeck/internal/models"
	"github.com/hiredeck/hiredeck/internal/utils"
)

// In-memory repositories backing the service tests.

type fakeEmployerRepo struct {
	docs map[primitive.ObjectID]*models.Employer
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{docs: map[primitive.ObjectID]*models.Employer{}}
}

func (r *fakeEmployerRepo) Create(_ context.Context, e *models.Employer) error {
	for _, d := range r.docs {
		if d.Email == e.Email || d.PhoneNo == e.PhoneNo {
			return utils.ErrDuplicate
		}
	}
	e.ID = primitive.NewObjectID()
	cp := *e
	r.docs[e.ID] = &cp
	return nil
}

func (r *fakeEmployerRepo) ExistsByEmailOrPhone(_ context.Context, email, phoneNo string) (bool, error) {
	for _, d := range r.docs {
		if d.Email == email || d.PhoneNo == phoneNo {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployerRepo) GetByEmail(_ context.Context, email string) (*models.Employer, error) {
	for _, d := range r.docs {
		if d.Email == email {
			cp := *d
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeEmployerRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Employer, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *d
	cp.Password = ""
	return &cp, nil
}

func (r *fakeEmployerRepo) UpdateFields(_ context.Context, id primitive.ObjectID, set bson.M) error {
	d, ok := r.docs[id]
	if !ok {
		return utils.ErrNotFound
	}
	if v, ok := set["name"].(string); ok {
		d.Name = v
	}
	if v, ok := set["email"].(string); ok {
		d.Email = v
	}
	if v, ok := set["phone_no"].(string); ok {
		d.PhoneNo = v
	}
	if v, ok := set["website"].(string); ok {
		d.Website = v
	}
	if v, ok := set["password"].(string); ok {
		d.Password = v
	}
	return nil
}

func (r *fakeEmployerRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.docs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type fakeJobSeekerRepo struct {
	docs map[primitive.ObjectID]*models.JobSeeker
}

func newFakeJobSeekerRepo() *fakeJobSeekerRepo {
	return &fakeJobSeekerRepo{docs: map[primitive.ObjectID]*models.JobSeeker{}}
}

func (r *fakeJobSeekerRepo) Create(_ context.Context, s *models.JobSeeker) error {
	for _, d := range r.docs {
		if d.Email == s.Email || d.PhoneNo == s.PhoneNo {
			return utils.ErrDuplicate
		}
	}
	s.ID = primitive.NewObjectID()
	cp := *s
	r.docs[s.ID] = &cp
	return nil
}

func (r *fakeJobSeekerRepo) ExistsByEmailOrPhone(_ context.Context, email, phoneNo string) (bool, error) {
	for _, d := range r.docs {
		if d.Email == email || d.PhoneNo == phoneNo {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeJobSeekerRepo) GetByEmail(_ context.Context, email string) (*models.JobSeeker, error) {
	for _, d := range r.docs {
		if d.Email == email {
			cp := *d
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeJobSeekerRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.JobSeeker, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *d
	cp.Password = ""
	return &cp, nil
}

func (r *fakeJobSeekerRepo) UpdateFields(_ context.Context, id primitive.ObjectID, set bson.M) error {
	d, ok := r.docs[id]
	if !ok {
		return utils.ErrNotFound
	}
	if v, ok := set["name"].(string); ok {
		d.Name = v
	}
	if v, ok := set["email"].(string); ok {
		d.Email = v
	}
	if v, ok := set["phone_no"].(string); ok {
		d.PhoneNo = v
	}
	if v, ok := set["password"].(string); ok {
		d.Password = v
	}
	if v, ok := set["resume"].(string); ok {
		d.Resume = v
	}
	return nil
}

func (r *fakeJobSeekerRepo) SetResume(ctx context.Context, id primitive.ObjectID, resumeURL string) error {
	return r.UpdateFields(ctx, id, bson.M{"resume": resumeURL})
}

func (r *fakeJobSeekerRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.docs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type fakeJobRepo struct {
	docs map[primitive.ObjectID]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{docs: map[primitive.ObjectID]*models.Job{}}
}

func (r *fakeJobRepo) Create(_ context.Context, j *models.Job) error {
	j.ID = primitive.NewObjectID()
	cp := *j
	r.docs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Job, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeJobRepo) List(_ context.Context) ([]models.Job, error) {
	out := []models.Job{}
	for _, d := range r.docs {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeJobRepo) UpdateFields(_ context.Context, id primitive.ObjectID, set bson.M) error {
	d, ok := r.docs[id]
	if !ok {
		return utils.ErrNotFound
	}
	if v, ok := set["title"].(string); ok {
		d.Title = v
	}
	if v, ok := set["description"].(string); ok {
		d.Description = v
	}
	if v, ok := set["status"].(string); ok {
		d.Status = models.JobStatus(v)
	}
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.docs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type applicationKey struct {
	applicant primitive.ObjectID
	job       primitive.ObjectID
}

type fakeApplicationRepo struct {
	docs map[primitive.ObjectID]*models.Application
	keys map[applicationKey]struct{}
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		docs: map[primitive.ObjectID]*models.Application{},
		keys: map[applicationKey]struct{}{},
	}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a *models.Application) error {
	k := applicationKey{applicant: a.ApplicantID, job: a.JobID}
	if _, dup := r.keys[k]; dup {
		return utils.ErrDuplicate
	}
	a.ID = primitive.NewObjectID()
	cp := *a
	r.docs[a.ID] = &cp
	r.keys[k] = struct{}{}
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Application, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeApplicationRepo) ExistsByApplicantAndJob(_ context.Context, applicantID, jobID primitive.ObjectID) (bool, error) {
	_, ok := r.keys[applicationKey{applicant: applicantID, job: jobID}]
	return ok, nil
}

func (r *fakeApplicationRepo) List(_ context.Context) ([]models.Application, error) {
	out := []models.Application{}
	for _, d := range r.docs {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID primitive.ObjectID) ([]models.Application, error) {
	out := []models.Application{}
	for _, d := range r.docs {
		if d.ApplicantID == applicantID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	d, ok := r.docs[id]
	if !ok {
		return utils.ErrNotFound
	}
	delete(r.keys, applicationKey{applicant: d.ApplicantID, job: d.JobID})
	delete(r.docs, id)
	return nil
}

// memCache is a map-backed cache.Cache.
type memCache struct {
	vals map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{vals: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	b, ok := c.vals[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.vals[key] = b
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.vals, k)
	}
	return nil
}
