package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hiredeck/hiredeck/internal/cache"
	"github.com/hiredeck/hiredeck/internal/models"
	mongorepo "github.com/hiredeck/hiredeck/internal/repositories/mongo"
	"github.com/hiredeck/hiredeck/internal/utils"
)

const (
	jobCacheTTL     = 60 * time.Second
	jobListCacheKey = "jobs:all"
)

type CreateJobInput struct {
	Title       string
	Description string
}

type UpdateJobInput struct {
	Title       string
	Description string
	Status      string
}

type JobService interface {
	Create(ctx context.Context, employerID string, in CreateJobInput) (*models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	Update(ctx context.Context, employerID, jobID string, in UpdateJobInput) (*models.Job, error)
	Delete(ctx context.Context, employerID, jobID string) error
}

type jobService struct {
	jobs  mongorepo.JobRepository
	cache cache.Cache
}

func NewJobService(jobs mongorepo.JobRepository, c cache.Cache) JobService {
	return &jobService{jobs: jobs, cache: c}
}

func jobCacheKey(id string) string { return "job:" + id }

func (s *jobService) Create(ctx context.Context, employerID string, in CreateJobInput) (*models.Job, error) {
	const op = "JobService.Create"

	ownerID, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "Unauthorized!", err)
	}
	if !utils.NotBlank(in.Title) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Title should not be empty!", nil)
	}
	if !utils.NotBlank(in.Description) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Description should not be empty!", nil)
	}

	j := &models.Job{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		EmployerID:  ownerID,
		Status:      models.JobOpen,
	}
	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}

	_ = s.cache.Del(ctx, jobListCacheKey)
	return j, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*models.Job, error) {
	const op = "JobService.Get"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Job not found!", err)
	}

	var cached models.Job
	if hit, err := s.cache.GetJSON(ctx, jobCacheKey(id), &cached); err == nil && hit {
		return &cached, nil
	}

	j, err := s.jobs.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "Job not found!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	_ = s.cache.SetJSON(ctx, jobCacheKey(id), j, jobCacheTTL)
	return j, nil
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	const op = "JobService.List"

	var cached []models.Job
	if hit, err := s.cache.GetJSON(ctx, jobListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}

	_ = s.cache.SetJSON(ctx, jobListCacheKey, jobs, jobCacheTTL)
	return jobs, nil
}

func (s *jobService) Update(ctx context.Context, employerID, jobID string, in UpdateJobInput) (*models.Job, error) {
	const op = "JobService.Update"

	if in.Title == "" && in.Description == "" && in.Status == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "You have to provide at least 1 field!", nil)
	}
	if in.Title != "" && !utils.NotBlank(in.Title) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Title should not be empty!", nil)
	}
	if in.Description != "" && !utils.NotBlank(in.Description) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Description should not be empty!", nil)
	}
	if in.Status != "" && in.Status != string(models.JobOpen) && in.Status != string(models.JobClosed) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Status should be either open or closed", nil)
	}

	j, err := s.requireOwnedJob(ctx, op, employerID, jobID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if in.Title != "" {
		set["title"] = strings.TrimSpace(in.Title)
	}
	if in.Description != "" {
		set["description"] = strings.TrimSpace(in.Description)
	}
	if in.Status != "" {
		set["status"] = in.Status
	}

	if err := s.jobs.UpdateFields(ctx, j.ID, set); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Job not found!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}

	_ = s.cache.Del(ctx, jobCacheKey(jobID), jobListCacheKey)

	out, err := s.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload job", err)
	}
	return out, nil
}

func (s *jobService) Delete(ctx context.Context, employerID, jobID string) error {
	const op = "JobService.Delete"

	j, err := s.requireOwnedJob(ctx, op, employerID, jobID)
	if err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, j.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Job not found!", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}

	_ = s.cache.Del(ctx, jobCacheKey(jobID), jobListCacheKey)
	return nil
}

// requireOwnedJob loads the job and enforces that the caller owns it.
func (s *jobService) requireOwnedJob(ctx context.Context, op, employerID, jobID string) (*models.Job, error) {
	ownerID, err := primitive.ObjectIDFromHex(employerID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "Unauthorized!", err)
	}
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "Job not found!", err)
	}

	j, err := s.jobs.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Job not found!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}
	if j.EmployerID != ownerID {
		return nil, utils.E(utils.CodeForbidden, op, "You are not allowed to modify this job!", nil)
	}
	return j, nil
}
