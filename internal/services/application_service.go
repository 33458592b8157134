package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hiredeck/hiredeck/internal/models"
	mongorepo "github.com/hiredeck/hiredeck/internal/repositories/mongo"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type ApplicationService interface {
	Apply(ctx context.Context, applicant *models.JobSeeker, jobID string) (*models.Application, error)
	List(ctx context.Context, applicantID string) ([]models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	Delete(ctx context.Context, id string) error
}

type applicationService struct {
	applications mongorepo.ApplicationRepository
	jobs         mongorepo.JobRepository

	// scopeToApplicant switches List from the historical list-everything
	// behavior to filtering by the requesting applicant.
	scopeToApplicant bool
}

func NewApplicationService(applications mongorepo.ApplicationRepository, jobs mongorepo.JobRepository, scopeToApplicant bool) ApplicationService {
	return &applicationService{
		applications:     applications,
		jobs:             jobs,
		scopeToApplicant: scopeToApplicant,
	}
}

func (s *applicationService) Apply(ctx context.Context, applicant *models.JobSeeker, jobID string) (*models.Application, error) {
	const op = "ApplicationService.Apply"

	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Job ID is required!", nil)
	}
	if applicant == nil || applicant.ID.IsZero() {
		return nil, utils.E(utils.CodeUnauthorized, op, "Unauthorized!", nil)
	}

	jobOID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Job not found!", err)
	}

	if _, err := s.jobs.GetByID(ctx, jobOID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "Job not found!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	exists, err := s.applications.ExistsByApplicantAndJob(ctx, applicant.ID, jobOID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing application", err)
	}
	if exists {
		return nil, utils.E(utils.CodeConflict, op, "You have already applied for this job!", nil)
	}

	// Snapshot the applicant's profile at apply time; later profile edits
	// must not rewrite this application.
	app := &models.Application{
		ApplicantID:   applicant.ID,
		JobID:         jobOID,
		ApplicantName: applicant.Name,
		PhoneNo:       applicant.PhoneNo,
		Email:         applicant.Email,
		Resume:        applicant.Resume,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		// The unique (applicant_id, job_id) index closes the window between
		// the existence check and the insert.
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "You have already applied for this job!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, applicantID string) ([]models.Application, error) {
	const op = "ApplicationService.List"

	if s.scopeToApplicant {
		oid, err := primitive.ObjectIDFromHex(applicantID)
		if err != nil {
			return nil, utils.E(utils.CodeUnauthorized, op, "Unauthorized!", err)
		}
		apps, err := s.applications.ListByApplicant(ctx, oid)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
		}
		return apps, nil
	}

	apps, err := s.applications.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return apps, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	const op = "ApplicationService.Get"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Application not found!", err)
	}

	app, err := s.applications.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "Application not found!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load application", err)
	}
	return app, nil
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	const op = "ApplicationService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "Application not found!", err)
	}

	if err := s.applications.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeInvalidArgument, op, "Application not found!", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete application", err)
	}
	return nil
}
