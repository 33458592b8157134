package services

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	mongorepo "github.com/hiredeck/hiredeck/internal/repositories/mongo"
	"github.com/hiredeck/hiredeck/internal/storage"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type ResumeService interface {
	Upload(ctx context.Context, seekerID, objectName, contentType string, r io.Reader) (resumeURL string, err error)
}

type resumeService struct {
	seekers  mongorepo.JobSeekerRepository
	uploader storage.Uploader
}

// NewResumeService accepts a nil uploader; Upload then reports the feature
// as unavailable instead of failing at startup.
func NewResumeService(seekers mongorepo.JobSeekerRepository, uploader storage.Uploader) ResumeService {
	return &resumeService{seekers: seekers, uploader: uploader}
}

func (s *resumeService) Upload(ctx context.Context, seekerID, objectName, contentType string, r io.Reader) (string, error) {
	const op = "ResumeService.Upload"

	if seekerID == "" || objectName == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "seeker id and object name are required", nil)
	}
	if s.uploader == nil {
		return "", utils.E(utils.CodeUnavailable, op, "Resume uploads are not available right now!", nil)
	}

	oid, err := primitive.ObjectIDFromHex(seekerID)
	if err != nil {
		return "", utils.E(utils.CodeUnauthorized, op, "Unauthorized!", err)
	}

	url, err := s.uploader.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload resume", err)
	}

	if err := s.seekers.SetResume(ctx, oid, url); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "Job seeker not found!", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to save resume reference", err)
	}
	return url, nil
}
