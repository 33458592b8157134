package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hiredeck/hiredeck/internal/api/middleware"
	"github.com/hiredeck/hiredeck/internal/models"
	"github.com/hiredeck/hiredeck/internal/services"
)

type stubJobSeekerService struct{}

func (s *stubJobSeekerService) Signup(context.Context, services.SignupJobSeekerInput) (*models.JobSeeker, error) {
	return nil, nil
}
func (s *stubJobSeekerService) Login(context.Context, string, string) (string, error) {
	return "", nil
}
func (s *stubJobSeekerService) GetByID(context.Context, string) (*models.JobSeeker, error) {
	return nil, nil
}
func (s *stubJobSeekerService) UpdateDetails(context.Context, string, services.UpdateJobSeekerInput) (*models.JobSeeker, error) {
	return nil, nil
}
func (s *stubJobSeekerService) UpdatePassword(context.Context, string, string) error { return nil }
func (s *stubJobSeekerService) Delete(context.Context, string) error                 { return nil }

type stubResumeService struct {
	calls int
	url   string
}

func (s *stubResumeService) Upload(_ context.Context, _, _, _ string, r io.Reader) (string, error) {
	s.calls++
	io.Copy(io.Discard, r)
	return s.url, nil
}

func resumeUploadRig(resumes *stubResumeService) *gin.Engine {
	h := NewJobSeekerHandler(&stubJobSeekerService{}, resumes, time.Hour)
	js := &models.JobSeeker{ID: primitive.NewObjectID(), Name: "Jane"}

	r := gin.New()
	r.POST("/upload-resume", func(c *gin.Context) { c.Set(middleware.CtxJobSeeker, js) }, h.UploadResume)
	return r
}

func resumeForm(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUploadResumeRejectsNonPDFExtension(t *testing.T) {
	resumes := &stubResumeService{url: "https://storage.example/resume.pdf"}
	r := resumeUploadRig(resumes)

	body, ctype := resumeForm(t, "resume.docx", []byte("%PDF-1.4 not really"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", body)
	req.Header.Set("Content-Type", ctype)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "only .pdf is allowed") {
		t.Fatalf("body = %s", w.Body.String())
	}
	if resumes.calls != 0 {
		t.Fatal("rejected file must never reach the uploader")
	}
}

func TestUploadResumeRejectsNonPDFContent(t *testing.T) {
	resumes := &stubResumeService{url: "https://storage.example/resume.pdf"}
	r := resumeUploadRig(resumes)

	// .pdf name, plain-text bytes
	body, ctype := resumeForm(t, "resume.pdf", []byte("just some plain text"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", body)
	req.Header.Set("Content-Type", ctype)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "invalid content type") {
		t.Fatalf("body = %s", w.Body.String())
	}
	if resumes.calls != 0 {
		t.Fatal("rejected file must never reach the uploader")
	}
}

func TestUploadResumeMissingField(t *testing.T) {
	resumes := &stubResumeService{}
	r := resumeUploadRig(resumes)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if resumes.calls != 0 {
		t.Fatal("uploader must not be called without a file")
	}
}

func TestUploadResumeAcceptsPDF(t *testing.T) {
	resumes := &stubResumeService{url: "https://storage.example/resume.pdf"}
	r := resumeUploadRig(resumes)

	body, ctype := resumeForm(t, "resume.pdf", []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", body)
	req.Header.Set("Content-Type", ctype)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if resumes.calls != 1 {
		t.Fatalf("uploader calls = %d, want 1", resumes.calls)
	}
	if !strings.Contains(w.Body.String(), resumes.url) {
		t.Fatalf("stored url missing from response: %s", w.Body.String())
	}
}
