package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hiredeck/hiredeck/internal/auth"
	"github.com/hiredeck/hiredeck/internal/models"
	"github.com/hiredeck/hiredeck/internal/services"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type stubEmployerService struct {
	employer *models.Employer
}

func (s *stubEmployerService) GetByID(_ context.Context, id string) (*models.Employer, error) {
	if s.employer != nil && s.employer.ID.Hex() == id {
		return s.employer, nil
	}
	return nil, utils.E(utils.CodeInvalidArgument, "stub", "Invalid Token!", nil)
}

func (s *stubEmployerService) Signup(context.Context, services.SignupEmployerInput) (*models.Employer, error) {
	return nil, nil
}
func (s *stubEmployerService) Login(context.Context, string, string) (string, error) {
	return "", nil
}
func (s *stubEmployerService) UpdateDetails(context.Context, string, services.UpdateEmployerInput) (*models.Employer, error) {
	return nil, nil
}
func (s *stubEmployerService) UpdatePassword(context.Context, string, string) error { return nil }
func (s *stubEmployerService) Delete(context.Context, string) error                 { return nil }

func employerAuthRig(svc services.EmployerService, tokens *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", EmployerAuth(tokens, svc), func(c *gin.Context) {
		v, _ := c.Get(CtxEmployer)
		e := v.(*models.Employer)
		c.JSON(http.StatusOK, gin.H{"id": e.ID.Hex()})
	})
	return r
}

func TestEmployerAuthMissingCookie(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	r := employerAuthRig(&stubEmployerService{}, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Token expired!!") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestEmployerAuthBadToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	r := employerAuthRig(&stubEmployerService{}, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: EmployerCookie, Value: "garbage"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Authentication failed!") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestEmployerAuthExpiredToken(t *testing.T) {
	expired := auth.NewTokenIssuer("secret", -time.Hour)
	verify := auth.NewTokenIssuer("secret", time.Hour)
	r := employerAuthRig(&stubEmployerService{}, verify)

	tok, err := expired.Issue(primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: EmployerCookie, Value: tok})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Authentication failed!") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestEmployerAuthUnresolvableAccount(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	r := employerAuthRig(&stubEmployerService{}, tokens)

	tok, err := tokens.Issue(primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: EmployerCookie, Value: tok})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid Token!") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestEmployerAuthSuccess(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	e := &models.Employer{ID: primitive.NewObjectID(), Name: "Acme", Email: "hr@acme.example"}
	r := employerAuthRig(&stubEmployerService{employer: e}, tokens)

	tok, err := tokens.Issue(e.ID.Hex())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: EmployerCookie, Value: tok})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), e.ID.Hex()) {
		t.Fatalf("resolved account not attached: %s", w.Body.String())
	}
}
