package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiredeck/hiredeck/internal/auth"
	"github.com/hiredeck/hiredeck/internal/services"
	"github.com/hiredeck/hiredeck/internal/utils"
)

// Context keys for the resolved actor documents.
const (
	CtxEmployer  = "employer"
	CtxJobSeeker = "jobSeeker"
)

// Cookie names; each actor type carries an independent token.
const (
	EmployerCookie  = "accessToken"
	JobSeekerCookie = "seekerAccessToken"
)

// Every auth failure is surfaced as 400, matching the historical wire
// behavior, with three distinct messages for the three failure modes.
func abortAuth(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, utils.ErrorEnvelope{
		Status:  http.StatusBadRequest,
		Message: msg,
	})
}

// EmployerAuth reads the employer cookie, verifies the token, resolves the
// account (password projected out) and attaches it to the request context.
func EmployerAuth(tokens *auth.TokenIssuer, svc services.EmployerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(EmployerCookie)
		if err != nil || raw == "" {
			abortAuth(c, "Token expired!!")
			return
		}

		id, err := tokens.Parse(raw)
		if err != nil {
			abortAuth(c, "Authentication failed!")
			return
		}

		e, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if utils.IsCode(err, utils.CodeInternal) {
				abortAuth(c, "Authentication failed!")
			} else {
				abortAuth(c, "Invalid Token!")
			}
			return
		}

		c.Set(CtxEmployer, e)
		c.Next()
	}
}

// JobSeekerAuth is the job-seeker counterpart of EmployerAuth.
func JobSeekerAuth(tokens *auth.TokenIssuer, svc services.JobSeekerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(JobSeekerCookie)
		if err != nil || raw == "" {
			abortAuth(c, "Token expired!!")
			return
		}

		id, err := tokens.Parse(raw)
		if err != nil {
			abortAuth(c, "Authentication failed!")
			return
		}

		js, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if utils.IsCode(err, utils.CodeInternal) {
				abortAuth(c, "Authentication failed!")
			} else {
				abortAuth(c, "Invalid Token!")
			}
			return
		}

		c.Set(CtxJobSeeker, js)
		c.Next()
	}
}
