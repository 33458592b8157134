package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hiredeck/hiredeck/internal/api/middleware"
	"github.com/hiredeck/hiredeck/internal/models"
	"github.com/hiredeck/hiredeck/internal/utils"
)

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, utils.Envelope{
		Status:  status,
		Data:    data,
		Message: message,
	})
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	msg := "Internal Server Error!"
	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Code != utils.CodeInternal && ae.Message != "" {
		msg = ae.Message
	}

	c.JSON(status, utils.ErrorEnvelope{
		Status:  status,
		Message: msg,
	})
}

func currentEmployer(c *gin.Context) (*models.Employer, bool) {
	if v, ok := c.Get(middleware.CtxEmployer); ok {
		if e, ok := v.(*models.Employer); ok && e != nil {
			return e, true
		}
	}
	return nil, false
}

func currentJobSeeker(c *gin.Context) (*models.JobSeeker, bool) {
	if v, ok := c.Get(middleware.CtxJobSeeker); ok {
		if js, ok := v.(*models.JobSeeker); ok && js != nil {
			return js, true
		}
	}
	return nil, false
}
