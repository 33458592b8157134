package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiredeck/hiredeck/internal/services"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type ApplyRequest struct {
	JobID string `json:"job_id"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	// A bodiless request is an empty payload; the service reports the
	// missing job id.
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Apply", "Invalid request body!", err))
		return
	}

	js, _ := currentJobSeeker(c)

	app, err := h.svc.Apply(c.Request.Context(), js, req.JobID)
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusCreated, app, "Application submitted successfully!")
}

func (h *ApplicationHandler) List(c *gin.Context) {
	js, ok := currentJobSeeker(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.List", "Invalid Token!", nil))
		return
	}

	apps, err := h.svc.List(c.Request.Context(), js.ID.Hex())
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusOK, apps, "Applications fetched successfully!")
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond(c, http.StatusOK, app, "Application fetched successfully!")
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Application deleted successfully!")
}
