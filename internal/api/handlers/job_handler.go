package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hiredeck/hiredeck/internal/services"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *JobHandler) Create(c *gin.Context) {
	e, ok := currentEmployer(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "Invalid Token!", nil))
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "Invalid request body!", err))
		return
	}

	j, err := h.svc.Create(c.Request.Context(), e.ID.Hex(), services.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusCreated, j, "Job created successfully!")
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	respond(c, http.StatusOK, jobs, "Jobs fetched successfully!")
}

func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	respond(c, http.StatusOK, j, "Job fetched successfully!")
}

type UpdateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (h *JobHandler) Update(c *gin.Context) {
	e, ok := currentEmployer(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Update", "Invalid Token!", nil))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Update", "Invalid request body!", err))
		return
	}

	j, err := h.svc.Update(c.Request.Context(), e.ID.Hex(), c.Param("id"), services.UpdateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusOK, j, "Job updated successfully!")
}

func (h *JobHandler) Delete(c *gin.Context) {
	e, ok := currentEmployer(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Delete", "Invalid Token!", nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), e.ID.Hex(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Job deleted successfully!")
}
