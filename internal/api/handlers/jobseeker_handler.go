package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/api/middleware"
	"github.com/hiredeck/hiredeck/internal/services"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type JobSeekerHandler struct {
	svc       services.JobSeekerService
	resumes   services.ResumeService
	cookieTTL time.Duration
}

func NewJobSeekerHandler(svc services.JobSeekerService, resumes services.ResumeService, cookieTTL time.Duration) *JobSeekerHandler {
	return &JobSeekerHandler{svc: svc, resumes: resumes, cookieTTL: cookieTTL}
}

type SignupJobSeekerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phone_no"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

func (h *JobSeekerHandler) Signup(c *gin.Context) {
	var req SignupJobSeekerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.Signup", "Invalid request body!", err))
		return
	}

	js, err := h.svc.Signup(c.Request.Context(), services.SignupJobSeekerInput{
		Name:     req.Name,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusCreated, js, "Account created successfully!")
}

func (h *JobSeekerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.Login", "Invalid request body!", err))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetCookie(middleware.JobSeekerCookie, token, int(h.cookieTTL.Seconds()), "/", "", true, true)
	respond(c, http.StatusOK, gin.H{}, "Login Successfully!")
}

func (h *JobSeekerHandler) Logout(c *gin.Context) {
	if _, ok := currentJobSeeker(c); !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.Logout", "You haven't logged in yet!", nil))
		return
	}

	c.SetCookie(middleware.JobSeekerCookie, "", -1, "/", "", true, true)
	respond(c, http.StatusOK, gin.H{}, "Logged Out successfully")
}

func (h *JobSeekerHandler) Current(c *gin.Context) {
	js, ok := currentJobSeeker(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.Current", "Invalid Token!", nil))
		return
	}
	respond(c, http.StatusOK, js, "Current job seeker fetched successfully!")
}

type UpdateJobSeekerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phone_no"`
	Password string `json:"password"`
}

func (h *JobSeekerHandler) UpdateDetails(c *gin.Context) {
	js, ok := currentJobSeeker(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.UpdateDetails", "Invalid Token!", nil))
		return
	}

	var req UpdateJobSeekerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.UpdateDetails", "Invalid request body!", err))
		return
	}

	updated, err := h.svc.UpdateDetails(c.Request.Context(), js.ID.Hex(), services.UpdateJobSeekerInput{
		Name:     req.Name,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusOK, updated, "Details updated successfully!")
}

func (h *JobSeekerHandler) UpdatePassword(c *gin.Context) {
	js, ok := currentJobSeeker(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.UpdatePassword", "Invalid Token!", nil))
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.UpdatePassword", "Invalid request body!", err))
		return
	}

	if err := h.svc.UpdatePassword(c.Request.Context(), js.ID.Hex(), req.Password); err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Password updated successfully!")
}

func (h *JobSeekerHandler) DeleteAccount(c *gin.Context) {
	js, ok := currentJobSeeker(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobSeekerHandler.DeleteAccount", "You have not logged in!!", nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), js.ID.Hex()); err != nil {
		writeError(c, err)
		return
	}

	c.SetCookie(middleware.JobSeekerCookie, "", -1, "/", "", true, true)
	respond(c, http.StatusOK, nil, "Account deleted successfully!!")
}

func (h *JobSeekerHandler) UploadResume(c *gin.Context) {
	const op = "JobSeekerHandler.UploadResume"

	js, ok := currentJobSeeker(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Invalid Token!", nil))
		return
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'resume'", err))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "only .pdf is allowed", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > 10<<20 {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file too large (max 10MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	// sniff content type (read 512 bytes)
	head := make([]byte, 512)
	n, _ := file.Read(head)
	head = head[:n]
	if http.DetectContentType(head) != "application/pdf" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid content type (must be pdf)", nil))
		return
	}

	r := io.MultiReader(bytes.NewReader(head), file)
	objectName := "resumes/" + js.ID.Hex() + "/" + uuid.NewString() + ".pdf"

	url, err := h.resumes.Upload(c.Request.Context(), js.ID.Hex(), objectName, "application/pdf", r)
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"resume": url}, "Resume uploaded successfully!")
}
