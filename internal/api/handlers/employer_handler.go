package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hiredeck/hiredeck/internal/api/middleware"
	"github.com/hiredeck/hiredeck/internal/services"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type EmployerHandler struct {
	svc       services.EmployerService
	cookieTTL time.Duration
}

func NewEmployerHandler(svc services.EmployerService, cookieTTL time.Duration) *EmployerHandler {
	return &EmployerHandler{svc: svc, cookieTTL: cookieTTL}
}

type SignupEmployerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phone_no"`
	Address  string `json:"address"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

func (h *EmployerHandler) Signup(c *gin.Context) {
	var req SignupEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Signup", "Invalid request body!", err))
		return
	}

	e, err := h.svc.Signup(c.Request.Context(), services.SignupEmployerInput{
		Name:     req.Name,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Address:  req.Address,
		Status:   req.Status,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusCreated, e, "Account created successfully!")
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *EmployerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Login", "Invalid request body!", err))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	// The token travels as an http-only secure cookie, never in the body.
	c.SetCookie(middleware.EmployerCookie, token, int(h.cookieTTL.Seconds()), "/", "", true, true)
	respond(c, http.StatusOK, gin.H{}, "Login Successfully!")
}

func (h *EmployerHandler) Logout(c *gin.Context) {
	if _, ok := currentEmployer(c); !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Logout", "You haven't logged in yet!", nil))
		return
	}

	c.SetCookie(middleware.EmployerCookie, "", -1, "/", "", true, true)
	respond(c, http.StatusOK, gin.H{}, "Logged Out successfully")
}

func (h *EmployerHandler) Current(c *gin.Context) {
	e, ok := currentEmployer(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.Current", "Invalid Token!", nil))
		return
	}
	respond(c, http.StatusOK, e, "Current employer fetched successfully!")
}

type UpdateEmployerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhoneNo  string `json:"phone_no"`
	Website  string `json:"website"`
	Password string `json:"password"`
}

func (h *EmployerHandler) UpdateDetails(c *gin.Context) {
	e, ok := currentEmployer(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.UpdateDetails", "Invalid Token!", nil))
		return
	}

	var req UpdateEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.UpdateDetails", "Invalid request body!", err))
		return
	}

	updated, err := h.svc.UpdateDetails(c.Request.Context(), e.ID.Hex(), services.UpdateEmployerInput{
		Name:     req.Name,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Website:  req.Website,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusOK, updated, "Details updated successfully!")
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

func (h *EmployerHandler) UpdatePassword(c *gin.Context) {
	e, ok := currentEmployer(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.UpdatePassword", "Invalid Token!", nil))
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.UpdatePassword", "Invalid request body!", err))
		return
	}

	if err := h.svc.UpdatePassword(c.Request.Context(), e.ID.Hex(), req.Password); err != nil {
		writeError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Password updated successfully!")
}

func (h *EmployerHandler) DeleteAccount(c *gin.Context) {
	e, ok := currentEmployer(c)
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployerHandler.DeleteAccount", "You have not logged in!!", nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), e.ID.Hex()); err != nil {
		writeError(c, err)
		return
	}

	c.SetCookie(middleware.EmployerCookie, "", -1, "/", "", true, true)
	respond(c, http.StatusOK, nil, "Account deleted successfully!!")
}
