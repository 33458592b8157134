package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hiredeck/hiredeck/internal/api/handlers"
)

type Deps struct {
	Employer    *handlers.EmployerHandler
	JobSeeker   *handlers.JobSeekerHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler

	EmployerAuth  gin.HandlerFunc
	JobSeekerAuth gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api/v1")

	emp := api.Group("/employer")
	emp.POST("/signup", d.Employer.Signup)
	emp.POST("/login", d.Employer.Login)
	emp.GET("/logout", d.EmployerAuth, d.Employer.Logout)
	emp.GET("/current-employee", d.EmployerAuth, d.Employer.Current)
	emp.PATCH("/update", d.EmployerAuth, d.Employer.UpdateDetails)
	emp.PATCH("/update-password", d.EmployerAuth, d.Employer.UpdatePassword)
	emp.DELETE("/delete-account", d.EmployerAuth, d.Employer.DeleteAccount)

	seeker := api.Group("/jobSeeker")
	seeker.POST("/signup", d.JobSeeker.Signup)
	seeker.POST("/login", d.JobSeeker.Login)
	seeker.GET("/logout", d.JobSeekerAuth, d.JobSeeker.Logout)
	seeker.GET("/current-seeker", d.JobSeekerAuth, d.JobSeeker.Current)
	seeker.PATCH("/update", d.JobSeekerAuth, d.JobSeeker.UpdateDetails)
	seeker.PATCH("/update-password", d.JobSeekerAuth, d.JobSeeker.UpdatePassword)
	seeker.DELETE("/delete-account", d.JobSeekerAuth, d.JobSeeker.DeleteAccount)
	seeker.POST("/upload-resume", d.JobSeekerAuth, d.JobSeeker.UploadResume)

	jobs := api.Group("/jobs")
	jobs.GET("", d.Job.List)
	jobs.GET("/:id", d.Job.Get)
	jobs.POST("", d.EmployerAuth, d.Job.Create)
	jobs.PATCH("/:id", d.EmployerAuth, d.Job.Update)
	jobs.DELETE("/:id", d.EmployerAuth, d.Job.Delete)

	applicants := api.Group("/applicants")
	applicants.Use(d.JobSeekerAuth)
	applicants.POST("/apply", d.Application.Apply)
	applicants.GET("", d.Application.List)
	applicants.GET("/:id", d.Application.Get)
	applicants.DELETE("/:id", d.Application.Delete)
}
