package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hiredeck/hiredeck/config"
	"github.com/hiredeck/hiredeck/internal/api/handlers"
	"github.com/hiredeck/hiredeck/internal/api/middleware"
	"github.com/hiredeck/hiredeck/internal/api/routes"
	"github.com/hiredeck/hiredeck/internal/auth"
	"github.com/hiredeck/hiredeck/internal/cache"
	"github.com/hiredeck/hiredeck/internal/logger"
	mongorepo "github.com/hiredeck/hiredeck/internal/repositories/mongo"
	"github.com/hiredeck/hiredeck/internal/services"
	"github.com/hiredeck/hiredeck/internal/storage"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	l.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	db := config.Database()

	employerRepo := mongorepo.NewEmployerRepo(db)
	seekerRepo := mongorepo.NewJobSeekerRepo(db)
	jobRepo := mongorepo.NewJobRepo(db)
	applicationRepo := mongorepo.NewApplicationRepo(db)

	tokenTTL := 24 * time.Hour
	if h, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_HOURS")); err == nil && h > 0 {
		tokenTTL = time.Duration(h) * time.Hour
	}
	employerTokens := auth.NewTokenIssuer(os.Getenv("ACCESS_TOKEN_SECRET"), tokenTTL)
	seekerTokens := auth.NewTokenIssuer(os.Getenv("SEEKER_TOKEN_SECRET"), tokenTTL)

	var uploader storage.Uploader
	if bucket := os.Getenv("RESUME_BUCKET"); bucket != "" {
		up, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer up.Close()
		uploader = up
	} else {
		l.Warn("RESUME_BUCKET not set; resume uploads disabled")
	}

	scopeApplications := os.Getenv("APPLICATIONS_SCOPE_TO_APPLICANT") == "true"

	jobCache := cache.NewRedisCache(config.RedisClient)

	employerSvc := services.NewEmployerService(employerRepo, employerTokens)
	seekerSvc := services.NewJobSeekerService(seekerRepo, seekerTokens)
	jobSvc := services.NewJobService(jobRepo, jobCache)
	applicationSvc := services.NewApplicationService(applicationRepo, jobRepo, scopeApplications)
	resumeSvc := services.NewResumeService(seekerRepo, uploader)

	r := gin.New()
	r.Use(middleware.RequestLogger(l), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		corsCfg.AllowOrigins = []string{origin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Employer:      handlers.NewEmployerHandler(employerSvc, tokenTTL),
		JobSeeker:     handlers.NewJobSeekerHandler(seekerSvc, resumeSvc, tokenTTL),
		Job:           handlers.NewJobHandler(jobSvc),
		Application:   handlers.NewApplicationHandler(applicationSvc),
		EmployerAuth:  middleware.EmployerAuth(employerTokens, employerSvc),
		JobSeekerAuth: middleware.JobSeekerAuth(seekerTokens, seekerSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
