package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"testiflow/internal/config"
	"testiflow/internal/database"
	"testiflow/internal/domain"
	"testiflow/internal/middleware"
	"testiflow/internal/modules/auth"
	"testiflow/internal/modules/review"
	"testiflow/internal/modules/space"
	jwtsvc "testiflow/internal/pkg/jwt"
	"testiflow/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Space{},
		&domain.Review{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	spaceService := space.NewService(spaceRepo, userRepo, reviewRepo, cfg.PublicPrefix)
	spaceHandler := space.NewHandler(spaceService)

	reviewService := review.NewService(reviewRepo, spaceRepo, spaceService)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			spaceHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
