package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"shopdash/internal/database"
	"shopdash/internal/middleware"
	"shopdash/internal/modules/auth"
	"shopdash/internal/modules/catalog"
	jwtsvc "shopdash/internal/pkg/jwt"
	"shopdash/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, shopRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(shopRepo, categoryRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.SuperAdminOnly())
			catalogHandler.RegisterAdminRoutes(admin)
		}
	}

	addr := ":" + envOr("PORT", "8080")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
