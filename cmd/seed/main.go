package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"shopdash/internal/database"
	"shopdash/internal/domain"
	"shopdash/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "shopdash.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM shops")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	shops := repository.NewShopRepository(db)
	categories := repository.NewCategoryRepository(db)

	log.Println("Creating users...")

	super := &domain.User{
		Email:        "super@shopdash.dev",
		PasswordHash: mustHash("super123"),
		Name:         "Super Admin",
		Role:         domain.RoleSuperAdmin,
	}
	mustCreate(users.Create(ctx, super))

	admin := &domain.User{
		Email:        "admin@shopdash.dev",
		PasswordHash: mustHash("admin123"),
		Name:         "Demo Shop Admin",
		Role:         domain.RoleShopAdmin,
	}
	mustCreate(users.Create(ctx, admin))

	customer := &domain.User{
		Email:        "customer@shopdash.dev",
		PasswordHash: mustHash("customer123"),
		Name:         "Demo Customer",
		Role:         domain.RoleCustomer,
	}
	mustCreate(users.Create(ctx, customer))

	log.Println("Creating demo shop and category...")
	shop := &domain.Shop{Name: "Demo Shop", OwnerID: admin.ID}
	mustCreate(shops.Create(ctx, shop))

	category := &domain.Category{Name: "General", ShopID: shop.ID, CreatedBy: admin.ID}
	mustCreate(categories.Create(ctx, category))

	assigned := domain.ShopID(shop.ID)
	worker := &domain.User{
		Email:        "worker@shopdash.dev",
		PasswordHash: mustHash("worker123"),
		Name:         "Demo Worker",
		Role:         domain.RoleWorker,
		AssignedShop: &assigned,
	}
	mustCreate(users.Create(ctx, worker))

	log.Println("Seed complete.")
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(hash)
}

func mustCreate(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
