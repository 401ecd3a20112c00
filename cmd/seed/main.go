package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"testiflow/internal/config"
	"testiflow/internal/database"
	"testiflow/internal/domain"
	"testiflow/internal/pkg/slugid"
	"testiflow/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Space{},
		&domain.Review{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM spaces")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	spaces := repository.NewSpaceRepository(db)

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := domain.User{
		Name:         "Demo Founder",
		Email:        "demo@testiflow.dev",
		PasswordHash: string(hash),
	}
	db.Create(&demo)
	log.Println("Demo user created: demo@testiflow.dev / demo1234")

	log.Println("Creating spaces...")
	names := []string{"My Cool App", "Landing Page", "My Cool App"}
	created := make([]domain.Space, 0, len(names))
	for _, name := range names {
		base := slugid.Make(name)
		s, err := slugid.Allocate(base, func(candidate string) (bool, error) {
			return spaces.SlugExists(ctx, candidate)
		})
		if err != nil {
			log.Fatal("slug allocation failed:", err)
		}

		sp := domain.Space{
			UserID:      demo.ID,
			Name:        name,
			Slug:        s,
			PublicURL:   cfg.PublicPrefix + s,
			RedirectURL: "https://example.com/thanks",
		}
		db.Create(&sp)
		created = append(created, sp)
		log.Printf("Space %q -> %s", name, sp.Slug)
	}

	log.Println("Creating reviews...")
	samples := []domain.Review{
		{SpaceID: created[0].ID, AuthorName: "Asel", AuthorEmail: "asel@mail.kz", Rating: 5, Text: "Collecting testimonials used to take us days. Now it's minutes.", Liked: true},
		{SpaceID: created[0].ID, AuthorName: "Bekzat", Rating: 4, Text: "Simple to set up, the embed widget just works."},
		{SpaceID: created[0].ID, AuthorName: "Dina", AuthorEmail: "dina@yandex.kz", Rating: 5, Text: "Our landing page conversion went up after adding the wall of love.", Liked: true},
		{SpaceID: created[1].ID, AuthorName: "Yerlan", Rating: 3, Text: "Does what it says. Would love custom themes."},
	}
	for i := range samples {
		db.Create(&samples[i])
	}

	log.Println("Seed completed!")
	log.Println("Login: demo@testiflow.dev / demo1234")
}
