// Command seedadmin creates the admin account or resets its password.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"news-cms/config"
	"news-cms/models"
	"news-cms/repositories"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	config.InitLogger(cfg.App.Environment)

	if *username == "" || *password == "" {
		log.Fatal().Msg("username and password are required")
	}

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := seedAdmin(ctx, repositories.NewAdminRepository(db), *username, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}
	if created {
		log.Info().Str("username", *username).Msg("Admin created")
		return
	}
	log.Info().Str("username", *username).Msg("Admin password reset")
}

// seedAdmin returns true when a new admin row was inserted.
func seedAdmin(ctx context.Context, repo repositories.AdminRepository, username, password string) (bool, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	existing, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return false, repo.UpdatePassword(ctx, existing.ID, string(hashed))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	return true, repo.Create(ctx, &models.Admin{Username: username, Password: string(hashed)})
}
