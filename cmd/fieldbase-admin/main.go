// Command fieldbase-admin seeds the first administrator account so the API
// can be logged into on a fresh database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/sue-zadeh/fieldbase/internal/config"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/monitoring"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
)

func main() {
	firstName := flag.String("first-name", "Admin", "administrator first name")
	lastName := flag.String("last-name", "User", "administrator last name")
	email := flag.String("email", "", "administrator email (required)")
	password := flag.String("password", "", "administrator password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*firstName, *lastName, *email, *password); err != nil {
		fmt.Fprintln(os.Stderr, "fieldbase-admin:", err)
		os.Exit(1)
	}
}

func run(firstName, lastName, email, password string) error {
	log, err := monitoring.NewZapLogger(config.LogConfig{Level: "warn"})
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(log)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.NewDBConnection(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ctx := context.Background()
	users := postgres.NewUserRepository(db, log)

	if _, err := users.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("a user with email %s already exists", email)
	} else if !errors.IsNotFound(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}

	fmt.Printf("created admin user %d (%s)\n", user.ID, email)
	return nil
}
