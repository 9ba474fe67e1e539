package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/config"
	"github.com/fieldstock/inventory-backend/internal/database"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <email> <name> <password>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s admin@example.gov \"Site Admin\" mypassword\n", os.Args[0])
		os.Exit(1)
	}

	email := os.Args[1]
	name := os.Args[2]
	password := os.Args[3]

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating hash: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	database, err := database.New(&cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	ctx := context.Background()
	user, err := database.Queries().CreateUser(ctx, db.CreateUserParams{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Active:       true,
		IsSuperuser:  true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Superuser created successfully: %s (%s)\n", user.Email, user.ID)
}
