// Command promote sets a user's role to admin by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/wordforge-backend/internal/adapter/postgres"
	progressrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/progress"
	quizrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/quiz"
	userrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/user"
	wordrepo "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/wordforge-backend/internal/app"
	"github.com/heartmarshall/wordforge-backend/internal/config"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
	"github.com/heartmarshall/wordforge-backend/internal/service/user"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := user.NewService(logger, userrepo.New(pool), progressrepo.New(pool), quizrepo.New(pool), wordrepo.New(pool))

	err = svc.Promote(ctx, user.PromoteInput{Email: *email})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	case err != nil:
		log.Fatalf("promote: %v", err)
	}

	fmt.Printf("User %q promoted to admin.\n", *email)
}
