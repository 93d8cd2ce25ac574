package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tiergate/internal/adapter/repo"
	"tiergate/internal/domain"
	"tiergate/internal/infra"
)

func main() {
	var (
		idFlag      string
		emailFlag   string
		premiumFlag bool
	)

	flag.StringVar(&idFlag, "id", "", "user ID to update (UUID)")
	flag.StringVar(&emailFlag, "email", "", "user email to update")
	flag.BoolVar(&premiumFlag, "premium", true, "premium entitlement to assign (use -premium=false to revoke)")
	flag.Parse()

	userID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(emailFlag)
	if userID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "usertier").Logger()
	premiumRepo := repo.NewPremiumStatusRepo(infra.NewSQLRunner(pool, logger))

	lookupCtx, cancelLookup := context.WithTimeout(context.Background(), 5*time.Second)
	var user *repo.UserRecord
	if userID != "" {
		user, err = premiumRepo.GetByID(lookupCtx, userID)
	} else {
		user, err = premiumRepo.GetByEmail(lookupCtx, email)
	}
	cancelLookup()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			exitWithError(errors.New("user not found"))
		}
		exitWithError(fmt.Errorf("failed to load user: %w", err))
	}

	updateCtx, cancelUpdate := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelUpdate()
	updated, err := premiumRepo.SetPremium(updateCtx, user.ID, premiumFlag)
	if err != nil {
		exitWithError(fmt.Errorf("failed to update premium status: %w", err))
	}

	info, err := domain.ResolveTier(false, &updated.ID, updated.Premium)
	if err != nil {
		exitWithError(err)
	}

	fmt.Printf("User %s (%s) premium=%v\n", updated.ID, updated.Email, updated.Premium)
	fmt.Printf("resolved tier: %s\n", info.Tier)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
