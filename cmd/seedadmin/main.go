// Copyright (c) 2026 Garagem. All rights reserved.

// Command seedadmin promotes a user to the admin role.
//
// The identity provider owns credentials, so this tool only touches the local
// role ledger: it provisions the record when missing and flips the role. Run
// it once after standing up a new dealership:
//
//	seedadmin -uid <provider-subject>
//	seedadmin -email <address>
//
// The -email form requires the user to have logged in at least once.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/pvieira/garagem/internal/auth"
	pgstore "github.com/pvieira/garagem/internal/platform/postgres"
	"github.com/pvieira/garagem/internal/platform/sec"
)

type seedConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
}

func main() {
	uid := flag.String("uid", "", "identity provider subject of the user to promote")
	email := flag.String("email", "", "email of an already provisioned user to promote")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if (*uid == "") == (*email == "") {
		fmt.Fprintln(os.Stderr, "usage: seedadmin -uid <provider-subject> | -email <address>")
		os.Exit(2)
	}

	cfg := seedConfig{}
	if err := env.Parse(&cfg); err != nil {
		fatal(log, err, "load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		fatal(log, err, "connect to postgres")
	}
	defer pool.Close()

	users := auth.NewPostgresRepository(pool)

	subject := *uid
	if subject == "" {
		subject, err = findByEmail(ctx, users, *email)
		if err != nil {
			fatal(log, err, "resolve email")
		}
	} else {
		// Provision the record so a dealership can be bootstrapped before
		// its owner's first login.
		if err := users.Create(ctx, &auth.User{ID: subject}); err != nil {
			fatal(log, err, "provision user")
		}
	}

	if err := users.UpdateRole(ctx, subject, sec.RoleAdmin); err != nil {
		fatal(log, err, "update role")
	}

	fmt.Printf("user %s is now admin\n", subject)
}

func findByEmail(ctx context.Context, users auth.Repository, email string) (string, error) {
	all, err := users.List(ctx)
	if err != nil {
		return "", err
	}

	for _, user := range all {
		if strings.EqualFold(user.Email, email) {
			return user.ID, nil
		}
	}

	return "", fmt.Errorf("no user with email %q has logged in yet", email)
}

func fatal(log *slog.Logger, err error, context string) {
	log.Error("seedadmin failure",
		slog.String("context", context),
		slog.Any("error", err),
	)
	os.Exit(1)
}
