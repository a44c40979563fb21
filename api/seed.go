package api

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/ketabio/bookserver/api/handler"
	"github.com/ketabio/bookserver/config"
	"github.com/ketabio/bookserver/ent"
)

// SeedInitialAdmin creates the first admin account when the user table is
// empty, so a fresh deployment can log in. Safe to call on every startup.
// Without INITIAL_ADMIN_PASSWORD set it logs a warning and does nothing.
func SeedInitialAdmin(ctx context.Context, db *ent.Client, cfg config.Config) {
	count, err := db.User.Query().Count(ctx)
	if err != nil {
		slog.Error("seed: counting users", "error", err)
		return
	}
	if count > 0 {
		return
	}

	if cfg.InitialAdminPassword == "" {
		slog.Warn("seed: user table is empty and INITIAL_ADMIN_PASSWORD is not set, skipping admin creation")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdminPassword), handler.BcryptCost)
	if err != nil {
		slog.Error("seed: hashing initial admin password", "error", err)
		return
	}

	_, err = db.User.Create().
		SetUsername(cfg.InitialAdminUser).
		SetDisplayName(cfg.InitialAdminUser).
		SetHashedPassword(string(hash)).
		SetIsAdmin(true).
		Save(ctx)
	if err != nil {
		slog.Error("seed: creating initial admin user", "error", err)
		return
	}

	slog.Info("seed: created initial admin user", "username", cfg.InitialAdminUser)
}
