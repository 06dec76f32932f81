package main

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/faraday-ai/faraday/internal/config"
)

// ensureAdmin seeds the admin account from ADMIN_USER/ADMIN_PASS_HASH so a
// fresh deployment is reachable before any roster is loaded. No-op when the
// hash is unset or the user already exists.
func ensureAdmin(ctx context.Context, db *sql.DB, cfg config.Config) error {
	if cfg.AdminPassHash == "" {
		return nil
	}
	var exist int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE username=$1`, cfg.AdminUser).Scan(&exist)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role, created_at) VALUES ($1,$2,$3,'admin',$4)`,
		cfg.AdminUser, cfg.AdminUser, cfg.AdminPassHash, time.Now().Unix())
	return err
}
