package app

import (
	"context"

	"rentora/config"
	"rentora/db"
	"rentora/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapFirstAdmin seeds a superadmin account on an empty install so the
// admin-only routes are reachable. No-op unless BOOTSTRAP_ADMIN_EMAIL and
// BOOTSTRAP_ADMIN_PASSWORD are both set and no superadmin exists yet.
func BootstrapFirstAdmin(ctx context.Context, cfg config.Config, repo *db.Repo, log zerolog.Logger) {
	if cfg.BootstrapEmail == "" || cfg.BootstrapPwd == "" {
		return
	}
	n, err := repo.CountUsersByRole(ctx, models.RoleSuperadmin)
	if err != nil {
		log.Warn().Err(err).Msg("bootstrap admin check failed")
		return
	}
	if n > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapPwd), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("bootstrap admin hash failed")
		return
	}
	admin := &models.User{
		ID:       uuid.NewString(),
		Name:     "Administrator",
		Email:    cfg.BootstrapEmail,
		Password: string(hashed),
		Role:     models.RoleSuperadmin,
	}
	if err := repo.CreateUser(ctx, admin); err != nil {
		log.Warn().Err(err).Msg("bootstrap admin create failed")
		return
	}
	log.Info().Str("email", cfg.BootstrapEmail).Msg("created first superadmin")
}
