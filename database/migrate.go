package database

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/subarudev0/portfolio-backend/models"
)

// additive migrations applied on every startup; each statement is idempotent
// so re-running against an already-migrated schema is a no-op.
var additiveMigrations = []string{
	`ALTER TABLE projects ADD COLUMN IF NOT EXISTS sort_order INTEGER DEFAULT 0`,
	`ALTER TABLE projects ADD COLUMN IF NOT EXISTS secondary_category TEXT`,
	`ALTER TABLE certificates ADD COLUMN IF NOT EXISTS sort_order INTEGER DEFAULT 0`,
}

// Migrate brings the schema up to date and seeds the admin credential when
// the table is empty. adminPassword may be empty, in which case seeding is
// skipped and /admin/login rejects everything until a hash is stored.
func (d Database) Migrate(adminPassword string) error {
	err := d.db.AutoMigrate(
		&models.Project{},
		&models.Certificate{},
		&models.Setting{},
		&models.AdminAuth{},
	)
	if err != nil {
		return err
	}

	for _, stmt := range additiveMigrations {
		if err := d.db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	if adminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping admin credential seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := d.adminAuthRepo.SeedHash(string(hash)); err != nil {
		return err
	}

	log.Info().Msg("Database schema verified")
	return nil
}
