package database

import (
	"errors"
	"time"

	"github.com/subarudev0/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminAuthRepo struct {
	db *gorm.DB
}

func NewAdminAuthRepo(db *gorm.DB) *AdminAuthRepo {
	return &AdminAuthRepo{db}
}

// Find returns the single admin credential row, or nil when none was seeded.
func (r *AdminAuthRepo) Find() (*models.AdminAuth, error) {
	var auth models.AdminAuth
	err := r.db.First(&auth, "id = ?", models.AdminAuthID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// SetHash inserts or replaces the stored password hash.
func (r *AdminAuthRepo) SetHash(passwordHash string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
	}).Create(&models.AdminAuth{
		ID:           models.AdminAuthID,
		PasswordHash: passwordHash,
		UpdatedAt:    time.Now().UTC(),
	}).Error
}

// SeedHash stores the hash only when no credential row exists yet, so a
// rotated password is never clobbered by a redeploy.
func (r *AdminAuthRepo) SeedHash(passwordHash string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&models.AdminAuth{
		ID:           models.AdminAuthID,
		PasswordHash: passwordHash,
		UpdatedAt:    time.Now().UTC(),
	}).Error
}
