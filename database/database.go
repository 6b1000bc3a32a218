package database

import (
	"gorm.io/gorm"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/models"
)

type Database struct {
	db              *gorm.DB
	projectRepo     *ProjectRepo
	certificateRepo *CertificateRepo
	settingRepo     *SettingRepo
	adminAuthRepo   *AdminAuthRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:              db,
		projectRepo:     NewProjectRepo(db),
		certificateRepo: NewCertificateRepo(db),
		settingRepo:     NewSettingRepo(db),
		adminAuthRepo:   NewAdminAuthRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) SettingRepo() *SettingRepo {
	return d.settingRepo
}

func (d Database) AdminAuthRepo() *AdminAuthRepo {
	return d.adminAuthRepo
}

// orderedRefsResult normalizes the schema-dependent failures of the ordering
// projection. A table that was never created reads as an empty collection, but
// a missing sort_order column is reported as a descriptive error rather than
// degrading like the listing reads do: reordering cannot work at all until the
// migration has added the column.
func orderedRefsResult(refs []models.OrderedRef, err error) ([]models.OrderedRef, error) {
	if errs.IsUndefinedColumn(err) {
		return nil, errs.NewInternalErrorWithCause("sort_order column missing, run the schema migration", err)
	}
	if errs.IsUndefinedTable(err) {
		return []models.OrderedRef{}, nil
	}
	return refs, err
}
