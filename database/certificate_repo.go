package database

import (
	"errors"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/models"
	"gorm.io/gorm"
)

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

// FindAllOrdered returns every certificate in display order, falling back to
// date DESC when the sort_order column is missing.
func (r *CertificateRepo) FindAllOrdered() ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := r.db.Order("sort_order ASC, date DESC").Find(&certificates).Error
	if errs.IsUndefinedColumn(err) {
		certificates = nil
		err = r.db.Order("date DESC").Find(&certificates).Error
	}
	if errs.IsUndefinedTable(err) {
		return []models.Certificate{}, nil
	}
	return certificates, err
}

// FindByID returns a certificate by its ID, or nil when no row matches.
func (r *CertificateRepo) FindByID(id string) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.db.First(&certificate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

// Add inserts a new certificate into the database
func (r *CertificateRepo) Add(certificate *models.Certificate) error {
	return r.db.Create(certificate).Error
}

// Update replaces an existing certificate row
func (r *CertificateRepo) Update(certificate *models.Certificate) error {
	return r.db.Save(certificate).Error
}

// Delete removes a certificate from the database by id
func (r *CertificateRepo) Delete(id string) error {
	return r.db.Delete(&models.Certificate{}, "id = ?", id).Error
}

// MinSortOrder returns the smallest sort_order currently stored, or 0 for an
// empty (or pre-migration) collection.
func (r *CertificateRepo) MinSortOrder() (int, error) {
	var min *int
	err := r.db.Model(&models.Certificate{}).Select("MIN(sort_order)").Scan(&min).Error
	if errs.IsUndefinedColumn(err) || errs.IsUndefinedTable(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if min == nil {
		return 0, nil
	}
	return *min, nil
}

// OrderedRefs returns the id/sort_order projection in display order.
func (r *CertificateRepo) OrderedRefs() ([]models.OrderedRef, error) {
	var refs []models.OrderedRef
	err := r.db.Model(&models.Certificate{}).
		Select("id, sort_order").
		Order("sort_order ASC, date DESC").
		Scan(&refs).Error
	return orderedRefsResult(refs, err)
}

// UpdateSortOrder writes a single row's sort_order.
func (r *CertificateRepo) UpdateSortOrder(id string, sortOrder int) error {
	res := r.db.Model(&models.Certificate{}).Where("id = ?", id).Update("sort_order", sortOrder)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFoundError("certificate not found")
	}
	return nil
}

// RenumberAll persists a full set of sort_order assignments in one transaction.
func (r *CertificateRepo) RenumberAll(refs []models.OrderedRef) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, ref := range refs {
			if err := tx.Model(&models.Certificate{}).Where("id = ?", ref.ID).Update("sort_order", ref.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
