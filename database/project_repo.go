package database

import (
	"errors"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAllOrdered returns every project in display order. A database that has
// not run the sort_order migration yet degrades to created_at DESC, and a
// table that was never created reads as an empty collection.
func (r *ProjectRepo) FindAllOrdered() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("sort_order ASC, created_at DESC").Find(&projects).Error
	if errs.IsUndefinedColumn(err) {
		projects = nil
		err = r.db.Order("created_at DESC").Find(&projects).Error
	}
	if errs.IsUndefinedTable(err) {
		return []models.Project{}, nil
	}
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row matches.
func (r *ProjectRepo) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update replaces an existing project row
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id string) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// MinSortOrder returns the smallest sort_order currently stored, or 0 for an
// empty (or pre-migration) collection. New rows prepend with MinSortOrder-1.
func (r *ProjectRepo) MinSortOrder() (int, error) {
	var min *int
	err := r.db.Model(&models.Project{}).Select("MIN(sort_order)").Scan(&min).Error
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
func (r *ProjectRepo) OrderedRefs() ([]models.OrderedRef, error) {
	var refs []models.OrderedRef
	err := r.db.Model(&models.Project{}).
		Select("id, sort_order").
		Order("sort_order ASC, created_at DESC").
		Scan(&refs).Error
	return orderedRefsResult(refs, err)
}

// UpdateSortOrder writes a single row's sort_order.
func (r *ProjectRepo) UpdateSortOrder(id string, sortOrder int) error {
	res := r.db.Model(&models.Project{}).Where("id = ?", id).Update("sort_order", sortOrder)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFoundError("project not found")
	}
	return nil
}

// RenumberAll persists a full set of sort_order assignments in one transaction.
func (r *ProjectRepo) RenumberAll(refs []models.OrderedRef) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, ref := range refs {
			if err := tx.Model(&models.Project{}).Where("id = ?", ref.ID).Update("sort_order", ref.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
