package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/models"
)

// ProjectStore is the repository surface the action layer mutates through.
type ProjectStore interface {
	FindByID(id string) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id string) error
	MinSortOrder() (int, error)
}

type CertificateStore interface {
	FindByID(id string) (*models.Certificate, error)
	Add(certificate *models.Certificate) error
	Update(certificate *models.Certificate) error
	Delete(id string) error
	MinSortOrder() (int, error)
}

type SettingStore interface {
	UpsertAll(settings map[string]string) error
}

// Portfolio is the validated mutation layer over projects, certificates and
// settings. Every mutation validates before the first write, and replaced or
// orphaned image references are cleaned out of the blob store best-effort
// after the primary write lands.
type Portfolio struct {
	projects     ProjectStore
	certificates CertificateStore
	settings     SettingStore
	uploader     Uploader
}

func NewPortfolio(projects ProjectStore, certificates CertificateStore, settings SettingStore, uploader Uploader) Portfolio {
	return Portfolio{
		projects:     projects,
		certificates: certificates,
		settings:     settings,
		uploader:     uploader,
	}
}

// AddProject validates and inserts a new project. New rows prepend: they get
// min(sort_order)-1 so the latest addition surfaces first.
func (s Portfolio) AddProject(ctx context.Context, project *models.Project) error {
	if err := validateProject(project); err != nil {
		return err
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	min, err := s.projects.MinSortOrder()
	if err != nil {
		return errs.NewDatabaseError("read sort order of", "projects", err)
	}
	project.SortOrder = min - 1

	if err := s.projects.Add(project); err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// UpdateProject validates and replaces an existing project, then cleans up
// any blob the update orphaned (replaced cover image, removed gallery items).
func (s Portfolio) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := validateProject(project); err != nil {
		return err
	}

	existing, err := s.projects.FindByID(project.ID)
	if err != nil {
		return errs.NewDatabaseError("find", "project", err)
	}
	if existing == nil {
		return errs.NewNotFoundError("project not found")
	}

	// replace-style update; untouched fields come in with their full values
	project.CreatedAt = existing.CreatedAt
	project.SortOrder = existing.SortOrder
	if err := s.projects.Update(project); err != nil {
		return errs.NewDatabaseError("update", "project", err)
	}

	s.uploader.CleanupReplaced(ctx, existing.ImageURL, project.ImageURL)
	s.uploader.CleanupAll(ctx, removedURLs(existing.Gallery, project.Gallery))
	return nil
}

// DeleteProject removes the row, then best-effort deletes its blobs.
func (s Portfolio) DeleteProject(ctx context.Context, id string) error {
	existing, err := s.projects.FindByID(id)
	if err != nil {
		return errs.NewDatabaseError("find", "project", err)
	}
	if existing == nil {
		return errs.NewNotFoundError("project not found")
	}

	if err := s.projects.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}

	urls := append([]string{existing.ImageURL}, existing.Gallery...)
	s.uploader.CleanupAll(ctx, urls)
	return nil
}

// AddCertificate validates and inserts a new certificate, prepending it.
func (s Portfolio) AddCertificate(ctx context.Context, certificate *models.Certificate) error {
	if err := validateCertificate(certificate); err != nil {
		return err
	}
	if certificate.ID == "" {
		certificate.ID = uuid.NewString()
	}

	min, err := s.certificates.MinSortOrder()
	if err != nil {
		return errs.NewDatabaseError("read sort order of", "certificates", err)
	}
	certificate.SortOrder = min - 1

	if err := s.certificates.Add(certificate); err != nil {
		return errs.NewDatabaseError("create", "certificate", err)
	}
	return nil
}

// UpdateCertificate validates and replaces an existing certificate.
func (s Portfolio) UpdateCertificate(ctx context.Context, certificate *models.Certificate) error {
	if err := validateCertificate(certificate); err != nil {
		return err
	}

	existing, err := s.certificates.FindByID(certificate.ID)
	if err != nil {
		return errs.NewDatabaseError("find", "certificate", err)
	}
	if existing == nil {
		return errs.NewNotFoundError("certificate not found")
	}

	certificate.SortOrder = existing.SortOrder
	if err := s.certificates.Update(certificate); err != nil {
		return errs.NewDatabaseError("update", "certificate", err)
	}

	s.uploader.CleanupReplaced(ctx, existing.ImageURL, certificate.ImageURL)
	return nil
}

// DeleteCertificate removes the row, then best-effort deletes its image.
func (s Portfolio) DeleteCertificate(ctx context.Context, id string) error {
	existing, err := s.certificates.FindByID(id)
	if err != nil {
		return errs.NewDatabaseError("find", "certificate", err)
	}
	if existing == nil {
		return errs.NewNotFoundError("certificate not found")
	}

	if err := s.certificates.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "certificate", err)
	}

	s.uploader.CleanupReplaced(ctx, existing.ImageURL, "")
	return nil
}

// UpdateSettings upserts the given keys into the settings map.
func (s Portfolio) UpdateSettings(settings map[string]string) error {
	if len(settings) == 0 {
		return errs.NewBadRequestError("no settings provided")
	}
	for key := range settings {
		if strings.TrimSpace(key) == "" {
			return errs.NewValidationError("key", "setting key cannot be empty")
		}
	}
	if err := s.settings.UpsertAll(settings); err != nil {
		return errs.NewDatabaseError("update", "settings", err)
	}
	return nil
}

func validateProject(project *models.Project) error {
	if strings.TrimSpace(project.Title) == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if !project.Category.Valid() {
		return errs.NewValidationError("category", fmt.Sprintf("unknown category %q", project.Category))
	}
	if project.SecondaryCategory != nil {
		if !project.SecondaryCategory.Valid() {
			return errs.NewValidationError("secondaryCategory", fmt.Sprintf("unknown category %q", *project.SecondaryCategory))
		}
		if *project.SecondaryCategory == project.Category {
			return errs.NewValidationError("secondaryCategory", "secondary category must differ from the primary category")
		}
	}
	return nil
}

func validateCertificate(certificate *models.Certificate) error {
	if strings.TrimSpace(certificate.Title) == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(certificate.Academy) == "" {
		return errs.NewValidationError("academy", "academy is required")
	}
	return nil
}

// removedURLs returns entries of old that are absent from new.
func removedURLs(old, new []string) []string {
	kept := make(map[string]struct{}, len(new))
	for _, url := range new {
		kept[url] = struct{}{}
	}
	var removed []string
	for _, url := range old {
		if _, ok := kept[url]; !ok {
			removed = append(removed, url)
		}
	}
	return removed
}
