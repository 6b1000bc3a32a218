package api

import (
	"fmt"

	"github.com/subarudev0/portfolio-backend/config"
	"github.com/subarudev0/portfolio-backend/database"
	"github.com/subarudev0/portfolio-backend/services"
)

// initializeHandlers wires the service layer and returns all handlers
// organized in a routeHandlers struct, plus the authenticator the admin
// middleware shares with the login handler.
func initializeHandlers(db database.Database, c map[string]string) (*routeHandlers, services.Authenticator, error) {
	store, err := services.NewS3BlobStore(c)
	if err != nil {
		return nil, services.Authenticator{}, fmt.Errorf("initializing blob store: %w", err)
	}

	jwtSecret := config.GetString(c, "ADMIN_JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, services.Authenticator{}, fmt.Errorf("ADMIN_JWT_SECRET is required")
	}

	uploader := services.NewUploader(store)
	portfolio := services.NewPortfolio(db.ProjectRepo(), db.CertificateRepo(), db.SettingRepo(), uploader)
	authenticator := services.NewAuthenticator(db.AdminAuthRepo(), jwtSecret)

	handlers := &routeHandlers{
		projectHandler:     newProjectHandler(db.ProjectRepo(), portfolio),
		certificateHandler: newCertificateHandler(db.CertificateRepo(), portfolio),
		settingsHandler:    newSettingsHandler(db.SettingRepo(), portfolio),
		orderHandler:       newOrderHandler(services.NewReorderer(db.ProjectRepo()), services.NewReorderer(db.CertificateRepo())),
		uploadHandler:      newUploadHandler(uploader),
		authHandler:        newAuthHandler(authenticator, db, c),
		contactHandler:     newContactHandler(c),
	}

	return handlers, authenticator, nil
}
