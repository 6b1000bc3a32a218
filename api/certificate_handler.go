package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/subarudev0/portfolio-backend/database"
	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/models"
	"github.com/subarudev0/portfolio-backend/services"
)

type certificateHandler struct {
	responder       Responder
	logger          zerolog.Logger
	certificateRepo *database.CertificateRepo
	portfolio       services.Portfolio
}

func newCertificateHandler(certificateRepo *database.CertificateRepo, portfolio services.Portfolio) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		certificateRepo: certificateRepo,
		portfolio:       portfolio,
	}
}

type certificateCollection struct {
	Certificates []models.Certificate `json:"certificates"`
	Total        int                  `json:"total"`
}

// listCertificates returns every certificate in display order.
func (h certificateHandler) listCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificates, err := h.certificateRepo.FindAllOrdered()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "certificates", err))
			return
		}

		h.responder.WriteJSON(w, certificateCollection{Certificates: certificates, Total: len(certificates)})
	}
}

// createCertificate validates and inserts a new certificate.
func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var certificate models.Certificate
		if err := json.NewDecoder(r.Body).Decode(&certificate); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode certificate request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.portfolio.AddCertificate(r.Context(), &certificate); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, actionResponse{Success: true, ID: certificate.ID})
	}
}

// updateCertificate replaces an existing certificate.
func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID := chi.URLParam(r, "certificateID")
		if certificateID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing certificateID"))
			return
		}

		var certificate models.Certificate
		if err := json.NewDecoder(r.Body).Decode(&certificate); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode certificate request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		certificate.ID = certificateID

		if err := h.portfolio.UpdateCertificate(r.Context(), &certificate); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w)
	}
}

// deleteCertificate removes a certificate and cleans up its image.
func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID := chi.URLParam(r, "certificateID")
		if certificateID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing certificateID"))
			return
		}

		if err := h.portfolio.DeleteCertificate(r.Context(), certificateID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w)
	}
}
