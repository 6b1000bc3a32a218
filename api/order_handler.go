package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/services"
)

type orderHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projects     services.Reorderer
	certificates services.Reorderer
}

func newOrderHandler(projects, certificates services.Reorderer) orderHandler {
	logger := log.With().Str("handlerName", "orderHandler").Logger()

	return orderHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projects:     projects,
		certificates: certificates,
	}
}

type stepRequest struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Direction string `json:"direction"`
}

type bulkRequest struct {
	Type string   `json:"type"`
	IDs  []string `json:"ids"`
}

func (h orderHandler) byCollection(collectionType string) (services.Reorderer, error) {
	switch collectionType {
	case "projects":
		return h.projects, nil
	case "certificates":
		return h.certificates, nil
	}
	return services.Reorderer{}, errs.NewBadRequestError(fmt.Sprintf("unknown collection type %q", collectionType))
}

// moveStep moves one item a single position up or down.
func (h orderHandler) moveStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		reorderer, err := h.byCollection(req.Type)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := reorderer.MoveStep(req.ID, services.Direction(req.Direction)); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w)
	}
}

// setOrder persists a full drag-and-drop ordering.
func (h orderHandler) setOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bulkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		reorderer, err := h.byCollection(req.Type)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := reorderer.SetOrder(req.IDs); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w)
	}
}
