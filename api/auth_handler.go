package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/subarudev0/portfolio-backend/config"
	"github.com/subarudev0/portfolio-backend/database"
	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/services"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	authenticator services.Authenticator
	db            database.Database
	config        map[string]string
}

func newAuthHandler(authenticator services.Authenticator, db database.Database, c map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		authenticator: authenticator,
		db:            db,
		config:        c,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// login verifies the admin password and returns a session token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewValidationError("password", "password is required"))
			return
		}

		token, err := h.authenticator.VerifyAdmin(req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, actionResponse{Success: true, Token: token})
	}
}

// migrate re-runs the idempotent schema migration on demand.
func (h authHandler) migrate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Migrate(config.GetString(h.config, "ADMIN_PASSWORD", "")); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("migration failed", err))
			return
		}

		h.responder.WriteSuccess(w)
	}
}
