package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/subarudev0/portfolio-backend/database"
	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/services"
)

type settingsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	settingRepo *database.SettingRepo
	portfolio   services.Portfolio
}

func newSettingsHandler(settingRepo *database.SettingRepo, portfolio services.Portfolio) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		settingRepo: settingRepo,
		portfolio:   portfolio,
	}
}

// getSettings returns the whole settings map.
func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "settings", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"settings": settings})
	}
}

// updateSettings upserts the posted keys.
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings map[string]string
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.portfolio.UpdateSettings(settings); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w)
	}
}
