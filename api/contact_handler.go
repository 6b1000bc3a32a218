package api

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/subarudev0/portfolio-backend/config"
	"github.com/subarudev0/portfolio-backend/errs"
	"github.com/subarudev0/portfolio-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	config    map[string]string
}

func newContactHandler(c map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		config:    c,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// send forwards a contact-form submission to the configured recipient.
func (h contactHandler) send() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		switch {
		case strings.TrimSpace(req.Name) == "":
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		case strings.TrimSpace(req.Message) == "":
			h.responder.WriteError(w, errs.NewValidationError("message", "message is required"))
			return
		case !strings.Contains(req.Email, "@"):
			h.responder.WriteError(w, errs.NewValidationError("email", "a valid email is required"))
			return
		}

		recipient := config.GetString(h.config, "CONTACT_RECIPIENT", "")
		if recipient == "" {
			h.responder.WriteError(w, errs.NewInternalError("contact recipient not configured"))
			return
		}

		subject := fmt.Sprintf("Portfolio contact from %s", req.Name)
		body := fmt.Sprintf(
			"<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
			html.EscapeString(req.Name),
			html.EscapeString(req.Email),
			html.EscapeString(req.Message),
		)

		if err := services.SendEmail(h.config, subject, body, []string{recipient}); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to send contact email", err))
			return
		}

		h.responder.WriteSuccess(w)
	}
}
