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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	portfolio   services.Portfolio
}

func newProjectHandler(projectRepo *database.ProjectRepo, portfolio services.Portfolio) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		portfolio:   portfolio,
	}
}

// projectCollection is the public listing payload.
type projectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// listProjects returns the visible, ranked project set. Optional query
// parameters: category (one of the category enum or "all") and tags
// (comma-separated, OR semantics, pseudo-tags included).
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAllOrdered()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		category := r.URL.Query().Get("category")
		tags := splitQueryList(r.URL.Query()["tags"])

		visible := services.Rank(services.Visible(projects, category, tags))
		h.responder.WriteJSON(w, projectCollection{Projects: visible, Total: len(visible)})
	}
}

// listTags returns the derived tag facet for rendering filter chips.
func (h projectHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAllOrdered()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"tags": services.TagFacet(projects)})
	}
}

// getProject returns one project by id.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject validates and inserts a new project.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.portfolio.AddProject(r.Context(), &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, actionResponse{Success: true, ID: project.ID})
	}
}

// updateProject replaces an existing project.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		project.ID = projectID

		if err := h.portfolio.UpdateProject(r.Context(), &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w)
	}
}

// deleteProject removes a project and cleans up its blobs.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		if err := h.portfolio.DeleteProject(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w)
	}
}
