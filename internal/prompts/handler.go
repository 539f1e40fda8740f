package prompts

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptbook/pkg/handlers"
	"github.com/JaimeStill/promptbook/pkg/pagination"
	"github.com/JaimeStill/promptbook/pkg/routes"
)

// Handler provides HTTP endpoints for prompt operations.
// It applies the form rules (trimming, tag de-duplication, blank example
// removal) before commands reach the repository.
type Handler struct {
	sys          System
	logger       *slog.Logger
	pagination   pagination.Config
	maxBodyBytes int64
}

// NewHandler creates a Handler with the given system, logger, pagination config,
// and request body limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxBodyBytes int64,
) *Handler {
	return &Handler{
		sys:          sys,
		logger:       logger.With("handler", "prompts"),
		pagination:   pagination,
		maxBodyBytes: maxBodyBytes,
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Tags:   []string{"Prompts"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listOp},
			{Method: "GET", Pattern: "/tags", Handler: h.Tags, OpenAPI: tagsOp},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: findOp},
			{Method: "GET", Pattern: "/{id}/versions", Handler: h.History, OpenAPI: historyOp},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: createOp},
			{Method: "PATCH", Pattern: "/{id}", Handler: h.Update, OpenAPI: updateOp},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: deleteOp},
			{Method: "DELETE", Pattern: "", Handler: h.DeleteAll, OpenAPI: deleteAllOp},
			{Method: "POST", Pattern: "/{id}/archive", Handler: h.Archive, OpenAPI: archiveOp},
			{Method: "POST", Pattern: "/{id}/restore", Handler: h.Restore, OpenAPI: restoreOp},
		},
	}
}

// List returns prompts matching the query filters. Results are paged only
// when page or page_size is given.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := FiltersFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	page, _ := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Tags returns every tag in use, in first-seen order.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.sys.Tags(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tags)
}

// Find returns a single prompt by id.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

// History returns the version snapshots of a prompt, oldest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	versions, err := h.sys.History(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, versions)
}

// Create processes a JSON body to add a prompt to the library.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.DecodeJSON(w, r, h.maxBodyBytes, &cmd); err != nil {
		handlers.RespondError(w, h.logger, bodyStatus(err), err)
		return
	}
	cmd.Normalize()

	prompt, err := h.sys.Add(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, prompt)
}

// Update processes a partial JSON body. Server-owned fields such as id or
// version are rejected as unknown fields, and a body that sets nothing is
// rejected so it cannot bump the version.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := handlers.DecodeJSON(w, r, h.maxBodyBytes, &cmd); err != nil {
		handlers.RespondError(w, h.logger, bodyStatus(err), err)
		return
	}
	if cmd.Empty() {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrNoChange), ErrNoChange)
		return
	}
	cmd.Normalize()

	prompt, err := h.sys.Update(r.Context(), r.PathValue("id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

// Delete permanently removes a prompt.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), r.PathValue("id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll clears the library and its stored copy.
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.DeleteAll(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Archive hides a prompt from the active view.
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.sys.Archive(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

// Restore returns an archived prompt to the active view.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.sys.Restore(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

func bodyStatus(err error) int {
	if errors.Is(err, handlers.ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
