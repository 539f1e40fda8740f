package theme

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptbook/pkg/handlers"
	"github.com/JaimeStill/promptbook/pkg/routes"
)

// HostHeader is the client hint carrying the host's color scheme.
const HostHeader = "Sec-CH-Prefers-Color-Scheme"

// State is the preference together with the appearance it resolves to.
type State struct {
	Theme  Theme      `json:"theme"`
	Host   Appearance `json:"host,omitempty"`
	IsDark bool       `json:"isDark"`
}

// SetCommand is the request body for changing the preference.
type SetCommand struct {
	Theme Theme `json:"theme"`
}

// Handler provides HTTP endpoints for the theme preference.
type Handler struct {
	sys          System
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewHandler creates a Handler with the given system, logger, and request body limit.
func NewHandler(sys System, logger *slog.Logger, maxBodyBytes int64) *Handler {
	return &Handler{
		sys:          sys,
		logger:       logger.With("handler", "theme"),
		maxBodyBytes: maxBodyBytes,
	}
}

// Routes returns the route group definition for theme endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/theme",
		Tags:   []string{"Theme"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get, OpenAPI: getOp},
			{Method: "PUT", Pattern: "", Handler: h.Set, OpenAPI: setOp},
		},
	}
}

// Get returns the current preference and its effective appearance.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.state(r))
}

// Set replaces the preference.
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	var cmd SetCommand
	if err := handlers.DecodeJSON(w, r, h.maxBodyBytes, &cmd); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	if err := h.sys.SetTheme(cmd.Theme); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.state(r))
}

func (h *Handler) state(r *http.Request) State {
	host := HostAppearance(r)
	return State{
		Theme:  h.sys.Theme(),
		Host:   host,
		IsDark: h.sys.IsDark(host),
	}
}

// HostAppearance reads the host color scheme from the host query parameter,
// falling back to the client hint header.
func HostAppearance(r *http.Request) Appearance {
	if v := r.URL.Query().Get("host"); v != "" {
		return ParseAppearance(v)
	}
	return ParseAppearance(r.Header.Get(HostHeader))
}
