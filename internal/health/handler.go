package health

import (
	"net/http"

	"github.com/HeidiChen0/Archool/internal/httputil"

	"github.com/go-chi/chi/v5"
)

// Checker reports whether a dependency is usable. The event producers implement it.
type Checker interface {
	HealthCheck() error
}

type Handler struct {
	checkers map[string]Checker
}

func NewHandler() *Handler {
	return &Handler{checkers: make(map[string]Checker)}
}

// AddChecker registers a dependency consulted by /ready.
func (h *Handler) AddChecker(name string, c Checker) {
	h.checkers[name] = c
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.Health)
	router.Get("/ready", h.Ready)
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ready"}
	code := http.StatusOK

	if len(h.checkers) > 0 {
		resp.Checks = make(map[string]string, len(h.checkers))
	}
	for name, c := range h.checkers {
		if err := c.HealthCheck(); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "not ready"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	httputil.RespondWithJSON(w, code, resp)
}
