package portal

import (
	"net/http"

	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/httputil"

	"github.com/go-chi/chi/v5"
)

// ListSchools searches schools by name only, like the home page box.
func (h *Handler) ListSchools(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.catalog.SearchSchools(r.URL.Query().Get("q")))
}

func (h *Handler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.School(id); !ok {
		httputil.RespondWithError(w, http.StatusNotFound, "School not found")
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, h.catalog.TeachersBySchool(id))
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	targetID := r.URL.Query().Get("targetId")
	if targetID == "" {
		httputil.RespondWithError(w, http.StatusBadRequest, "targetId is required")
		return
	}

	reviews, err := h.reviews.GetByTarget(r.Context(), targetID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, reviews)
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.Program(id); !ok {
		httputil.RespondWithError(w, http.StatusNotFound, "Program not found")
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, h.catalog.CoursesByProgram(id))
}

func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.ResourceFilter{
		ProgramID: q.Get("programId"),
		Search:    q.Get("q"),
		Type:      catalog.ResourceType(q.Get("type")),
		CourseID:  q.Get("courseId"),
	}
	if filter.Type != "" && !catalog.ValidResourceType(filter.Type) {
		httputil.RespondWithError(w, http.StatusBadRequest, "unknown resource type")
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, h.catalog.FilterResources(filter))
}
