package portal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/HeidiChen0/Archool/internal/auth"
	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/httputil"
	"github.com/HeidiChen0/Archool/internal/review"
	"github.com/HeidiChen0/Archool/internal/session"
	"github.com/HeidiChen0/Archool/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler exposes the session controller over JSON. Every mutating route
// answers with the freshly rendered view.
type Handler struct {
	controller *session.Controller
	catalog    *catalog.Catalog
	reviews    review.Repository
	validate   *validator.Validate
	logger     *slog.Logger
}

func NewHandler(controller *session.Controller, cat *catalog.Catalog, reviews review.Repository, logger *slog.Logger) *Handler {
	return &Handler{
		controller: controller,
		catalog:    cat,
		reviews:    reviews,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/view", h.withSession(nil))
	r.Post("/navigate", h.withSession(h.navigate))
	r.Post("/select/program", h.withSession(h.selectProgram))
	r.Post("/select/{kind}/{id}", h.withSession(h.selectEntity))
	r.Put("/search", h.withSession(h.search))
	r.Post("/login", h.withSession(h.login))
	r.Post("/logout", h.withSession(h.logout))
	r.Put("/profile", h.withSession(h.updateProfile))

	r.Post("/reviews/request", h.withSession(h.requestReview))
	r.Post("/reviews", h.withSession(h.submitReview))
	r.Post("/reviews/analyze", h.withSession(h.analyzeDraft))
	r.Post("/summary", h.withSession(h.generateSummary))

	r.Post("/resources/upload-request", h.withSession(h.requestUpload))
	r.Post("/resources", h.withSession(h.uploadResource))
	r.Post("/teachers", h.withSession(h.addTeacher))
	r.Post("/courses/request", h.withSession(h.requestAddCourse))
	r.Post("/courses", h.withSession(h.addCourse))
	r.Post("/schools", h.withSession(h.addSchool))
	r.Post("/applications/ambassador", h.withSession(h.applyAmbassador))
	r.Post("/applications/admin", h.withSession(h.applyAdmin))
	r.Post("/contact", h.withSession(h.postContact))
	r.Post("/donations", h.withSession(h.donate))

	r.Route("/verification", func(r chi.Router) {
		r.Post("/start", h.withSession(h.startVerification))
		r.Post("/roles", h.withSession(h.chooseRoles))
		r.Post("/emails", h.withSession(h.submitEmails))
		r.Post("/code", h.withSession(h.confirmCode))
		r.Post("/cancel", h.withSession(h.cancelVerification))
	})

	r.Get("/schools", h.ListSchools)
	r.Get("/schools/{id}/teachers", h.ListTeachers)
	r.Get("/reviews", h.ListReviews)
	r.Get("/programs/{id}/courses", h.ListCourses)
	r.Get("/resources", h.ListResources)
}

type action func(ctx context.Context, s *session.Session, r *http.Request) error

// withSession runs fn against the request's session and responds with the
// rendered view. A nil fn only renders.
func (h *Handler) withSession(fn action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := auth.FromContext(r.Context())
		if !ok {
			h.logger.ErrorContext(r.Context(), "request without session", "path", r.URL.Path)
			httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if fn != nil {
			if err := fn(r.Context(), sess, r); err != nil {
				h.handleServiceError(w, r, err)
				return
			}
		}

		h.respondView(w, r, sess)
	}
}

func (h *Handler) respondView(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	all, err := h.reviews.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	v := view.Render(h.catalog, all, sess.Snapshot())
	httputil.RespondWithJSON(w, v.HTTPStatus(), v)
}

// errBadBody marks a request body that could not be decoded or validated.
var errBadBody = errors.New("invalid request body")

func (h *Handler) decode(r *http.Request, dst any) error {
	// An empty body decodes to the zero value.
	if err := httputil.DecodeJSON(r, dst); err != nil && !errors.Is(err, io.EOF) {
		h.logger.WarnContext(r.Context(), "failed to decode request", "error", err)
		return errBadBody
	}
	if err := h.validate.Struct(dst); err != nil {
		h.logger.WarnContext(r.Context(), "validation failed", "error", err)
		return errBadBody
	}
	return nil
}

func (h *Handler) navigate(ctx context.Context, s *session.Session, r *http.Request) error {
	var req NavigateRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	return h.controller.Navigate(ctx, s, req.Page)
}

func (h *Handler) selectEntity(ctx context.Context, s *session.Session, r *http.Request) error {
	id := chi.URLParam(r, "id")
	switch chi.URLParam(r, "kind") {
	case "school":
		return h.controller.SelectSchool(ctx, s, id)
	case "teacher":
		return h.controller.SelectTeacher(ctx, s, id)
	case "course":
		return h.controller.SelectCourse(ctx, s, id)
	}
	return errUnknownKind
}

var errUnknownKind = errors.New("unknown selection kind")

func (h *Handler) selectProgram(ctx context.Context, s *session.Session, r *http.Request) error {
	var req SelectProgramRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	if req.ID == "" && req.Name != "" {
		return h.controller.SelectProgramByName(ctx, s, req.Name)
	}
	return h.controller.SelectProgram(ctx, s, req.ID)
}

func (h *Handler) search(ctx context.Context, s *session.Session, r *http.Request) error {
	var req SearchRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	return h.controller.SetSearchTerm(ctx, s, req.Term)
}

func (h *Handler) login(ctx context.Context, s *session.Session, r *http.Request) error {
	return h.controller.Login(ctx, s)
}

func (h *Handler) logout(ctx context.Context, s *session.Session, r *http.Request) error {
	return h.controller.Logout(ctx, s)
}

func (h *Handler) updateProfile(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.ProfileForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	return h.controller.UpdateProfile(ctx, s, form)
}

func (h *Handler) requestReview(ctx context.Context, s *session.Session, r *http.Request) error {
	return h.controller.RequestReview(ctx, s)
}

func (h *Handler) submitReview(ctx context.Context, s *session.Session, r *http.Request) error {
	var in session.ReviewInput
	if err := httputil.DecodeJSON(r, &in); err != nil {
		return errBadBody
	}
	_, err := h.controller.SubmitReview(ctx, s, in)
	return err
}

func (h *Handler) analyzeDraft(ctx context.Context, s *session.Session, r *http.Request) error {
	var req DraftRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	_, err := h.controller.AnalyzeDraft(ctx, s, req.Draft)
	return err
}

func (h *Handler) generateSummary(ctx context.Context, s *session.Session, r *http.Request) error {
	return h.controller.GenerateSummary(ctx, s)
}

func (h *Handler) requestUpload(ctx context.Context, s *session.Session, r *http.Request) error {
	var req ProgramRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	return h.controller.RequestUploadResource(ctx, s, req.ProgramID)
}

func (h *Handler) uploadResource(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.UploadResourceForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	return h.controller.UploadResource(ctx, s, form)
}

func (h *Handler) addTeacher(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.AddTeacherForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	_, err := h.controller.AddTeacher(ctx, s, form)
	return err
}

func (h *Handler) requestAddCourse(ctx context.Context, s *session.Session, r *http.Request) error {
	var req ProgramRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	return h.controller.RequestAddCourse(ctx, s, req.ProgramID)
}

func (h *Handler) addCourse(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.AddCourseForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	return h.controller.AddCourse(ctx, s, form)
}

func (h *Handler) addSchool(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.AddSchoolForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	return h.controller.AddSchool(ctx, s, form)
}

func (h *Handler) applyAmbassador(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.AmbassadorForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	return h.controller.ApplyAmbassador(ctx, s, form)
}

func (h *Handler) applyAdmin(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.AdminForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	return h.controller.ApplyAdmin(ctx, s, form)
}

func (h *Handler) postContact(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.ContactForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	return h.controller.PostContact(ctx, s, form)
}

func (h *Handler) donate(ctx context.Context, s *session.Session, r *http.Request) error {
	var form session.DonationForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		return errBadBody
	}
	return h.controller.Donate(ctx, s, form)
}

func (h *Handler) startVerification(ctx context.Context, s *session.Session, r *http.Request) error {
	return h.controller.StartVerification(ctx, s)
}

func (h *Handler) chooseRoles(ctx context.Context, s *session.Session, r *http.Request) error {
	var req RolesRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	return h.controller.ChooseRoles(ctx, s, req.Roles)
}

func (h *Handler) submitEmails(ctx context.Context, s *session.Session, r *http.Request) error {
	var req EmailsRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	return h.controller.SubmitEmails(ctx, s, req.Emails)
}

func (h *Handler) confirmCode(ctx context.Context, s *session.Session, r *http.Request) error {
	var req CodeRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}
	return h.controller.ConfirmCode(ctx, s, req.Code)
}

func (h *Handler) cancelVerification(ctx context.Context, s *session.Session, r *http.Request) error {
	return h.controller.CancelVerification(ctx, s)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errBadBody):
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errUnknownKind), errors.Is(err, session.ErrUnknownPage):
		httputil.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrInvalidInput):
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNoRoles),
		errors.Is(err, session.ErrConflictingRoles),
		errors.Is(err, session.ErrInvalidCode):
		httputil.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, session.ErrMissingSelection),
		errors.Is(err, session.ErrAmbassadorSlotsFull),
		errors.Is(err, session.ErrWrongStep):
		httputil.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrNotSignedIn):
		httputil.RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, session.ErrVerificationRequired):
		httputil.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
