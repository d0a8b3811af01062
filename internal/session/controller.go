package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/events"
	"github.com/HeidiChen0/Archool/internal/metrics"
	"github.com/HeidiChen0/Archool/internal/review"

	"github.com/go-playground/validator/v10"
)

// NoticeVerificationRequired is shown when an unverified visitor asks to upload.
const NoticeVerificationRequired = "Verification required: Please verify your identity to upload resources. Help keep Archool clean! 📚"

// minCommentLength is exclusive: a comment must be longer than this once trimmed.
const minCommentLength = 10

// Assistant is the text-generation surface the controller needs.
type Assistant interface {
	AnalyzeDraft(ctx context.Context, draft string, targetType string) string
	TrendSummary(ctx context.Context, comments []string, entityName string) string
}

// Controller implements every view-state transition. Shared data lives in the
// catalog and review repository; per-visitor data lives in the Session.
type Controller struct {
	catalog   *catalog.Catalog
	reviews   review.Repository
	assistant Assistant
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	validate  *validator.Validate
	now       func() time.Time
}

func NewController(
	cat *catalog.Catalog,
	reviews review.Repository,
	assistant Assistant,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		catalog:   cat,
		reviews:   reviews,
		assistant: assistant,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// SetClock replaces the time source used for ids and review dates.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// Navigate moves the session to the page named id.
func (c *Controller) Navigate(ctx context.Context, s *Session, id PageID) error {
	err := s.update(func(st *State) error {
		page, err := c.resolve(st, id)
		if err != nil {
			return err
		}
		if _, ok := page.(VerifyIdentity); ok {
			st.Verification = &Verification{Step: StepRoles}
		}
		st.Page = page
		return nil
	})
	if err != nil {
		c.logger.InfoContext(ctx, "navigation refused", "page", id, "error", err)
	}
	return err
}

// resolve builds the page for id from the current selections.
func (c *Controller) resolve(st *State, id PageID) (Page, error) {
	switch id {
	case NavFindTeachers:
		st.FindContext = FindTeacher
		return FindSchools{Context: FindTeacher}, nil
	case PageFindSchools:
		st.FindContext = FindSchool
		return FindSchools{Context: FindSchool}, nil
	case PagePrograms, NavResources:
		st.ProgramID = ""
		return Programs{}, nil
	case PageHome:
		return Home{}, nil
	case PageLogin:
		return Login{}, nil
	case PageDashboard:
		return Dashboard{}, nil
	case PageAbout:
		return About{}, nil
	case PageContact:
		return Contact{}, nil
	case PageDonation:
		return Donation{}, nil
	case PageAddSchool:
		return AddSchool{}, nil
	case PageAdminApply:
		return AdminApply{}, nil
	case PageProfile:
		if st.User == nil {
			return Login{}, nil
		}
		return Profile{}, nil
	case PageSchoolDetail:
		if st.SchoolID == "" {
			return nil, missingSelection(id)
		}
		st.clearDetail()
		return SchoolDetail{SchoolID: st.SchoolID}, nil
	case PageSchoolComments:
		if st.SchoolID == "" {
			return nil, missingSelection(id)
		}
		st.clearDetail()
		return SchoolComments{SchoolID: st.SchoolID}, nil
	case PageTeacherDetail:
		if st.TeacherID == "" {
			return nil, missingSelection(id)
		}
		return TeacherDetail{TeacherID: st.TeacherID}, nil
	case PageCourseDetail:
		if st.CourseID == "" {
			return nil, missingSelection(id)
		}
		return CourseDetail{CourseID: st.CourseID}, nil
	case PageReviewForm:
		target := st.currentTarget()
		if target.IsZero() {
			return nil, missingSelection(id)
		}
		return ReviewForm{Target: target}, nil
	case PageAddTeacher:
		return AddTeacher{SchoolID: st.SchoolID}, nil
	case PageAddCourse:
		return AddCourse{ProgramID: st.PreselectedProgramID}, nil
	case PageUploadResource:
		return UploadResource{ProgramID: st.PreselectedProgramID}, nil
	case PageAmbassadorApply:
		if st.SchoolID == "" {
			return nil, missingSelection(id)
		}
		if school, ok := c.catalog.School(st.SchoolID); ok && !school.HasAmbassadorSlot() {
			return nil, ErrAmbassadorSlotsFull
		}
		return AmbassadorApply{SchoolID: st.SchoolID}, nil
	case PageVerifyIdentity:
		return VerifyIdentity{SchoolID: st.SchoolID, Return: returnPage(st.Page)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPage, id)
}

func missingSelection(id PageID) error {
	return fmt.Errorf("%w: %s", ErrMissingSelection, id)
}

// returnPage is where the verification wizard resumes when started from current.
func returnPage(current Page) Page {
	if v, ok := current.(VerifyIdentity); ok {
		return v.Return
	}
	return current
}

// SelectSchool opens a school's detail page. Teacher and course selections
// are cleared so the school becomes the review target.
func (c *Controller) SelectSchool(ctx context.Context, s *Session, id string) error {
	return s.update(func(st *State) error {
		st.SchoolID = id
		st.TeacherID = ""
		st.CourseID = ""
		s.resetSummary()
		st.Page = SchoolDetail{SchoolID: id}
		return nil
	})
}

// SelectTeacher opens a teacher's detail page and clears the course selection.
func (c *Controller) SelectTeacher(ctx context.Context, s *Session, id string) error {
	return s.update(func(st *State) error {
		st.TeacherID = id
		st.CourseID = ""
		if t, ok := c.catalog.Teacher(id); ok {
			st.SchoolID = t.SchoolID
		}
		s.resetSummary()
		st.Page = TeacherDetail{TeacherID: id}
		return nil
	})
}

// SelectCourse opens a course's detail page and clears the teacher selection.
func (c *Controller) SelectCourse(ctx context.Context, s *Session, id string) error {
	return s.update(func(st *State) error {
		st.CourseID = id
		st.TeacherID = ""
		if co, ok := c.catalog.Course(id); ok {
			st.ProgramID = co.ProgramID
		}
		s.resetSummary()
		st.Page = CourseDetail{CourseID: id}
		return nil
	})
}

// SelectProgram drills the program center into one program; an empty id lists all.
func (c *Controller) SelectProgram(ctx context.Context, s *Session, id string) error {
	return s.update(func(st *State) error {
		st.ProgramID = id
		st.Page = Programs{ProgramID: id}
		return nil
	})
}

// SelectProgramByName follows a school's program label. Labels with no
// matching program open the full program list.
func (c *Controller) SelectProgramByName(ctx context.Context, s *Session, name string) error {
	id, _ := c.catalog.ProgramIDByName(name)
	return c.SelectProgram(ctx, s, id)
}

// SetSearchTerm updates the search box of the current page: the find-schools
// page has its own, every other page feeds the home search.
func (c *Controller) SetSearchTerm(ctx context.Context, s *Session, term string) error {
	return s.update(func(st *State) error {
		if find, ok := st.Page.(FindSchools); ok {
			find.Term = term
			st.Page = find
			return nil
		}
		st.SearchTerm = term
		return nil
	})
}

// Login signs the visitor in as the mock user. There is no credential check.
func (c *Controller) Login(ctx context.Context, s *Session) error {
	return s.update(func(st *State) error {
		user := catalog.MockUser()
		st.User = &user
		st.Page = Home{}
		return nil
	})
}

func (c *Controller) Logout(ctx context.Context, s *Session) error {
	return s.update(func(st *State) error {
		st.User = nil
		st.Verification = nil
		st.Page = Home{}
		return nil
	})
}

// RequestReview handles the "Rate this" buttons: anonymous visitors are sent
// to sign in, everyone else to the review form for the current target.
func (c *Controller) RequestReview(ctx context.Context, s *Session) error {
	return s.update(func(st *State) error {
		target := st.currentTarget()
		if target.IsZero() {
			return missingSelection(PageReviewForm)
		}
		if st.User == nil {
			st.Page = Login{}
			return nil
		}
		st.DraftFeedback = ""
		st.Page = ReviewForm{Target: target}
		return nil
	})
}

// ReviewInput is the review form payload.
type ReviewInput struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// SubmitReview attaches a review to the current target, prepends it to the
// shared list and returns to the page the target is shown on.
func (c *Controller) SubmitReview(ctx context.Context, s *Session, in ReviewInput) (review.Review, error) {
	if err := c.validate.Struct(in); err != nil {
		return review.Review{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Comment)) <= minCommentLength {
		return review.Review{}, fmt.Errorf("%w: comment must be longer than %d characters", ErrInvalidInput, minCommentLength)
	}

	var created review.Review
	err := s.update(func(st *State) error {
		target := st.currentTarget()
		if target.IsZero() {
			return missingSelection(PageReviewForm)
		}

		now := c.now()
		created = review.Review{
			ID:         review.NewID(now),
			TargetID:   target.ID,
			TargetType: target.Type,
			AuthorName: review.AnonymousAuthor,
			Date:       now.UTC().Format(review.DateLayout),
			Rating:     in.Rating,
			Comment:    in.Comment,
		}
		if st.User != nil {
			created.AuthorName = st.User.Name
			created.VerifiedStudent = st.User.Verified
		}

		if err := c.reviews.Prepend(ctx, &created); err != nil {
			return fmt.Errorf("failed to store review: %w", err)
		}

		st.DraftFeedback = ""
		switch target.Type {
		case review.TargetTeacher:
			st.Page = TeacherDetail{TeacherID: target.ID}
		case review.TargetCourse:
			st.Page = CourseDetail{CourseID: target.ID}
		default:
			st.Page = SchoolComments{SchoolID: target.ID}
		}
		return nil
	})
	if err != nil {
		return review.Review{}, err
	}

	c.logger.InfoContext(ctx, "review submitted", "review_id", created.ID, "target_type", created.TargetType, "target_id", created.TargetID)
	c.metrics.RecordReviewSubmitted(ctx, string(created.TargetType))
	c.publish(ctx, s, events.TypeReviewSubmitted, created)

	return created, nil
}

// GenerateSummary asks for a trend summary of the current target's reviews.
// The call runs outside the session lock; its result is dropped if the
// selection changed or a newer request started meanwhile.
func (c *Controller) GenerateSummary(ctx context.Context, s *Session) error {
	s.mu.Lock()
	s.state.Notice = ""
	target := s.state.currentTarget()
	name := c.targetName(target)

	reviews, err := c.reviews.GetByTarget(ctx, target.ID)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to load reviews: %w", err)
	}
	comments := review.Comments(reviews)

	s.summarySeq++
	seq := s.summarySeq

	if target.IsZero() || name == "" || len(comments) == 0 {
		s.state.Summary = Summary{Text: NotEnoughData, Target: target}
		s.mu.Unlock()
		return nil
	}

	s.state.Summary = Summary{Generating: true, Target: target}
	s.mu.Unlock()

	text := c.assistant.TrendSummary(ctx, comments, name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.summarySeq || s.state.currentTarget() != target {
		c.logger.InfoContext(ctx, "stale summary discarded", "target_id", target.ID)
		c.metrics.RecordSummaryDiscarded(ctx)
		return nil
	}

	s.state.Summary = Summary{Text: text, Target: target}
	c.metrics.RecordSummaryGenerated(ctx)
	return nil
}

// resetSummary drops the summary and invalidates any request in flight.
// Callers hold s.mu.
// clearDetail drops the teacher and course selections so a school page
// is the review target again.
func (st *State) clearDetail() {
	st.TeacherID = ""
	st.CourseID = ""
}

func (s *Session) resetSummary() {
	s.summarySeq++
	s.state.Summary = Summary{}
}

func (c *Controller) targetName(target review.Target) string {
	switch target.Type {
	case review.TargetTeacher:
		if t, ok := c.catalog.Teacher(target.ID); ok {
			return t.Name
		}
	case review.TargetCourse:
		if co, ok := c.catalog.Course(target.ID); ok {
			return co.Name
		}
	case review.TargetSchool:
		if sc, ok := c.catalog.School(target.ID); ok {
			return sc.Name
		}
	}
	return ""
}

// AnalyzeDraft critiques a review draft for the current target and keeps the
// feedback on the review form.
func (c *Controller) AnalyzeDraft(ctx context.Context, s *Session, draft string) (string, error) {
	if strings.TrimSpace(draft) == "" {
		return "", fmt.Errorf("%w: draft is empty", ErrInvalidInput)
	}

	snap := s.Snapshot()
	targetType := review.TargetSchool
	if target := snap.currentTarget(); !target.IsZero() {
		targetType = target.Type
	}

	feedback := c.assistant.AnalyzeDraft(ctx, draft, string(targetType))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.Page.(ReviewForm); ok {
		s.state.DraftFeedback = feedback
	}
	return feedback, nil
}

// RequestUploadResource opens the upload form for verified users. Everyone
// else is sent through identity verification for the first school.
func (c *Controller) RequestUploadResource(ctx context.Context, s *Session, programID string) error {
	gated := false
	err := s.update(func(st *State) error {
		if st.User == nil || !st.User.Verified {
			gated = true
			school := c.catalog.FirstSchool()
			st.Notice = NoticeVerificationRequired
			st.SchoolID = school.ID
			st.clearDetail()
			st.Verification = &Verification{Step: StepRoles}
			st.Page = VerifyIdentity{SchoolID: school.ID, Return: SchoolDetail{SchoolID: school.ID}}
			return nil
		}
		st.PreselectedProgramID = programID
		st.Page = UploadResource{ProgramID: programID}
		return nil
	})
	if gated {
		c.logger.InfoContext(ctx, "upload gated on verification", "session_id", s.ID)
		c.metrics.RecordUploadGated(ctx)
	}
	return err
}

// RequestAddCourse opens the add-course form pre-filled with programID.
func (c *Controller) RequestAddCourse(ctx context.Context, s *Session, programID string) error {
	return s.update(func(st *State) error {
		st.PreselectedProgramID = programID
		st.Page = AddCourse{ProgramID: programID}
		return nil
	})
}

// publish emits an event without blocking the caller on failure.
func (c *Controller) publish(ctx context.Context, s *Session, eventType string, payload any) {
	event := events.Event{
		Type:       eventType,
		SessionID:  s.ID,
		Payload:    payload,
		OccurredAt: c.now().UTC(),
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.WarnContext(ctx, "failed to publish event", "type", eventType, "error", err)
		c.metrics.RecordEventFailed(ctx, eventType)
		return
	}
	c.metrics.RecordEventPublished(ctx, eventType)
}
