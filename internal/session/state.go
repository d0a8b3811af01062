package session

import (
	"sync"
	"time"

	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/review"
)

// NotEnoughData is stored as the summary when the target has no name or no reviews.
const NotEnoughData = "Not enough data to generate summary."

// Summary is the AI trend summary shown on a detail page.
type Summary struct {
	Text       string
	Generating bool
	// Target is the entity the text (or the in-flight request) belongs to.
	Target review.Target
}

// State is one visitor's view state.
type State struct {
	Page Page
	User *catalog.User

	SchoolID  string
	TeacherID string
	CourseID  string
	// ProgramID is the program center drill-down.
	ProgramID string
	// PreselectedProgramID pre-fills the add-course and upload forms.
	PreselectedProgramID string

	FindContext FindContext
	SearchTerm  string

	Summary       Summary
	DraftFeedback string

	// Notice is a one-shot message for the visitor; every operation replaces it.
	Notice string

	Verification *Verification
}

func newState() State {
	return State{
		Page:        Home{},
		FindContext: FindSchool,
	}
}

// currentTarget picks the review target by priority teacher, course, school.
func (st *State) currentTarget() review.Target {
	switch {
	case st.TeacherID != "":
		return review.Target{Type: review.TargetTeacher, ID: st.TeacherID}
	case st.CourseID != "":
		return review.Target{Type: review.TargetCourse, ID: st.CourseID}
	case st.SchoolID != "":
		return review.Target{Type: review.TargetSchool, ID: st.SchoolID}
	}
	return review.Target{}
}

func (st *State) clone() State {
	out := *st
	if st.User != nil {
		u := *st.User
		out.User = &u
	}
	if st.Verification != nil {
		out.Verification = st.Verification.clone()
	}
	return out
}

// Session owns one State. All mutation goes through the controller while
// holding mu; readers take a Snapshot.
type Session struct {
	ID string

	mu         sync.Mutex
	state      State
	summarySeq uint64
	lastSeen   time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		state:    newState(),
		lastSeen: now,
	}
}

// Snapshot returns a copy of the state that is safe to read without the lock.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// update runs fn against the state under the session lock, clearing the
// previous notice first.
func (s *Session) update(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notice = ""
	return fn(&s.state)
}
