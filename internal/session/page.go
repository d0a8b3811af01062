package session

import "github.com/HeidiChen0/Archool/internal/review"

// PageID is the stable string name of a page, as used by Navigate and in rendered views.
type PageID string

const (
	PageHome            PageID = "home"
	PageLogin           PageID = "login"
	PageSchoolDetail    PageID = "school-detail"
	PageSchoolComments  PageID = "school-comments"
	PageTeacherDetail   PageID = "teacher-detail"
	PageCourseDetail    PageID = "course-detail"
	PageReviewForm      PageID = "review-form"
	PageDashboard       PageID = "dashboard"
	PageAbout           PageID = "about"
	PageContact         PageID = "contact"
	PageProfile         PageID = "profile"
	PagePrograms        PageID = "programs"
	PageAddSchool       PageID = "add-school"
	PageAddTeacher      PageID = "add-teacher"
	PageAddCourse       PageID = "add-course"
	PageUploadResource  PageID = "upload-resource"
	PageAdminApply      PageID = "admin-apply"
	PageAmbassadorApply PageID = "ambassador-apply"
	PageVerifyIdentity  PageID = "verify-identity"
	PageFindSchools     PageID = "find-schools"
	PageDonation        PageID = "donation"
)

// Navigation aliases that do not name a page of their own.
const (
	NavFindTeachers PageID = "find-teachers"
	NavResources    PageID = "resources"
)

// FindContext tells the shared find-schools page whether the visitor is
// looking for a school or for a school as a step toward a teacher.
type FindContext string

const (
	FindSchool  FindContext = "school"
	FindTeacher FindContext = "teacher"
)

// Page is the closed set of pages a session can be on. Variants carry the ids
// they render, so a page value is never missing its selection.
type Page interface {
	ID() PageID
	page()
}

type (
	Home       struct{}
	Login      struct{}
	Dashboard  struct{}
	About      struct{}
	Contact    struct{}
	Profile    struct{}
	AddSchool  struct{}
	AdminApply struct{}
	Donation   struct{}

	SchoolDetail    struct{ SchoolID string }
	SchoolComments  struct{ SchoolID string }
	TeacherDetail   struct{ TeacherID string }
	CourseDetail    struct{ CourseID string }
	ReviewForm      struct{ Target review.Target }
	AmbassadorApply struct{ SchoolID string }

	// Programs is the program center; an empty ProgramID lists every program.
	Programs struct{ ProgramID string }
	// AddTeacher pre-fills the school; the form may pick another.
	AddTeacher struct{ SchoolID string }
	// AddCourse pre-fills the program when one was chosen.
	AddCourse      struct{ ProgramID string }
	UploadResource struct{ ProgramID string }

	// VerifyIdentity runs the verification wizard for SchoolID and resumes
	// on Return when it completes or is cancelled.
	VerifyIdentity struct {
		SchoolID string
		Return   Page
	}

	// FindSchools carries the page-local search box alongside its context.
	FindSchools struct {
		Context FindContext
		Term    string
	}
)

func (Home) ID() PageID            { return PageHome }
func (Login) ID() PageID           { return PageLogin }
func (Dashboard) ID() PageID       { return PageDashboard }
func (About) ID() PageID           { return PageAbout }
func (Contact) ID() PageID         { return PageContact }
func (Profile) ID() PageID         { return PageProfile }
func (AddSchool) ID() PageID       { return PageAddSchool }
func (AdminApply) ID() PageID      { return PageAdminApply }
func (Donation) ID() PageID        { return PageDonation }
func (SchoolDetail) ID() PageID    { return PageSchoolDetail }
func (SchoolComments) ID() PageID  { return PageSchoolComments }
func (TeacherDetail) ID() PageID   { return PageTeacherDetail }
func (CourseDetail) ID() PageID    { return PageCourseDetail }
func (ReviewForm) ID() PageID      { return PageReviewForm }
func (AmbassadorApply) ID() PageID { return PageAmbassadorApply }
func (Programs) ID() PageID        { return PagePrograms }
func (AddTeacher) ID() PageID      { return PageAddTeacher }
func (AddCourse) ID() PageID       { return PageAddCourse }
func (UploadResource) ID() PageID  { return PageUploadResource }
func (VerifyIdentity) ID() PageID  { return PageVerifyIdentity }
func (FindSchools) ID() PageID     { return PageFindSchools }

func (Home) page()            {}
func (Login) page()           {}
func (Dashboard) page()       {}
func (About) page()           {}
func (Contact) page()         {}
func (Profile) page()         {}
func (AddSchool) page()       {}
func (AdminApply) page()      {}
func (Donation) page()        {}
func (SchoolDetail) page()    {}
func (SchoolComments) page()  {}
func (TeacherDetail) page()   {}
func (CourseDetail) page()    {}
func (ReviewForm) page()      {}
func (AmbassadorApply) page() {}
func (Programs) page()        {}
func (AddTeacher) page()      {}
func (AddCourse) page()       {}
func (UploadResource) page()  {}
func (VerifyIdentity) page()  {}
func (FindSchools) page()     {}
