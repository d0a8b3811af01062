package view

import (
	"net/http"

	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/review"
	"github.com/HeidiChen0/Archool/internal/session"
)

// Copy for the shared find-schools page, by context.
const (
	FindSchoolTitle       = "Find Your School"
	FindSchoolSubtitle    = "Browse our complete directory of verified schools. Search by name or location to find the best educational environment for you."
	FindSchoolPlaceholder = "Search by school name or location..."

	FindTeacherTitle       = "Find Your Teacher"
	FindTeacherSubtitle    = "To find a specific teacher, first locate the school they teach at. Select a school below to view its faculty directory."
	FindTeacherPlaceholder = "Search for the school your teacher works at..."
)

const (
	HomeSearchPlaceholder = "Search for your school..."
	HeadingSearchResults  = "Search Results"
	HeadingFeatured       = "Featured Schools"
	featuredCount         = 3

	// fallbackSchoolName labels forms whose school id does not resolve.
	fallbackSchoolName = "Your School"
)

// View is everything the client needs to draw the current page. Exactly one
// page payload is set, unless NotFound explains why none could be built.
type View struct {
	Page     session.PageID `json:"page"`
	User     *catalog.User  `json:"user"`
	Notice   string         `json:"notice,omitempty"`
	NotFound string         `json:"notFound,omitempty"`

	Home            *HomeView            `json:"home,omitempty"`
	FindSchools     *FindSchoolsView     `json:"findSchools,omitempty"`
	SchoolDetail    *SchoolDetailView    `json:"schoolDetail,omitempty"`
	SchoolComments  *SchoolCommentsView  `json:"schoolComments,omitempty"`
	TeacherDetail   *TeacherDetailView   `json:"teacherDetail,omitempty"`
	CourseDetail    *CourseDetailView    `json:"courseDetail,omitempty"`
	ReviewForm      *ReviewFormView      `json:"reviewForm,omitempty"`
	Programs        *ProgramsView        `json:"programs,omitempty"`
	AddTeacher      *AddTeacherView      `json:"addTeacher,omitempty"`
	AddCourse       *AddCourseView       `json:"addCourse,omitempty"`
	UploadResource  *UploadResourceView  `json:"uploadResource,omitempty"`
	AmbassadorApply *AmbassadorApplyView `json:"ambassadorApply,omitempty"`
	VerifyIdentity  *VerifyIdentityView  `json:"verifyIdentity,omitempty"`
	Dashboard       *DashboardView       `json:"dashboard,omitempty"`
	Donation        *DonationView        `json:"donation,omitempty"`
}

// HTTPStatus is 404 for unresolved pages and 200 otherwise.
func (v View) HTTPStatus() int {
	if v.NotFound != "" {
		return http.StatusNotFound
	}
	return http.StatusOK
}

type HomeView struct {
	Heading     string           `json:"heading"`
	SearchTerm  string           `json:"searchTerm"`
	Placeholder string           `json:"placeholder"`
	Schools     []catalog.School `json:"schools"`
}

type FindSchoolsView struct {
	Context     session.FindContext `json:"context"`
	Title       string              `json:"title"`
	Subtitle    string              `json:"subtitle"`
	Placeholder string              `json:"placeholder"`
	Term        string              `json:"term"`
	// BrowseTeachers marks each card with a link into the faculty directory.
	BrowseTeachers bool             `json:"browseTeachers"`
	Schools        []catalog.School `json:"schools"`
}

type Rating struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ProgramLink struct {
	Name      string `json:"name"`
	ProgramID string `json:"programId,omitempty"`
}

type SchoolDetailView struct {
	School          catalog.School    `json:"school"`
	Ratings         []Rating          `json:"ratings"`
	ProgramLinks    []ProgramLink     `json:"programLinks"`
	Teachers        []catalog.Teacher `json:"teachers"`
	AmbassadorCount int               `json:"ambassadorCount"`
	MaxAmbassadors  int               `json:"maxAmbassadors"`
	CanApply        bool              `json:"canApply"`
}

type SchoolCommentsView struct {
	SchoolName string          `json:"schoolName"`
	Reviews    []review.Review `json:"reviews"`
}

type SummaryView struct {
	Text       string `json:"text,omitempty"`
	Generating bool   `json:"generating"`
}

type TeacherDetailView struct {
	Teacher    catalog.Teacher `json:"teacher"`
	SchoolName string          `json:"schoolName,omitempty"`
	Ratings    []Rating        `json:"ratings"`
	Reviews    []review.Review `json:"reviews"`
	Summary    SummaryView     `json:"summary"`
}

type CourseDetailView struct {
	Course      catalog.Course  `json:"course"`
	ProgramName string          `json:"programName,omitempty"`
	Ratings     []Rating        `json:"ratings"`
	Reviews     []review.Review `json:"reviews"`
	Summary     SummaryView     `json:"summary"`
}

type ReviewFormView struct {
	TargetName    string            `json:"targetName"`
	TargetType    review.TargetType `json:"targetType"`
	DraftFeedback string            `json:"draftFeedback,omitempty"`
}

type ProgramsView struct {
	Programs  []catalog.Program  `json:"programs"`
	Selected  *catalog.Program   `json:"selected,omitempty"`
	Courses   []catalog.Course   `json:"courses,omitempty"`
	Resources []catalog.Resource `json:"resources,omitempty"`
}

type AddTeacherView struct {
	SchoolID    string           `json:"schoolId"`
	Schools     []catalog.School `json:"schools"`
	Honorifics  []string         `json:"honorifics"`
	Departments []string         `json:"departments"`
}

type AddCourseView struct {
	ProgramID string            `json:"programId"`
	Programs  []catalog.Program `json:"programs"`
}

type UploadResourceView struct {
	ProgramID string                 `json:"programId"`
	Programs  []catalog.Program      `json:"programs"`
	Courses   []catalog.Course       `json:"courses"`
	Types     []catalog.ResourceType `json:"types"`
}

type AmbassadorApplyView struct {
	SchoolName string `json:"schoolName"`
}

type VerifyIdentityView struct {
	SchoolName string                     `json:"schoolName"`
	Step       session.VerificationStep   `json:"step"`
	Roles      []session.VerificationRole `json:"roles,omitempty"`
	ReturnPage session.PageID             `json:"returnPage"`
}

type DashboardView struct {
	School       catalog.School    `json:"school"`
	Teachers     []catalog.Teacher `json:"teachers"`
	TotalReviews int               `json:"totalReviews"`
	Engagement   int               `json:"engagementPercent"`
	Trend        []TrendPoint      `json:"trend"`
	Departments  []DepartmentScore `json:"departments"`
}

// TrendPoint is one month of the average rating chart.
type TrendPoint struct {
	Month  string  `json:"month"`
	Rating float64 `json:"rating"`
}

type DepartmentScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Dashboard figures are mock analytics; nothing aggregates them from reviews.
const (
	dashboardTotalReviews = 1248
	dashboardEngagement   = 89
)

var (
	ratingTrend = []TrendPoint{
		{Month: "Jan", Rating: 3.8},
		{Month: "Feb", Rating: 3.9},
		{Month: "Mar", Rating: 4.1},
		{Month: "Apr", Rating: 4.0},
		{Month: "May", Rating: 4.3},
		{Month: "Jun", Rating: 4.4},
	}
	departmentScores = []DepartmentScore{
		{Name: "Math", Score: 4.2},
		{Name: "Science", Score: 4.5},
		{Name: "History", Score: 3.8},
		{Name: "English", Score: 4.1},
		{Name: "Arts", Score: 4.7},
	}
)

type DonationView struct {
	Tiers []float64 `json:"tiers"`
}

var (
	honorifics  = []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Mx."}
	departments = []string{"Mathematics", "Science", "History", "English", "Languages", "Arts", "PE", "Other"}
)
