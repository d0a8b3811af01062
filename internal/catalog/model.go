package catalog

type SchoolType string

const (
	SchoolPublic        SchoolType = "Public"
	SchoolPrivate       SchoolType = "Private"
	SchoolCharter       SchoolType = "Charter"
	SchoolInternational SchoolType = "International"
)

// MaxAmbassadors is the number of ambassador slots every school offers.
const MaxAmbassadors = 10

type SchoolRatings struct {
	Lunch           float64 `json:"lunch"`
	Happiness       float64 `json:"happiness"`
	WillingnessBack float64 `json:"willingnessBack"`
	Bathroom        float64 `json:"bathroom"`
	Cleanliness     float64 `json:"cleanliness"`
	Infrastructure  float64 `json:"infrastructure"`
	Wifi            float64 `json:"wifi"`
	Overall         float64 `json:"overall"`
}

type School struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Location        string        `json:"location"`
	Type            SchoolType    `json:"type"`
	Description     string        `json:"description"`
	ImageURL        string        `json:"imageUrl"`
	Ratings         SchoolRatings `json:"ratings"`
	Features        []string      `json:"features"`
	Principal       string        `json:"principal,omitempty"`
	Programs        []string      `json:"programs,omitempty"`
	AmbassadorCount int           `json:"ambassadorCount,omitempty"`
}

// HasAmbassadorSlot reports whether the school still accepts ambassador applications.
func (s School) HasAmbassadorSlot() bool {
	return s.AmbassadorCount < MaxAmbassadors
}

type TeacherRatings struct {
	Difficulty   float64 `json:"difficulty"`
	Friendliness float64 `json:"friendliness"`
	Homework     float64 `json:"homework"`
	Pacing       float64 `json:"pacing"`
	Overall      float64 `json:"overall"`
}

type Teacher struct {
	ID         string         `json:"id"`
	SchoolID   string         `json:"schoolId"`
	Name       string         `json:"name"`
	Subject    string         `json:"subject"`
	Department string         `json:"department"`
	Ratings    TeacherRatings `json:"ratings"`
}

type Program struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CourseRatings struct {
	Difficulty      float64 `json:"difficulty"`
	TimeConsuming   float64 `json:"timeConsuming"`
	Homework        float64 `json:"homework"`
	SelfStudibility float64 `json:"selfStudibility"`
	Overall         float64 `json:"overall"`
}

type Course struct {
	ID        string        `json:"id"`
	ProgramID string        `json:"programId"`
	Name      string        `json:"name"`
	Ratings   CourseRatings `json:"ratings"`
}

type ResourceType string

const (
	ResourceNotes     ResourceType = "Notes"
	ResourcePastPaper ResourceType = "Past Paper"
	ResourceGuide     ResourceType = "Guide"
	ResourceOther     ResourceType = "Other"
)

// ResourceTypes is the closed set of resource type tags, in display order.
var ResourceTypes = []ResourceType{
	ResourceNotes,
	ResourcePastPaper,
	ResourceGuide,
	ResourceOther,
}

// ValidResourceType reports whether t belongs to ResourceTypes.
func ValidResourceType(t ResourceType) bool {
	for _, known := range ResourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Resource struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Source    string         `json:"source"`
	URL       string         `json:"url"`
	ProgramID string         `json:"programId"`
	CourseIDs []string       `json:"courseIds,omitempty"`
	Types     []ResourceType `json:"types"`
	Tags      []string       `json:"tags"`
	ShowName  bool           `json:"showName"`
}

type Role string

const (
	RoleStudent   Role = "Student"
	RoleParent    Role = "Parent"
	RoleAdmin     Role = "Admin"
	RoleModerator Role = "Moderator"
)

type User struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Role              Role   `json:"role"`
	Verified          bool   `json:"verified"`
	AvatarURL         string `json:"avatarUrl,omitempty"`
	VerificationEmail string `json:"verificationEmail,omitempty"`
	GraduationYear    int    `json:"graduationYear,omitempty"`
}
