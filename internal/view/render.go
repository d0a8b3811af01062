package view

import (
	"slices"

	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/review"
	"github.com/HeidiChen0/Archool/internal/session"
)

// Render draws the current page of st. reviews is the live review list,
// newest first.
func Render(cat *catalog.Catalog, reviews []review.Review, st session.State) View {
	v := View{
		Page:   st.Page.ID(),
		User:   st.User,
		Notice: st.Notice,
	}

	switch p := st.Page.(type) {
	case session.Home:
		v.Home = renderHome(cat, st.SearchTerm)
	case session.FindSchools:
		v.FindSchools = renderFindSchools(cat, p)
	case session.SchoolDetail:
		school, ok := cat.School(p.SchoolID)
		if !ok {
			v.NotFound = "School not found"
			break
		}
		v.SchoolDetail = renderSchoolDetail(cat, school)
	case session.SchoolComments:
		name := "this school"
		if school, ok := cat.School(p.SchoolID); ok {
			name = school.Name
		}
		v.SchoolComments = &SchoolCommentsView{
			SchoolName: name,
			Reviews:    review.For(reviews, review.Target{Type: review.TargetSchool, ID: p.SchoolID}),
		}
	case session.TeacherDetail:
		teacher, ok := cat.Teacher(p.TeacherID)
		if !ok {
			v.NotFound = "Teacher not found"
			break
		}
		v.TeacherDetail = renderTeacherDetail(cat, reviews, teacher, st.Summary)
	case session.CourseDetail:
		course, ok := cat.Course(p.CourseID)
		if !ok {
			v.NotFound = "Course not found"
			break
		}
		v.CourseDetail = renderCourseDetail(cat, reviews, course, st.Summary)
	case session.ReviewForm:
		v.ReviewForm = &ReviewFormView{
			TargetName:    reviewTargetName(cat, p.Target),
			TargetType:    p.Target.Type,
			DraftFeedback: st.DraftFeedback,
		}
	case session.Programs:
		v.Programs = renderPrograms(cat, p.ProgramID)
	case session.AddTeacher:
		v.AddTeacher = &AddTeacherView{
			SchoolID:    p.SchoolID,
			Schools:     cat.Schools(),
			Honorifics:  honorifics,
			Departments: departments,
		}
	case session.AddCourse:
		v.AddCourse = &AddCourseView{ProgramID: p.ProgramID, Programs: cat.Programs()}
	case session.UploadResource:
		courses := cat.Courses()
		if p.ProgramID != "" {
			courses = cat.CoursesByProgram(p.ProgramID)
		}
		v.UploadResource = &UploadResourceView{
			ProgramID: p.ProgramID,
			Programs:  cat.Programs(),
			Courses:   courses,
			Types:     catalog.ResourceTypes,
		}
	case session.AmbassadorApply:
		v.AmbassadorApply = &AmbassadorApplyView{SchoolName: schoolName(cat, p.SchoolID)}
	case session.VerifyIdentity:
		vv := &VerifyIdentityView{
			SchoolName: schoolName(cat, p.SchoolID),
			Step:       session.StepRoles,
			ReturnPage: session.PageHome,
		}
		if p.Return != nil {
			vv.ReturnPage = p.Return.ID()
		}
		if st.Verification != nil {
			vv.Step = st.Verification.Step
			vv.Roles = st.Verification.Roles
		}
		v.VerifyIdentity = vv
	case session.Dashboard:
		if st.User == nil || st.User.Role != catalog.RoleAdmin {
			v.NotFound = "Dashboard is only available to admins"
			break
		}
		school := cat.FirstSchool()
		v.Dashboard = &DashboardView{
			School:       school,
			Teachers:     cat.TeachersBySchool(school.ID),
			TotalReviews: dashboardTotalReviews,
			Engagement:   dashboardEngagement,
			Trend:        slices.Clone(ratingTrend),
			Departments:  slices.Clone(departmentScores),
		}
	case session.Profile:
		if st.User == nil {
			v.NotFound = "Profile not found"
		}
	case session.Donation:
		v.Donation = &DonationView{Tiers: session.DonationTiers}
	case session.Login, session.About, session.Contact, session.AddSchool, session.AdminApply:
		// static pages
	}

	return v
}

func renderHome(cat *catalog.Catalog, term string) *HomeView {
	home := &HomeView{
		Heading:     HeadingFeatured,
		SearchTerm:  term,
		Placeholder: HomeSearchPlaceholder,
		Schools:     cat.SearchSchools(term),
	}
	if term != "" {
		home.Heading = HeadingSearchResults
	} else if len(home.Schools) > featuredCount {
		home.Schools = home.Schools[:featuredCount]
	}
	return home
}

func renderFindSchools(cat *catalog.Catalog, p session.FindSchools) *FindSchoolsView {
	fv := &FindSchoolsView{
		Context:     p.Context,
		Title:       FindSchoolTitle,
		Subtitle:    FindSchoolSubtitle,
		Placeholder: FindSchoolPlaceholder,
		Term:        p.Term,
		Schools:     cat.FindSchools(p.Term),
	}
	if p.Context == session.FindTeacher {
		fv.Title = FindTeacherTitle
		fv.Subtitle = FindTeacherSubtitle
		fv.Placeholder = FindTeacherPlaceholder
		fv.BrowseTeachers = true
	}
	return fv
}

func renderSchoolDetail(cat *catalog.Catalog, school catalog.School) *SchoolDetailView {
	links := make([]ProgramLink, 0, len(school.Programs))
	for _, name := range school.Programs {
		id, _ := cat.ProgramIDByName(name)
		links = append(links, ProgramLink{Name: name, ProgramID: id})
	}

	r := school.Ratings
	return &SchoolDetailView{
		School: school,
		Ratings: []Rating{
			{Key: "lunch", Label: "Lunch", Value: r.Lunch},
			{Key: "happiness", Label: "Happiness", Value: r.Happiness},
			{Key: "willingnessBack", Label: "Willingness to Return", Value: r.WillingnessBack},
			{Key: "bathroom", Label: "Bathrooms", Value: r.Bathroom},
			{Key: "cleanliness", Label: "Cleanliness", Value: r.Cleanliness},
			{Key: "infrastructure", Label: "Infrastructure", Value: r.Infrastructure},
			{Key: "wifi", Label: "WiFi", Value: r.Wifi},
			{Key: "overall", Label: "Overall Score", Value: r.Overall},
		},
		ProgramLinks:    links,
		Teachers:        cat.TeachersBySchool(school.ID),
		AmbassadorCount: school.AmbassadorCount,
		MaxAmbassadors:  catalog.MaxAmbassadors,
		CanApply:        school.HasAmbassadorSlot(),
	}
}

func renderTeacherDetail(cat *catalog.Catalog, reviews []review.Review, teacher catalog.Teacher, summary session.Summary) *TeacherDetailView {
	r := teacher.Ratings
	tv := &TeacherDetailView{
		Teacher: teacher,
		Ratings: []Rating{
			{Key: "difficulty", Label: "Difficulty", Value: r.Difficulty},
			{Key: "friendliness", Label: "Friendliness", Value: r.Friendliness},
			{Key: "homework", Label: "Homework", Value: r.Homework},
			{Key: "pacing", Label: "Pacing", Value: r.Pacing},
		},
		Reviews: review.ForTarget(reviews, teacher.ID),
		Summary: summaryFor(summary, review.Target{Type: review.TargetTeacher, ID: teacher.ID}),
	}
	if school, ok := cat.School(teacher.SchoolID); ok {
		tv.SchoolName = school.Name
	}
	return tv
}

func renderCourseDetail(cat *catalog.Catalog, reviews []review.Review, course catalog.Course, summary session.Summary) *CourseDetailView {
	r := course.Ratings
	cv := &CourseDetailView{
		Course: course,
		Ratings: []Rating{
			{Key: "difficulty", Label: "Difficulty", Value: r.Difficulty},
			{Key: "timeConsuming", Label: "Time Consuming", Value: r.TimeConsuming},
			{Key: "homework", Label: "Homework", Value: r.Homework},
			{Key: "selfStudibility", Label: "Self-Studibility", Value: r.SelfStudibility},
		},
		Reviews: review.ForTarget(reviews, course.ID),
		Summary: summaryFor(summary, review.Target{Type: review.TargetCourse, ID: course.ID}),
	}
	if program, ok := cat.Program(course.ProgramID); ok {
		cv.ProgramName = program.Name
	}
	return cv
}

// summaryFor hides a summary that belongs to another target.
func summaryFor(summary session.Summary, target review.Target) SummaryView {
	if summary.Target != target {
		return SummaryView{}
	}
	return SummaryView{Text: summary.Text, Generating: summary.Generating}
}

func renderPrograms(cat *catalog.Catalog, programID string) *ProgramsView {
	pv := &ProgramsView{Programs: cat.Programs()}
	if programID == "" {
		return pv
	}
	program, ok := cat.Program(programID)
	if !ok {
		return pv
	}
	pv.Selected = &program
	pv.Courses = cat.CoursesByProgram(program.ID)
	pv.Resources = cat.FilterResources(catalog.ResourceFilter{ProgramID: program.ID})
	return pv
}

func reviewTargetName(cat *catalog.Catalog, target review.Target) string {
	switch target.Type {
	case review.TargetTeacher:
		t, _ := cat.Teacher(target.ID)
		return t.Name
	case review.TargetCourse:
		c, _ := cat.Course(target.ID)
		return c.Name
	}
	if s, ok := cat.School(target.ID); ok {
		return s.Name
	}
	return "School"
}

func schoolName(cat *catalog.Catalog, id string) string {
	if s, ok := cat.School(id); ok {
		return s.Name
	}
	return fallbackSchoolName
}
