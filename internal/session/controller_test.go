package session_test

import (
	"context"
	"testing"

	"github.com/HeidiChen0/Archool/internal/events"
	"github.com/HeidiChen0/Archool/internal/review"
	"github.com/HeidiChen0/Archool/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate(t *testing.T) {
	ctx := context.Background()

	t.Run("Navigate_InitialPageIsHome", func(t *testing.T) {
		f := newFixture(t, nil)
		snap := f.sess.Snapshot()
		assert.Equal(t, session.Home{}, snap.Page)
		assert.Nil(t, snap.User)
		assert.Equal(t, session.FindSchool, snap.FindContext)
	})

	t.Run("Navigate_FindTeachers", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.NavFindTeachers))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.PageFindSchools, snap.Page.ID())
		assert.Equal(t, session.FindSchools{Context: session.FindTeacher}, snap.Page)
		assert.Equal(t, session.FindTeacher, snap.FindContext)
	})

	t.Run("Navigate_FindSchools", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.NavFindTeachers))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageFindSchools))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.FindSchools{Context: session.FindSchool}, snap.Page)
		assert.Equal(t, session.FindSchool, snap.FindContext)
	})

	t.Run("Navigate_ProgramsResetsSelection", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectProgram(ctx, f.sess, "p1"))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.NavResources))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.Programs{}, snap.Page)
		assert.Empty(t, snap.ProgramID)
	})

	t.Run("Navigate_UnknownPage", func(t *testing.T) {
		f := newFixture(t, nil)
		err := f.ctrl.Navigate(ctx, f.sess, "nowhere")
		assert.ErrorIs(t, err, session.ErrUnknownPage)
		assert.Equal(t, session.Home{}, f.sess.Snapshot().Page)
	})

	t.Run("Navigate_MissingSelection", func(t *testing.T) {
		f := newFixture(t, nil)
		for _, id := range []session.PageID{
			session.PageSchoolDetail,
			session.PageSchoolComments,
			session.PageTeacherDetail,
			session.PageCourseDetail,
			session.PageReviewForm,
			session.PageAmbassadorApply,
		} {
			err := f.ctrl.Navigate(ctx, f.sess, id)
			assert.ErrorIs(t, err, session.ErrMissingSelection, "page %s", id)
		}
		assert.Equal(t, session.Home{}, f.sess.Snapshot().Page)
	})

	t.Run("Navigate_UsesSelections", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s1"))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageSchoolComments))
		assert.Equal(t, session.SchoolComments{SchoolID: "s1"}, f.sess.Snapshot().Page)

		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageReviewForm))
		assert.Equal(t, session.ReviewForm{Target: review.Target{Type: review.TargetSchool, ID: "s1"}}, f.sess.Snapshot().Page)

		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageAddTeacher))
		assert.Equal(t, session.AddTeacher{SchoolID: "s1"}, f.sess.Snapshot().Page)
	})

	t.Run("Navigate_BackToSchoolRetargetsReview", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Login(ctx, f.sess))
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageSchoolDetail))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.SchoolDetail{SchoolID: "s1"}, snap.Page)
		assert.Empty(t, snap.TeacherID)
		assert.Empty(t, snap.CourseID)

		require.NoError(t, f.ctrl.RequestReview(ctx, f.sess))
		assert.Equal(t, session.ReviewForm{Target: review.Target{Type: review.TargetSchool, ID: "s1"}}, f.sess.Snapshot().Page)
	})

	t.Run("Navigate_CommentsClearsCourse", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s1"))
		require.NoError(t, f.ctrl.SelectCourse(ctx, f.sess, "c1"))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageSchoolComments))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.SchoolComments{SchoolID: "s1"}, snap.Page)
		assert.Empty(t, snap.CourseID)
	})

	t.Run("Navigate_ProfileNeedsUser", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageProfile))
		assert.Equal(t, session.Login{}, f.sess.Snapshot().Page)

		require.NoError(t, f.ctrl.Login(ctx, f.sess))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageProfile))
		assert.Equal(t, session.Profile{}, f.sess.Snapshot().Page)
	})

	t.Run("Navigate_AmbassadorSlots", func(t *testing.T) {
		f := newFixture(t, nil)

		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s1"))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageAmbassadorApply))
		assert.Equal(t, session.AmbassadorApply{SchoolID: "s1"}, f.sess.Snapshot().Page)

		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s2"))
		err := f.ctrl.Navigate(ctx, f.sess, session.PageAmbassadorApply)
		assert.ErrorIs(t, err, session.ErrAmbassadorSlotsFull)
		assert.Equal(t, session.SchoolDetail{SchoolID: "s2"}, f.sess.Snapshot().Page)
	})

	t.Run("Navigate_VerifyIdentityRemembersReturn", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Login(ctx, f.sess))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageProfile))
		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageVerifyIdentity))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.VerifyIdentity{Return: session.Profile{}}, snap.Page)
		require.NotNil(t, snap.Verification)
		assert.Equal(t, session.StepRoles, snap.Verification.Step)
	})
}

func TestSelect(t *testing.T) {
	ctx := context.Background()

	t.Run("SelectSchool_ClearsTeacherAndCourse", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s2"))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.SchoolDetail{SchoolID: "s2"}, snap.Page)
		assert.Equal(t, "s2", snap.SchoolID)
		assert.Empty(t, snap.TeacherID)
		assert.Empty(t, snap.CourseID)
	})

	t.Run("SelectTeacher_SetsSchoolAndClearsCourse", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectCourse(ctx, f.sess, "c1"))
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t3"))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.TeacherDetail{TeacherID: "t3"}, snap.Page)
		assert.Equal(t, "s2", snap.SchoolID)
		assert.Empty(t, snap.CourseID)
	})

	t.Run("SelectCourse_ClearsTeacher", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))
		require.NoError(t, f.ctrl.SelectCourse(ctx, f.sess, "c3"))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.CourseDetail{CourseID: "c3"}, snap.Page)
		assert.Empty(t, snap.TeacherID)
		assert.Equal(t, "p2", snap.ProgramID)
	})

	t.Run("Select_UnknownIDStillRoutes", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s404"))
		assert.Equal(t, session.SchoolDetail{SchoolID: "s404"}, f.sess.Snapshot().Page)
	})

	t.Run("Select_ClearsSummary", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))
		require.NoError(t, f.ctrl.GenerateSummary(ctx, f.sess))
		require.NotEmpty(t, f.sess.Snapshot().Summary.Text)

		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t2"))
		assert.Equal(t, session.Summary{}, f.sess.Snapshot().Summary)
	})

	t.Run("SelectProgramByName", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectProgramByName(ctx, f.sess, "IBDP"))
		assert.Equal(t, session.Programs{ProgramID: "p1"}, f.sess.Snapshot().Page)

		require.NoError(t, f.ctrl.SelectProgramByName(ctx, f.sess, "Honors"))
		assert.Equal(t, session.Programs{}, f.sess.Snapshot().Page)
	})

	t.Run("SetSearchTerm", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SetSearchTerm(ctx, f.sess, "Lincoln"))
		assert.Equal(t, "Lincoln", f.sess.Snapshot().SearchTerm)

		require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.NavFindTeachers))
		require.NoError(t, f.ctrl.SetSearchTerm(ctx, f.sess, "Portland"))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.FindSchools{Context: session.FindTeacher, Term: "Portland"}, snap.Page)
		assert.Equal(t, "Lincoln", snap.SearchTerm)
	})
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	require.NoError(t, f.ctrl.Navigate(ctx, f.sess, session.PageAbout))
	require.NoError(t, f.ctrl.Login(ctx, f.sess))

	snap := f.sess.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, "Alex Chen", snap.User.Name)
	assert.True(t, snap.User.Verified)
	assert.Equal(t, session.Home{}, snap.Page)

	require.NoError(t, f.ctrl.Logout(ctx, f.sess))
	snap = f.sess.Snapshot()
	assert.Nil(t, snap.User)
	assert.Equal(t, session.Home{}, snap.Page)
}

func TestRequestReview(t *testing.T) {
	ctx := context.Background()

	t.Run("RequestReview_AnonymousGoesToLogin", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))
		require.NoError(t, f.ctrl.RequestReview(ctx, f.sess))
		assert.Equal(t, session.Login{}, f.sess.Snapshot().Page)
	})

	t.Run("RequestReview_SignedIn", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Login(ctx, f.sess))
		require.NoError(t, f.ctrl.SelectCourse(ctx, f.sess, "c2"))
		require.NoError(t, f.ctrl.RequestReview(ctx, f.sess))
		assert.Equal(t, session.ReviewForm{Target: review.Target{Type: review.TargetCourse, ID: "c2"}}, f.sess.Snapshot().Page)
	})

	t.Run("RequestReview_NoTarget", func(t *testing.T) {
		f := newFixture(t, nil)
		assert.ErrorIs(t, f.ctrl.RequestReview(ctx, f.sess), session.ErrMissingSelection)
	})
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()
	input := session.ReviewInput{Rating: 4, Comment: "Clear explanations and fair tests overall."}

	t.Run("SubmitReview_Anonymous", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t2"))

		created, err := f.ctrl.SubmitReview(ctx, f.sess, input)
		require.NoError(t, err)

		assert.Equal(t, review.AnonymousAuthor, created.AuthorName)
		assert.False(t, created.VerifiedStudent)
		assert.Equal(t, "t2", created.TargetID)
		assert.Equal(t, review.TargetTeacher, created.TargetType)
		assert.Equal(t, review.NewID(fixedNow), created.ID)
		assert.Equal(t, "2025-03-14", created.Date)
		assert.Equal(t, session.TeacherDetail{TeacherID: "t2"}, f.sess.Snapshot().Page)
	})

	t.Run("SubmitReview_SignedInCopiesUser", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Login(ctx, f.sess))
		require.NoError(t, f.ctrl.SelectCourse(ctx, f.sess, "c1"))

		created, err := f.ctrl.SubmitReview(ctx, f.sess, input)
		require.NoError(t, err)

		assert.Equal(t, "Alex Chen", created.AuthorName)
		assert.True(t, created.VerifiedStudent)
		assert.Equal(t, review.TargetCourse, created.TargetType)
		assert.Equal(t, session.CourseDetail{CourseID: "c1"}, f.sess.Snapshot().Page)
	})

	t.Run("SubmitReview_SchoolTargetGoesToComments", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s2"))

		created, err := f.ctrl.SubmitReview(ctx, f.sess, input)
		require.NoError(t, err)

		assert.Equal(t, review.TargetSchool, created.TargetType)
		assert.Equal(t, session.SchoolComments{SchoolID: "s2"}, f.sess.Snapshot().Page)
	})

	t.Run("SubmitReview_Prepends", func(t *testing.T) {
		f := newFixture(t, nil)
		before, err := f.reviews.List(ctx)
		require.NoError(t, err)

		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))
		created, err := f.ctrl.SubmitReview(ctx, f.sess, input)
		require.NoError(t, err)

		after, err := f.reviews.List(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		assert.Equal(t, created, after[0])
		assert.Equal(t, before, after[1:])
	})

	t.Run("SubmitReview_PublishesEvent", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s1"))
		_, err := f.ctrl.SubmitReview(ctx, f.sess, input)
		require.NoError(t, err)

		require.Len(t, f.publisher.events, 1)
		event := f.publisher.events[0]
		assert.Equal(t, events.TypeReviewSubmitted, event.Type)
		assert.Equal(t, f.sess.ID, event.SessionID)
		assert.Equal(t, fixedNow, event.OccurredAt)
	})

	t.Run("SubmitReview_PublishFailureIsSwallowed", func(t *testing.T) {
		f := newFixture(t, nil)
		f.publisher.err = assert.AnError
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s1"))

		_, err := f.ctrl.SubmitReview(ctx, f.sess, input)
		assert.NoError(t, err)
	})

	t.Run("SubmitReview_InvalidInput", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s1"))

		cases := []session.ReviewInput{
			{Rating: 0, Comment: "Long enough comment here."},
			{Rating: 6, Comment: "Long enough comment here."},
			{Rating: 3, Comment: "too short"},
			{Rating: 3, Comment: "   tenchars!   "},
			{Rating: 3, Comment: "很好的学校很好"},
		}
		for _, in := range cases {
			_, err := f.ctrl.SubmitReview(ctx, f.sess, in)
			assert.ErrorIs(t, err, session.ErrInvalidInput, "input %+v", in)
		}

		all, err := f.reviews.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("SubmitReview_NoTarget", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.ctrl.SubmitReview(ctx, f.sess, input)
		assert.ErrorIs(t, err, session.ErrMissingSelection)
	})
}

func TestGenerateSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("GenerateSummary_NoReviews", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t2"))
		require.NoError(t, f.ctrl.GenerateSummary(ctx, f.sess))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.NotEnoughData, snap.Summary.Text)
		assert.False(t, snap.Summary.Generating)
		assert.Zero(t, f.assistant.calls())
	})

	t.Run("GenerateSummary_UnknownTarget", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s404"))
		require.NoError(t, f.ctrl.GenerateSummary(ctx, f.sess))

		assert.Equal(t, session.NotEnoughData, f.sess.Snapshot().Summary.Text)
		assert.Zero(t, f.assistant.calls())
	})

	t.Run("GenerateSummary_Success", func(t *testing.T) {
		f := newFixture(t, &fakeAssistant{texts: []string{"- clear\n- hard tests\n- caring"}})
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))
		require.NoError(t, f.ctrl.GenerateSummary(ctx, f.sess))

		snap := f.sess.Snapshot()
		assert.Equal(t, "- clear\n- hard tests\n- caring", snap.Summary.Text)
		assert.Equal(t, review.Target{Type: review.TargetTeacher, ID: "t1"}, snap.Summary.Target)
		assert.Equal(t, []string{"Mr. John Anderson"}, f.assistant.names)
		require.Len(t, f.assistant.comments, 1)
		assert.Len(t, f.assistant.comments[0], 2)
	})

	t.Run("GenerateSummary_StaleAfterSelectionChange", func(t *testing.T) {
		asst := gatedAssistant("- stale")
		f := newFixture(t, asst)
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))

		done := make(chan error, 1)
		go func() { done <- f.ctrl.GenerateSummary(ctx, f.sess) }()

		<-asst.started
		assert.True(t, f.sess.Snapshot().Summary.Generating)

		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s2"))
		close(asst.releases[1])
		require.NoError(t, <-done)

		snap := f.sess.Snapshot()
		assert.Equal(t, session.Summary{}, snap.Summary)
		assert.Equal(t, session.SchoolDetail{SchoolID: "s2"}, snap.Page)
	})

	t.Run("GenerateSummary_NewestRequestWins", func(t *testing.T) {
		asst := gatedAssistant("- first", "- second")
		f := newFixture(t, asst)
		require.NoError(t, f.ctrl.SelectSchool(ctx, f.sess, "s1"))

		first := make(chan error, 1)
		go func() { first <- f.ctrl.GenerateSummary(ctx, f.sess) }()
		<-asst.started

		second := make(chan error, 1)
		go func() { second <- f.ctrl.GenerateSummary(ctx, f.sess) }()
		<-asst.started

		close(asst.releases[2])
		require.NoError(t, <-second)
		close(asst.releases[1])
		require.NoError(t, <-first)

		snap := f.sess.Snapshot()
		assert.Equal(t, "- second", snap.Summary.Text)
		assert.False(t, snap.Summary.Generating)
	})
}

func TestAnalyzeDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("AnalyzeDraft_StoresFeedbackOnForm", func(t *testing.T) {
		f := newFixture(t, &fakeAssistant{analysis: "Great draft!"})
		require.NoError(t, f.ctrl.Login(ctx, f.sess))
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t1"))
		require.NoError(t, f.ctrl.RequestReview(ctx, f.sess))

		feedback, err := f.ctrl.AnalyzeDraft(ctx, f.sess, "Tests are hard but fair.")
		require.NoError(t, err)

		assert.Equal(t, "Great draft!", feedback)
		assert.Equal(t, "Great draft!", f.sess.Snapshot().DraftFeedback)
		assert.Equal(t, []string{"Teacher"}, f.assistant.draftTypes)
	})

	t.Run("AnalyzeDraft_Empty", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.ctrl.AnalyzeDraft(ctx, f.sess, "   ")
		assert.ErrorIs(t, err, session.ErrInvalidInput)
	})
}

func TestRequestUploadResource(t *testing.T) {
	ctx := context.Background()

	t.Run("RequestUploadResource_Anonymous", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.RequestUploadResource(ctx, f.sess, "p1"))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.VerifyIdentity{SchoolID: "s1", Return: session.SchoolDetail{SchoolID: "s1"}}, snap.Page)
		assert.Equal(t, "s1", snap.SchoolID)
		assert.Equal(t, session.NoticeVerificationRequired, snap.Notice)
		assert.Empty(t, snap.PreselectedProgramID)
	})

	t.Run("RequestUploadResource_GateClearsTeacher", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.SelectTeacher(ctx, f.sess, "t3"))
		require.NoError(t, f.ctrl.RequestUploadResource(ctx, f.sess, "p1"))

		snap := f.sess.Snapshot()
		assert.Equal(t, "s1", snap.SchoolID)
		assert.Empty(t, snap.TeacherID)
		assert.Empty(t, snap.CourseID)
	})

	t.Run("RequestUploadResource_Unverified", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Login(ctx, f.sess))
		session.SetUserVerified(f.sess, false)

		require.NoError(t, f.ctrl.RequestUploadResource(ctx, f.sess, "p2"))
		assert.Equal(t, session.PageVerifyIdentity, f.sess.Snapshot().Page.ID())
	})

	t.Run("RequestUploadResource_Verified", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.Login(ctx, f.sess))
		require.NoError(t, f.ctrl.RequestUploadResource(ctx, f.sess, "p2"))

		snap := f.sess.Snapshot()
		assert.Equal(t, session.UploadResource{ProgramID: "p2"}, snap.Page)
		assert.Equal(t, "p2", snap.PreselectedProgramID)
		assert.Empty(t, snap.Notice)
	})

	t.Run("RequestAddCourse", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.ctrl.RequestAddCourse(ctx, f.sess, "p3"))
		assert.Equal(t, session.AddCourse{ProgramID: "p3"}, f.sess.Snapshot().Page)
	})
}
