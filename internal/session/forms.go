package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/HeidiChen0/Archool/internal/catalog"
	"github.com/HeidiChen0/Archool/internal/events"
)

// Acknowledgement notices shown after a form is accepted.
const (
	NoticeSchoolSubmitted     = "School submitted for moderation!"
	NoticeAmbassadorSubmitted = "Application submitted! Our team will review your student profile and get back to you within 48 hours. Stay tuned!"
	NoticeAdminSubmitted      = "Application sent!"
	NoticeProfileUpdated      = "Profile updated!"
	NoticeCommentSent         = "Comment sent to the void! (Or at least it would be if we had a database)"
)

type AddTeacherForm struct {
	SchoolID   string `json:"schoolId" validate:"required"`
	Honorific  string `json:"honorific" validate:"required,oneof=Mr. Mrs. Ms. Dr. Mx."`
	Name       string `json:"name" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Department string `json:"department" validate:"required,oneof=Mathematics Science History English Languages Arts PE Other"`
}

// AddTeacher appends a teacher with zero ratings and opens their school.
func (c *Controller) AddTeacher(ctx context.Context, s *Session, form AddTeacherForm) (catalog.Teacher, error) {
	if err := c.validateForm(form); err != nil {
		return catalog.Teacher{}, err
	}
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Subject) == "" {
		return catalog.Teacher{}, fmt.Errorf("%w: name and subject are required", ErrInvalidInput)
	}
	if _, ok := c.catalog.School(form.SchoolID); !ok {
		return catalog.Teacher{}, fmt.Errorf("%w: unknown school %q", ErrInvalidInput, form.SchoolID)
	}

	teacher := catalog.Teacher{
		ID:         fmt.Sprintf("t-new-%d", c.now().UnixMilli()),
		SchoolID:   form.SchoolID,
		Name:       form.Honorific + " " + strings.TrimSpace(form.Name),
		Subject:    strings.TrimSpace(form.Subject),
		Department: strings.TrimSpace(form.Department),
	}
	c.catalog.AddTeacher(teacher)

	err := s.update(func(st *State) error {
		st.SchoolID = teacher.SchoolID
		st.TeacherID = ""
		st.CourseID = ""
		st.Page = SchoolDetail{SchoolID: teacher.SchoolID}
		return nil
	})
	if err != nil {
		return catalog.Teacher{}, err
	}

	c.logger.InfoContext(ctx, "teacher added", "teacher_id", teacher.ID, "school_id", teacher.SchoolID)
	c.publish(ctx, s, events.TypeTeacherAdded, teacher)
	return teacher, nil
}

type AddCourseForm struct {
	ProgramID string `json:"programId" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

// AddCourse acknowledges a proposed course. The catalog is not changed.
func (c *Controller) AddCourse(ctx context.Context, s *Session, form AddCourseForm) error {
	if err := c.validateForm(form); err != nil {
		return err
	}
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return fmt.Errorf("%w: course name is required", ErrInvalidInput)
	}
	program, ok := c.catalog.Program(form.ProgramID)
	if !ok {
		return fmt.Errorf("%w: unknown program %q", ErrInvalidInput, form.ProgramID)
	}

	err := s.update(func(st *State) error {
		st.Notice = fmt.Sprintf("Course %q added to %s!", name, program.Name)
		st.Page = Programs{ProgramID: st.ProgramID}
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, s, events.TypeCourseProposed, AddCourseForm{ProgramID: program.ID, Name: name})
	return nil
}

type AddSchoolForm struct {
	Name           string   `json:"name" validate:"required"`
	Address        string   `json:"address" validate:"required"`
	Programs       []string `json:"programs" validate:"dive,oneof=IB AP A-Levels GCSE"`
	HasSchoolGmail *bool    `json:"hasSchoolGmail" validate:"required"`
	Description    string   `json:"description"`
}

// AddSchool acknowledges a school submitted for moderation.
func (c *Controller) AddSchool(ctx context.Context, s *Session, form AddSchoolForm) error {
	if err := c.validateForm(form); err != nil {
		return err
	}

	err := s.update(func(st *State) error {
		st.Notice = NoticeSchoolSubmitted
		st.Page = Home{}
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, s, events.TypeSchoolProposed, form)
	return nil
}

type UploadResourceForm struct {
	Title     string                 `json:"title" validate:"required"`
	ProgramID string                 `json:"programId" validate:"required"`
	CourseIDs []string               `json:"courseIds"`
	Types     []catalog.ResourceType `json:"types" validate:"required,min=1"`
	ShowName  bool                   `json:"showName"`
}

// UploadResource acknowledges a resource submitted for review. Only verified
// users may upload.
func (c *Controller) UploadResource(ctx context.Context, s *Session, form UploadResourceForm) error {
	snap := s.Snapshot()
	if snap.User == nil || !snap.User.Verified {
		return ErrVerificationRequired
	}
	if err := c.validateForm(form); err != nil {
		return err
	}
	form.Title = strings.TrimSpace(form.Title)
	if form.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	for _, t := range form.Types {
		if !catalog.ValidResourceType(t) {
			return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, t)
		}
	}
	if _, ok := c.catalog.Program(form.ProgramID); !ok {
		return fmt.Errorf("%w: unknown program %q", ErrInvalidInput, form.ProgramID)
	}

	err := s.update(func(st *State) error {
		st.Notice = fmt.Sprintf("Resource %q submitted for review!", form.Title)
		st.Page = Programs{ProgramID: st.ProgramID}
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, s, events.TypeResourceSubmitted, form)
	return nil
}

type AmbassadorForm struct {
	Reason       string `json:"reason" validate:"required"`
	Improvement  string `json:"improvement" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	SocialHandle string `json:"socialHandle" validate:"required"`
}

// ApplyAmbassador submits an ambassador application for the selected school.
func (c *Controller) ApplyAmbassador(ctx context.Context, s *Session, form AmbassadorForm) error {
	if err := c.validateForm(form); err != nil {
		return err
	}

	var schoolID string
	err := s.update(func(st *State) error {
		if st.SchoolID == "" {
			return missingSelection(PageAmbassadorApply)
		}
		if school, ok := c.catalog.School(st.SchoolID); ok && !school.HasAmbassadorSlot() {
			return ErrAmbassadorSlotsFull
		}
		schoolID = st.SchoolID
		st.Notice = NoticeAmbassadorSubmitted
		st.Page = SchoolDetail{SchoolID: st.SchoolID}
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, s, events.TypeAmbassadorApplication, struct {
		SchoolID string `json:"schoolId"`
		AmbassadorForm
	}{schoolID, form})
	return nil
}

type AdminForm struct {
	Reason       string `json:"reason" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	SocialHandle string `json:"socialHandle" validate:"required"`
}

// ApplyAdmin submits a moderator application and returns to the profile.
func (c *Controller) ApplyAdmin(ctx context.Context, s *Session, form AdminForm) error {
	if err := c.validateForm(form); err != nil {
		return err
	}

	err := s.update(func(st *State) error {
		page, err := c.resolve(st, PageProfile)
		if err != nil {
			return err
		}
		st.Notice = NoticeAdminSubmitted
		st.Page = page
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, s, events.TypeAdminApplication, form)
	return nil
}

type ProfileForm struct {
	Name              string `json:"name" validate:"required"`
	VerificationEmail string `json:"verificationEmail" validate:"omitempty,email"`
	GraduationYear    int    `json:"graduationYear" validate:"omitempty,min=1900,max=2100"`
}

// UpdateProfile merges the form into the signed-in user.
func (c *Controller) UpdateProfile(ctx context.Context, s *Session, form ProfileForm) error {
	if err := c.validateForm(form); err != nil {
		return err
	}

	return s.update(func(st *State) error {
		if st.User == nil {
			return ErrNotSignedIn
		}
		st.User.Name = strings.TrimSpace(form.Name)
		st.User.VerificationEmail = form.VerificationEmail
		st.User.GraduationYear = form.GraduationYear
		st.Notice = NoticeProfileUpdated
		return nil
	})
}

type ContactForm struct {
	Comment string `json:"comment" validate:"required"`
}

// PostContact sends a comment from the contact page.
func (c *Controller) PostContact(ctx context.Context, s *Session, form ContactForm) error {
	if err := c.validateForm(form); err != nil {
		return err
	}
	if strings.TrimSpace(form.Comment) == "" {
		return fmt.Errorf("%w: comment is empty", ErrInvalidInput)
	}

	err := s.update(func(st *State) error {
		st.Notice = NoticeCommentSent
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, s, events.TypeContactComment, form)
	return nil
}

// DonationTiers are the preset amounts on the donation page.
var DonationTiers = []float64{5, 15, 50, 100}

type DonationForm struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

// Donate records a pledge and thanks the visitor.
func (c *Controller) Donate(ctx context.Context, s *Session, form DonationForm) error {
	if err := c.validateForm(form); err != nil {
		return err
	}

	amount := strconv.FormatFloat(form.Amount, 'f', -1, 64)
	err := s.update(func(st *State) error {
		st.Notice = fmt.Sprintf("🎉 THANK YOU SO MUCH! You just contributed $%s to Archool! Your support keeps this project alive and independent. You are a legend! 🌈✨", amount)
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, s, events.TypeDonation, form)
	return nil
}

func (c *Controller) validateForm(form any) error {
	if err := c.validate.Struct(form); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return nil
}
