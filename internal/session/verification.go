package session

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/HeidiChen0/Archool/internal/events"
)

type VerificationStep string

const (
	StepRoles  VerificationStep = "roles"
	StepEmails VerificationStep = "emails"
	StepCode   VerificationStep = "code"
)

type VerificationRole string

const (
	RoleStudent VerificationRole = "student"
	RoleStaff   VerificationRole = "staff"
	RoleParent  VerificationRole = "parent"
)

// CodeLength is the length of an accepted verification code.
const CodeLength = 6

const (
	NoticeCodeSent = "Verification code(s) sent to the provided address(es)."
	NoticeVerified = "Identity Verified! You now have access to verified features."
)

// Verification is the progress of the identity-verification wizard.
type Verification struct {
	Step   VerificationStep
	Roles  []VerificationRole
	Emails map[VerificationRole]string
}

func (v *Verification) clone() *Verification {
	out := *v
	out.Roles = slices.Clone(v.Roles)
	out.Emails = maps.Clone(v.Emails)
	return &out
}

// StartVerification opens the wizard and remembers the current page to resume on.
func (c *Controller) StartVerification(ctx context.Context, s *Session) error {
	return s.update(func(st *State) error {
		st.Verification = &Verification{Step: StepRoles}
		st.Page = VerifyIdentity{SchoolID: st.SchoolID, Return: returnPage(st.Page)}
		return nil
	})
}

// ChooseRoles records the roles being verified. Student cannot be combined
// with staff or parent.
func (c *Controller) ChooseRoles(ctx context.Context, s *Session, roles []VerificationRole) error {
	chosen := make([]VerificationRole, 0, len(roles))
	for _, r := range roles {
		switch r {
		case RoleStudent, RoleStaff, RoleParent:
		default:
			return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, r)
		}
		if !slices.Contains(chosen, r) {
			chosen = append(chosen, r)
		}
	}
	if len(chosen) == 0 {
		return ErrNoRoles
	}
	if slices.Contains(chosen, RoleStudent) && (slices.Contains(chosen, RoleStaff) || slices.Contains(chosen, RoleParent)) {
		return ErrConflictingRoles
	}

	return s.update(func(st *State) error {
		if _, ok := st.Page.(VerifyIdentity); !ok || st.Verification == nil {
			return ErrWrongStep
		}
		st.Verification.Roles = chosen
		st.Verification.Emails = nil
		st.Verification.Step = StepEmails
		return nil
	})
}

// SubmitEmails takes one address per chosen role and sends the codes.
func (c *Controller) SubmitEmails(ctx context.Context, s *Session, emails map[VerificationRole]string) error {
	var payload map[VerificationRole]string
	err := s.update(func(st *State) error {
		v := st.Verification
		if _, ok := st.Page.(VerifyIdentity); !ok || v == nil || v.Step == StepRoles {
			return ErrWrongStep
		}

		collected := make(map[VerificationRole]string, len(v.Roles))
		for _, role := range v.Roles {
			email := emails[role]
			if err := c.validate.Var(email, "required,email"); err != nil {
				return fmt.Errorf("%w: %s email: %s", ErrInvalidInput, role, err)
			}
			collected[role] = email
		}

		v.Emails = collected
		v.Step = StepCode
		st.Notice = NoticeCodeSent
		payload = maps.Clone(collected)
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, s, events.TypeVerificationRequested, payload)
	return nil
}

// ConfirmCode accepts any code of CodeLength characters, marks the signed-in
// user verified and resumes on the return page.
func (c *Controller) ConfirmCode(ctx context.Context, s *Session, code string) error {
	var roles []VerificationRole
	err := s.update(func(st *State) error {
		page, ok := st.Page.(VerifyIdentity)
		if !ok || st.Verification == nil || st.Verification.Step != StepCode {
			return ErrWrongStep
		}
		if len([]rune(code)) != CodeLength {
			return ErrInvalidCode
		}

		roles = st.Verification.Roles
		if st.User != nil {
			st.User.Verified = true
		}
		st.Verification = nil
		st.Notice = NoticeVerified
		st.Page = resumePage(page)
		return nil
	})
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "identity verified", "session_id", s.ID, "roles", roles)
	c.publish(ctx, s, events.TypeVerificationConfirmed, roles)
	return nil
}

// CancelVerification leaves the wizard without changing the user.
func (c *Controller) CancelVerification(ctx context.Context, s *Session) error {
	return s.update(func(st *State) error {
		page, ok := st.Page.(VerifyIdentity)
		if !ok {
			return ErrWrongStep
		}
		st.Verification = nil
		st.Page = resumePage(page)
		return nil
	})
}

func resumePage(v VerifyIdentity) Page {
	if v.Return == nil {
		return Home{}
	}
	return v.Return
}
