package session

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnknownPage          = errors.New("unknown page")
	ErrMissingSelection     = errors.New("page needs a selection that is not set")
	ErrNotSignedIn          = errors.New("not signed in")
	ErrVerificationRequired = errors.New("identity verification required")
	ErrAmbassadorSlotsFull  = errors.New("all ambassador slots at this school are taken")
	ErrNoRoles              = errors.New("select at least one role")
	ErrConflictingRoles     = errors.New("student cannot be combined with staff or parent")
	ErrInvalidCode          = errors.New("invalid verification code")
	ErrWrongStep            = errors.New("verification is not at this step")
)
