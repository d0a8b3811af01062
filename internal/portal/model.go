package portal

import "github.com/HeidiChen0/Archool/internal/session"

type NavigateRequest struct {
	Page session.PageID `json:"page" validate:"required"`
}

// SelectProgramRequest selects a program by id, or by the label shown on a
// school page when ID is empty.
type SelectProgramRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

type DraftRequest struct {
	Draft string `json:"draft" validate:"required"`
}

type ProgramRequest struct {
	ProgramID string `json:"programId"`
}

type RolesRequest struct {
	Roles []session.VerificationRole `json:"roles"`
}

type EmailsRequest struct {
	Emails map[session.VerificationRole]string `json:"emails"`
}

type CodeRequest struct {
	Code string `json:"code"`
}
