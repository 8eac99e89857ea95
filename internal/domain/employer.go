package domain

import (
	"context"
	"slices"
	"time"
)

const (
	RoleOwner     = "owner"
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
	RoleViewer    = "viewer"
)

// IssuerRoles may create and list invites for their company. Viewers are
// deliberately excluded (least privilege).
var IssuerRoles = []string{RoleOwner, RoleAdmin, RoleRecruiter}

// AssignableRoles are the roles an invite may grant. Ownership is never
// granted through an invite.
var AssignableRoles = []string{RoleAdmin, RoleRecruiter, RoleViewer}

// Employer is a portal account on the hiring side. CompanyID is nil until
// the employer accepts an invite (or founds a company).
type Employer struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CompanyID *int64    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CanIssueInvites reports whether the employer may create invites.
func (e *Employer) CanIssueInvites() bool {
	return slices.Contains(IssuerRoles, e.Role)
}

// EmployerRepository defines storage operations for employers
type EmployerRepository interface {
	GetByID(ctx context.Context, id int64) (*Employer, error)
	GetByUserID(ctx context.Context, userID string) (*Employer, error)
}

// EmployerUsecase defines business logic operations
type EmployerUsecase interface {
	GetCurrent(ctx context.Context, userID string) (*Employer, error)
}
