package domain

import (
	"context"
	"errors"
	"time"
)

// InviteTTL is how long an invite stays redeemable after creation.
const InviteTTL = 7 * 24 * time.Hour

var (
	// ErrNotFound signals a missing row; repositories return it instead of driver errors.
	ErrNotFound = errors.New("resource not found")
	// ErrInviteUnavailable covers used, expired, and never-existed tokens alike.
	// Callers must not distinguish the three cases (prevents token enumeration).
	ErrInviteUnavailable = errors.New("invite is invalid, already used, or expired")
)

// Invite is the append-only record of an offer to join a company.
// The plaintext token is never persisted; only its bcrypt hash is stored.
type Invite struct {
	ID        int64      `json:"id"`
	CompanyID int64      `json:"company_id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	TokenHash string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	Used      bool       `json:"used"`
	UsedBy    *int64     `json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedBy int64      `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsValid reports whether the invite can still be redeemed.
func (i *Invite) IsValid() bool {
	return !i.Used && time.Now().Before(i.ExpiresAt)
}

// OutstandingInvite is an unredeemed, unexpired invite joined with its company name.
// Token validation scans these rows and bcrypt-compares each hash.
type OutstandingInvite struct {
	Invite
	CompanyName string `json:"company_name"`
}

// InvitePreview is what a validated token reveals to the acceptance form.
type InvitePreview struct {
	Email       string `json:"email"`
	CompanyID   int64  `json:"company_id"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
}

// InviteFilter narrows invite listings
type InviteFilter struct {
	CompanyID int64
	Page      int
	Limit     int
}

// InviteRepository defines storage operations for invites
type InviteRepository interface {
	Create(ctx context.Context, invite *Invite) (int64, error)
	// Delete compensates a failed email dispatch; it is the only deletion path.
	Delete(ctx context.Context, id int64) error
	ListOutstanding(ctx context.Context) ([]OutstandingInvite, error)
	ListByCompany(ctx context.Context, filter InviteFilter) ([]Invite, int64, error)
	// Accept marks the invite used and attaches the employer to the invite's
	// company in a single transaction. Returns ErrInviteUnavailable if the
	// invite was redeemed or expired between the hash match and the update.
	Accept(ctx context.Context, invite *Invite, employerID int64) error
}

// InviteUsecase defines business logic operations
type InviteUsecase interface {
	Issue(ctx context.Context, issuer *Employer, email, role string) error
	Validate(ctx context.Context, token string) (*InvitePreview, error)
	Accept(ctx context.Context, employerID int64, email, token string) error
	ListCompanyInvites(ctx context.Context, issuer *Employer, page, limit int) ([]Invite, int64, error)
}
