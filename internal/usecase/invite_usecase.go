package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Hemasri-atike/Ihire-sub000/config"
	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/apperror"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/email"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/logger"
	"github.com/Hemasri-atike/Ihire-sub000/pkg/token"

	"github.com/go-playground/validator/v10"
)

// inviteUnavailableMsg is returned for never-existed, already-used and
// expired tokens alike. Do not specialize it per case.
const inviteUnavailableMsg = "Invite is invalid, already used, or expired"

// InviteMailer delivers the invite email carrying the accept link.
type InviteMailer interface {
	SendInviteEmail(to string, data email.InviteEmailData) error
	IsConfigured() bool
}

type inviteUsecase struct {
	inviteRepo  domain.InviteRepository
	companyRepo domain.CompanyRepository
	mailer      InviteMailer
	validate    *validator.Validate
	frontendURL string
	ttl         time.Duration
	bcryptCost  int
}

func NewInviteUsecase(
	inviteRepo domain.InviteRepository,
	companyRepo domain.CompanyRepository,
	mailer InviteMailer,
	validate *validator.Validate,
	cfg *config.Config,
) domain.InviteUsecase {
	return &inviteUsecase{
		inviteRepo:  inviteRepo,
		companyRepo: companyRepo,
		mailer:      mailer,
		validate:    validate,
		frontendURL: cfg.FrontendURL,
		ttl:         time.Duration(cfg.InviteTTLHours) * time.Hour,
		bcryptCost:  cfg.BcryptCost,
	}
}

// Issue creates an invite for the issuer's company and emails the accept
// link to the invitee. Issue and send are one unit: if the email cannot be
// dispatched the invite row is compensated away, so no undeliverable invite
// is left redeemable.
func (uc *inviteUsecase) Issue(ctx context.Context, issuer *domain.Employer, inviteeEmail, role string) error {
	if issuer == nil {
		return apperror.Unauthorized("User not authenticated")
	}
	if !issuer.CanIssueInvites() {
		return apperror.Forbidden("Your role cannot send invites")
	}
	if err := uc.validate.Var(inviteeEmail, "required,email"); err != nil {
		return apperror.BadRequest("A valid email address is required")
	}
	if !slices.Contains(domain.AssignableRoles, role) {
		return apperror.BadRequest("Role must be admin, recruiter, or viewer")
	}

	if issuer.CompanyID == nil {
		return apperror.NotFound("Company not found")
	}
	company, err := uc.companyRepo.GetByID(ctx, *issuer.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}

	plaintext, err := token.Generate()
	if err != nil {
		return apperror.Internal(fmt.Errorf("failed to generate invite token: %w", err))
	}
	hash, err := token.Hash(plaintext, uc.bcryptCost)
	if err != nil {
		return apperror.Internal(fmt.Errorf("failed to hash invite token: %w", err))
	}

	createdAt := time.Now()
	invite := &domain.Invite{
		CompanyID: company.ID,
		Email:     strings.ToLower(strings.TrimSpace(inviteeEmail)),
		Role:      role,
		TokenHash: hash,
		ExpiresAt: createdAt.Add(uc.ttl),
		CreatedBy: issuer.ID,
		CreatedAt: createdAt,
	}

	inviteID, err := uc.inviteRepo.Create(ctx, invite)
	if err != nil {
		return apperror.Internal(err)
	}

	// The plaintext token leaves the process here and nowhere else.
	acceptLink := fmt.Sprintf("%s/invites/accept?token=%s", uc.frontendURL, plaintext)
	sendErr := uc.mailer.SendInviteEmail(invite.Email, email.InviteEmailData{
		CompanyName: company.Name,
		Role:        role,
		AcceptLink:  acceptLink,
		ExpiresAt:   invite.ExpiresAt,
	})
	if sendErr != nil {
		// Compensate the insert so an undeliverable invite never lingers.
		if delErr := uc.inviteRepo.Delete(ctx, inviteID); delErr != nil {
			logger.Log.Error("failed to roll back invite after email failure",
				"invite_id", inviteID, "error", delErr)
		}
		return apperror.Internal(fmt.Errorf("failed to send invite email: %w", sendErr))
	}

	logger.Log.Info("invite issued",
		"invite_id", inviteID,
		"company_id", company.ID,
		"role", role,
		"created_by", issuer.ID,
	)
	return nil
}

// Validate resolves a plaintext token to its invite without mutating
// anything. Used by the acceptance form to pre-fill company and email.
func (uc *inviteUsecase) Validate(ctx context.Context, plaintext string) (*domain.InvitePreview, error) {
	inv, err := uc.matchOutstanding(ctx, plaintext)
	if err != nil {
		return nil, err
	}
	return &domain.InvitePreview{
		Email:       inv.Email,
		CompanyID:   inv.CompanyID,
		CompanyName: inv.CompanyName,
		Role:        inv.Role,
	}, nil
}

// Accept redeems a token for the authenticated employer. The invite's email
// must match the verified identity email; holding the plaintext token alone
// is not enough to join someone else's invite.
func (uc *inviteUsecase) Accept(ctx context.Context, employerID int64, authedEmail, plaintext string) error {
	inv, err := uc.matchOutstanding(ctx, plaintext)
	if err != nil {
		return err
	}

	if !strings.EqualFold(strings.TrimSpace(authedEmail), inv.Email) {
		return apperror.Forbidden("This invite was issued to a different email address")
	}

	// The repository re-checks validity under the transaction; the match
	// above may be stale by the time we get here.
	if err := uc.inviteRepo.Accept(ctx, &inv.Invite, employerID); err != nil {
		if errors.Is(err, domain.ErrInviteUnavailable) {
			return apperror.Conflict(inviteUnavailableMsg)
		}
		return apperror.Internal(err)
	}

	logger.Log.Info("invite accepted",
		"invite_id", inv.ID,
		"company_id", inv.CompanyID,
		"employer_id", employerID,
	)
	return nil
}

// ListCompanyInvites returns the issuer company's invite audit trail,
// newest first. Token hashes never leave the domain layer's json:"-" field.
func (uc *inviteUsecase) ListCompanyInvites(ctx context.Context, issuer *domain.Employer, page, limit int) ([]domain.Invite, int64, error) {
	if issuer == nil {
		return nil, 0, apperror.Unauthorized("User not authenticated")
	}
	if !issuer.CanIssueInvites() {
		return nil, 0, apperror.Forbidden("Your role cannot view invites")
	}
	if issuer.CompanyID == nil {
		return nil, 0, apperror.NotFound("Company not found")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	invites, total, err := uc.inviteRepo.ListByCompany(ctx, domain.InviteFilter{
		CompanyID: *issuer.CompanyID,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return invites, total, nil
}

// matchOutstanding scans every unredeemed, unexpired invite and compares the
// candidate token against each stored hash. Linear on purpose: storing only
// the hash keeps tokens non-enumerable, at the cost of an indexable lookup.
// Outstanding invites number in the dozens at current scale.
func (uc *inviteUsecase) matchOutstanding(ctx context.Context, plaintext string) (*domain.OutstandingInvite, error) {
	plaintext = strings.TrimSpace(plaintext)
	if plaintext == "" {
		return nil, apperror.BadRequest("Token is required")
	}

	outstanding, err := uc.inviteRepo.ListOutstanding(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	for i := range outstanding {
		if token.Matches(outstanding[i].TokenHash, plaintext) {
			return &outstanding[i], nil
		}
	}

	return nil, apperror.Conflict(inviteUnavailableMsg)
}
