package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Hemasri-atike/Ihire-sub000/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type inviteRepo struct {
	db *pgxpool.Pool
}

func NewInviteRepository(db *pgxpool.Pool) domain.InviteRepository {
	return &inviteRepo{db: db}
}

func (r *inviteRepo) Create(ctx context.Context, invite *domain.Invite) (int64, error) {
	query := `
		INSERT INTO invites (company_id, email, role, token_hash, expires_at, used, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		invite.CompanyID, invite.Email, invite.Role, invite.TokenHash,
		invite.ExpiresAt, invite.CreatedBy, invite.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create invite: %w", err)
	}
	return id, nil
}

// Delete removes an invite whose email never went out. Redeemed invites are
// never deleted; the WHERE clause keeps the audit trail intact even if this
// is called with a stale id.
func (r *inviteRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM invites WHERE id = $1 AND used = FALSE`, id)
	return err
}

func (r *inviteRepo) ListOutstanding(ctx context.Context) ([]domain.OutstandingInvite, error) {
	query := `
		SELECT i.id, i.company_id, i.email, i.role, i.token_hash, i.expires_at,
		       i.used, i.used_by, i.used_at, i.created_by, i.created_at,
		       c.name
		FROM invites i
		JOIN companies c ON i.company_id = c.id
		WHERE i.used = FALSE AND i.expires_at > now()
		ORDER BY i.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.OutstandingInvite
	for rows.Next() {
		var inv domain.OutstandingInvite
		err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.Email, &inv.Role, &inv.TokenHash, &inv.ExpiresAt,
			&inv.Used, &inv.UsedBy, &inv.UsedAt, &inv.CreatedBy, &inv.CreatedAt,
			&inv.CompanyName,
		)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}

	if invites == nil {
		invites = []domain.OutstandingInvite{}
	}

	return invites, rows.Err()
}

func (r *inviteRepo) ListByCompany(ctx context.Context, filter domain.InviteFilter) ([]domain.Invite, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invites WHERE company_id = $1`, filter.CompanyID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, company_id, email, role, token_hash, expires_at,
		       used, used_by, used_at, created_by, created_at
		FROM invites
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	offset := (filter.Page - 1) * filter.Limit
	rows, err := r.db.Query(ctx, query, filter.CompanyID, filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		var inv domain.Invite
		err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.Email, &inv.Role, &inv.TokenHash, &inv.ExpiresAt,
			&inv.Used, &inv.UsedBy, &inv.UsedAt, &inv.CreatedBy, &inv.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		invites = append(invites, inv)
	}

	if invites == nil {
		invites = []domain.Invite{}
	}

	return invites, total, rows.Err()
}

// Accept redeems the invite and attaches the employer to its company in one
// transaction. The conditional update re-checks validity under the
// transaction, so two concurrent acceptances of the same token cannot both
// succeed: the loser sees zero affected rows and gets ErrInviteUnavailable.
func (r *inviteRepo) Accept(ctx context.Context, invite *domain.Invite, employerID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE invites
		SET used = TRUE, used_by = $2, used_at = $3
		WHERE id = $1 AND used = FALSE AND expires_at > now()
	`, invite.ID, employerID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to redeem invite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInviteUnavailable
	}

	tag, err = tx.Exec(ctx, `
		UPDATE employers
		SET company_id = $2, role = $3
		WHERE id = $1
	`, employerID, invite.CompanyID, invite.Role)
	if err != nil {
		return fmt.Errorf("failed to attach employer to company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
