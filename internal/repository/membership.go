package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// MembershipRepository keeps user groups, the association tokens events
// point to and the group owner to user associations.
type MembershipRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMembershipRepo(db *dbpg.DB) *MembershipRepository {
	return &MembershipRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MembershipRepository) ResolveGroupForToken(ctx context.Context, token string, user *domain.User) (*domain.Group, error) {
	query := `SELECT g.id, g.name, g.owner_id
			  FROM group_tokens t
			  JOIN user_groups g ON g.id = t.group_id
			  WHERE t.token = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("resolve group token: %w", err)
	}

	var g domain.Group
	if err = row.Scan(&g.ID, &g.Name, &g.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("token %s: %w", token, domain.ErrGroupNotFound)
		}
		return nil, fmt.Errorf("scan group: %w", err)
	}
	return &g, nil
}

// AddUserViaToken associates the user with the group owner and, if asked,
// adds them to the group. Both writes are idempotent.
func (r *MembershipRepository) AddUserViaToken(ctx context.Context, token string, user *domain.User, addToGroup bool) error {
	g, err := r.ResolveGroupForToken(ctx, token, user)
	if err != nil {
		return err
	}

	query := `INSERT INTO user_associations (owner_id, user_id)
			  VALUES ($1, $2)
			  ON CONFLICT DO NOTHING`
	if _, err = r.db.ExecWithRetry(ctx, r.strategy, query, g.OwnerID, user.ID); err != nil {
		return fmt.Errorf("associate user: %w", err)
	}

	if !addToGroup {
		return nil
	}

	query = `INSERT INTO group_members (group_id, user_id)
			 VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`
	if _, err = r.db.ExecWithRetry(ctx, r.strategy, query, g.ID, user.ID); err != nil {
		return fmt.Errorf("add group member: %w", err)
	}
	return nil
}

func (r *MembershipRepository) RemoveUser(ctx context.Context, group *domain.Group, user *domain.User) error {
	query := `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, group.ID, user.ID); err != nil {
		return fmt.Errorf("remove group member: %w", err)
	}
	return nil
}
