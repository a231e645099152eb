package queries

import (
	"context"

	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
)

type InviteQueries interface {
	// GetInvite returns the invite only while it is unused and unexpired.
	GetInvite(ctx context.Context, token string) (*InviteView, error)
}

type InviteReadStore interface {
	FindInvite(ctx context.Context, token string) (*InviteView, error)
}

type inviteQueriesImpl struct {
	store InviteReadStore
	clock clock.Clock
}

func NewInviteQueries(store InviteReadStore, clock clock.Clock) InviteQueries {
	return &inviteQueriesImpl{
		store: store,
		clock: clock,
	}
}

func (q *inviteQueriesImpl) GetInvite(ctx context.Context, token string) (*InviteView, error) {
	view, err := q.store.FindInvite(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, invite.ErrInvalidInvite
		}
		return nil, err
	}
	if view.UsedAt != nil || !q.clock.Now().Before(view.ExpiresAt) {
		return nil, invite.ErrInvalidInvite
	}
	return view, nil
}
