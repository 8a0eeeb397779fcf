package queries

import (
	"context"

	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/pkg/api/types/staff"
	"github.com/hitrip/tripops/pkg/query"
	"github.com/hitrip/tripops/pkg/session"
)

// Bootstrap loads the user of the current session into state.
//
// When the session is missing or expired, state is cleared and the error is returned;
// rest.IsLoginRequired tells it.
func (q *Queries) Bootstrap(ctx context.Context, state *session.State) error {
	u, err := q.Profile(ctx)
	if err != nil {
		if rest.IsLoginRequired(err) {
			state.Clear()
			q.cache.Remove(ProfileKey())
		}
		return err
	}
	state.SetUser(u)
	return nil
}

// Login starts a new session. Everything cached for the previous session is dropped.
func (q *Queries) Login(ctx context.Context, state *session.State, cred staff.Login) (staff.UserDetail, error) {
	u, err := q.client.Login(ctx, cred)
	if err != nil {
		return staff.UserDetail{}, err
	}
	q.cache.Remove(query.Key{})
	state.SetUser(u)
	return u, nil
}

// Logout ends the session and forgets the user and everything cached.
func (q *Queries) Logout(ctx context.Context, state *session.State) error {
	if err := q.client.Logout(ctx); err != nil {
		return err
	}
	q.cache.Remove(query.Key{})
	state.Clear()
	return nil
}
