// Package dashboard is the composition root of the client core: it wires the
// API client, the session, and the onboarding loader together, so the
// circular token-source/logout hookup lives in exactly one place.
package dashboard

import (
	"context"

	"gorm.io/gorm"

	"shopdash/internal/dashboard/api"
	"shopdash/internal/dashboard/gate"
	"shopdash/internal/dashboard/nav"
	"shopdash/internal/dashboard/onboarding"
	"shopdash/internal/dashboard/session"
)

type App struct {
	Client     *api.Client
	Session    *session.Session
	Onboarding *onboarding.Loader
	Sidebar    nav.Sidebar
}

// New builds a ready-to-use dashboard core over the given backend base URL
// and local session database. The session is initialized (rehydrated) before
// New returns, so callers never observe the loading state unless they race a
// login.
func New(baseURL string, db *gorm.DB) (*App, error) {
	store, err := session.NewGormStore(db)
	if err != nil {
		return nil, err
	}

	client := api.New(baseURL, nil)
	sess := session.New(store, client)
	client.SetTokenSource(sess)
	client.SetUnauthorizedHandler(sess.Logout)
	sess.Initialize()

	return &App{
		Client:     client,
		Session:    sess,
		Onboarding: onboarding.NewLoader(client),
	}, nil
}

// Status recomputes the onboarding status for the current user. Called per
// navigation, never cached.
func (a *App) Status(ctx context.Context) onboarding.Status {
	return a.Onboarding.Load(ctx, a.Session.State().User, a.Session.CategoryCreatedThisSession())
}

// Resolve settles a requested navigation through both gates.
func (a *App) Resolve(ctx context.Context, route gate.Route) gate.Decision {
	return gate.Resolve(a.Session.State(), a.Status(ctx), route)
}

// Tabs derives the sidebar for the current user and onboarding status.
func (a *App) Tabs(ctx context.Context) []nav.Tab {
	return nav.Tabs(a.Session.State().User, a.Status(ctx))
}
