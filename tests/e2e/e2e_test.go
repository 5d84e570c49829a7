package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"shopdash/internal/dashboard"
	"shopdash/internal/dashboard/api"
	"shopdash/internal/dashboard/gate"
	"shopdash/internal/dashboard/nav"
	"shopdash/internal/dashboard/session"
	"shopdash/internal/database"
	"shopdash/internal/domain"
	"shopdash/internal/middleware"
	"shopdash/internal/modules/auth"
	"shopdash/internal/modules/catalog"
	jwtsvc "shopdash/internal/pkg/jwt"
	"shopdash/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBackend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	j := jwtsvc.New("e2e-test-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, shopRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(shopRepo, categoryRepo))

	r := gin.New()
	r.Use(middleware.ErrorLogger())

	apiGroup := r.Group("/api")
	authHandler.RegisterPublicRoutes(apiGroup)
	protected := apiGroup.Group("/")
	protected.Use(middleware.Auth(j))
	authHandler.RegisterProtectedRoutes(protected)
	catalogHandler.RegisterProtectedRoutes(protected)

	admin := protected.Group("/admin")
	admin.Use(middleware.SuperAdminOnly())
	catalogHandler.RegisterAdminRoutes(admin)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func sessionDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	return db
}

func setupDashboard(t *testing.T, baseURL string) *dashboard.App {
	t.Helper()
	app, err := dashboard.New(baseURL, sessionDB(t))
	require.NoError(t, err)
	return app
}

func TestShopAdminOnboardingFlow(t *testing.T) {
	server := setupBackend(t)
	dash := setupDashboard(t, server.URL)
	ctx := context.Background()

	// fresh session: any protected screen settles on /login
	d := dash.Resolve(ctx, gate.RouteOrders)
	assert.Equal(t, gate.VerdictAllow, d.Verdict)
	assert.Equal(t, gate.RouteLogin, d.Target)

	// signup does not authenticate
	require.NoError(t, dash.Session.Signup(ctx, api.SignupRequest{
		Name:     "Shop Admin",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     "shop_admin",
	}))
	assert.False(t, dash.Session.State().Authenticated)

	// duplicate signup surfaces the server message
	err := dash.Session.Signup(ctx, api.SignupRequest{
		Name:     "Shop Admin",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     "shop_admin",
	})
	require.Error(t, err)
	assert.Equal(t, "This email is already registered", dash.Session.State().Err)

	require.NoError(t, dash.Session.Login(ctx, "admin@example.com", "secret123"))
	st := dash.Session.State()
	require.True(t, st.Authenticated)
	assert.Equal(t, domain.RoleShopAdmin, st.User.Role)
	assert.False(t, st.User.HasShop())

	// no shop yet: every navigation lands on /settings
	d = dash.Resolve(ctx, gate.RouteOrders)
	assert.Equal(t, gate.RouteSettings, d.Target)

	// and the sidebar locks everything except Settings
	for _, tab := range dash.Tabs(ctx) {
		if tab.Route == gate.RouteSettings {
			assert.False(t, tab.Locked)
		} else {
			assert.True(t, tab.Locked, "tab %q", tab.Title)
			assert.Equal(t, nav.LockReasonShop, tab.LockReason)
		}
	}

	// register a shop, refresh the cached user
	shop, err := dash.Client.CreateShop(ctx, api.CreateShopRequest{Name: "My Shop"})
	require.NoError(t, err)
	dash.Session.RefreshUser(ctx)
	require.True(t, dash.Session.State().User.HasShop())

	// shop but no category: pages resolve, tabs outside Categories/Settings lock
	d = dash.Resolve(ctx, gate.RouteOrders)
	assert.Equal(t, gate.RouteOrders, d.Target, "category possession never hard-gates a page")
	for _, tab := range dash.Tabs(ctx) {
		switch tab.Route {
		case gate.RouteCategories, gate.RouteSettings:
			assert.False(t, tab.Locked, "tab %q", tab.Title)
		default:
			assert.True(t, tab.Locked, "tab %q", tab.Title)
			assert.Equal(t, nav.LockReasonCategory, tab.LockReason)
		}
	}

	// create the first category; the session flag unlocks tabs immediately
	_, err = dash.Client.CreateCategory(ctx, api.CreateCategoryRequest{Name: "Shoes", Shop: shop.ID})
	require.NoError(t, err)
	dash.Session.NotifyCategoryCreated()
	for _, tab := range dash.Tabs(ctx) {
		assert.False(t, tab.Locked, "tab %q", tab.Title)
	}

	// the server lookup agrees once asked
	status := dash.Status(ctx)
	assert.True(t, status.HasCategory)

	// logout destroys everything including the session flag
	dash.Session.Logout()
	assert.False(t, dash.Session.State().Authenticated)
	assert.False(t, dash.Session.CategoryCreatedThisSession())
	d = dash.Resolve(ctx, gate.RouteOrders)
	assert.Equal(t, gate.RouteLogin, d.Target)
}

func TestSessionSurvivesRestart(t *testing.T) {
	server := setupBackend(t)
	db := sessionDB(t)
	ctx := context.Background()

	first, err := dashboard.New(server.URL, db)
	require.NoError(t, err)
	require.NoError(t, first.Session.Signup(ctx, api.SignupRequest{
		Name: "C", Email: "c@example.com", Password: "secret123",
	}))
	require.NoError(t, first.Session.Login(ctx, "c@example.com", "secret123"))

	// a restart over the same store picks the login back up without any
	// network call
	second, err := dashboard.New(server.URL, db)
	require.NoError(t, err)
	st := second.Session.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, "c@example.com", st.User.Email)
}

func TestExpiredTokenForcesLogout(t *testing.T) {
	server := setupBackend(t)
	db := sessionDB(t)

	// a stale persisted session: Initialize trusts it, the first API call
	// discovers it is dead
	store, err := session.NewGormStore(db)
	require.NoError(t, err)
	require.NoError(t, store.Save("garbage-token", &domain.User{ID: "ghost", Role: domain.RoleShopAdmin}))

	app, err := dashboard.New(server.URL, db)
	require.NoError(t, err)
	require.True(t, app.Session.State().Authenticated)

	app.Session.RefreshUser(context.Background())

	st := app.Session.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	_, hasToken := store.Token()
	assert.False(t, hasToken)
}

func TestWorkerAndSuperAdminSurfaces(t *testing.T) {
	server := setupBackend(t)
	dash := setupDashboard(t, server.URL)
	ctx := context.Background()

	require.NoError(t, dash.Session.Signup(ctx, api.SignupRequest{
		Name: "W", Email: "worker@example.com", Password: "secret123", Role: "worker",
	}))
	require.NoError(t, dash.Session.Login(ctx, "worker@example.com", "secret123"))

	// workers skip the onboarding gate entirely
	d := dash.Resolve(ctx, gate.RouteOrders)
	assert.Equal(t, gate.RouteOrders, d.Target)

	tabs := dash.Tabs(ctx)
	require.Len(t, tabs, 1)
	assert.Equal(t, "Orders", tabs[0].Title)

	// a worker heading for a super_admin screen bounces home
	d = dash.Resolve(ctx, gate.RouteSuperDashboard)
	assert.Equal(t, gate.RouteRoot, d.Target)

	// and the admin API mirrors the gate: 403, not a forced logout
	_, err := dash.Client.AllShops(ctx)
	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
	assert.True(t, dash.Session.State().Authenticated)
}
