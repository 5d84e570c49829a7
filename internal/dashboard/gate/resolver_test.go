package gate

import (
	"testing"

	"shopdash/internal/dashboard/onboarding"
	"shopdash/internal/dashboard/session"
	"shopdash/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ShoplessShopAdminLandsOnSettings(t *testing.T) {
	st := session.State{
		User:          &domain.User{ID: "u-1", Role: domain.RoleShopAdmin},
		Token:         "tok",
		Authenticated: true,
	}

	d := Resolve(st, onboarding.Status{HasShop: false}, RouteOrders)
	assert.Equal(t, VerdictAllow, d.Verdict)
	assert.Equal(t, RouteSettings, d.Target)
}

func TestResolve_PendingWhileLoading(t *testing.T) {
	d := Resolve(session.State{Loading: true}, onboarding.Status{}, RouteOrders)
	assert.Equal(t, VerdictPending, d.Verdict)
}

func TestResolve_UnauthenticatedSettlesOnLogin(t *testing.T) {
	d := Resolve(session.State{}, onboarding.Status{}, RouteOrders)
	assert.Equal(t, VerdictAllow, d.Verdict)
	assert.Equal(t, RouteLogin, d.Target)
}

func TestResolve_SignupReachableWhileLoggedOut(t *testing.T) {
	d := Resolve(session.State{}, onboarding.Status{}, RouteSignup)
	assert.Equal(t, VerdictAllow, d.Verdict)
	assert.Equal(t, RouteSignup, d.Target)
}

func TestResolve_RoleMismatchThenOnboarding(t *testing.T) {
	// a shop-less shop_admin requesting a super_admin screen: RoleGate sends
	// them home, OnboardingGate then forces settings
	st := session.State{
		User:          &domain.User{ID: "u-1", Role: domain.RoleShopAdmin},
		Token:         "tok",
		Authenticated: true,
	}

	d := Resolve(st, onboarding.Status{HasShop: false}, RouteSuperDashboard)
	assert.Equal(t, VerdictAllow, d.Verdict)
	assert.Equal(t, RouteSettings, d.Target)
}

func TestResolve_SuperAdminStaysPut(t *testing.T) {
	st := session.State{
		User:          &domain.User{ID: "s-1", Role: domain.RoleSuperAdmin},
		Token:         "tok",
		Authenticated: true,
	}

	d := Resolve(st, onboarding.Status{}, RouteSuperAdmin)
	assert.Equal(t, VerdictAllow, d.Verdict)
	assert.Equal(t, RouteSuperAdmin, d.Target)
}

func TestResolve_OnboardedAdminReachesRequestedScreen(t *testing.T) {
	st := session.State{
		User:          &domain.User{ID: "u-1", Role: domain.RoleShopAdmin, ManagedShops: []domain.ShopRef{domain.ShopID("s-1")}},
		Token:         "tok",
		Authenticated: true,
	}

	d := Resolve(st, onboarding.Status{HasShop: true, HasCategory: true}, RouteAddProduct)
	assert.Equal(t, VerdictAllow, d.Verdict)
	assert.Equal(t, RouteAddProduct, d.Target)
}
