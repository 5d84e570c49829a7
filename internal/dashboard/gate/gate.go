// Package gate holds the pure route-protection decisions. RoleGate runs on
// every navigation; OnboardingGate runs after it for screens RoleGate
// allowed. Both are deterministic functions of their inputs.
package gate

import (
	"shopdash/internal/dashboard/onboarding"
	"shopdash/internal/dashboard/session"
	"shopdash/internal/domain"
)

type Verdict int

const (
	VerdictAllow Verdict = iota
	VerdictRedirect
	VerdictPending
)

type Decision struct {
	Verdict Verdict
	Target  Route
}

func Allow() Decision {
	return Decision{Verdict: VerdictAllow}
}

func Redirect(target Route) Decision {
	return Decision{Verdict: VerdictRedirect, Target: target}
}

func Pending() Decision {
	return Decision{Verdict: VerdictPending}
}

// RoleGate decides whether the session may see a screen. The branch order is
// load-bearing: loading beats authentication beats role mismatch beats
// allow. A returning session must see PENDING, not a flash-redirect to
// /login, while the store rehydration settles.
func RoleGate(st session.State, required domain.Role, current Route) Decision {
	if st.Loading {
		return Pending()
	}

	if !st.Authenticated {
		// public screens (login, signup) stay reachable; everything else
		// bounces to login
		if RequirementFor(current).Public {
			return Allow()
		}
		return Redirect(RouteLogin)
	}

	if required != "" {
		// a persisted token without a cached user record cannot prove the
		// required role; fail closed to the generic home
		role := domain.Role("")
		if st.User != nil {
			role = st.User.Role
		}
		if role != required {
			fallback := FallbackTarget(role)
			if current == fallback {
				// already at the role's home, redirecting again would loop
				return Allow()
			}
			return Redirect(fallback)
		}
	}

	return Allow()
}

// OnboardingGate forces shop-owning roles without a registered shop to the
// settings screen. It runs only after RoleGate allowed the navigation.
// Category possession never blocks a page here, it only locks sidebar tabs
// (see the nav package); a direct URL to a "locked" screen still resolves.
func OnboardingGate(user *domain.User, status onboarding.Status, current Route) Decision {
	if user == nil {
		return Allow()
	}
	if user.Role != domain.RoleCustomer && user.Role != domain.RoleShopAdmin {
		return Allow()
	}
	if status.HasShop || current == RouteSettings {
		return Allow()
	}
	return Redirect(RouteSettings)
}
