package gate

import (
	"shopdash/internal/dashboard/onboarding"
	"shopdash/internal/dashboard/session"
)

// Redirect chains settle within three hops (requested route, then the role
// fallback, then settings). The bound is a guard against future table
// mistakes, not a loop-breaker the logic relies on.
const maxRedirects = 4

// Resolve runs a requested navigation through RoleGate and then
// OnboardingGate, following redirects until a screen is allowed. The
// returned decision is either PENDING or an ALLOW whose Target is the
// settled route.
func Resolve(st session.State, status onboarding.Status, requested Route) Decision {
	current := requested
	for i := 0; i < maxRedirects; i++ {
		req := RequirementFor(current)

		d := RoleGate(st, req.Role, current)
		if d.Verdict == VerdictPending {
			return d
		}
		if d.Verdict == VerdictRedirect {
			current = d.Target
			continue
		}

		if !req.Public && st.User != nil {
			d = OnboardingGate(st.User, status, current)
			if d.Verdict == VerdictRedirect {
				current = d.Target
				continue
			}
		}

		return Decision{Verdict: VerdictAllow, Target: current}
	}
	return Decision{Verdict: VerdictAllow, Target: current}
}
