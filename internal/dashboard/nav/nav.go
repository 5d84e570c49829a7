// Package nav derives the sidebar: which tabs a role sees and which of them
// are locked behind onboarding. Locking is cosmetic: a locked tab renders
// non-interactive with a tooltip, it does not block direct navigation.
package nav

import (
	"sync"

	"shopdash/internal/dashboard/gate"
	"shopdash/internal/dashboard/onboarding"
	"shopdash/internal/domain"
)

const (
	LockReasonShop     = "register your shop"
	LockReasonCategory = "create a category"
)

type Tab struct {
	Title      string
	Route      gate.Route
	Locked     bool
	LockReason string
}

// Tabs derives the sidebar entries for a user. Recompute whenever the user,
// the onboarding status, or the session category flag changes; there is no
// caching layer here.
func Tabs(user *domain.User, status onboarding.Status) []Tab {
	if user == nil {
		return nil
	}

	switch user.Role {
	case domain.RoleSuperAdmin:
		return []Tab{
			{Title: "Super Dashboard", Route: gate.RouteSuperDashboard},
			{Title: "Super Admin", Route: gate.RouteSuperAdmin},
			{Title: "All Products", Route: gate.RouteAllProducts},
			{Title: "All Categories", Route: gate.RouteAllCategories},
			{Title: "All Orders", Route: gate.RouteAllOrders},
		}
	case domain.RoleWorker:
		return []Tab{
			{Title: "Orders", Route: gate.RouteOrders},
		}
	}

	tabs := []Tab{
		{Title: "Dashboard", Route: gate.RouteRoot},
		{Title: "All Products", Route: gate.RouteProducts},
		{Title: "Add Product", Route: gate.RouteAddProduct},
		{Title: "Categories", Route: gate.RouteCategories},
		{Title: "Orders", Route: gate.RouteOrders},
		{Title: "Settings", Route: gate.RouteSettings},
	}
	if user.Role == domain.RoleShopAdmin {
		tabs = append(tabs, Tab{Title: "Workers", Route: gate.RouteWorkers})
	}

	unlockAll := status.HasCategory || status.CategoryCreatedThisSession
	for i := range tabs {
		switch {
		case !status.HasShop:
			if tabs[i].Route != gate.RouteSettings {
				tabs[i].Locked = true
				tabs[i].LockReason = LockReasonShop
			}
		case !unlockAll:
			if tabs[i].Route != gate.RouteSettings && tabs[i].Route != gate.RouteCategories {
				tabs[i].Locked = true
				tabs[i].LockReason = LockReasonCategory
			}
		}
	}
	return tabs
}

// Sidebar tracks the open/collapsed state of the navigation panel.
// Presentation-only.
type Sidebar struct {
	mu   sync.Mutex
	open bool
}

func (s *Sidebar) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

func (s *Sidebar) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

func (s *Sidebar) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}
