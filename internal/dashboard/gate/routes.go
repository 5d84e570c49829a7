package gate

import "shopdash/internal/domain"

// Route identifies a dashboard screen. Gate decisions compare routes by
// identity, never by re-parsing path strings at call sites.
type Route string

const (
	RouteRoot           Route = "/"
	RouteLogin          Route = "/login"
	RouteSignup         Route = "/signup"
	RouteProducts       Route = "/products"
	RouteAddProduct     Route = "/products/add"
	RouteCategories     Route = "/products/categories"
	RouteOrders         Route = "/orders"
	RouteCart           Route = "/cart"
	RouteWishlist       Route = "/wishlist"
	RouteSettings       Route = "/settings"
	RouteWorkers        Route = "/workers"
	RouteSuperDashboard Route = "/superdashboard"
	RouteSuperAdmin     Route = "/superadmin"
	RouteAllProducts    Route = "/all-products"
	RouteAllCategories  Route = "/all-categories"
	RouteAllOrders      Route = "/all-orders"
)

// Requirement is a screen's static protection declaration. A zero value
// means "any authenticated role".
type Requirement struct {
	Public bool
	Role   domain.Role
}

var routeTable = map[Route]Requirement{
	RouteLogin:          {Public: true},
	RouteSignup:         {Public: true},
	RouteWorkers:        {Role: domain.RoleShopAdmin},
	RouteSuperDashboard: {Role: domain.RoleSuperAdmin},
	RouteSuperAdmin:     {Role: domain.RoleSuperAdmin},
	RouteAllProducts:    {Role: domain.RoleSuperAdmin},
	RouteAllCategories:  {Role: domain.RoleSuperAdmin},
	RouteAllOrders:      {Role: domain.RoleSuperAdmin},
}

// RequirementFor returns the declared protection for a route. Unknown routes
// are treated as protected screens open to any authenticated role.
func RequirementFor(r Route) Requirement {
	return routeTable[r]
}

// FallbackTarget is the role's home route. Redirecting a mismatched-role
// navigation here never requires a second redirect, which is what makes the
// gate loop-free.
func FallbackTarget(role domain.Role) Route {
	if role == domain.RoleSuperAdmin {
		return RouteSuperDashboard
	}
	return RouteRoot
}
