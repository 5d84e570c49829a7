// Dev harness for the dashboard core: logs in against a running API and
// prints the resolved route and sidebar state for the account, which is the
// quickest way to inspect gate behavior without the SPA.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"shopdash/internal/dashboard"
	"shopdash/internal/dashboard/gate"
	"shopdash/internal/database"
)

func main() {
	_ = godotenv.Load()

	baseURL := envOr("API_BASE_URL", "http://localhost:8080")
	sessionDSN := envOr("SESSION_DB", "dashboard_session.db")

	db, err := database.Connect(sessionDSN)
	if err != nil {
		log.Fatal(err)
	}

	app, err := dashboard.New(baseURL, db)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	email := os.Getenv("DASH_EMAIL")
	password := os.Getenv("DASH_PASSWORD")
	if email != "" {
		if err := app.Session.Login(ctx, email, password); err != nil {
			log.Fatalf("login: %s", app.Session.State().Err)
		}
	}

	st := app.Session.State()
	if st.User != nil {
		fmt.Printf("user: %s (%s)\n", st.User.Email, st.User.Role)
	} else {
		fmt.Println("user: (not authenticated)")
	}

	for _, route := range []gate.Route{
		gate.RouteRoot, gate.RouteProducts, gate.RouteOrders,
		gate.RouteSettings, gate.RouteSuperDashboard,
	} {
		d := app.Resolve(ctx, route)
		if d.Verdict == gate.VerdictPending {
			fmt.Printf("%-18s -> pending\n", route)
			continue
		}
		fmt.Printf("%-18s -> %s\n", route, d.Target)
	}

	for _, tab := range app.Tabs(ctx) {
		state := "unlocked"
		if tab.Locked {
			state = "locked: " + tab.LockReason
		}
		fmt.Printf("tab %-16s %s\n", tab.Title, state)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
