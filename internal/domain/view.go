package domain

// View is the client-side screen selector. Modeled as an explicit enum so the
// session endpoint can route by role instead of ad-hoc string comparison.
type View string

const (
	ViewLogin   View = "login"
	ViewCatalog View = "catalog"
	ViewCart    View = "cart"
	ViewOrders  View = "orders"
	ViewAdmin   View = "admin"
)

// DefaultView returns the post-login screen for a role: admins land on the
// admin console, everyone else on the catalog.
func DefaultView(role string) View {
	if role == "admin" {
		return ViewAdmin
	}
	return ViewCatalog
}
