package domain

import "errors"

// Capability is a single protected area of the back office. The vocabulary is
// closed: every guarded route declares exactly one capability, and anything
// outside this set is rejected at parse time rather than silently denied.
type Capability string

const (
	CapDashboard   Capability = "dashboard"
	CapReports     Capability = "reports"
	CapSales       Capability = "sales"
	CapCustomers   Capability = "customers"
	CapProducts    Capability = "products"
	CapTicketSales Capability = "ticketSales"
	CapRinkManager Capability = "rinkManager"
)

var ErrUnknownCapability = errors.New("unknown capability")

// AllCapabilities lists the full vocabulary in display order.
var AllCapabilities = []Capability{
	CapDashboard,
	CapReports,
	CapSales,
	CapCustomers,
	CapProducts,
	CapTicketSales,
	CapRinkManager,
}

// ParseCapability validates a raw token against the closed vocabulary.
func ParseCapability(s string) (Capability, error) {
	for _, c := range AllCapabilities {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCapability
}

// Role is an account's authorization role. Kept in string form for easy
// persistence and token claims.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleUser        Role = "user"
	RoleFuncionario Role = "funcionario"
	RoleAnalise     Role = "analise"
)

// rolePermissions is the static role → capability table. Roles not listed
// here grant nothing.
var rolePermissions = map[Role][]Capability{
	RoleAdmin:       {CapDashboard, CapReports, CapSales, CapCustomers, CapProducts, CapTicketSales, CapRinkManager},
	RoleUser:        {CapSales, CapCustomers, CapProducts, CapTicketSales},
	RoleFuncionario: {CapSales, CapCustomers, CapProducts, CapTicketSales, CapRinkManager},
	RoleAnalise:     {CapDashboard, CapReports},
}

// PermissionsFor returns the ordered capability set granted to role.
// Unknown roles map to the empty set.
func PermissionsFor(role Role) []Capability {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Capability, len(perms))
	copy(out, perms)
	return out
}

// RoleGrants reports whether role includes the given capability.
func RoleGrants(role Role, cap Capability) bool {
	for _, c := range rolePermissions[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}
