package model

// FuelTypeName returns the display name for a fuel type.
func FuelTypeName(t string) string {
	switch t {
	case FuelDiesel:
		return "Diesel"
	case FuelBenzin95:
		return "Gasoline 95"
	case FuelBenzin91:
		return "Gasoline 91"
	default:
		return t
	}
}

// StatusName returns the display name for a request status.
func StatusName(s string) string {
	switch s {
	case StatusPending:
		return "Pending approval"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusCompleted:
		return "Dispensed"
	default:
		return s
	}
}

// RoleName returns the display name for a user role.
func RoleName(r string) string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleOfficer:
		return "Fuel Officer"
	case RoleRequester:
		return "Requester"
	default:
		return r
	}
}
