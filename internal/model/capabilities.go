package model

// Capabilities maps a role to the ordered list of application sections it may
// use. Pure data, independent of any rendering; handlers expose it so clients
// build navigation from the same source the middleware enforces.
func Capabilities(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{"dashboard", "requests", "dispense", "inventory", "vehicles", "reports", "users", "settings"}
	case RoleOfficer:
		return []string{"dashboard", "requests", "dispense", "inventory", "vehicles", "reports"}
	case RoleRequester:
		return []string{"dashboard", "requests"}
	default:
		return nil
	}
}
