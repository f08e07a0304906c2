package middleware

// Capabilities is the typed capability record handed to UIs so they can
// pre-disable controls. It is derived from the same permission names the
// route gates enforce; the routes remain the authority.
type Capabilities struct {
	CanWrite  bool `json:"canWrite"`
	CanDelete bool `json:"canDelete"`
}

// CapabilitiesFor computes the caller's capabilities on one resource.
// Writing covers both create and edit; the admin role grants everything.
func CapabilitiesFor(resource string, roles, permissions []string) Capabilities {
	for _, role := range roles {
		if role == "admin" {
			return Capabilities{CanWrite: true, CanDelete: true}
		}
	}

	var caps Capabilities
	for _, p := range permissions {
		switch p {
		case resource + "_create", resource + "_edit":
			caps.CanWrite = true
		case resource + "_delete":
			caps.CanDelete = true
		}
	}
	return caps
}
