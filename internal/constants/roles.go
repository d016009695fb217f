package constants

// User roles
const (
	RoleAdmin     = "admin"
	RoleEditor    = "editor"
	RoleApplicant = "applicant"
)

// Auth types
const (
	AuthTypeAPIKey = "api_key"
	AuthTypeJWT    = "jwt"
)
