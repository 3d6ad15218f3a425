package constants

const (
	// ContextKeyUserID is the gin context / session key holding the
	// authenticated user's ID.
	ContextKeyUserID = "user_id"

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "taskman_session"

	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 8

	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
