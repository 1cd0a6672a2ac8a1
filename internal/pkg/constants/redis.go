package constants

// Redis key formats
const (
	// Session
	DefaultSessionKeyPrefix = "absensi:"
	KeySessionToken         = "%stoken" // Format: {prefix}token
)
