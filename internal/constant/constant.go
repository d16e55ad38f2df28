package constant

// Constant package provides constants used throughout the application.

type ctxKey string

const (
	CorrelationIDKey ctxKey = "CorrelationID"
)

// Gin context keys.
const (
	// JWTPayloadKey holds the decoded identity set by the auth gate.
	JWTPayloadKey = "jwtPayload"
)

// Mongo collection names.
const (
	JobsCollection = "jobs"
	BidsCollection = "bidjobs"
)
