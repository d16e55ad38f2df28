package model

// JWTPayload represents the JWT token payload structure. Identity is the
// subject's email; issuance and expiry ride along as unix timestamps.
type JWTPayload struct {
	Email     string `json:"email" validate:"required,email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
