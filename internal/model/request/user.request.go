package request

// AccessTokenRequest is the login payload: the client asserts an email and
// receives a signed token cookie. There is no password check upstream of this
// service; the identity provider lives in the web client.
type AccessTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}
