package auth

// Error messages
const (
	ErrMsgMissingHeader    = "missing bearer token"
	ErrMsgMalformedHeader  = "authorization header must be 'Bearer <token>'"
	ErrMsgParseTokenFailed = "parsing token: %w"
	ErrMsgMissingSubject   = "token has no subject"
	ErrMsgSignTokenFailed  = "signing token: %w"
	ErrMsgEmptySecret      = "jwt secret must not be empty"
)

// Log messages
const (
	LogMsgTokenRejected = "Bearer token rejected"
	LogMsgAuthenticated = "Request authenticated"
)

// Header values
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)
