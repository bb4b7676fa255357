package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgUnauthorized          = "Missing or invalid session token"
	ErrMsgInvalidLimit          = "limit must be between 1 and 100"
)

// Success messages for API responses
const (
	MsgLoggedIn = "Logged in"
)
