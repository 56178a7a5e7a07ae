package types

const (
	ErrInvalidInput       = "Invalid input"
	ErrInvalidCredentials = "Invalid credentials"
	ErrDatabaseError      = "Database error"
	ErrUnauthorized       = "Unauthorized access"
	ErrNotFound           = "Not found"
	ErrInternalError      = "internal server error"
)
