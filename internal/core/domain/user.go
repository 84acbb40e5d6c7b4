package domain

// User is an authenticated operator of the system. Only the fields the JWT
// login flow needs are modelled here; member records live elsewhere.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
