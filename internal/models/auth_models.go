package models

// AdminUser is an administrator allowed into the admin panel.
type AdminUser struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"` // '-' means don't send in JSON response
}

// Credentials for the login form
type Credentials struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
