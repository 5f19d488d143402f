package model

// Role is the access level of a site account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// User is a site account. The password is stored and compared in the clear;
// this is a demo-grade trust model, not a real credential store.
// JSON tags match the persisted site_users document layout.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}
