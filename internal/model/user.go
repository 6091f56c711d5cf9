package model

// Roles an account can hold. The role claim in issued access tokens uses
// these exact strings.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// Account statuses. Unlike product status this field is user-editable and
// is taken verbatim from the edit draft.
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
	UserStatusPending  = "Pending"
)

// User is an admin-panel account record. PasswordHash holds the bcrypt
// hash of the account password and is never serialized in responses.
//
// Fields:
//  ID           – unique identifier within the user collection.
//  Name         – full display name.
//  Email        – login email address.
//  Role         – Admin, Manager or User.
//  Status       – Active, Inactive or Pending.
//  LastLogin    – human-friendly label of the last sign-in ("Never" for
//                 accounts that have not logged in yet).
//  PasswordHash – bcrypt hash of the password; empty for seeded demo rows.
type User struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	LastLogin    string `json:"last_login"`
	PasswordHash string `json:"-"`
}
