package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// roleRanks orders roles for permission checks. Roles outside the closed
// set rank lowest.
var roleRanks = map[Role]int{
	RoleGuest: 0,
	RoleUser:  1,
	RoleAdmin: 2,
}

// Rank returns the permission rank of the role. Higher outranks lower.
func (r Role) Rank() int {
	return roleRanks[r]
}

// ParseRole maps a label to a Role, falling back to RoleUser.
func ParseRole(label string) Role {
	switch Role(label) {
	case RoleAdmin, RoleUser, RoleGuest:
		return Role(label)
	default:
		return RoleUser
	}
}

type User struct {
	ID        uint64
	Username  string
	Email     string
	Role      Role
	IsActive  bool
	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds a user with the given ID. IDs are assigned by the data
// manager; callers must not construct users with arbitrary IDs.
func NewUser(id uint64, username, email string, role Role) *User {
	now := time.Now()
	return &User{
		ID:        id,
		Username:  username,
		Email:     email,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Login stamps the last login time.
func (u *User) Login() {
	now := time.Now()
	u.LastLogin = &now
	u.UpdatedAt = now
}

// Activate marks the user active.
func (u *User) Activate() {
	u.IsActive = true
	u.UpdatedAt = time.Now()
}

// Deactivate marks the user inactive.
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}
