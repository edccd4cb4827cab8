package entity

import (
	"strings"
	"time"
)

// User represents a credentialed person in the directory. The credential
// string is issued out-of-band and doubles as the primary key, so a user
// record is immutable after creation except for deletion.
type User struct {
	Credential string    `gorm:"column:credential;type:varchar(100);primaryKey" json:"credential"`
	FirstName  string    `gorm:"column:firstName;type:varchar(100);not null" json:"firstName"`
	LastName   string    `gorm:"column:lastName;type:varchar(100);not null" json:"lastName"`
	Role       string    `gorm:"column:role;type:varchar(20);not null;index" json:"role"`
	CreatedAt  time.Time `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "usersBHRMS"
}

// Role constants. Staff and admin are the roles the rest of the system
// reasons about; health_worker is accepted at the add-user boundary and
// authorized like staff.
const (
	RoleStaff        = "staff"
	RoleAdmin        = "admin"
	RoleHealthWorker = "health_worker"
)

// IsValidRole reports whether role is accepted at the creation boundary.
func IsValidRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin || role == RoleHealthWorker
}

// FullName returns the display name used for identity confirmation.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// MatchesName compares a typed full name against the stored display name,
// case-insensitively. Internal whitespace is not normalized; the typed
// name must be the exact "First Last" join.
func (u *User) MatchesName(typed string) bool {
	return strings.EqualFold(typed, u.FullName())
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanCreateReferrals checks if the user may create referrals. Health
// workers get the same referral surface as staff.
func (u *User) CanCreateReferrals() bool {
	return u.Role == RoleStaff || u.Role == RoleHealthWorker
}
