package user

import "errors"

var ErrNotFound = errors.New("user not found")

// UsernameDefault marks the placeholder account created at install time. It
// is excluded from rosters, totals, and filter option lists.
const UsernameDefault = "default"

type User struct {
	ID          int64
	Username    string
	DisplayName string
	IsActive    bool
}

// IsReal reports whether the user should appear in user-facing aggregations.
func (u User) IsReal() bool {
	return u.Username != UsernameDefault
}
