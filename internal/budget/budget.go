package budget

import "errors"

var ErrNotFound = errors.New("budget category not found")

// Category is one budgeted spending category with a monthly limit. SortOrder
// is the user's chosen position in the dashboard list.
type Category struct {
	ID           int64
	Name         string
	MonthlyLimit float64
	SortOrder    int
}
