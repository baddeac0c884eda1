// Package domain defines the directory service contracts and view types
package domain

import "staffdir/internal/core/directory"

// SortMode selects the display ordering
type SortMode string

// Sort modes accepted over the wire
const (
	SortAlphabet SortMode = "alphabet"
	SortBirthday SortMode = "birthday"
)

// Snapshot is the outbound view of the directory state
type Snapshot struct {
	Employees          []directory.Employee `json:"employees"`
	Loading            bool                 `json:"loading"`
	LastError          string               `json:"lastError,omitempty"`
	Sorting            SortMode             `json:"sorting"`
	SearchQuery        string               `json:"searchQuery"`
	SelectedDepartment string               `json:"selectedDepartment,omitempty"`
}

// EmployeeDetail is the single employee view, extended with the display
// fields the detail page shows
type EmployeeDetail struct {
	directory.Employee
	Age            int    `json:"age"`
	PhoneFormatted string `json:"phoneFormatted"`
}

// FetchInput triggers a fetch, optionally scoped to one department.
// Department accepts a code or a display label. Dynamic requests the
// server generated dataset and bypasses the cache.
type FetchInput struct {
	Department string `json:"department" validate:"omitempty,max=64"`
	Dynamic    bool   `json:"dynamic"`
}

// QueryInput sets the free-text filter
type QueryInput struct {
	Query string `json:"query"`
}

// SortInput switches the display ordering
type SortInput struct {
	Mode SortMode `json:"mode" validate:"required,oneof=alphabet birthday"`
}
