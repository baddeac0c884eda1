// Package directory holds the pure employee pipeline: normalization of raw
// records into display records, free-text filtering, and the two sort orders
// (alphabetical and upcoming-birthday with year-boundary grouping).
// No I/O, no clocks, no globals; callers pass today and collators in.
package directory

import "time"

// RawEmployee is a record as the remote endpoint ships it.
// Birthday stays a wire string until Normalize parses it.
type RawEmployee struct {
	ID        string `json:"id"         validate:"required"`
	AvatarURL string `json:"avatarUrl"`
	FirstName string `json:"firstName"  validate:"required"`
	LastName  string `json:"lastName"   validate:"required"`
	UserTag   string `json:"userTag"`
	Position  string `json:"position"`

	// Department is the short code (android, ios, ...); unknown codes are
	// tolerated and degrade to an empty display label
	Department string `json:"department"`

	// Birthday is YYYY-MM-DD on the wire
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
}

// Employee is the display-ready record the services layer hands out
type Employee struct {
	ID        string `json:"id"`
	AvatarURL string `json:"avatarUrl"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserTag   string `json:"userTag"`
	Position  string `json:"position"`

	// DepartmentCode is the wire code, Department the display label
	DepartmentCode string `json:"departmentCode"`
	Department     string `json:"department"`

	// Birthday is the parsed calendar date (zero when unparseable)
	Birthday time.Time `json:"birthday"`
	Phone    string    `json:"phone"`

	// FirstNextYear marks the head of the next-year group under birthday
	// sort; at most one record carries it and only in that order
	FirstNextYear bool `json:"firstNextYear"`
}
