package kodemock

import "staffdir/internal/core/directory"

// usersResponse is the wire envelope the directory endpoint returns
type usersResponse struct {
	Items []directory.RawEmployee `json:"items"`
}
