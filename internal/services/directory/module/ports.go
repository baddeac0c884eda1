package module

import "staffdir/internal/services/directory/domain"

// Ports exposes the directory service to sibling modules
type Ports struct {
	Svc domain.ServicePort
}
