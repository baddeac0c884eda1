package domain

import (
	"context"

	"staffdir/internal/core/directory"
)

// Fetcher is the outbound port the service pulls raw records through
type Fetcher interface {
	FetchAll(ctx context.Context) ([]directory.RawEmployee, error)
	FetchByDepartment(ctx context.Context, dept string) ([]directory.RawEmployee, error)
	FetchDynamic(ctx context.Context) ([]directory.RawEmployee, error)
	FetchError500(ctx context.Context) ([]directory.RawEmployee, error)
}

// ServicePort defines the directory state transitions
type ServicePort interface {
	FetchUsers(ctx context.Context, department string) error
	FetchDynamic(ctx context.Context) error
	FetchError(ctx context.Context) error
	SetSearchQuery(query string)
	SetSelectedDepartment(ctx context.Context, department string) error
	SetSortMode(mode SortMode)
	Snapshot() Snapshot
	EmployeeByID(id string) (EmployeeDetail, error)
	OnNetworkRecovered(ctx context.Context) error
}
