// Package http provides http transport for the directory module
package http

import (
	stdhttp "net/http"

	"staffdir/internal/modkit/httpkit"
	"staffdir/internal/services/directory/domain"
)

// Register mounts directory endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/snapshot", h.snapshot)
	httpkit.PostJSON[domain.FetchInput](r, "/fetch", h.fetch)
	httpkit.Post(r, "/fetch/error", h.fetchError)
	httpkit.PostJSON[domain.QueryInput](r, "/query", h.query)
	httpkit.PostJSON[domain.FetchInput](r, "/department", h.department)
	httpkit.PostJSON[domain.SortInput](r, "/sort", h.sort)
	httpkit.Get(r, "/employees/{id}", h.employee)
	httpkit.Post(r, "/network/recovered", h.recovered)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Current directory snapshot
// @Tags Directory
// @Produce json
// @Success 200 {object} domain.Snapshot "ok"
// @Router /directory/snapshot [get]
func (h *handlers) snapshot(r *stdhttp.Request) (any, error) {
	return h.svc.Snapshot(), nil
}

// @Summary Trigger a fetch, optionally scoped to a department
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body domain.FetchInput true "Scope"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /directory/fetch [post]
func (h *handlers) fetch(r *stdhttp.Request, in domain.FetchInput) (any, error) {
	var err error
	if in.Dynamic {
		err = h.svc.FetchDynamic(r.Context())
	} else {
		err = h.svc.FetchUsers(r.Context(), in.Department)
	}
	if err != nil {
		return nil, err
	}
	return h.svc.Snapshot(), nil
}

// @Summary Trigger a forced-failure fetch against the endpoint
// @Tags Directory
// @Produce json
// @Success 200 {object} domain.Snapshot "ok"
// @Failure 503 {object} httpkit.Envelope "endpoint failure"
// @Router /directory/fetch/error [post]
func (h *handlers) fetchError(r *stdhttp.Request) (any, error) {
	if err := h.svc.FetchError(r.Context()); err != nil {
		return nil, err
	}
	return h.svc.Snapshot(), nil
}

// @Summary Set the free-text search query
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Query"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /directory/query [post]
func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	h.svc.SetSearchQuery(in.Query)
	return h.svc.Snapshot(), nil
}

// @Summary Select a department tab
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body domain.FetchInput true "Department"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /directory/department [post]
func (h *handlers) department(r *stdhttp.Request, in domain.FetchInput) (any, error) {
	if err := h.svc.SetSelectedDepartment(r.Context(), in.Department); err != nil {
		return nil, err
	}
	return h.svc.Snapshot(), nil
}

// @Summary Switch display ordering
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body domain.SortInput true "Mode"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /directory/sort [post]
func (h *handlers) sort(r *stdhttp.Request, in domain.SortInput) (any, error) {
	h.svc.SetSortMode(in.Mode)
	return h.svc.Snapshot(), nil
}

// @Summary Employee detail lookup
// @Tags Directory
// @Produce json
// @Param id path string true "Employee id"
// @Success 200 {object} domain.EmployeeDetail "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /directory/employees/{id} [get]
func (h *handlers) employee(r *stdhttp.Request) (any, error) {
	return h.svc.EmployeeByID(httpkit.Param(r, "id"))
}

// @Summary Refetch after connectivity returns
// @Tags Directory
// @Produce json
// @Success 200 {object} domain.Snapshot "ok"
// @Router /directory/network/recovered [post]
func (h *handlers) recovered(r *stdhttp.Request) (any, error) {
	if err := h.svc.OnNetworkRecovered(r.Context()); err != nil {
		return nil, err
	}
	return h.svc.Snapshot(), nil
}
