// Package module wires the directory service into the API using modkit
package module

import (
	"net/http"

	modkit "staffdir/internal/modkit"
	"staffdir/internal/modkit/httpkit"
	str "staffdir/internal/platform/strings"
	"staffdir/internal/services/directory/domain"
	dirhttp "staffdir/internal/services/directory/http"
	dirsvc "staffdir/internal/services/directory/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *dirsvc.Service
}

// New constructs the directory module around an outbound fetcher
func New(deps modkit.Deps, fetcher domain.Fetcher, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("directory"),
		modkit.WithPrefix("/directory"),
	}, opts...)...)

	svc := dirsvc.New(fetcher, dirsvc.Config{
		CacheTTL: deps.Cfg.MayDuration("CACHE_TTL", 0),
		Locale:   deps.Cfg.MayString("LOCALE", "ru"),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dirhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Ports returns the module port set for cross wiring
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
