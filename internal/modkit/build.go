package modkit

import (
	"net/http"

	phttp "staffdir/internal/platform/net/http"
)

// Built is the result of assembling options for a module
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	Subrouter func(phttp.Router) phttp.Router
	Register  func(phttp.Router)
}

// Build folds options into a Built with sane defaults
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r phttp.Router) phttp.Router { return r }
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        c.mw,
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Mount applies the built config onto a parent router
func (b Built) Mount(parent phttp.Router) {
	attach := func(r phttp.Router) {
		if len(b.Mw) > 0 {
			r.Use(b.Mw...)
		}
		b.Register(b.Subrouter(r))
	}
	if b.Prefix != "" {
		parent.Route(b.Prefix, attach)
		return
	}
	attach(parent)
}
