// Package module wires votes into the API using modkit
package module

import (
	"net/http"

	modkit "urna/internal/modkit"
	"urna/internal/modkit/httpkit"
	str "urna/internal/platform/strings"
	sessionsdomain "urna/internal/services/api/sessions/domain"
	voteshttp "urna/internal/services/api/votes/http"
	votesrepo "urna/internal/services/api/votes/repo"
	votessvc "urna/internal/services/api/votes/service"
)

// Ports declares the cross module ports this module consumes
// main injects it with modkit.WithPorts
type Ports struct {
	Sessions sessionsdomain.ReaderPort
}

// Module implements the votes module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc votessvc.Service
}

// New constructs the votes module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("votos"), modkit.WithPrefix("/votos")}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok || in.Sessions == nil {
		panic("votes module requires Ports{Sessions} injected via modkit.WithPorts")
	}

	repo := votesrepo.NewPG()
	svc := votessvc.New(deps.PG, repo, in.Sessions)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptVotoPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		voteshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
