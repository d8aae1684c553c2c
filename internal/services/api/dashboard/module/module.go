// Package module wires the dashboard into the API using modkit
package module

import (
	"net/http"

	modkit "urna/internal/modkit"
	"urna/internal/modkit/httpkit"
	str "urna/internal/platform/strings"
	agendasdomain "urna/internal/services/api/agendas/domain"
	dashhttp "urna/internal/services/api/dashboard/http"
	dashrepo "urna/internal/services/api/dashboard/repo"
	dashsvc "urna/internal/services/api/dashboard/service"
)

// Ports declares the cross module ports this module consumes
// main injects it with modkit.WithPorts
type Ports struct {
	Agendas agendasdomain.ReaderPort
}

// Module implements the dashboard module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc dashsvc.Service
}

// New constructs the dashboard module
// the eligible voting population comes from the DASHBOARD_ELIGIBLE_VOTERS
// key of the api config view (CORE_API_DASHBOARD_ELIGIBLE_VOTERS in env)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("dashboard"), modkit.WithPrefix("/dashboard")}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok || in.Agendas == nil {
		panic("dashboard module requires Ports{Agendas} injected via modkit.WithPorts")
	}

	eligible := deps.Cfg.MayInt("DASHBOARD_ELIGIBLE_VOTERS", dashsvc.DefaultEligibleVoters)

	repo := dashrepo.NewPG()
	svc := dashsvc.New(deps.PG, repo, in.Agendas, eligible)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptDashboardPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dashhttp.Register(r, m.svc)
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
