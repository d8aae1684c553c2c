// Package api provides the HTTP API for the application
package api

import (
	"urna/internal/platform/config"
	"urna/internal/platform/logger"
	phttp "urna/internal/platform/net/http"
	"urna/internal/platform/store"

	"urna/internal/modkit"
	"urna/internal/modkit/httpkit"
	"urna/internal/modkit/module"
	"urna/internal/modkit/swaggerkit"

	agendasdomain "urna/internal/services/api/agendas/domain"
	agendasmod "urna/internal/services/api/agendas/module"
	dashboardmod "urna/internal/services/api/dashboard/module"
	metamod "urna/internal/services/api/meta/module"
	sessionsdomain "urna/internal/services/api/sessions/domain"
	sessionsmod "urna/internal/services/api/sessions/module"
	votesmod "urna/internal/services/api/votes/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *log,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// agendas first, everything downstream reads through its port
	agendas := agendasmod.New(deps)
	agendasPort := module.MustPortsOf[agendasdomain.ReaderPort](agendas)

	sessions := sessionsmod.New(
		deps,
		modkit.WithPorts(sessionsmod.Ports{Agendas: agendasPort}),
	)
	sessionsPort := module.MustPortsOf[sessionsdomain.ReaderPort](sessions)

	votes := votesmod.New(
		deps,
		modkit.WithPorts(votesmod.Ports{Sessions: sessionsPort}),
	)

	dashboard := dashboardmod.New(
		deps,
		modkit.WithPorts(dashboardmod.Ports{Agendas: agendasPort}),
	)

	mods := []module.Module{
		metamod.New(deps),
		agendas,
		sessions,
		votes,
		dashboard,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
