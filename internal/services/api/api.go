// Package api provides the HTTP API for the application
package api

import (
	"staffdir/internal/platform/config"
	"staffdir/internal/platform/logger"
	phttp "staffdir/internal/platform/net/http"
	"staffdir/internal/platform/net/middleware"

	"staffdir/internal/modkit"
	"staffdir/internal/modkit/httpkit"
	"staffdir/internal/modkit/swaggerkit"

	"staffdir/internal/adapters/remote/kodemock"
	metamod "staffdir/internal/services/api/meta/module"
	dirmod "staffdir/internal/services/directory/module"
)

// Options are the API options
type Options struct {
	// Config is the CORE_API_* view, Directory the CORE_DIRECTORY_* view
	Config        config.Conf
	Directory     config.Conf
	Logger        *logger.Logger
	Remote        *kodemock.Client
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Directory,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []modkit.Module{
		metamod.New(deps, opt.Remote),
		dirmod.New(deps, opt.Remote),
	}

	stack := httpkit.CommonStack()
	if rps := opt.Config.MayInt("RATE_LIMIT_RPS", 0); rps > 0 {
		rl := middleware.NewRateLimiter(float64(rps), rps*2)
		stack = append(stack, rl.ByIP())
	}

	// versioned API with the common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
