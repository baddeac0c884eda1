// @title         Staff Directory API
// @version       0.1.0
// @description   Employee directory snapshot and fetch lifecycle endpoints

package main

import (
	"context"

	"github.com/joho/godotenv"

	"staffdir/internal/platform/config"
	"staffdir/internal/platform/logger"
	phttp "staffdir/internal/platform/net/http"

	"staffdir/internal/adapters/remote/kodemock"
	"staffdir/internal/services/api"
)

func main() {
	// optional .env for local runs, real deployments use the environment
	_ = godotenv.Load()

	// service-scoped config (CORE_API_*) and directory tuning (CORE_DIRECTORY_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	dirCfg := root.Prefix("CORE_DIRECTORY_")

	// bring up logging early
	l := logger.Get()

	remote := kodemock.NewClient(kodemock.Options{
		BaseURL:   dirCfg.MustString("REMOTE_URL"),
		UserAgent: "staffdir-api",
		Timeout:   dirCfg.MayDuration("REMOTE_TIMEOUT", 0),
	})

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Directory:     dirCfg,
			Logger:        l,
			Remote:        remote,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
