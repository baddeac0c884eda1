// staffdir-mock serves the black-box directory endpoint for local runs:
// canned datasets via __example, generated records via __dynamic, and
// forced statuses via __code.
package main

import (
	"context"

	"github.com/joho/godotenv"

	"staffdir/internal/platform/config"
	"staffdir/internal/platform/logger"
	phttp "staffdir/internal/platform/net/http"
	"staffdir/internal/platform/net/middleware"

	"staffdir/internal/services/mockdir"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New().Prefix("CORE_MOCK_")
	l := logger.Get()

	h := mockdir.NewHandler(mockdir.NewDataset(), mockdir.Options{
		DynamicDelay: cfg.MayDuration("DYNAMIC_DELAY", 0),
	})

	srv := phttp.NewServer(cfg)
	r := srv.Router()
	r.Use(
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.AccessLog,
	)
	r.Handle("/", h)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("mock server stopped")
	}
}
