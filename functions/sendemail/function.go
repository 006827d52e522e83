// Package sendemail serves the inquiry relay as an HTTP Cloud Function.
package sendemail

import (
	"context"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/janisto/inquiry-relay/internal/app"
	"github.com/janisto/inquiry-relay/internal/config"
	applog "github.com/janisto/inquiry-relay/internal/platform/logging"
	"github.com/janisto/inquiry-relay/internal/platform/respond"
)

// Version is reported by the health probe.
var Version = "dev"

var (
	setupOnce sync.Once
	handler   http.Handler
	setupErr  error
)

func init() {
	functions.HTTP("SendEmail", serve)
}

// setup loads configuration on the first invocation so a cold start with a
// broken environment still answers with a JSON error.
func setup() {
	cfg, err := config.Load()
	if err != nil {
		setupErr = err
		applog.LogError(context.Background(), "config load failed", err)
		return
	}
	applog.Configure(cfg.AppName, cfg.Debug)
	respond.Install()
	handler = app.NewRouter(cfg, app.NewRelay(cfg), Version)
}

func serve(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(setup)
	if setupErr != nil {
		_ = respond.WriteError(w, r.Context(), http.StatusInternalServerError, "service misconfigured", setupErr)
		return
	}
	handler.ServeHTTP(w, r)
}
