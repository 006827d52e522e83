// Package app assembles the relay service from configuration. The standalone
// server and the Cloud Function share it.
package app

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/inquiry-relay/internal/config"
	"github.com/janisto/inquiry-relay/internal/http/health"
	"github.com/janisto/inquiry-relay/internal/http/v1/routes"
	"github.com/janisto/inquiry-relay/internal/mail"
	applog "github.com/janisto/inquiry-relay/internal/platform/logging"
	appmiddleware "github.com/janisto/inquiry-relay/internal/platform/middleware"
	"github.com/janisto/inquiry-relay/internal/platform/respond"
	inquirysvc "github.com/janisto/inquiry-relay/internal/service/inquiry"
)

// DocsPath serves the interactive API documentation.
const DocsPath = "/api-docs"

// NewRelay builds the inquiry relay for the configured mail transport.
func NewRelay(cfg *config.Config) *inquirysvc.Relay {
	return inquirysvc.NewRelay(mail.NewFactory(cfg.Mail), inquirysvc.Settings{
		OperatorEmail:   cfg.Mail.Operator(),
		OperatorPersona: cfg.Mail.OperatorPersona,
		SenderName:      cfg.Mail.SenderName,
		SendTimeout:     cfg.Mail.SendTimeout,
	})
}

// NewRouter builds the HTTP surface: health probe, docs and the v1 API.
func NewRouter(cfg *config.Config, svc inquirysvc.Service, version string) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(cfg.MaxBodyBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Method(http.MethodGet, "/health", health.Handler(cfg.AppName, version, cfg.Mail.Transport))
	router.Method(http.MethodHead, "/health", health.Handler(cfg.AppName, version, cfg.Mail.Transport))

	humaCfg := huma.DefaultConfig(cfg.AppName, version)
	humaCfg.DocsPath = DocsPath
	api := humachi.New(router, humaCfg)

	// Advertise CBOR alongside JSON for request and response bodies.
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api, svc, cfg.MaxBodyBytes)
	return router
}
