package routes

import (
	"github.com/danielgtaylor/huma/v2"

	inquiryhandler "github.com/janisto/inquiry-relay/internal/http/v1/inquiry"
	inquirysvc "github.com/janisto/inquiry-relay/internal/service/inquiry"
)

// Register wires all API routes into the provided API router.
func Register(api huma.API, inquiryService inquirysvc.Service, maxBodyBytes int64) {
	inquiryhandler.Register(api, inquiryService, maxBodyBytes)
}
