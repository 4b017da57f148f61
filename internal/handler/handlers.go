package handler

import (
	httphandler "github.com/hirunaj/pawtrail/internal/handler/http"
	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/service"
)

// Handlers groups the transport handlers of the server binary.
type Handlers struct {
	HTTP *httphandler.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: httphandler.NewHandler(services, logger),
	}
}
