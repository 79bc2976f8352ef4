package router

import (
	"errors"

	handlers "github.com/NeuralTrust/InstallGate/pkg/handlers/http"
	"github.com/NeuralTrust/InstallGate/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type installRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
	swaggerURL          string
}

func NewInstallRouter(
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	swaggerURL string,
) ServerRouter {
	return &installRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		swaggerURL:          swaggerURL,
	}
}

func (r *installRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h.EnablePluginHandler == nil || h.RedirectAdminHandler == nil || h.ListPluginsHandler == nil {
		return ErrInvalidHandlerTransport
	}

	for _, m := range []middleware.Middleware{
		r.middlewareTransport.PanicRecoverMiddleware,
		r.middlewareTransport.MetricsMiddleware,
	} {
		if m != nil {
			router.Use(m.Middleware())
		}
	}

	router.Static("/swagger.json", "./docs/swagger.json")
	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: r.swaggerURL,
	}))

	if h.GetVersionHandler != nil {
		router.Get("/version", h.GetVersionHandler.Handle)
	}

	install := router.Group("/install")
	{
		if m := r.middlewareTransport.TerminateMiddleware; m != nil {
			install.Use(m.Middleware())
		}
		if m := r.middlewareTransport.CSRFMiddleware; m != nil {
			install.Use(m.Middleware())
		}

		install.Get("/plugins", h.ListPluginsHandler.Handle)
		install.Get("/plugin/redirect", h.RedirectAdminHandler.Handle)
		install.Put("/plugin/:code/enable", h.EnablePluginHandler.Handle)
	}

	return nil
}
