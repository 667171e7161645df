package rest

import (
	"context"
	"net/http"

	"github.com/Gthulhu/priosim/docs"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	docs.SwaggerInfo.BasePath = "/"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	api := engine.Group("/api", echo.WrapMiddleware(LoggerMiddleware))
	// v1 routes
	{
		apiV1 := api.Group("/v1")
		// auth routes
		apiV1.POST("/auth/token", h.echoHandler(h.GenToken))

		auth := echo.WrapMiddleware(h.GetAuthMiddleware())

		// simulation routes
		apiV1.POST("/simulations", h.echoHandler(h.CreateSimulation), auth)
		apiV1.GET("/simulations", h.echoHandler(h.ListSimulations), auth)
		apiV1.GET("/simulations/:id", h.echoHandlerWithParams(h.GetSimulation), auth)
		apiV1.DELETE("/simulations/:id", h.echoHandlerWithParams(h.DeleteSimulation), auth)

		// preset routes
		apiV1.GET("/presets", h.echoHandler(h.ListPresets), auth)
		apiV1.GET("/presets/:name", h.echoHandlerWithParams(h.GetPreset), auth)
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams wraps a handler function and injects path parameters into request context
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), c.Param(name)))
		}
		handlerFunc(c.Response().Writer, r)
		return nil
	}
}

type pathParamKey string

// GetPathParam retrieves a path parameter from request context
func (h *Handler) GetPathParam(r *http.Request, name string) string {
	if val, ok := r.Context().Value(pathParamKey(name)).(string); ok {
		return val
	}
	return ""
}
