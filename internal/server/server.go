package server

import (
	"net/http"
	"time"

	"github.com/Eursukkul/event-catalog/internal/handler"
	"github.com/Eursukkul/event-catalog/internal/logger"
	"github.com/Eursukkul/event-catalog/internal/middleware"
	"github.com/Eursukkul/event-catalog/internal/service"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

const ServiceName = "event-catalog"

// New builds the HTTP surface: /events, /entryType and /health.
func New(eventSvc service.EventService, entryTypeSvc service.EntryTypeService, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.LogAPI(v.Method, v.URI, v.Status, v.Latency.Round(time.Microsecond))
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": ServiceName})
	})

	handler.NewEventHandler(eventSvc).RegisterRoutes(e.Group("/events"))
	handler.NewEntryTypeHandler(entryTypeSvc).RegisterRoutes(e.Group("/entryType"))

	return e
}
