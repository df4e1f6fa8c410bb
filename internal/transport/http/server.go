// Package http provides the HTTP server for the ticket bot.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/xiaot623/ticketbot/internal/service"
	v1 "github.com/xiaot623/ticketbot/internal/transport/http/v1"
	"github.com/xiaot623/ticketbot/internal/transport/ws"
)

// NewServer creates and configures the HTTP server. It serves the v1 REST
// API and the WebSocket chat endpoint.
func NewServer(svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	v1Handler := v1.NewHandler(svc)
	wsServer := ws.NewServer(svc)

	// Register routes
	v1Handler.RegisterRoutes(e)
	e.GET("/ws", wsServer.HandleWebSocket)

	return e
}
