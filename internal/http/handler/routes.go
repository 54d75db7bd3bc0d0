package handler

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
//
// Fiber matches routes in registration order, so the catch-all echo route
// must stay last: every fixed route above it keeps precedence, and any route
// registered after it is unreachable for GET requests.
func RegisterRoutes(app *fiber.App, metrics prometheus.Gatherer) {
	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	// Prometheus exposition via the stock promhttp handler bridged into Fiber.
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics, promhttp.HandlerOpts{})))

	app.Get("/*", Echo())
}
