// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matheuspuca/NoteDrill-sub001/internal/db"
	"github.com/matheuspuca/NoteDrill-sub001/internal/identity"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/access"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/blastplan"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/dashboard"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/equipment"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/inventory"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/metrics"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/project"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/report"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/status"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/subscription"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/team"
)

// APIs collects the endpoint groups wired into the router.
type APIs struct {
	Access       *access.API
	Project      *project.API
	Equipment    *equipment.API
	Inventory    *inventory.API
	Report       *report.API
	BlastPlan    *blastplan.API
	Team         *team.API
	Dashboard    *dashboard.API
	Subscription *subscription.API
}

func NewRouter(
	apis APIs,
	identityMiddleware *identity.Middleware,
	gate *access.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// The billing provider signs its own requests, it never goes through
	// the identity proxy.
	apis.Subscription.RegisterWebhook(router)

	router.Group(func(r chi.Router) {
		r.Use(identityMiddleware.HTTPMiddleware)
		r.Use(db.TransactionMiddleware(dbClient, logger))

		// Paywall status and billing routes stay reachable for expired
		// tenants, otherwise they could never pay their way back in.
		apis.Access.RegisterEndpoints(r)
		apis.Subscription.RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(gate.Gate)

			apis.Project.RegisterEndpoints(r)
			apis.Equipment.RegisterEndpoints(r)
			apis.Inventory.RegisterEndpoints(r)
			apis.Report.RegisterEndpoints(r)
			apis.BlastPlan.RegisterEndpoints(r)
			apis.Team.RegisterEndpoints(r)
			apis.Dashboard.RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
