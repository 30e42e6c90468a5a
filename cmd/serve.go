// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/matheuspuca/NoteDrill-sub001/internal/billing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/config"
	"github.com/matheuspuca/NoteDrill-sub001/internal/db"
	"github.com/matheuspuca/NoteDrill-sub001/internal/identity"
	"github.com/matheuspuca/NoteDrill-sub001/internal/kratos"
	"github.com/matheuspuca/NoteDrill-sub001/internal/logging"
	"github.com/matheuspuca/NoteDrill-sub001/internal/monitoring/prometheus"
	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
	"github.com/matheuspuca/NoteDrill-sub001/internal/tracing"
	"github.com/matheuspuca/NoteDrill-sub001/internal/types"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/access"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/authentication"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/blastplan"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/dashboard"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/equipment"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/inventory"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/project"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/report"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/subscription"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/team"
	"github.com/matheuspuca/NoteDrill-sub001/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("notedrill", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var verifier identity.TokenVerifierInterface
	if specs.OIDCIssuer != "" {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
	}

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	billingClient := billing.NewClient(
		billing.Config{
			APIKey:        specs.BillingAPIKey,
			WebhookSecret: specs.BillingWebhookSecret,
		},
		tracer,
		monitor,
		logger,
	)

	accessService := access.NewService(
		s,
		kratosClient,
		access.Config{
			TrialDays: specs.TrialDays,
			Plans: map[string]access.Limits{
				types.PlanBasic: {
					Equipment: specs.BasicEquipmentLimit,
					Projects:  specs.BasicProjectLimit,
				},
				types.PlanPro: {
					Equipment: specs.ProEquipmentLimit,
					Projects:  specs.ProProjectLimit,
				},
				// Enterprise is uncapped.
				types.PlanEnterprise: {},
			},
		},
		tracer,
		monitor,
		logger,
	)

	inventoryService := inventory.NewService(s, tracer, monitor, logger)

	subscriptionService := subscription.NewService(
		s,
		billingClient,
		kratosClient,
		subscription.Config{
			PriceIDs: map[string]string{
				types.PlanBasic:      specs.BillingBasicPriceID,
				types.PlanPro:        specs.BillingProPriceID,
				types.PlanEnterprise: specs.BillingEnterprisePriceID,
			},
			SuccessURL: specs.BillingSuccessURL,
			CancelURL:  specs.BillingCancelURL,
			ReturnURL:  specs.BillingReturnURL,
		},
		tracer,
		monitor,
		logger,
	)

	apis := web.APIs{
		Access:       access.NewAPI(accessService, tracer, logger),
		Project:      project.NewAPI(project.NewService(s, accessService, tracer, monitor, logger), tracer, logger),
		Equipment:    equipment.NewAPI(equipment.NewService(s, accessService, tracer, monitor, logger), tracer, logger),
		Inventory:    inventory.NewAPI(inventoryService, tracer, logger),
		Report:       report.NewAPI(report.NewService(s, inventoryService, tracer, monitor, logger), tracer, logger),
		BlastPlan:    blastplan.NewAPI(blastplan.NewService(s, tracer, monitor, logger), tracer, logger),
		Team:         team.NewAPI(team.NewService(s, kratosClient, specs.InvitationLifetime, tracer, monitor, logger), tracer, logger),
		Dashboard:    dashboard.NewAPI(dashboard.NewService(s, tracer, monitor, logger), tracer, logger),
		Subscription: subscription.NewAPI(subscriptionService, billingClient, tracer, logger),
	}

	identityMiddleware := identity.NewMiddleware(verifier, tracer, monitor, logger)
	gate := access.NewMiddleware(accessService, tracer, logger)

	router := web.NewRouter(
		apis,
		identityMiddleware,
		gate,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
