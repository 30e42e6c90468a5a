// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	OIDCIssuer      string   `envconfig:"oidc_issuer"`
	JWKSURL         string   `envconfig:"jwks_url"`
	AllowedSubjects []string `envconfig:"allowed_subjects"`
	RequiredScope   string   `envconfig:"required_scope"`

	InvitationLifetime string `envconfig:"invitation_lifetime" default:"24h"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	TrialDays int `envconfig:"trial_days" default:"14"`

	BasicEquipmentLimit int `envconfig:"basic_equipment_limit" default:"1"`
	BasicProjectLimit   int `envconfig:"basic_project_limit" default:"1"`
	ProEquipmentLimit   int `envconfig:"pro_equipment_limit" default:"3"`
	ProProjectLimit     int `envconfig:"pro_project_limit" default:"3"`

	BillingAPIKey            string `envconfig:"billing_api_key"`
	BillingWebhookSecret     string `envconfig:"billing_webhook_secret"`
	BillingBasicPriceID      string `envconfig:"billing_basic_price_id"`
	BillingProPriceID        string `envconfig:"billing_pro_price_id"`
	BillingEnterprisePriceID string `envconfig:"billing_enterprise_price_id"`
	BillingSuccessURL        string `envconfig:"billing_success_url"`
	BillingCancelURL         string `envconfig:"billing_cancel_url"`
	BillingReturnURL         string `envconfig:"billing_return_url"`
}
