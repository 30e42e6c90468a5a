// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Project statuses. Business values are kept in Portuguese as the field
// operations teams use them.
const (
	ProjectPlanning   = "Planejamento"
	ProjectProduction = "Produção"
	ProjectStopped    = "Parada"
	ProjectDone       = "Concluída"
)

type Project struct {
	ID           string     `db:"id" json:"id"`
	OwnerID      string     `db:"owner_id" json:"-"`
	Name         string     `db:"name" json:"name"`
	Status       string     `db:"status" json:"status"`
	Address      string     `db:"address" json:"address"`
	VolumeTarget *float64   `db:"volume_target" json:"volume_target,omitempty"`
	StartDate    time.Time  `db:"start_date" json:"start_date"`
	EndDate      *time.Time `db:"end_date" json:"end_date,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Equipment types and statuses.
const (
	EquipmentHydraulic  = "Hidráulica"
	EquipmentPneumatic  = "Pneumática"
	EquipmentCompressor = "Compressor"
	EquipmentVehicle    = "Veículo"
	EquipmentOther      = "Outros"

	EquipmentOperational = "Operacional"
	EquipmentMaintenance = "Manutenção"
	EquipmentUnavailable = "Indisponível"

	OwnershipOwned  = "OWNED"
	OwnershipRented = "RENTED"
)

type Equipment struct {
	ID                  string    `db:"id" json:"id"`
	OwnerID             string    `db:"owner_id" json:"-"`
	Name                string    `db:"name" json:"name"`
	Type                string    `db:"type" json:"type"`
	Status              string    `db:"status" json:"status"`
	Hourmeter           float64   `db:"hourmeter" json:"hourmeter"`
	MaintenanceInterval float64   `db:"maintenance_interval" json:"maintenance_interval"`
	Ownership           string    `db:"ownership" json:"ownership"`
	AcquisitionValue    *float64  `db:"acquisition_value" json:"acquisition_value,omitempty"`
	MonthlyRentalCost   *float64  `db:"monthly_rental_cost" json:"monthly_rental_cost,omitempty"`
	ProjectID           *string   `db:"project_id" json:"project_id,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// Maintenance event types and statuses.
const (
	MaintenanceRevision   = "REVISION"
	MaintenancePreventive = "PREVENTIVE"
	MaintenanceCorrective = "CORRECTIVE"

	MaintenanceScheduled  = "SCHEDULED"
	MaintenanceInProgress = "IN_PROGRESS"
	MaintenanceCompleted  = "COMPLETED"
)

type MaintenanceEvent struct {
	ID          string    `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"-"`
	EquipmentID string    `db:"equipment_id" json:"equipment_id"`
	Type        string    `db:"type" json:"type"`
	Status      string    `db:"status" json:"status"`
	HourMeter   float64   `db:"hour_meter" json:"hour_meter"`
	Cost        float64   `db:"cost" json:"cost"`
	Date        time.Time `db:"date" json:"date"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Team member statuses.
const (
	MemberActive    = "Ativo"
	MemberVacation  = "Férias"
	MemberSickLeave = "Atestado"
	MemberInactive  = "Inativo"
)

type TeamMember struct {
	ID            string     `db:"id" json:"id"`
	OwnerID       string     `db:"owner_id" json:"-"`
	Name          string     `db:"name" json:"name"`
	Role          string     `db:"role" json:"role"`
	Status        string     `db:"status" json:"status"`
	Phone         string     `db:"phone" json:"phone"`
	Email         string     `db:"email" json:"email"`
	DailyRate     float64    `db:"daily_rate" json:"daily_rate"`
	AdmissionDate *time.Time `db:"admission_date" json:"admission_date,omitempty"`
	IdentityID    *string    `db:"identity_id" json:"identity_id,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// Inventory item types.
const (
	ItemMaterial = "Material"
	ItemTool     = "Ferramenta"
	ItemEPI      = "EPI"
	ItemFuel     = "Combustível"
)

type InventoryItem struct {
	ID        string    `db:"id" json:"id"`
	OwnerID   string    `db:"owner_id" json:"-"`
	ProjectID string    `db:"project_id" json:"project_id"`
	Name      string    `db:"name" json:"name"`
	Type      string    `db:"type" json:"type"`
	Quantity  float64   `db:"quantity" json:"quantity"`
	MinStock  float64   `db:"min_stock" json:"min_stock"`
	Unit      string    `db:"unit" json:"unit"`
	Value     float64   `db:"value" json:"value"`
	CACode    *string   `db:"ca_code" json:"ca_code,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LowStock reports whether the item is at or below its minimum threshold.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStock
}

// EpiIssue records PPE handed out to a team member. Creating one decrements
// the item's stock.
type EpiIssue struct {
	ID              string    `db:"id" json:"id"`
	OwnerID         string    `db:"owner_id" json:"-"`
	InventoryItemID string    `db:"inventory_item_id" json:"inventory_item_id"`
	TeamMemberID    string    `db:"team_member_id" json:"team_member_id"`
	Quantity        float64   `db:"quantity" json:"quantity"`
	IssuedAt        time.Time `db:"issued_at" json:"issued_at"`
}

// Drilling report (BDP) statuses.
const (
	ReportPending  = "PENDENTE"
	ReportApproved = "APROVADO"
	ReportRejected = "REJEITADO"
)

type DrillingReport struct {
	ID               string             `db:"id" json:"id"`
	OwnerID          string             `db:"owner_id" json:"-"`
	ProjectID        string             `db:"project_id" json:"project_id"`
	BlastPlanID      *string            `db:"blast_plan_id" json:"blast_plan_id,omitempty"`
	ReportNumber     int64              `db:"report_number" json:"report_number"`
	Date             time.Time          `db:"date" json:"date"`
	DrillEquipmentID string             `db:"drill_equipment_id" json:"drill_equipment_id"`
	CompressorID     *string            `db:"compressor_equipment_id" json:"compressor_equipment_id,omitempty"`
	OperatorID       string             `db:"operator_id" json:"operator_id"`
	HelperID         *string            `db:"helper_id" json:"helper_id,omitempty"`
	Status           string             `db:"status" json:"status"`
	HourmeterStart   float64            `db:"hourmeter_start" json:"hourmeter_start"`
	HourmeterEnd     float64            `db:"hourmeter_end" json:"hourmeter_end"`
	TotalHours       float64            `db:"total_hours" json:"total_hours"`
	TotalMeters      float64            `db:"total_meters" json:"total_meters"`
	Services         []ReportService    `db:"services" json:"services"`
	Occurrences      []ReportOccurrence `db:"occurrences" json:"occurrences"`
	Supplies         []ReportSupply     `db:"supplies" json:"supplies"`
	CreatedAt        time.Time          `db:"created_at" json:"created_at"`
}

// Blast plan statuses.
const (
	BlastPlanOpen = "Aberto"
	BlastPlanDone = "Concluída"
)

type BlastPlan struct {
	ID            string    `db:"id" json:"id"`
	OwnerID       string    `db:"owner_id" json:"-"`
	ProjectID     string    `db:"project_id" json:"project_id"`
	Name          string    `db:"name" json:"name"`
	Status        string    `db:"status" json:"status"`
	Date          time.Time `db:"date" json:"date"`
	HoleCount     int       `db:"hole_count" json:"hole_count"`
	PlannedMeters float64   `db:"planned_meters" json:"planned_meters"`
	Notes         string    `db:"notes" json:"notes"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Subscription plans and statuses, mirroring the billing provider's vocabulary.
const (
	PlanBasic      = "basic"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"

	SubscriptionActive     = "active"
	SubscriptionTrialing   = "trialing"
	SubscriptionPastDue    = "past_due"
	SubscriptionCanceled   = "canceled"
	SubscriptionUnpaid     = "unpaid"
	SubscriptionIncomplete = "incomplete"
)

type Subscription struct {
	ID                     string    `db:"id" json:"id"`
	OwnerID                string    `db:"owner_id" json:"-"`
	Plan                   string    `db:"plan" json:"plan"`
	Status                 string    `db:"status" json:"status"`
	ProviderCustomerID     string    `db:"provider_customer_id" json:"-"`
	ProviderSubscriptionID string    `db:"provider_subscription_id" json:"-"`
	PriceID                string    `db:"price_id" json:"-"`
	CurrentPeriodEnd       time.Time `db:"current_period_end" json:"current_period_end"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time `db:"updated_at" json:"updated_at"`
}

// Gateable grants system access while the subscription is being paid for or
// trialed through the billing provider.
func (s *Subscription) Gateable() bool {
	if s == nil {
		return false
	}
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}

// Identity is the subset of the identity provider's record the application
// needs: the id is the tenant key, CreatedAt anchors the trial window.
type Identity struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
