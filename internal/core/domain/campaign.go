package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of an AdCampaign row.
type CampaignStatus string

const (
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a row in status s may move to next. Completed
// is terminal; rotation spawns a new row instead of reviving an old one.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	switch s {
	case StatusActive:
		return next == StatusPaused || next == StatusCompleted
	case StatusPaused:
		return next == StatusActive || next == StatusCompleted
	default:
		return false
	}
}

// Default campaign policy applied when a row leaves a field unset.
var (
	DefaultDailyBudget = decimal.NewFromInt(25)
	DefaultCity        = "Nashville"
	DefaultState       = "Tennessee"
)

const (
	DefaultRadius = 25
	DefaultAgeMin = 25
	DefaultAgeMax = 65
)

// AdCampaign is one logical recurring campaign intent per tenant and channel.
// Money fields are in the account currency (not minor units).
type AdCampaign struct {
	ID        uuid.UUID
	TenantID  string
	Name      string
	Platform  Platform
	Objective string

	DailyBudget        decimal.Decimal
	BusinessHoursStart *int
	BusinessHoursEnd   *int
	TargetingCity      *string
	TargetingState     *string
	TargetingRadius    *int
	AgeMin             *int
	AgeMax             *int
	StartDate          *time.Time
	EndDate            *time.Time

	Status          CampaignStatus
	Spent           decimal.Decimal
	Impressions     int64
	Clicks          int64
	MetaAdID        *string
	ErrorMessage    *string
	PerformanceFlag *PerformanceFlag
	PredecessorID   *uuid.UUID
	LastActionAt    *time.Time
	LastSyncAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Budget returns the daily budget, falling back to DefaultDailyBudget when
// the stored value is zero or negative.
func (c AdCampaign) Budget() decimal.Decimal {
	if c.DailyBudget.IsPositive() {
		return c.DailyBudget
	}
	return DefaultDailyBudget
}

// RemainingBudget is the amount still spendable today. It never goes below zero.
func (c AdCampaign) RemainingBudget() decimal.Decimal {
	rem := c.Budget().Sub(c.Spent)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// BudgetExhausted reports whether today's reconciled spend has reached the cap.
func (c AdCampaign) BudgetExhausted() bool {
	return c.Spent.GreaterThanOrEqual(c.Budget())
}

// ActedOn reports whether the last successful launch or boost happened on the
// calendar day of now, read in now's location.
func (c AdCampaign) ActedOn(now time.Time) bool {
	if c.LastActionAt == nil {
		return false
	}
	y, m, d := c.LastActionAt.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return y == ny && m == nm && d == nd
}

// Expired reports whether the fixed-duration window ended before now. Rows
// without an end date never expire.
func (c AdCampaign) Expired(now time.Time) bool {
	return c.EndDate != nil && c.EndDate.Before(now)
}

// Targeting builds the value object handed to the platform client, filling
// unset fields from the defaults.
func (c AdCampaign) Targeting() CampaignTargeting {
	t := CampaignTargeting{
		City:   DefaultCity,
		State:  DefaultState,
		Radius: DefaultRadius,
		AgeMin: DefaultAgeMin,
		AgeMax: DefaultAgeMax,
	}
	if c.TargetingCity != nil && *c.TargetingCity != "" {
		t.City = *c.TargetingCity
	}
	if c.TargetingState != nil && *c.TargetingState != "" {
		t.State = *c.TargetingState
	}
	if c.TargetingRadius != nil && *c.TargetingRadius > 0 {
		t.Radius = *c.TargetingRadius
	}
	if c.AgeMin != nil && *c.AgeMin > 0 {
		t.AgeMin = *c.AgeMin
	}
	if c.AgeMax != nil && *c.AgeMax > 0 {
		t.AgeMax = *c.AgeMax
	}
	return t
}

// Successor returns the row that replaces c after rotation: same policy, a
// fresh window of length period starting at now, and a cleared ledger.
func (c AdCampaign) Successor(now time.Time, period time.Duration) AdCampaign {
	start := now
	end := now.Add(period)
	pred := c.ID
	return AdCampaign{
		ID:                 uuid.New(),
		TenantID:           c.TenantID,
		Name:               c.Name,
		Platform:           c.Platform,
		Objective:          c.Objective,
		DailyBudget:        c.DailyBudget,
		BusinessHoursStart: c.BusinessHoursStart,
		BusinessHoursEnd:   c.BusinessHoursEnd,
		TargetingCity:      c.TargetingCity,
		TargetingState:     c.TargetingState,
		TargetingRadius:    c.TargetingRadius,
		AgeMin:             c.AgeMin,
		AgeMax:             c.AgeMax,
		StartDate:          &start,
		EndDate:            &end,
		Status:             StatusActive,
		Spent:              decimal.Zero,
		PredecessorID:      &pred,
	}
}
