package configs

import (
	"fmt"
	"time"
)

// Scheduler configures the campaign control loop. Enabled is the operational
// kill-switch: while false, Start logs and arms nothing.
type Scheduler struct {
	Enabled     bool          `env:"ENABLED" envDefault:"false"`
	Interval    time.Duration `env:"INTERVAL" envDefault:"30m" validate:"gt=0"`
	TickTimeout time.Duration `env:"TICK_TIMEOUT" envDefault:"20m" validate:"gt=0"`
	// Timezone is the reference zone for business hours and the midnight
	// spend reset.
	Timezone string `env:"TIMEZONE" envDefault:"America/Chicago" validate:"required"`

	BusinessHoursStart int `env:"BUSINESS_HOURS_START" envDefault:"8" validate:"min=0,max=23"`
	BusinessHoursEnd   int `env:"BUSINESS_HOURS_END" envDefault:"18" validate:"min=1,max=24,gtfield=BusinessHoursStart"`

	RotationPeriod      time.Duration `env:"ROTATION_PERIOD" envDefault:"168h" validate:"gt=0"`
	MaturityWindow      time.Duration `env:"MATURITY_WINDOW" envDefault:"72h" validate:"gt=0"`
	MinDailyImpressions float64       `env:"MIN_DAILY_IMPRESSIONS" envDefault:"100" validate:"gte=0"`
	MinCTR              float64       `env:"MIN_CTR" envDefault:"0.005" validate:"gte=0,lte=1"`

	// DatePresets are tried in order until one returns insight rows.
	DatePresets []string `env:"DATE_PRESETS" envSeparator:"," envDefault:"today,last_3d,last_7d" validate:"min=1,dive,required"`
}

// Location loads the reference time zone.
func (c Scheduler) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
