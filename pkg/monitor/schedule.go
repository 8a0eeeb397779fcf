// Package monitor polls resources periodically while someone watches them.
package monitor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

var ErrInvalidSchedule = errors.New("invalid poll schedule")

// ParseSchedule reads a poll schedule.
//
// spec can be a duration ("5s"), a descriptor ("@every 5s", "@hourly"),
// or a standard 5-field cron spec ("*/5 * * * *").
// Durations are rounded down to seconds, and should be 1s or longer.
func ParseSchedule(spec string) (cron.Schedule, error) {
	spec = strings.TrimSpace(spec)
	if d, err := time.ParseDuration(spec); err == nil {
		if d < time.Second {
			return nil, fmt.Errorf("%w: interval should be 1s or longer: %s", ErrInvalidSchedule, spec)
		}
		return cron.Every(d), nil
	}

	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchedule, spec, err)
	}
	return sched, nil
}

// Every is a schedule with fixed interval.
func Every(d time.Duration) cron.Schedule {
	return cron.Every(d)
}
