// Package views computes what dashboards show from fetched resources.
//
// Functions in this package are pure: they do not modify their arguments.
package views

import (
	"sort"

	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/utils"
)

// DayGroup is schedules of one day of a trip.
type DayGroup struct {
	Day       int                  `json:"day"`
	Schedules []schedules.Schedule `json:"schedules"`
}

// GroupSchedulesByDay groups schedules by day number.
//
// Groups are ordered by day, and schedules in a group are ordered by "order".
// Schedules having the same order keep their relative position.
func GroupSchedulesByDay(ss []schedules.Schedule) []DayGroup {
	byDay := utils.ToMultiMap(ss, func(s schedules.Schedule) int { return s.DayNumber })

	days := utils.KeysOf(byDay)
	sort.Ints(days)

	groups := make([]DayGroup, 0, len(days))
	for _, d := range days {
		groups = append(groups, DayGroup{
			Day: d,
			Schedules: utils.SortedStable(byDay[d], func(a, b schedules.Schedule) bool {
				return a.Order < b.Order
			}),
		})
	}
	return groups
}

// NextOrder returns the order for a schedule to be appended to the day.
//
// It is the max order in the day plus 1, or 1 if the day has no schedules.
func NextOrder(ss []schedules.Schedule, day int) int {
	next := 1
	for _, s := range ss {
		if s.DayNumber == day && next <= s.Order {
			next = s.Order + 1
		}
	}
	return next
}
