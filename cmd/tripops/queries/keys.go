package queries

import (
	"github.com/hitrip/tripops/pkg/api/types/places"
	"github.com/hitrip/tripops/pkg/query"
)

func TripsKey() query.Key                  { return query.NewKey("trips") }
func TripKey(tripId int) query.Key         { return TripsKey().With(tripId) }
func SchedulesKey(tripId int) query.Key    { return TripKey(tripId).With("schedules") }
func ParticipantsKey(tripId int) query.Key { return TripKey(tripId).With("participants") }
func ParticipantKey(tripId, participantId int) query.Key {
	return ParticipantsKey(tripId).With(participantId)
}

func PlacesKey() query.Key              { return query.NewKey("places") }
func PlaceKey(placeId int) query.Key    { return PlacesKey().With(placeId) }
func ExpensesKey(placeId int) query.Key { return PlaceKey(placeId).With("expenses") }
func CoordinatorsKey(placeId int) query.Key {
	return PlaceKey(placeId).With("coordinators")
}

// PlaceListKey is a key of places found with params.
func PlaceListKey(params places.ListParams) query.Key {
	return PlacesKey().With("list", params.Values().Encode())
}

func CategoriesKey() query.Key       { return query.NewKey("place-categories") }
func CoordinatorRolesKey() query.Key { return query.NewKey("coordinator-roles") }
func StaffKey() query.Key            { return query.NewKey("staff") }
func ProfileKey() query.Key          { return query.NewKey("profile") }

func MonitoringKey(tripId int) query.Key { return query.NewKey("monitoring", tripId) }
func AlertsKey(tripId int) query.Key     { return MonitoringKey(tripId).With("alerts") }
func LatestKey(tripId int) query.Key     { return MonitoringKey(tripId).With("latest") }
func HistoryKey(tripId, participantId, hours int) query.Key {
	return MonitoringKey(tripId).With("history", participantId, hours)
}
