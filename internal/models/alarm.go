package models

import "time"

// AlarmKind discriminates the three alarm variants.
type AlarmKind string

const (
	AlarmRelative AlarmKind = "relative"
	AlarmAbsolute AlarmKind = "absolute"
	AlarmLocation AlarmKind = "location"
)

// Proximity values for location-triggered alarms.
const (
	ProximityEntering = "entering"
	ProximityLeaving  = "leaving"
)

// Alarm is a trigger attached to a reminder: a relative offset in minutes
// before the due date, an absolute instant, or a location trigger.
// A reminder may hold any mixture of kinds.
type Alarm struct {
	Kind          AlarmKind
	MinutesBefore int
	AbsoluteDate  *time.Time
	Location      *LocationTrigger
}

// LocationTrigger describes a geofence alarm.
type LocationTrigger struct {
	Title     string
	Latitude  float64
	Longitude float64
	Radius    float64
	Proximity string
}
