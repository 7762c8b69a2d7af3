package models

// Zone is a named heating profile with per-room target temperatures.
// Zones are immutable snapshots supplied by the gateway on every refresh.
type Zone struct {
	ID               int                `json:"id"`
	Name             string             `json:"name"`
	Type             int                `json:"type"`
	RoomTemperatures map[string]float64 `json:"room_temperatures,omitempty"`
}

// ScheduleInfo lists the gateway's alternative schedule names and the one
// currently selected. Read-only pass-through, not part of the core engine.
type ScheduleInfo struct {
	Names    []string `json:"names"`
	Selected string   `json:"selected"`
}
