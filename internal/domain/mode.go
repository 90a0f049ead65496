package domain

// Mode - transport category (Bus, Train, Ferry)
type Mode struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// Mode used for routes created by the bustimes importer
const (
	BusModeName = "Bus"
	BusModeSlug = "bus"
)

// VehicleType - class of vehicle (single-deck bus, EMU, ...)
type VehicleType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
