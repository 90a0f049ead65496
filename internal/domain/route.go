package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDisplayOrder is the display order given to new routes.
const DefaultDisplayOrder = 1000

type Route struct {
	ID           int64     `json:"id" db:"id"`
	UUID         uuid.UUID `json:"uuid" db:"uuid"`
	Service      string    `json:"service" db:"service"`
	ModeID       int64     `json:"mode_id" db:"mode_id"`
	OperatorID   int64     `json:"operator_id" db:"operator_id"`
	Origin       string    `json:"origin" db:"origin"`
	Destination  string    `json:"destination" db:"destination"`
	Via          string    `json:"via,omitempty" db:"via"`
	RouteGroup   string    `json:"route_group,omitempty" db:"route_group"`
	RouteHex     string    `json:"route_hex,omitempty" db:"route_hex"`
	BustimesID   int64     `json:"bustimes_id" db:"bustimes_id"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	Mode         Mode          `json:"mode" db:"mode"`
	Operator     OperatorRef   `json:"operator" db:"operator"`
	VehiclesUsed []VehicleType `json:"vehicles_used" db:"-"`
}

// DisplayHex is the route colour, or the operator colour when the route has none.
func (r *Route) DisplayHex() string {
	return DisplayColour(r.RouteHex, r.Operator.PrimaryHex)
}

// DisplayColour returns own unless it is empty.
func DisplayColour(own, fallback string) string {
	if own != "" {
		return own
	}
	return fallback
}

// CompareRoutes orders routes by mode name, display order, then service.
func CompareRoutes(a, b *Route) int {
	if a.Mode.Name != b.Mode.Name {
		return compareStrings(a.Mode.Name, b.Mode.Name)
	}
	if a.DisplayOrder != b.DisplayOrder {
		return a.DisplayOrder - b.DisplayOrder
	}
	if a.Service != b.Service {
		return compareStrings(a.Service, b.Service)
	}
	return int(a.ID - b.ID)
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
