package domain

import (
	"slices"
	"strings"
	"time"
)

// GoodServiceName is the status type excluded from the disruption board.
// Matched case-insensitively.
const GoodServiceName = "Good service"

// ServiceStatusType - TfL status vocabulary entry. Lower severity = better service.
type ServiceStatusType struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
	ColourHex   string `json:"colour_hex" db:"colour_hex"`
	Severity    int    `json:"severity" db:"severity"`
}

// IsGoodService reports whether t names normal service.
func (t ServiceStatusType) IsGoodService() bool {
	return strings.EqualFold(t.Name, GoodServiceName)
}

// RouteStatus is a disruption or information record attached to a route.
// IsActive is maintained by editors and never derived from ValidFrom/ValidTo.
type RouteStatus struct {
	ID              int64      `json:"id" db:"id"`
	RouteID         int64      `json:"route_id" db:"route_id"`
	StatusTypeID    int64      `json:"status_type_id" db:"status_type_id"`
	Summary         string     `json:"summary" db:"summary"`
	Detail          string     `json:"detail,omitempty" db:"detail"`
	AffectedSection string     `json:"affected_section,omitempty" db:"affected_section"`
	IsPlanned       bool       `json:"is_planned" db:"is_planned"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	ValidFrom       time.Time  `json:"valid_from" db:"valid_from"`
	ValidTo         *time.Time `json:"valid_to,omitempty" db:"valid_to"`
	LastUpdated     time.Time  `json:"last_updated" db:"last_updated"`

	StatusType ServiceStatusType `json:"status_type" db:"status_type"`
}

// NetworkIncident drives the sitewide banner. An empty AffectsModes means the
// whole network is affected.
type NetworkIncident struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	StatusTypeID    int64      `json:"status_type_id" db:"status_type_id"`
	StartTime       time.Time  `json:"start_time" db:"start_time"`
	ExpectedEndTime *time.Time `json:"expected_end_time,omitempty" db:"expected_end_time"`
	Active          bool       `json:"active" db:"active"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`

	StatusType   ServiceStatusType `json:"status_type" db:"status_type"`
	AffectsModes []Mode            `json:"affects_modes" db:"-"`
}

func (n *NetworkIncident) AffectsEntireNetwork() bool {
	return len(n.AffectsModes) == 0
}

// newerStatus orders by ValidFrom descending. Equal ValidFrom falls back to the
// higher ID, i.e. the later-created record.
func newerStatus(a, b *RouteStatus) int {
	if !a.ValidFrom.Equal(b.ValidFrom) {
		if a.ValidFrom.After(b.ValidFrom) {
			return -1
		}
		return 1
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}

// SortStatusesNewestFirst sorts in place, newest ValidFrom first.
func SortStatusesNewestFirst(statuses []RouteStatus) {
	slices.SortStableFunc(statuses, func(a, b RouteStatus) int {
		return newerStatus(&a, &b)
	})
}

// CurrentStatus returns the active status with the latest ValidFrom, or nil
// when the route has no active status (normal service). The status type is
// not considered.
func CurrentStatus(statuses []RouteStatus) *RouteStatus {
	var current *RouteStatus
	for i := range statuses {
		s := &statuses[i]
		if !s.IsActive {
			continue
		}
		if current == nil || newerStatus(s, current) < 0 {
			current = s
		}
	}
	if current == nil {
		return nil
	}
	out := *current
	return &out
}

// ActiveDisruptions keeps active statuses whose type is not good service,
// newest first.
func ActiveDisruptions(statuses []RouteStatus) []RouteStatus {
	out := make([]RouteStatus, 0, len(statuses))
	for _, s := range statuses {
		if s.IsActive && !s.StatusType.IsGoodService() {
			out = append(out, s)
		}
	}
	SortStatusesNewestFirst(out)
	return out
}

// CurrentIncident returns the active incident with the latest StartTime.
// Equal start times fall back to the higher ID.
func CurrentIncident(incidents []NetworkIncident) *NetworkIncident {
	var current *NetworkIncident
	for i := range incidents {
		n := &incidents[i]
		if !n.Active {
			continue
		}
		if current == nil ||
			n.StartTime.After(current.StartTime) ||
			(n.StartTime.Equal(current.StartTime) && n.ID > current.ID) {
			current = n
		}
	}
	if current == nil {
		return nil
	}
	out := *current
	return &out
}
